package domain

import "errors"

// Определение бизнес-ошибок
var (
	ErrDepartmentNotFound = errors.New("department not found")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrInvalidID          = errors.New("id must be a positive integer")
	ErrDuplicateEmail     = errors.New("employee with this email already exists")
)

// ValidationError описывает нарушение ограничения конкретного поля.
// Field хранит wire-имя поля (camelCase), по нему форма привязывает
// сообщение к конкретному input.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// NewValidationError создаёт ошибку валидации для поля
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{Field: field, Message: message}
}
