package dto

import (
	"time"
)

// DepartmentRequest - тело запроса создания/обновления подразделения
type DepartmentRequest struct {
	Name     string `json:"name" validate:"required,notblank,max=15"`
	Location string `json:"location" validate:"required,notblank,max=10"`
}

// EmployeeRequest - тело запроса создания/обновления сотрудника.
// HireDate необязателен на уровне DTO: при создании поле намеренно
// не требуется, обязательность при обновлении проверяет сервис.
type EmployeeRequest struct {
	LastName     string  `json:"lastName" validate:"required,notblank,max=10"`
	FirstName    string  `json:"firstName" validate:"required,notblank,max=10"`
	Email        string  `json:"email" validate:"required,email,max=100"`
	DepartmentID int64   `json:"departmentId" validate:"required"`
	Position     string  `json:"position" validate:"required,notblank,max=15"`
	HireDate     *string `json:"hireDate" validate:"omitempty,datetime=2006-01-02,notfuture"`
}

// DepartmentResponse - ответ с данными подразделения
type DepartmentResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// EmployeeResponse - ответ с данными сотрудника
type EmployeeResponse struct {
	ID           int64     `json:"id"`
	LastName     string    `json:"lastName"`
	FirstName    string    `json:"firstName"`
	Email        string    `json:"email"`
	DepartmentID int64     `json:"departmentId"`
	Position     string    `json:"position"`
	HireDate     *string   `json:"hireDate"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}
