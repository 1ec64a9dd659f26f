package dto

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// HireDateLayout - формат даты найма в запросах и формах
const HireDateLayout = "2006-01-02"

// NewValidator создаёт валидатор с доменными правилами.
// Имена полей в сообщениях берутся из json-тегов, чтобы совпадать
// с wire-форматом и ключами ошибок формы.
func NewValidator() *validator.Validate {
	v := validator.New()

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})

	// notblank отклоняет строки из одних пробелов
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	// notfuture запрещает дату найма позже сегодняшней
	_ = v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.Parse(HireDateLayout, fl.Field().String())
		if err != nil {
			// формат проверяет правило datetime
			return true
		}
		return !d.After(time.Now())
	})

	return v
}

// FieldErrors преобразует ошибки валидатора в сообщения по полям
func FieldErrors(err error) map[string]string {
	fields := make(map[string]string)

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fields
	}

	for _, fe := range verrs {
		if _, ok := fields[fe.Field()]; !ok {
			fields[fe.Field()] = fieldMessage(fe)
		}
	}

	return fields
}

// ValidationMessage собирает сообщения об ошибках валидации в одну строку
func ValidationMessage(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return "validation error"
	}

	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fieldMessage(fe))
	}

	return strings.Join(parts, "; ")
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "notblank":
		return fe.Field() + " must not be blank"
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "email":
		return "invalid email address format"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "notfuture":
		return "hire date must not be in the future"
	default:
		return fe.Field() + " is invalid"
	}
}
