package service

import (
	"context"
	"strings"
	"time"

	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
	"github.com/hr-record-api/internal/repository"
)

// EmployeeService определяет бизнес-логику работы с сотрудниками
type EmployeeService interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Insert(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error)
	Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type employeeService struct {
	empRepo repository.EmployeeRepository
}

// NewEmployeeService создаёт новый экземпляр сервиса
func NewEmployeeService(empRepo repository.EmployeeRepository) EmployeeService {
	return &employeeService{empRepo: empRepo}
}

func (s *employeeService) FindAll(ctx context.Context) ([]domain.Employee, error) {
	return s.empRepo.FindAll(ctx)
}

func (s *employeeService) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	return s.empRepo.FindByID(ctx, id)
}

func (s *employeeService) Insert(ctx context.Context, req *dto.EmployeeRequest) (*domain.Employee, error) {
	if err := validateEmployee(req, false); err != nil {
		return nil, err
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HireDate:     hireDate,
	}

	// Уникальность email обеспечивает ограничение хранилища,
	// предварительной проверки нет
	if err := s.empRepo.Create(ctx, emp); err != nil {
		return nil, err
	}

	return emp, nil
}

func (s *employeeService) Update(ctx context.Context, id int64, req *dto.EmployeeRequest) (*domain.Employee, error) {
	if err := validateEmployee(req, true); err != nil {
		return nil, err
	}

	hireDate, err := parseHireDate(req.HireDate)
	if err != nil {
		return nil, err
	}

	if _, err := s.empRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	emp := &domain.Employee{
		ID:           id,
		LastName:     req.LastName,
		FirstName:    req.FirstName,
		Email:        req.Email,
		DepartmentID: req.DepartmentID,
		Position:     req.Position,
		HireDate:     hireDate,
	}

	if _, err := s.empRepo.Update(ctx, emp); err != nil {
		return nil, err
	}

	return s.empRepo.FindByID(ctx, id)
}

func (s *employeeService) Delete(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.ErrInvalidID
	}

	if _, err := s.empRepo.FindByID(ctx, id); err != nil {
		return 0, err
	}

	return s.empRepo.Delete(ctx, id)
}

// validateEmployee проверяет обязательные поля. hireDate обязателен
// только при обновлении: при создании поле намеренно необязательное,
// эта асимметрия сохранена из исходного поведения.
func validateEmployee(req *dto.EmployeeRequest, requireHireDate bool) error {
	if strings.TrimSpace(req.LastName) == "" {
		return domain.NewValidationError("lastName", "last name must not be empty")
	}
	if strings.TrimSpace(req.FirstName) == "" {
		return domain.NewValidationError("firstName", "first name must not be empty")
	}
	if req.Email == "" {
		return domain.NewValidationError("email", "email must not be empty")
	}
	if req.Position == "" {
		return domain.NewValidationError("position", "position must not be empty")
	}
	if requireHireDate && req.HireDate == nil {
		return domain.NewValidationError("hireDate", "hire date must not be empty")
	}
	return nil
}

func parseHireDate(value *string) (*time.Time, error) {
	if value == nil {
		return nil, nil
	}

	hireDate, err := time.Parse(dto.HireDateLayout, *value)
	if err != nil {
		return nil, domain.NewValidationError("hireDate", "hireDate must be a date in YYYY-MM-DD format")
	}
	return &hireDate, nil
}
