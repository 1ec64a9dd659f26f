package service

import (
	"context"
	"strings"

	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
	"github.com/hr-record-api/internal/repository"
)

// DepartmentService определяет бизнес-логику работы с подразделениями
type DepartmentService interface {
	FindAll(ctx context.Context) ([]domain.Department, error)
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	Insert(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error)
	Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error)
	DeleteByID(ctx context.Context, id int64) (int64, error)
}

type departmentService struct {
	deptRepo repository.DepartmentRepository
}

// NewDepartmentService создаёт новый экземпляр сервиса
func NewDepartmentService(deptRepo repository.DepartmentRepository) DepartmentService {
	return &departmentService{deptRepo: deptRepo}
}

func (s *departmentService) FindAll(ctx context.Context) ([]domain.Department, error) {
	return s.deptRepo.FindAll(ctx)
}

func (s *departmentService) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	return s.deptRepo.FindByID(ctx, id)
}

func (s *departmentService) Insert(ctx context.Context, req *dto.DepartmentRequest) (*domain.Department, error) {
	if err := validateDepartment(req); err != nil {
		return nil, err
	}

	dept := &domain.Department{
		Name:     req.Name,
		Location: req.Location,
	}

	if err := s.deptRepo.Create(ctx, dept); err != nil {
		return nil, err
	}

	return dept, nil
}

func (s *departmentService) Update(ctx context.Context, id int64, req *dto.DepartmentRequest) (*domain.Department, error) {
	if err := validateDepartment(req); err != nil {
		return nil, err
	}

	// Проверяем существование до записи
	if _, err := s.deptRepo.FindByID(ctx, id); err != nil {
		return nil, err
	}

	// id берётся из пути, а не из тела запроса
	dept := &domain.Department{
		ID:       id,
		Name:     req.Name,
		Location: req.Location,
	}

	if _, err := s.deptRepo.Update(ctx, dept); err != nil {
		return nil, err
	}

	// Источник истины - строка в хранилище, а не входные данные
	return s.deptRepo.FindByID(ctx, id)
}

func (s *departmentService) DeleteByID(ctx context.Context, id int64) (int64, error) {
	if id <= 0 {
		return 0, domain.ErrInvalidID
	}

	if _, err := s.deptRepo.FindByID(ctx, id); err != nil {
		return 0, err
	}

	return s.deptRepo.Delete(ctx, id)
}

// validateDepartment повторяет проверку на пустоту после валидации
// на границе запроса
func validateDepartment(req *dto.DepartmentRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return domain.NewValidationError("name", "name must not be empty")
	}
	if strings.TrimSpace(req.Location) == "" {
		return domain.NewValidationError("location", "location must not be empty")
	}
	return nil
}
