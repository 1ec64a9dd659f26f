package repository

import (
	"context"
	"errors"

	"github.com/hr-record-api/internal/domain"
	"gorm.io/gorm"
)

// DepartmentRepository определяет интерфейс доступа к данным подразделений
type DepartmentRepository interface {
	FindAll(ctx context.Context) ([]domain.Department, error)
	FindByID(ctx context.Context, id int64) (*domain.Department, error)
	Create(ctx context.Context, dept *domain.Department) error
	Update(ctx context.Context, dept *domain.Department) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type departmentRepository struct {
	db *gorm.DB
}

// NewDepartmentRepository создаёт новый экземпляр репозитория
func NewDepartmentRepository(db *gorm.DB) DepartmentRepository {
	return &departmentRepository{db: db}
}

func (r *departmentRepository) FindAll(ctx context.Context) ([]domain.Department, error) {
	var depts []domain.Department
	err := r.db.WithContext(ctx).Order("id ASC").Find(&depts).Error
	return depts, err
}

func (r *departmentRepository) FindByID(ctx context.Context, id int64) (*domain.Department, error) {
	var dept domain.Department
	err := r.db.WithContext(ctx).First(&dept, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrDepartmentNotFound
		}
		return nil, err
	}
	return &dept, nil
}

func (r *departmentRepository) Create(ctx context.Context, dept *domain.Department) error {
	return r.db.WithContext(ctx).Create(dept).Error
}

func (r *departmentRepository) Update(ctx context.Context, dept *domain.Department) (int64, error) {
	// Полная замена изменяемых колонок; created_at не трогаем,
	// updated_at обновляет GORM через autoUpdateTime
	result := r.db.WithContext(ctx).
		Model(&domain.Department{ID: dept.ID}).
		Select("name", "location").
		Updates(dept)
	return result.RowsAffected, result.Error
}

func (r *departmentRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Department{}, id)
	return result.RowsAffected, result.Error
}
