package repository

import (
	"context"
	"errors"
	"strings"

	"github.com/hr-record-api/internal/domain"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// Имя ограничения уникальности email в схеме БД
const emailUniqueConstraint = "employees_email_key"

// EmployeeRepository определяет интерфейс доступа к данным сотрудников
type EmployeeRepository interface {
	FindAll(ctx context.Context) ([]domain.Employee, error)
	FindByID(ctx context.Context, id int64) (*domain.Employee, error)
	Create(ctx context.Context, emp *domain.Employee) error
	Update(ctx context.Context, emp *domain.Employee) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

type employeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository создаёт новый экземпляр репозитория
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepository{db: db}
}

func (r *employeeRepository) FindAll(ctx context.Context) ([]domain.Employee, error) {
	var employees []domain.Employee
	err := r.db.WithContext(ctx).Order("id ASC").Find(&employees).Error
	return employees, err
}

func (r *employeeRepository) FindByID(ctx context.Context, id int64) (*domain.Employee, error) {
	var emp domain.Employee
	err := r.db.WithContext(ctx).First(&emp, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrEmployeeNotFound
		}
		return nil, err
	}
	return &emp, nil
}

func (r *employeeRepository) Create(ctx context.Context, emp *domain.Employee) error {
	if err := r.db.WithContext(ctx).Create(emp).Error; err != nil {
		return translateEmployeeError(err)
	}
	return nil
}

func (r *employeeRepository) Update(ctx context.Context, emp *domain.Employee) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&domain.Employee{ID: emp.ID}).
		Select("last_name", "first_name", "email", "department_id", "position", "hire_date").
		Updates(emp)
	if result.Error != nil {
		return 0, translateEmployeeError(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *employeeRepository) Delete(ctx context.Context, id int64) (int64, error) {
	result := r.db.WithContext(ctx).Delete(&domain.Employee{}, id)
	return result.RowsAffected, result.Error
}

// translateEmployeeError распознаёт нарушение уникальности email.
// Уникальность не проверяется заранее - полагаемся на ограничение БД
// и переводим его нарушение в бизнес-ошибку.
func translateEmployeeError(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateEmail
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" &&
		strings.Contains(pgErr.ConstraintName, emailUniqueConstraint) {
		return domain.ErrDuplicateEmail
	}

	return err
}
