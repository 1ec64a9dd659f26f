package repository_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB открывает in-memory SQLite с общим кэшем,
// чтобы все соединения пула видели одну и ту же БД.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(&domain.Department{}, &domain.Employee{}))
	return db
}

func createDepartment(t *testing.T, db *gorm.DB) *domain.Department {
	t.Helper()

	repo := repository.NewDepartmentRepository(db)
	dept := &domain.Department{Name: "Finance", Location: "5F"}
	require.NoError(t, repo.Create(context.Background(), dept))
	return dept
}

func testEmployee(departmentID int64) *domain.Employee {
	hireDate := time.Date(2020, 4, 1, 0, 0, 0, 0, time.UTC)
	return &domain.Employee{
		LastName:     "Smith",
		FirstName:    "John",
		Email:        "john.smith@example.com",
		DepartmentID: departmentID,
		Position:     "Engineer",
		HireDate:     &hireDate,
	}
}

func TestDepartmentRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewDepartmentRepository(db)
	ctx := context.Background()

	dept := &domain.Department{Name: "Finance", Location: "5F"}
	require.NoError(t, repo.Create(ctx, dept))
	assert.NotZero(t, dept.ID)
	assert.False(t, dept.CreatedAt.IsZero())

	found, err := repo.FindByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Finance", found.Name)
	assert.Equal(t, "5F", found.Location)

	found.Name = "Accounting"
	affected, err := repo.Update(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	updated, err := repo.FindByID(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, "Accounting", updated.Name)
	assert.Equal(t, dept.CreatedAt.Unix(), updated.CreatedAt.Unix())

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	affected, err = repo.Delete(ctx, dept.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.FindByID(ctx, dept.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentRepository_UpdateMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewDepartmentRepository(db)

	affected, err := repo.Update(context.Background(), &domain.Department{ID: 999, Name: "Finance", Location: "5F"})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestDepartmentRepository_DeleteMissing(t *testing.T) {
	db := openTestDB(t)
	repo := repository.NewDepartmentRepository(db)

	affected, err := repo.Delete(context.Background(), 999)
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestEmployeeRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	dept := createDepartment(t, db)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	emp := testEmployee(dept.ID)
	require.NoError(t, repo.Create(ctx, emp))
	assert.NotZero(t, emp.ID)

	found, err := repo.FindByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "john.smith@example.com", found.Email)
	require.NotNil(t, found.HireDate)
	assert.Equal(t, "2020-04-01", found.HireDate.Format("2006-01-02"))

	found.Position = "Manager"
	found.HireDate = nil
	affected, err := repo.Update(ctx, found)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	updated, err := repo.FindByID(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, "Manager", updated.Position)
	assert.Nil(t, updated.HireDate)

	affected, err = repo.Delete(ctx, emp.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = repo.FindByID(ctx, emp.ID)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeRepository_DuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	dept := createDepartment(t, db)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testEmployee(dept.ID)))

	second := testEmployee(dept.ID)
	second.LastName = "Doe"
	err := repo.Create(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestEmployeeRepository_UpdateDuplicateEmail(t *testing.T) {
	db := openTestDB(t)
	dept := createDepartment(t, db)
	repo := repository.NewEmployeeRepository(db)
	ctx := context.Background()

	first := testEmployee(dept.ID)
	require.NoError(t, repo.Create(ctx, first))

	second := testEmployee(dept.ID)
	second.Email = "jane.doe@example.com"
	require.NoError(t, repo.Create(ctx, second))

	second.Email = first.Email
	_, err := repo.Update(ctx, second)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

// Проверяем перевод ошибки PostgreSQL по имени ограничения -
// SQLite-тесты покрывают только путь gorm.ErrDuplicatedKey.
func TestEmployeeRepository_PostgresUniqueViolation(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	mock.ExpectQuery(`INSERT INTO "employees"`).WillReturnError(&pgconn.PgError{
		Code:           "23505",
		ConstraintName: "employees_email_key",
	})

	repo := repository.NewEmployeeRepository(db)
	err = repo.Create(context.Background(), testEmployee(1))
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)

	require.NoError(t, mock.ExpectationsWereMet())
}
