package service_test

import (
	"context"
	"testing"

	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
	"github.com/hr-record-api/internal/repository"
	"github.com/hr-record-api/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEmployeeService() (service.EmployeeService, *repository.MemoryEmployeeRepository) {
	repo := repository.NewMemoryEmployeeRepository()
	return service.NewEmployeeService(repo), repo
}

func employeeRequest() dto.EmployeeRequest {
	hireDate := "2020-04-01"
	return dto.EmployeeRequest{
		LastName:     "Smith",
		FirstName:    "John",
		Email:        "john.smith@example.com",
		DepartmentID: 1,
		Position:     "Engineer",
		HireDate:     &hireDate,
	}
}

func TestEmployeeInsert_Success(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	emp, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)

	assert.Equal(t, int64(1), emp.ID)
	require.NotNil(t, emp.HireDate)
	assert.Equal(t, "2020-04-01", emp.HireDate.Format(dto.HireDateLayout))
}

func TestEmployeeInsert_HireDateOptional(t *testing.T) {
	svc, _ := newEmployeeService()

	// Сохранённая асимметрия: при создании дата найма не обязательна
	req := employeeRequest()
	req.HireDate = nil

	emp, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)
	assert.Nil(t, emp.HireDate)
}

func TestEmployeeInsert_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*dto.EmployeeRequest)
		field  string
	}{
		{"blank last name", func(r *dto.EmployeeRequest) { r.LastName = "  " }, "lastName"},
		{"blank first name", func(r *dto.EmployeeRequest) { r.FirstName = "" }, "firstName"},
		{"missing email", func(r *dto.EmployeeRequest) { r.Email = "" }, "email"},
		{"missing position", func(r *dto.EmployeeRequest) { r.Position = "" }, "position"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newEmployeeService()

			req := employeeRequest()
			tt.mutate(&req)

			_, err := svc.Insert(context.Background(), &req)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			all, _ := repo.FindAll(context.Background())
			assert.Empty(t, all)
		})
	}
}

func TestEmployeeInsert_MalformedHireDate(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	bad := "01-04-2020"
	req.HireDate = &bad

	_, err := svc.Insert(context.Background(), &req)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hireDate", verr.Field)
}

func TestEmployeeInsert_DuplicateEmail(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	_, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)

	second := employeeRequest()
	second.LastName = "Doe"

	_, err = svc.Insert(context.Background(), &second)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestEmployeeUpdate_RequiresHireDate(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	created, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)

	// Сохранённая асимметрия: при обновлении дата найма обязательна
	update := employeeRequest()
	update.HireDate = nil

	_, err = svc.Update(context.Background(), created.ID, &update)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "hireDate", verr.Field)
}

func TestEmployeeUpdate_ReturnsStoredRow(t *testing.T) {
	svc, repo := newEmployeeService()

	req := employeeRequest()
	created, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)

	update := employeeRequest()
	update.Position = "Manager"

	updated, err := svc.Update(context.Background(), created.ID, &update)
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, "Manager", updated.Position)
	assert.Equal(t, stored.UpdatedAt, updated.UpdatedAt)
}

func TestEmployeeUpdate_NotFound(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	_, err := svc.Update(context.Background(), 999, &req)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeUpdate_DuplicateEmail(t *testing.T) {
	svc, _ := newEmployeeService()

	first := employeeRequest()
	_, err := svc.Insert(context.Background(), &first)
	require.NoError(t, err)

	second := employeeRequest()
	second.Email = "jane.doe@example.com"
	created, err := svc.Insert(context.Background(), &second)
	require.NoError(t, err)

	update := employeeRequest() // email первого сотрудника
	_, err = svc.Update(context.Background(), created.ID, &update)
	assert.ErrorIs(t, err, domain.ErrDuplicateEmail)
}

func TestEmployeeDelete_NonPositiveID(t *testing.T) {
	svc, _ := newEmployeeService()

	for _, id := range []int64{0, -1} {
		_, err := svc.Delete(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	}
}

func TestEmployeeDelete_NotFound(t *testing.T) {
	svc, _ := newEmployeeService()

	_, err := svc.Delete(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrEmployeeNotFound)
}

func TestEmployeeDelete_Success(t *testing.T) {
	svc, _ := newEmployeeService()

	req := employeeRequest()
	created, err := svc.Insert(context.Background(), &req)
	require.NoError(t, err)

	affected, err := svc.Delete(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)
}
