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

func newDepartmentService() (service.DepartmentService, *repository.MemoryDepartmentRepository) {
	repo := repository.NewMemoryDepartmentRepository()
	return service.NewDepartmentService(repo), repo
}

func TestDepartmentInsert_Success(t *testing.T) {
	svc, _ := newDepartmentService()

	dept, err := svc.Insert(context.Background(), &dto.DepartmentRequest{Name: "Finance", Location: "5F"})
	require.NoError(t, err)

	assert.Equal(t, int64(1), dept.ID)
	assert.Equal(t, "Finance", dept.Name)
	assert.Equal(t, "5F", dept.Location)
}

func TestDepartmentInsert_InvalidInput(t *testing.T) {
	tests := []struct {
		name  string
		req   dto.DepartmentRequest
		field string
	}{
		{"empty name", dto.DepartmentRequest{Name: "", Location: "5F"}, "name"},
		{"blank name", dto.DepartmentRequest{Name: "   ", Location: "5F"}, "name"},
		{"empty location", dto.DepartmentRequest{Name: "Finance", Location: ""}, "location"},
		{"blank location", dto.DepartmentRequest{Name: "Finance", Location: " "}, "location"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, repo := newDepartmentService()

			_, err := svc.Insert(context.Background(), &tt.req)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)

			// Строка не записана
			all, _ := repo.FindAll(context.Background())
			assert.Empty(t, all)
		})
	}
}

func TestDepartmentFindByID_NotFound(t *testing.T) {
	svc, _ := newDepartmentService()

	_, err := svc.FindByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentUpdate_ReturnsStoredRow(t *testing.T) {
	svc, repo := newDepartmentService()

	created, err := svc.Insert(context.Background(), &dto.DepartmentRequest{Name: "Finance", Location: "5F"})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), created.ID, &dto.DepartmentRequest{Name: "Accounting", Location: "6F"})
	require.NoError(t, err)

	stored, err := repo.FindByID(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, stored.Name, updated.Name)
	assert.Equal(t, stored.Location, updated.Location)
	assert.Equal(t, stored.UpdatedAt, updated.UpdatedAt)
}

func TestDepartmentUpdate_NotFound(t *testing.T) {
	svc, _ := newDepartmentService()

	_, err := svc.Update(context.Background(), 999, &dto.DepartmentRequest{Name: "Finance", Location: "5F"})
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentUpdate_InvalidInput_NoMutation(t *testing.T) {
	svc, repo := newDepartmentService()

	created, err := svc.Insert(context.Background(), &dto.DepartmentRequest{Name: "Finance", Location: "5F"})
	require.NoError(t, err)

	_, err = svc.Update(context.Background(), created.ID, &dto.DepartmentRequest{Name: "", Location: "10F"})

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)

	stored, _ := repo.FindByID(context.Background(), created.ID)
	assert.Equal(t, "Finance", stored.Name)
	assert.Equal(t, "5F", stored.Location)
}

func TestDepartmentDelete_Success(t *testing.T) {
	svc, _ := newDepartmentService()

	created, err := svc.Insert(context.Background(), &dto.DepartmentRequest{Name: "Finance", Location: "5F"})
	require.NoError(t, err)

	affected, err := svc.DeleteByID(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	_, err = svc.FindByID(context.Background(), created.ID)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}

func TestDepartmentDelete_NonPositiveID(t *testing.T) {
	svc, _ := newDepartmentService()

	for _, id := range []int64{0, -1, -42} {
		_, err := svc.DeleteByID(context.Background(), id)
		assert.ErrorIs(t, err, domain.ErrInvalidID)
	}
}

func TestDepartmentDelete_NotFound(t *testing.T) {
	svc, _ := newDepartmentService()

	_, err := svc.DeleteByID(context.Background(), 999)
	assert.ErrorIs(t, err, domain.ErrDepartmentNotFound)
}
