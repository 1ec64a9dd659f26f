package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hr-record-api/internal/domain"
)

// MemoryDepartmentRepository - реализация DepartmentRepository в памяти.
// Используется в тестах вместо реальной БД.
type MemoryDepartmentRepository struct {
	mu     sync.Mutex
	depts  map[int64]domain.Department
	nextID int64
}

// NewMemoryDepartmentRepository создаёт пустое хранилище подразделений
func NewMemoryDepartmentRepository() *MemoryDepartmentRepository {
	return &MemoryDepartmentRepository{
		depts:  make(map[int64]domain.Department),
		nextID: 1,
	}
}

func (m *MemoryDepartmentRepository) FindAll(_ context.Context) ([]domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]domain.Department, 0, len(m.depts))
	for _, dept := range m.depts {
		result = append(result, dept)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemoryDepartmentRepository) FindByID(_ context.Context, id int64) (*domain.Department, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if dept, ok := m.depts[id]; ok {
		return &dept, nil
	}
	return nil, domain.ErrDepartmentNotFound
}

func (m *MemoryDepartmentRepository) Create(_ context.Context, dept *domain.Department) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	dept.ID = m.nextID
	dept.CreatedAt = now
	dept.UpdatedAt = now
	m.nextID++
	m.depts[dept.ID] = *dept
	return nil
}

func (m *MemoryDepartmentRepository) Update(_ context.Context, dept *domain.Department) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.depts[dept.ID]
	if !ok {
		return 0, nil
	}

	stored.Name = dept.Name
	stored.Location = dept.Location
	stored.UpdatedAt = time.Now()
	m.depts[dept.ID] = stored
	return 1, nil
}

func (m *MemoryDepartmentRepository) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.depts[id]; !ok {
		return 0, nil
	}
	delete(m.depts, id)
	return 1, nil
}

// MemoryEmployeeRepository - реализация EmployeeRepository в памяти.
// Уникальность email соблюдается так же, как ограничением в БД.
type MemoryEmployeeRepository struct {
	mu        sync.Mutex
	employees map[int64]domain.Employee
	nextID    int64
}

// NewMemoryEmployeeRepository создаёт пустое хранилище сотрудников
func NewMemoryEmployeeRepository() *MemoryEmployeeRepository {
	return &MemoryEmployeeRepository{
		employees: make(map[int64]domain.Employee),
		nextID:    1,
	}
}

func (m *MemoryEmployeeRepository) FindAll(_ context.Context) ([]domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	result := make([]domain.Employee, 0, len(m.employees))
	for _, emp := range m.employees {
		result = append(result, emp)
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func (m *MemoryEmployeeRepository) FindByID(_ context.Context, id int64) (*domain.Employee, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if emp, ok := m.employees[id]; ok {
		return &emp, nil
	}
	return nil, domain.ErrEmployeeNotFound
}

func (m *MemoryEmployeeRepository) Create(_ context.Context, emp *domain.Employee) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.emailTaken(emp.Email, 0) {
		return domain.ErrDuplicateEmail
	}

	now := time.Now()
	emp.ID = m.nextID
	emp.CreatedAt = now
	emp.UpdatedAt = now
	m.nextID++
	m.employees[emp.ID] = *emp
	return nil
}

func (m *MemoryEmployeeRepository) Update(_ context.Context, emp *domain.Employee) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored, ok := m.employees[emp.ID]
	if !ok {
		return 0, nil
	}

	if m.emailTaken(emp.Email, emp.ID) {
		return 0, domain.ErrDuplicateEmail
	}

	stored.LastName = emp.LastName
	stored.FirstName = emp.FirstName
	stored.Email = emp.Email
	stored.DepartmentID = emp.DepartmentID
	stored.Position = emp.Position
	stored.HireDate = emp.HireDate
	stored.UpdatedAt = time.Now()
	m.employees[emp.ID] = stored
	return 1, nil
}

func (m *MemoryEmployeeRepository) Delete(_ context.Context, id int64) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, ok := m.employees[id]; !ok {
		return 0, nil
	}
	delete(m.employees, id)
	return 1, nil
}

func (m *MemoryEmployeeRepository) emailTaken(email string, excludeID int64) bool {
	for _, emp := range m.employees {
		if emp.Email == email && emp.ID != excludeID {
			return true
		}
	}
	return false
}
