package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
)

// employeeRow - строка списка сотрудников с присоединённым именем
// подразделения. Соединение выполняется на стороне чтения, сервисы
// о нём не знают.
type employeeRow struct {
	ID             int64
	LastName       string
	FirstName      string
	Email          string
	Position       string
	HireDate       string
	DepartmentName string
}

// employeeListPage - модель страницы списка сотрудников
type employeeListPage struct {
	Employees   []employeeRow
	NotFound    bool
	DeleteError bool
}

// employeeFormValues хранит сырые значения формы для повторного рендера
type employeeFormValues struct {
	LastName     string
	FirstName    string
	Email        string
	DepartmentID string
	Position     string
	HireDate     string
}

// employeeFormPage - модель страницы формы сотрудника. Departments
// заполняется при каждом рендере, включая повторные после ошибок.
type employeeFormPage struct {
	ID          int64
	Employee    employeeFormValues
	Departments []domain.Department
	Errors      map[string]string
	GlobalError string
}

func (h *Handler) ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.FindAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list employees", slog.Any("error", err))
	}

	deptNames := make(map[int64]string)
	for _, dept := range h.departments(r) {
		deptNames[dept.ID] = dept.Name
	}

	rows := make([]employeeRow, 0, len(employees))
	for _, emp := range employees {
		row := employeeRow{
			ID:             emp.ID,
			LastName:       emp.LastName,
			FirstName:      emp.FirstName,
			Email:          emp.Email,
			Position:       emp.Position,
			DepartmentName: "Unknown",
		}
		if emp.HireDate != nil {
			row.HireDate = emp.HireDate.Format(dto.HireDateLayout)
		}
		if name, ok := deptNames[emp.DepartmentID]; ok {
			row.DepartmentName = name
		}
		rows = append(rows, row)
	}

	h.render(w, "employee_list.html", employeeListPage{
		Employees:   rows,
		NotFound:    r.URL.Query().Has("not_found"),
		DeleteError: r.URL.Query().Has("delete_error"),
	})
}

func (h *Handler) NewEmployeeForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "employee_form.html", employeeFormPage{
		Departments: h.departments(r),
		Errors:      map[string]string{},
	})
}

func (h *Handler) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	values := readEmployeeForm(r)
	page := employeeFormPage{
		Employee:    values,
		Departments: h.departments(r),
		Errors:      map[string]string{},
	}

	req, errs := h.validateEmployeeForm(values)
	if len(errs) > 0 {
		page.Errors = errs
		h.render(w, "employee_form.html", page)
		return
	}

	if _, err := h.empService.Insert(r.Context(), &req); err != nil {
		h.attachEmployeeError(&page, err)
		h.render(w, "employee_form.html", page)
		return
	}

	http.Redirect(w, r, "/web/employees", http.StatusFound)
}

func (h *Handler) EditEmployeeForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/employees?not_found", http.StatusFound)
		return
	}

	emp, err := h.empService.FindByID(r.Context(), id)
	if err != nil {
		http.Redirect(w, r, "/web/employees?not_found", http.StatusFound)
		return
	}

	values := employeeFormValues{
		LastName:     emp.LastName,
		FirstName:    emp.FirstName,
		Email:        emp.Email,
		DepartmentID: strconv.FormatInt(emp.DepartmentID, 10),
		Position:     emp.Position,
	}
	if emp.HireDate != nil {
		values.HireDate = emp.HireDate.Format(dto.HireDateLayout)
	}

	h.render(w, "employee_form.html", employeeFormPage{
		ID:          emp.ID,
		Employee:    values,
		Departments: h.departments(r),
		Errors:      map[string]string{},
	})
}

func (h *Handler) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/employees?not_found", http.StatusFound)
		return
	}

	values := readEmployeeForm(r)
	page := employeeFormPage{
		ID:          id,
		Employee:    values,
		Departments: h.departments(r),
		Errors:      map[string]string{},
	}

	req, errs := h.validateEmployeeForm(values)
	if len(errs) > 0 {
		page.Errors = errs
		h.render(w, "employee_form.html", page)
		return
	}

	if _, err := h.empService.Update(r.Context(), id, &req); err != nil {
		h.attachEmployeeError(&page, err)
		h.render(w, "employee_form.html", page)
		return
	}

	http.Redirect(w, r, "/web/employees", http.StatusFound)
}

func (h *Handler) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/employees?delete_error", http.StatusFound)
		return
	}

	if _, err := h.empService.Delete(r.Context(), id); err != nil {
		http.Redirect(w, r, "/web/employees?delete_error", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/web/employees", http.StatusFound)
}

func readEmployeeForm(r *http.Request) employeeFormValues {
	return employeeFormValues{
		LastName:     r.FormValue("lastName"),
		FirstName:    r.FormValue("firstName"),
		Email:        r.FormValue("email"),
		DepartmentID: r.FormValue("departmentId"),
		Position:     r.FormValue("position"),
		HireDate:     r.FormValue("hireDate"),
	}
}

// validateEmployeeForm проверяет значения формы и собирает DTO.
// В отличие от REST-пути, форма требует дату найма и при создании,
// и при обновлении.
func (h *Handler) validateEmployeeForm(values employeeFormValues) (dto.EmployeeRequest, map[string]string) {
	errs := make(map[string]string)

	req := dto.EmployeeRequest{
		LastName:  values.LastName,
		FirstName: values.FirstName,
		Email:     values.Email,
		Position:  values.Position,
	}

	if values.DepartmentID != "" {
		deptID, err := strconv.ParseInt(values.DepartmentID, 10, 64)
		if err != nil {
			errs["departmentId"] = "department is invalid"
		} else {
			req.DepartmentID = deptID
		}
	}

	if values.HireDate == "" {
		errs["hireDate"] = "hireDate is required"
	} else {
		hireDate := values.HireDate
		req.HireDate = &hireDate
	}

	if err := h.validator.Struct(&req); err != nil {
		for field, message := range dto.FieldErrors(err) {
			if _, ok := errs[field]; !ok {
				errs[field] = message
			}
		}
	}

	return req, errs
}

func (h *Handler) attachEmployeeError(page *employeeFormPage, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.Is(err, domain.ErrDuplicateEmail):
		// Нарушение уникальности привязывается к полю email,
		// а не к форме целиком
		page.Errors["email"] = "this email address is already in use"
	case errors.As(err, &verr):
		page.Errors[verr.Field] = verr.Message
	case errors.Is(err, domain.ErrEmployeeNotFound):
		page.GlobalError = err.Error()
	default:
		h.logger.Error("employee form error", slog.Any("error", err))
		page.GlobalError = "unexpected error, please try again"
	}
}

// departments возвращает список подразделений для выпадающего списка;
// форма рендерится даже если список получить не удалось
func (h *Handler) departments(r *http.Request) []domain.Department {
	depts, err := h.deptService.FindAll(r.Context())
	if err != nil {
		h.logger.Error("failed to load departments", slog.Any("error", err))
		return nil
	}
	return depts
}
