package web

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
)

// departmentListPage - модель страницы списка подразделений
type departmentListPage struct {
	Departments []domain.Department
	NotFound    bool
	DeleteError bool
}

// departmentFormPage - модель страницы формы подразделения.
// ID равен нулю для формы создания.
type departmentFormPage struct {
	ID          int64
	Department  dto.DepartmentRequest
	Errors      map[string]string
	GlobalError string
}

func (h *Handler) ListDepartments(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.FindAll(r.Context())
	if err != nil {
		h.logger.Error("failed to list departments", slog.Any("error", err))
	}

	h.render(w, "department_list.html", departmentListPage{
		Departments: depts,
		NotFound:    r.URL.Query().Has("not_found"),
		DeleteError: r.URL.Query().Has("delete_error"),
	})
}

func (h *Handler) NewDepartmentForm(w http.ResponseWriter, r *http.Request) {
	h.render(w, "department_form.html", departmentFormPage{
		Errors: map[string]string{},
	})
}

func (h *Handler) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	form := dto.DepartmentRequest{
		Name:     r.FormValue("name"),
		Location: r.FormValue("location"),
	}
	page := departmentFormPage{Department: form, Errors: map[string]string{}}

	if err := h.validator.Struct(&form); err != nil {
		page.Errors = dto.FieldErrors(err)
		h.render(w, "department_form.html", page)
		return
	}

	if _, err := h.deptService.Insert(r.Context(), &form); err != nil {
		h.attachDepartmentError(&page, err)
		h.render(w, "department_form.html", page)
		return
	}

	http.Redirect(w, r, "/web/departments", http.StatusFound)
}

func (h *Handler) EditDepartmentForm(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/departments?not_found", http.StatusFound)
		return
	}

	dept, err := h.deptService.FindByID(r.Context(), id)
	if err != nil {
		// Отсутствующий id возвращает на список с маркером, а не на страницу ошибки
		http.Redirect(w, r, "/web/departments?not_found", http.StatusFound)
		return
	}

	h.render(w, "department_form.html", departmentFormPage{
		ID: dept.ID,
		Department: dto.DepartmentRequest{
			Name:     dept.Name,
			Location: dept.Location,
		},
		Errors: map[string]string{},
	})
}

func (h *Handler) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/departments?not_found", http.StatusFound)
		return
	}

	form := dto.DepartmentRequest{
		Name:     r.FormValue("name"),
		Location: r.FormValue("location"),
	}
	page := departmentFormPage{ID: id, Department: form, Errors: map[string]string{}}

	if err := h.validator.Struct(&form); err != nil {
		page.Errors = dto.FieldErrors(err)
		h.render(w, "department_form.html", page)
		return
	}

	if _, err := h.deptService.Update(r.Context(), id, &form); err != nil {
		h.attachDepartmentError(&page, err)
		h.render(w, "department_form.html", page)
		return
	}

	http.Redirect(w, r, "/web/departments", http.StatusFound)
}

func (h *Handler) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Redirect(w, r, "/web/departments?delete_error", http.StatusFound)
		return
	}

	if _, err := h.deptService.DeleteByID(r.Context(), id); err != nil {
		// Сбой удаления никогда не рендерит страницу ошибки
		http.Redirect(w, r, "/web/departments?delete_error", http.StatusFound)
		return
	}

	http.Redirect(w, r, "/web/departments", http.StatusFound)
}

func (h *Handler) attachDepartmentError(page *departmentFormPage, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		page.Errors[verr.Field] = verr.Message
	case errors.Is(err, domain.ErrDepartmentNotFound):
		page.GlobalError = err.Error()
	default:
		h.logger.Error("department form error", slog.Any("error", err))
		page.GlobalError = "unexpected error, please try again"
	}
}
