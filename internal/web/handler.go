package web

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-record-api/internal/service"
)

//go:embed templates
var templatesFS embed.FS

// Handler обслуживает HTML-формы управления подразделениями и сотрудниками
type Handler struct {
	deptService service.DepartmentService
	empService  service.EmployeeService
	validator   *validator.Validate
	templates   *template.Template
	logger      *slog.Logger
}

// NewHandler создаёт новый web-хендлер с разобранными шаблонами
func NewHandler(
	deptService service.DepartmentService,
	empService service.EmployeeService,
	validator *validator.Validate,
	logger *slog.Logger,
) *Handler {
	return &Handler{
		deptService: deptService,
		empService:  empService,
		validator:   validator,
		templates:   template.Must(template.ParseFS(templatesFS, "templates/*.html")),
		logger:      logger,
	}
}

// Register регистрирует маршруты web-интерфейса на общем мультиплексоре
func (h *Handler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /{$}", h.Home)
	mux.HandleFunc("GET /web", h.Home)

	mux.HandleFunc("GET /web/departments", h.ListDepartments)
	mux.HandleFunc("GET /web/departments/new", h.NewDepartmentForm)
	mux.HandleFunc("POST /web/departments", h.CreateDepartment)
	mux.HandleFunc("GET /web/departments/edit/{id}", h.EditDepartmentForm)
	mux.HandleFunc("POST /web/departments/update/{id}", h.UpdateDepartment)
	mux.HandleFunc("POST /web/departments/delete/{id}", h.DeleteDepartment)

	mux.HandleFunc("GET /web/employees", h.ListEmployees)
	mux.HandleFunc("GET /web/employees/new", h.NewEmployeeForm)
	mux.HandleFunc("POST /web/employees", h.CreateEmployee)
	mux.HandleFunc("GET /web/employees/edit/{id}", h.EditEmployeeForm)
	mux.HandleFunc("POST /web/employees/update/{id}", h.UpdateEmployee)
	mux.HandleFunc("POST /web/employees/delete/{id}", h.DeleteEmployee)
}

func (h *Handler) Home(w http.ResponseWriter, r *http.Request) {
	h.render(w, "home.html", nil)
}

// render выводит шаблон; ошибки валидации формы всегда рендерятся
// со статусом 200
func (h *Handler) render(w http.ResponseWriter, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, data); err != nil {
		h.logger.Error("failed to render template",
			slog.String("template", name),
			slog.Any("error", err),
		)
	}
}
