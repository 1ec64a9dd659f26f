package handler

import (
	"log/slog"
	"net/http"

	"github.com/hr-record-api/internal/middleware"
	"github.com/hr-record-api/internal/web"
)

// Router настраивает маршруты приложения
type Router struct {
	mux         *http.ServeMux
	logger      *slog.Logger
	deptHandler *DepartmentHandler
	empHandler  *EmployeeHandler
	webHandler  *web.Handler
}

// NewRouter создаёт новый роутер
func NewRouter(
	deptHandler *DepartmentHandler,
	empHandler *EmployeeHandler,
	webHandler *web.Handler,
	logger *slog.Logger,
) *Router {
	return &Router{
		mux:         http.NewServeMux(),
		logger:      logger,
		deptHandler: deptHandler,
		empHandler:  empHandler,
		webHandler:  webHandler,
	}
}

// Setup настраивает все маршруты
func (r *Router) Setup() http.Handler {
	// REST API
	r.mux.HandleFunc("GET /api/departments", r.deptHandler.FindAll)
	r.mux.HandleFunc("POST /api/departments", r.deptHandler.Create)
	r.mux.HandleFunc("GET /api/departments/{id}", r.deptHandler.FindByID)
	r.mux.HandleFunc("PUT /api/departments/{id}", r.deptHandler.Update)
	r.mux.HandleFunc("DELETE /api/departments/{id}", r.deptHandler.Delete)

	r.mux.HandleFunc("GET /api/employees", r.empHandler.FindAll)
	r.mux.HandleFunc("POST /api/employees", r.empHandler.Create)
	r.mux.HandleFunc("GET /api/employees/{id}", r.empHandler.FindByID)
	r.mux.HandleFunc("PUT /api/employees/{id}", r.empHandler.Update)
	r.mux.HandleFunc("DELETE /api/employees/{id}", r.empHandler.Delete)

	// Web-интерфейс на формах
	r.webHandler.Register(r.mux)

	// Health check
	r.mux.HandleFunc("GET /health", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// Применяем middleware
	handler := middleware.Logger(r.logger)(r.mux)
	handler = middleware.Recoverer(r.logger)(handler)

	return handler
}
