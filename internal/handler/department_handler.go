package handler

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/hr-record-api/internal/domain"
	"github.com/hr-record-api/internal/dto"
	"github.com/hr-record-api/internal/service"
)

// DepartmentHandler обслуживает REST-ресурс /api/departments
type DepartmentHandler struct {
	deptService service.DepartmentService
	validator   *validator.Validate
	logger      *slog.Logger
}

// NewDepartmentHandler создаёт новый экземпляр хендлера
func NewDepartmentHandler(
	deptService service.DepartmentService,
	validator *validator.Validate,
	logger *slog.Logger,
) *DepartmentHandler {
	return &DepartmentHandler{
		deptService: deptService,
		validator:   validator,
		logger:      logger,
	}
}

func (h *DepartmentHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	depts, err := h.deptService.FindAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	responses := make([]dto.DepartmentResponse, 0, len(depts))
	for i := range depts {
		responses = append(responses, toDepartmentResponse(&depts[i]))
	}

	respondJSON(w, h.logger, http.StatusOK, responses)
}

func (h *DepartmentHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		http.Error(w, dto.ValidationMessage(err), http.StatusBadRequest)
		return
	}

	dept, err := h.deptService.Insert(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/departments/%d", dept.ID))
	respondJSON(w, h.logger, http.StatusCreated, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid department id", http.StatusBadRequest)
		return
	}

	dept, err := h.deptService.FindByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid department id", http.StatusBadRequest)
		return
	}

	var req dto.DepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		http.Error(w, dto.ValidationMessage(err), http.StatusBadRequest)
		return
	}

	dept, err := h.deptService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toDepartmentResponse(dept))
}

func (h *DepartmentHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid department id", http.StatusBadRequest)
		return
	}

	if _, err := h.deptService.DeleteByID(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toDepartmentResponse(dept *domain.Department) dto.DepartmentResponse {
	return dto.DepartmentResponse{
		ID:        dept.ID,
		Name:      dept.Name,
		Location:  dept.Location,
		CreatedAt: dept.CreatedAt,
		UpdatedAt: dept.UpdatedAt,
	}
}
