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

// EmployeeHandler обслуживает REST-ресурс /api/employees
type EmployeeHandler struct {
	empService service.EmployeeService
	validator  *validator.Validate
	logger     *slog.Logger
}

// NewEmployeeHandler создаёт новый экземпляр хендлера
func NewEmployeeHandler(
	empService service.EmployeeService,
	validator *validator.Validate,
	logger *slog.Logger,
) *EmployeeHandler {
	return &EmployeeHandler{
		empService: empService,
		validator:  validator,
		logger:     logger,
	}
}

func (h *EmployeeHandler) FindAll(w http.ResponseWriter, r *http.Request) {
	employees, err := h.empService.FindAll(r.Context())
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	responses := make([]dto.EmployeeResponse, 0, len(employees))
	for i := range employees {
		responses = append(responses, toEmployeeResponse(&employees[i]))
	}

	respondJSON(w, h.logger, http.StatusOK, responses)
}

func (h *EmployeeHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		http.Error(w, dto.ValidationMessage(err), http.StatusBadRequest)
		return
	}

	emp, err := h.empService.Insert(r.Context(), &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/employees/%d", emp.ID))
	respondJSON(w, h.logger, http.StatusCreated, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	emp, err := h.empService.FindByID(r.Context(), id)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	var req dto.EmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(&req); err != nil {
		http.Error(w, dto.ValidationMessage(err), http.StatusBadRequest)
		return
	}

	emp, err := h.empService.Update(r.Context(), id, &req)
	if err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	respondJSON(w, h.logger, http.StatusOK, toEmployeeResponse(emp))
}

func (h *EmployeeHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := parseID(r)
	if err != nil {
		http.Error(w, "invalid employee id", http.StatusBadRequest)
		return
	}

	if _, err := h.empService.Delete(r.Context(), id); err != nil {
		respondServiceError(w, h.logger, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func toEmployeeResponse(emp *domain.Employee) dto.EmployeeResponse {
	resp := dto.EmployeeResponse{
		ID:           emp.ID,
		LastName:     emp.LastName,
		FirstName:    emp.FirstName,
		Email:        emp.Email,
		DepartmentID: emp.DepartmentID,
		Position:     emp.Position,
		CreatedAt:    emp.CreatedAt,
		UpdatedAt:    emp.UpdatedAt,
	}

	if emp.HireDate != nil {
		hireDate := emp.HireDate.Format(dto.HireDateLayout)
		resp.HireDate = &hireDate
	}

	return resp
}
