package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/hr-record-api/internal/domain"
)

func parseID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func respondJSON(w http.ResponseWriter, logger *slog.Logger, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", slog.Any("error", err))
	}
}

// respondServiceError переводит типизированные ошибки сервисов в HTTP-ответы.
// Тело ошибок - plain text; детали внутренних ошибок наружу не выходят.
func respondServiceError(w http.ResponseWriter, logger *slog.Logger, err error) {
	var verr *domain.ValidationError

	switch {
	case errors.Is(err, domain.ErrDepartmentNotFound),
		errors.Is(err, domain.ErrEmployeeNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, domain.ErrInvalidID):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.As(err, &verr):
		http.Error(w, verr.Message, http.StatusBadRequest)
	case errors.Is(err, domain.ErrDuplicateEmail):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		logger.Error("internal error", slog.Any("error", err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
	}
}
