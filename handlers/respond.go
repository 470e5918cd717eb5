package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"catdistribution/backend/catalog"
	"catdistribution/backend/models"
	"catdistribution/backend/services"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		zap.L().Warn("Failed to encode response", zap.Error(err))
	}
}

// writeError maps domain errors onto status codes
func writeError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, models.ErrInvalidCat),
		errors.Is(err, services.ErrInvalidOperationLog),
		errors.Is(err, catalog.ErrInvalidPageSize),
		errors.Is(err, catalog.ErrInvalidAgeRange),
		errors.Is(err, catalog.ErrInvalidSort):
		http.Error(w, err.Error(), http.StatusBadRequest)
	case errors.Is(err, services.ErrCatNotFound), errors.Is(err, services.ErrUserNotFound):
		http.Error(w, err.Error(), http.StatusNotFound)
	case errors.Is(err, services.ErrDuplicateName):
		http.Error(w, err.Error(), http.StatusConflict)
	default:
		zap.L().Error("Request failed", zap.Error(err))
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}
