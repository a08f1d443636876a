package httpx

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "github.com/ChoneChone22/bambite-storefront/internal/errors"
)

type ErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details,omitempty"`
}

func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, message string, details ...apperrors.ValidationDetail) {
	WriteJSON(w, http.StatusBadRequest, ErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

// WriteServiceError maps the typed service errors onto status codes and a
// stable error envelope. Unknown errors become an opaque 500.
func WriteServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, ve.Message, ve.Details...)
		return
	}
	if _, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, http.StatusNotFound, ErrorResponse{Error: "NOT_FOUND", Message: err.Error()})
		return
	}
	if _, ok := apperrors.IsConflictError(err); ok {
		WriteJSON(w, http.StatusConflict, ErrorResponse{Error: "CONFLICT", Message: err.Error()})
		return
	}
	if _, ok := apperrors.IsForbiddenError(err); ok {
		WriteJSON(w, http.StatusForbidden, ErrorResponse{Error: "FORBIDDEN", Message: err.Error()})
		return
	}
	if _, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(w, http.StatusUnauthorized, ErrorResponse{Error: "UNAUTHORIZED", Message: err.Error()})
		return
	}
	if _, ok := apperrors.IsDeadlockError(err); ok {
		WriteJSON(w, http.StatusConflict, ErrorResponse{Error: "DEADLOCK", Message: err.Error()})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(w, http.StatusInternalServerError, ErrorResponse{
		Error:   "INTERNAL_ERROR",
		Message: "an unexpected error occurred",
	})
}
