package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"skyward/qualmatrix/internal/constants"
	"skyward/qualmatrix/internal/db/repositories"
	"skyward/qualmatrix/internal/models/dtos"
	"skyward/qualmatrix/internal/services"
)

func respondWithSuccess[T any](w http.ResponseWriter, statusCode int, data *T) {
	resp := dtos.APIResponse[T]{
		Status:    "success",
		Timestamp: time.Now().UTC(),
		Data:      data,
	}

	w.Header().Set("Content-Type", "application/json")

	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(resp)
}

func respondWithError(w http.ResponseWriter, statusCode int, message string) {
	resp := dtos.APIResponse[any]{
		Status:    "error",
		Timestamp: time.Now().UTC(),
		Error:     message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	_ = json.NewEncoder(w).Encode(resp)
}

// respondServiceError maps service and repository errors to HTTP responses.
func respondServiceError(w http.ResponseWriter, err error) {
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		respondWithError(w, mapErrorCodeToHTTPStatus(svcErr.Code), svcErr.Message)
		return
	}

	if errors.Is(err, repositories.ErrNotFound) {
		respondWithError(w, http.StatusNotFound, "not found")
		return
	}
	if errors.Is(err, repositories.ErrDuplicate) {
		respondWithError(w, http.StatusConflict, constants.GetErrorMessage(constants.ErrCodeDuplicateName))
		return
	}

	respondWithError(w, http.StatusInternalServerError, "An unexpected error occurred")
}

// mapErrorCodeToHTTPStatus maps service error codes to HTTP status codes
func mapErrorCodeToHTTPStatus(errorCode string) int {
	switch errorCode {
	// 400 Bad Request - Client errors (caller action required)
	case constants.ErrCodeBatchTooLarge:
		return http.StatusBadRequest
	case constants.ErrCodeBadRequest:
		return http.StatusBadRequest
	case constants.ErrCodeInvalidStatus:
		return http.StatusBadRequest

	// 401 Unauthorized - Authentication failed
	case constants.ErrCodeUnauthorized:
		return http.StatusUnauthorized

	// 403 Forbidden - Authenticated but no permission
	case constants.ErrCodeForbidden:
		return http.StatusForbidden
	case constants.ErrCodeWrongWing:
		return http.StatusForbidden

	// 404 Not Found - Resource doesn't exist
	case constants.ErrCodeWingNotFound:
		return http.StatusNotFound
	case constants.ErrCodePilotNotFound:
		return http.StatusNotFound
	case constants.ErrCodeSkillNotFound:
		return http.StatusNotFound
	case constants.ErrCodeQualificationNotFound:
		return http.StatusNotFound

	// 409 Conflict - Uniqueness violation outside the upsert paths
	case constants.ErrCodeDuplicateName:
		return http.StatusConflict

	// 500 Internal Server Error - Infrastructure faults (default).
	// Fully retryable: the failed transaction committed nothing.
	case constants.ErrCodeStoreFailure:
		return http.StatusInternalServerError

	default:
		return http.StatusInternalServerError
	}
}
