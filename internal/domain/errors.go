package domain

import (
	"fmt"
	"net/http"
)

// APIError is the error shape surfaced to callers. Status is the HTTP
// status the API layer maps it to.
type APIError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
	Details string `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewAPIError(code, message string, status int, details ...string) *APIError {
	err := &APIError{
		Code:    code,
		Message: message,
		Status:  status,
	}
	if len(details) > 0 {
		err.Details = details[0]
	}
	return err
}

var (
	ErrInvalidInput     = NewAPIError("INVALID_INPUT", "Invalid request data", http.StatusBadRequest)
	ErrUnauthenticated  = NewAPIError("UNAUTHENTICATED", "Authentication required", http.StatusUnauthorized)
	ErrNotFound         = NewAPIError("NOT_FOUND", "Resource not found", http.StatusNotFound)
	ErrQuotaExceeded    = NewAPIError("QUOTA_EXCEEDED", "Daily submission limit exceeded", http.StatusTooManyRequests)
	ErrDuplicateContent = NewAPIError("DUPLICATE_CONTENT", "Content already submitted for this POI today", http.StatusConflict)
	ErrInternal         = NewAPIError("INTERNAL_SERVER_ERROR", "Internal server error", http.StatusInternalServerError)
)

// Wrap converts err to an APIError, passing through values that already
// are one so sentinel comparisons at the boundary keep working.
func Wrap(err error, code, message string, status int) *APIError {
	if apiErr, ok := err.(*APIError); ok {
		return apiErr
	}
	return NewAPIError(code, message, status, err.Error())
}
