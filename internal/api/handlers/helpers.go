package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"tourist-route-service/internal/domain"

	"go.uber.org/zap"
)

func writeJSON(w http.ResponseWriter, r *http.Request, logger *zap.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Warn("encode response failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}
}

// writeError maps an error to its APIError shape. Unexpected errors are
// logged with context and surfaced as a generic internal failure, which
// is safe for the caller to retry.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		apiErr = domain.ErrInternal
	}

	if apiErr.Status >= 500 {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err))
	}

	// Sentinels carry no request-specific details; no internals leak.
	writeJSON(w, r, logger, apiErr.Status, apiErr)
}
