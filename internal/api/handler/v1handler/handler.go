// Package v1handler implements the v1 REST endpoints. Handlers translate HTTP
// requests into pipeline and billing calls and map semantic errors onto HTTP
// status codes.
package v1handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"gemflush/internal/billing"
	"gemflush/internal/pipeline"
	"gemflush/pkg/logger"
	"gemflush/pkg/serrors"
	"gemflush/pkg/storage"

	"go.uber.org/zap"
)

const DefaultLimit = 20

// Deps groups the services the handlers depend on.
type Deps struct {
	// Pipeline owns business CRUD and fingerprint queries.
	Pipeline pipeline.Pipeline
	// Billing creates Stripe sessions and processes webhooks.
	Billing *billing.Service
	// Storage is used for team and user lookups.
	Storage storage.Storage
}

type Handler struct {
	deps Deps
}

func New(deps Deps) *Handler {
	return &Handler{deps: deps}
}

// errorResponse is the JSON body returned for every failed request.
type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if body != nil {
		_ = json.NewEncoder(w).Encode(body)
	}
}

// respondError maps a semantic error kind onto an HTTP status code and writes
// the error body. Internal errors are logged and their details hidden from
// the client.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError

	switch {
	case errors.Is(err, serrors.ErrBadRequest):
		status = http.StatusBadRequest
	case errors.Is(err, serrors.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, serrors.ErrPaymentRequired):
		status = http.StatusPaymentRequired
	case errors.Is(err, serrors.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, serrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, serrors.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, serrors.ErrRateLimited):
		status = http.StatusTooManyRequests
	case errors.Is(err, serrors.ErrUnavailable):
		status = http.StatusServiceUnavailable
	case errors.Is(err, serrors.ErrTimeout):
		status = http.StatusGatewayTimeout
	}

	message := err.Error()
	code := "INTERNAL"
	var serr *serrors.Error
	if errors.As(err, &serr) {
		code = serr.Kind().Error()
	}

	if status == http.StatusInternalServerError {
		logger.Error(r.Context(), "request failed", zap.Error(err))
		message = "internal server error"
	}

	respondJSON(w, status, errorResponse{Error: message, Code: code})
}

// decodeJSON parses the request body into dst, returning a bad-request error
// on malformed input.
func decodeJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return serrors.Wrap(serrors.ErrBadRequest, err, "invalid request body")
	}

	return nil
}
