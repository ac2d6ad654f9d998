package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"flightdesk-service/pkg/apierr"
	"flightdesk-service/pkg/logger"
)

// SuccessEnvelope is the JSON shape of every successful response.
type SuccessEnvelope struct {
	Status     string      `json:"status"`
	StatusCode int         `json:"statusCode"`
	Message    string      `json:"message"`
	Data       interface{} `json:"data,omitempty"`
}

// ErrorEnvelope is the JSON shape of every error response. Stack is
// only populated outside production.
type ErrorEnvelope struct {
	Status     string `json:"status"`
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Stack      string `json:"stack,omitempty"`
}

// handlerFunc is an HTTP handler that reports failures as errors
// instead of writing them itself.
type handlerFunc func(w http.ResponseWriter, r *http.Request) error

// Responder writes envelopes and funnels every failure through one
// translator.
type Responder struct {
	logger       logger.Logger
	includeStack bool
}

// NewResponder creates a responder. includeStack should be false in
// production deployments.
func NewResponder(logger logger.Logger, includeStack bool) *Responder {
	return &Responder{
		logger:       logger,
		includeStack: includeStack,
	}
}

// Handle adapts a handlerFunc into an http.HandlerFunc.
func (rp *Responder) Handle(h handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h(w, r); err != nil {
			rp.Error(w, err)
		}
	}
}

// Success writes a success envelope.
func (rp *Responder) Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	writeJSON(w, statusCode, SuccessEnvelope{
		Status:     "success",
		StatusCode: statusCode,
		Message:    message,
		Data:       data,
	})
}

// Error translates any failure into the error envelope. Unclassified
// errors become 500 server faults.
func (rp *Responder) Error(w http.ResponseWriter, err error) {
	var apiErr *apierr.Error
	if !errors.As(err, &apiErr) {
		apiErr = apierr.Internal("Internal Server Error", err)
	}

	rp.logger.Error("Request failed",
		"statusCode", apiErr.StatusCode,
		"message", apiErr.Message,
		"error", err)

	envelope := ErrorEnvelope{
		Status:     "error",
		StatusCode: apiErr.StatusCode,
		Message:    apiErr.Message,
	}
	if rp.includeStack {
		envelope.Stack = apiErr.Stack
	}

	writeJSON(w, apiErr.StatusCode, envelope)
}

// NotFoundHandler answers unmatched routes.
func (rp *Responder) NotFoundHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusNotFound, ErrorEnvelope{
		Status:     "error",
		StatusCode: http.StatusNotFound,
		Message:    "Route not found: " + r.URL.Path,
	})
}

func writeJSON(w http.ResponseWriter, statusCode int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(body)
}
