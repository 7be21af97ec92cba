package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/trip-collab/gw-trip-wallet/internal/apperrors"
	"github.com/trip-collab/gw-trip-wallet/internal/logger"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrorResponse is the error body every handler returns.
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Invalid request body
	Error string `json:"error"`
}

func statusFor(err error) int {
	switch apperrors.KindOf(err) {
	case apperrors.KindInvalidInput:
		return http.StatusBadRequest
	case apperrors.KindNotFound:
		return http.StatusNotFound
	case apperrors.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}

// writeError maps the error kind to an HTTP status. Internal details
// never leak to the caller.
func writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	msg := err.Error()
	if status == http.StatusInternalServerError {
		msg = "Internal server error"
	}
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// pathUUID parses one chi URL parameter as a UUID.
func pathUUID(r *http.Request, name string) (uuid.UUID, error) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperrors.Invalidf("%s must be a valid UUID", name)
	}
	return id, nil
}

func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		logger.Log.Errorw("failed to decode request body", "path", r.URL.Path, "error", err)
		return apperrors.Invalidf("invalid request body")
	}
	if err := validate.Struct(dst); err != nil {
		logger.Log.Warnw("request validation failed", "path", r.URL.Path, "error", err)
		return apperrors.Invalidf("invalid request body")
	}
	return nil
}
