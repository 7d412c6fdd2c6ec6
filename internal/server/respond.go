package server

import (
	"encoding/json"
	"net/http"

	"github.com/graphlift/graphlift/pkg/errors"
)

// errorResponse is the JSON error envelope for all API errors.
type errorResponse struct {
	Error string      `json:"error"`
	Code  errors.Code `json:"code"`
}

// respondJSON writes v as compact JSON with the given status.
func (s *Server) respondJSON(w http.ResponseWriter, status int, v any) {
	s.writeJSON(w, status, v, false)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any, pretty bool) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		s.logger.Error("encode response", "error", err)
	}
}

// respondError maps an error to its HTTP status and writes the envelope.
func (s *Server) respondError(w http.ResponseWriter, err error) {
	code := errors.GetCode(err)
	if code == "" {
		code = errors.ErrCodeInternal
	}
	status := statusForCode(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "code", code, "error", err)
	}
	s.respondJSON(w, status, errorResponse{Error: errors.UserMessage(err), Code: code})
}

// statusForCode maps error codes to HTTP statuses. Unlisted codes are
// treated as internal failures.
func statusForCode(code errors.Code) int {
	switch code {
	case errors.ErrCodeUnsupportedFormat:
		return http.StatusUnprocessableEntity
	case errors.ErrCodeInvalidInput,
		errors.ErrCodeInvalidFormat,
		errors.ErrCodeInvalidGraph,
		errors.ErrCodeInvalidID:
		return http.StatusBadRequest
	case errors.ErrCodeNotFound,
		errors.ErrCodeGraphNotFound,
		errors.ErrCodeFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
