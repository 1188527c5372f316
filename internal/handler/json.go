package handler

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"workhours/internal/errors"
	"workhours/internal/validation"
)

type errorResponse struct {
	Error  string                  `json:"error"`
	Code   string                  `json:"code,omitempty"`
	Fields []validation.FieldError `json:"fields,omitempty"`
}

// writeJSON sends a JSON response with the given status code and data.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// readJSON decodes the request body into dst, rejecting unknown fields.
func readJSON(r *http.Request, dst any) error {
	dec := json.NewDecoder(http.MaxBytesReader(nil, r.Body, 1<<20))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return errors.NewInvalidInputError("body", nil, "request body must be valid JSON")
	}
	return nil
}

// writeError maps err to a status code and a JSON body. Internal failures
// are logged and reported without detail.
func writeError(w http.ResponseWriter, logger zerolog.Logger, err error) {
	if ve, ok := validation.AsValidationError(err); ok {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error:  ve.GetUserFriendlyMessage(),
			Code:   "VALIDATION_FAILED",
			Fields: ve.Errors,
		})
		return
	}

	if !errors.IsAppError(err) {
		logger.Error().Err(err).Msg("request failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An unexpected error occurred. Please try again."})
		return
	}
	if errors.ShouldLogError(err) {
		logger.Error().Err(err).Msg("request failed")
	}
	writeJSON(w, errors.GetHTTPStatus(err), errorResponse{
		Error: errors.GetUserMessage(err),
		Code:  errors.GetErrorCode(err),
	})
}
