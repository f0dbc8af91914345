package web

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/ukaji3/aqdash-go/internal/logging"
	"github.com/ukaji3/aqdash-go/pkg/aqdash"
)

// ErrorCode is a string type for consistent error codes.
type ErrorCode string

const (
	ErrorCodeInternalServerError  ErrorCode = "internal_server_error"
	ErrorCodeBadRequest           ErrorCode = "bad_request"
	ErrorCodeMissingColumn        ErrorCode = "missing_column"
	ErrorCodeInvalidFormat        ErrorCode = "invalid_format"
	ErrorCodeUnsupportedMediaType ErrorCode = "unsupported_media_type"
	ErrorCodeRequestTooLarge      ErrorCode = "request_too_large"
)

// APIError is the JSON body of an error response.
type APIError struct {
	Code       ErrorCode `json:"code"`
	Message    string    `json:"message"`
	Details    any       `json:"details,omitempty"`
	StatusCode int       `json:"-"`
}

func (e APIError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// NewAPIError is a constructor for APIError.
func NewAPIError(code ErrorCode, message string, details any, statusCode int) APIError {
	return APIError{
		Code:       code,
		Message:    message,
		Details:    details,
		StatusCode: statusCode,
	}
}

// toAPIError maps a build or upload error to its API error.
func toAPIError(err error) APIError {
	var (
		apiErr   APIError
		tooLarge *http.MaxBytesError
		missing  *aqdash.MissingColumnError
		parseErr *aqdash.ParseError
	)
	switch {
	case errors.As(err, &apiErr):
		return apiErr
	case errors.As(err, &tooLarge):
		return NewAPIError(ErrorCodeRequestTooLarge, fmt.Sprintf("upload exceeds %d bytes", tooLarge.Limit), nil, http.StatusRequestEntityTooLarge)
	case errors.As(err, &missing):
		return NewAPIError(ErrorCodeMissingColumn, missing.Error(), map[string]any{"column": missing.Column, "header": missing.Header}, http.StatusUnprocessableEntity)
	case errors.As(err, &parseErr):
		details := map[string]any{}
		if parseErr.Row > 0 {
			details["row"] = parseErr.Row
		}
		if parseErr.Column != "" {
			details["column"] = parseErr.Column
		}
		return NewAPIError(ErrorCodeInvalidFormat, parseErr.Error(), details, http.StatusBadRequest)
	case errors.Is(err, aqdash.ErrUnsupportedFormat):
		return NewAPIError(ErrorCodeUnsupportedMediaType, "upload a .csv or .xlsx file", nil, http.StatusUnsupportedMediaType)
	default:
		return NewAPIError(ErrorCodeInternalServerError, err.Error(), nil, http.StatusInternalServerError)
	}
}

// respondWithError sends a JSON error response.
func respondWithError(w http.ResponseWriter, apiErr APIError) {
	respondWithJSON(w, apiErr.StatusCode, apiErr)
}

// respondWithJSON sends a JSON response with the specified status code.
func respondWithJSON(w http.ResponseWriter, code int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if payload != nil {
		if err := json.NewEncoder(w).Encode(payload); err != nil {
			logging.Errorf("Failed to encode JSON response: %v", err)
		}
	}
}
