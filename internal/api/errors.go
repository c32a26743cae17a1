package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"
)

const (
	CodeUnauthenticated = "UNAUTHENTICATED"
	CodeForbidden       = "FORBIDDEN"
	CodeNotFound        = "NOT_FOUND"
	CodeInvalidInput    = "INVALID_INPUT"
	CodeDuplicateSlug   = "DUPLICATE_SLUG"
	CodeInvalidAction   = "INVALID_ACTION"
)

const (
	ErrUnauthenticated = "authentication required"
	ErrForbidden       = "access denied"
	ErrNotFound        = "not found"
	ErrDuplicateSlug   = "slug already taken"
	ErrInvalidAction   = "action must be approve or reject"
)

// FieldError names one failing field of a validated payload. Validation is
// exhaustive, every failing field is reported in the same response.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type apiError struct {
	Error struct {
		Code    string       `json:"code"`
		Message string       `json:"message"`
		Fields  []FieldError `json:"fields,omitempty"`
	} `json:"error"`
}

func WriteApiError(w http.ResponseWriter, logger *zap.Logger, message string, code string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	e := apiError{}
	e.Error.Code = code
	e.Error.Message = message

	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		logger.Error("WriteApiError: failed to encoding response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, logger *zap.Logger, fields []FieldError) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)

	e := apiError{}
	e.Error.Code = CodeInvalidInput
	e.Error.Message = "validation failed"
	e.Error.Fields = fields

	err := json.NewEncoder(w).Encode(e)
	if err != nil {
		logger.Error("WriteValidationError: failed to encoding response", zap.Error(err))
	}
}
