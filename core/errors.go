package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific struct field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// APIError is an application failure reported by the backend: the HTTP
// round trip succeeded but the status indicates failure. Message holds the
// server-supplied text when one could be parsed, or a per-operation
// fallback otherwise.
type APIError struct {
	Message    string
	StatusCode int
}

func NewAPIError(msg string, code int) error {
	return &APIError{Message: msg, StatusCode: code}
}

func (err APIError) Error() string {
	return err.Message
}

// IsAPIError reports whether err (or its cause) is an APIError and returns it.
func IsAPIError(err error) (*APIError, bool) {
	apiErr, ok := errors.Cause(err).(*APIError)
	return apiErr, ok
}
