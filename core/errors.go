package core

import "github.com/pkg/errors"

// FieldError is used to indicate an error with a specific request field.
type FieldError struct {
	Field string
	Error string
}

// ValidationError marks input the caller must fix. Err stays reachable through errors.As,
// but errors.Cause stops here so the input error is never mistaken for a lookup of a missing resource.
type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

// NewFieldValidationError reports err against a single field.
func NewFieldValidationError(field string, err error) error {
	return &ValidationError{Err: err, Fields: []FieldError{{Field: field, Error: err.Error()}}}
}

func (err *ValidationError) Error() string {
	if err.Err != nil {
		return err.Err.Error()
	}
	if len(err.Fields) > 0 {
		return err.Fields[0].Field + ": " + err.Fields[0].Error
	}
	return "invalid input"
}

func (err *ValidationError) Unwrap() error {
	return err.Err
}

type shutdown struct {
	message string
}

// NewShutdownError returns an error that makes the API server shut down gracefully once handled.
func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s *shutdown) Error() string {
	return s.message
}

func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
