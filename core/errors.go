package core

import "github.com/pkg/errors"

// FieldError pins a validation failure to the request field that caused it.
type FieldError struct {
	Field string
	Error string
}

// ValidationError carries every field failure found in a rejected payload,
// so the API can report them all at once instead of one per round trip.
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

// shutdown marks an error severe enough that the server should stop taking
// traffic rather than limp on.
type shutdown struct {
	message string
}

func NewShutdownError(msg string) error {
	return &shutdown{message: msg}
}

func (s shutdown) Error() string {
	return s.message
}

// IsShutdown reports whether err, or its cause, asks for a graceful stop.
func IsShutdown(err error) bool {
	_, ok := errors.Cause(err).(*shutdown)
	return ok
}
