// Package errs provides types and support related to web error handling.
package errs

import (
	"errors"
	"net/http"
)

// Trusted is used to pass an error during the request through the
// application with web specific context. The message of a trusted error
// is safe to show to the caller.
type Trusted struct {
	Err    error
	Status int
}

// NewTrusted wraps a provided error with an HTTP status code. This
// function should be used when handlers encounter expected errors.
func NewTrusted(err error, status int) error {
	return &Trusted{err, status}
}

// BadRequest wraps an expected error as a 400. The prefix, when not empty,
// is placed in front of the error's message.
func BadRequest(prefix string, err error) error {
	if prefix != "" {
		err = &prefixed{prefix: prefix, err: err}
	}
	return NewTrusted(err, http.StatusBadRequest)
}

// Error implements the error interface. It uses the default message of the
// wrapped error. This is what will be shown in the services' logs.
func (te *Trusted) Error() string {
	return te.Err.Error()
}

// Unwrap returns the wrapped error.
func (te *Trusted) Unwrap() error {
	return te.Err
}

// GetTrusted returns a copy of the Trusted pointer.
func GetTrusted(err error) *Trusted {
	var te *Trusted
	if !errors.As(err, &te) {
		return nil
	}
	return te
}

// =============================================================================

// prefixed adds context to an error message while keeping the error
// inspectable with errors.Is.
type prefixed struct {
	prefix string
	err    error
}

func (p *prefixed) Error() string {
	return p.prefix + ": " + p.err.Error()
}

func (p *prefixed) Unwrap() error {
	return p.err
}
