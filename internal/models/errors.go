package models

import (
	"errors"
	"fmt"
)

// Kind classifies a domain error into a stable, machine-readable category.
type Kind string

const (
	KindConflict          Kind = "conflict"
	KindNotFound          Kind = "not_found"
	KindUnauthorized      Kind = "unauthorized"
	KindExpired           Kind = "expired"
	KindInvalidArgument   Kind = "invalid_argument"
	KindDependencyFailure Kind = "dependency_failure"
	KindUnexpected        Kind = "unexpected"
)

// APIError is the error type surfaced at the service boundary. Handlers map
// its Kind to an HTTP status; the wrapped cause is never exposed to callers.
type APIError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

func (e *APIError) Unwrap() error {
	return e.Err
}

// E builds an APIError without a cause.
func E(kind Kind, message string) *APIError {
	return &APIError{Kind: kind, Message: message}
}

// Wrap builds an APIError around an underlying cause.
func Wrap(kind Kind, message string, err error) *APIError {
	return &APIError{Kind: kind, Message: message, Err: err}
}

// KindOf returns the Kind of err, or KindUnexpected for anything that is not
// an APIError.
func KindOf(err error) Kind {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.Kind
	}
	return KindUnexpected
}
