package api

import (
	"context"
	"errors"
	"fmt"
)

// ErrNotFound indicates the resource does not exist (HTTP 404). For
// statistics this means "nothing published yet" and is not an error
// condition from the caller's point of view.
var ErrNotFound = errors.New("not found")

// ErrUnauthorized indicates the session token was rejected (HTTP 401
// or 403). The client invokes its unauthorized hook before returning
// it, so session teardown happens regardless of which component made
// the call.
var ErrUnauthorized = errors.New("unauthorized")

// StatusError reports an unexpected HTTP status.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.Code, e.URL)
}

// ErrInvalidPayload indicates a response body that failed schema
// validation or JSON decoding.
type ErrInvalidPayload struct {
	Name string
	Err  error
}

func (e *ErrInvalidPayload) Error() string {
	return fmt.Sprintf("invalid %s payload: %v", e.Name, e.Err)
}

func (e *ErrInvalidPayload) Unwrap() error { return e.Err }

// IsCanceled reports whether err stems from a superseded request.
// Cancellation is never surfaced to the user or logged as a failure.
func IsCanceled(err error) bool {
	return errors.Is(err, context.Canceled)
}
