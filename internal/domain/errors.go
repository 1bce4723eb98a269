package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for errors.Is() checking.
var (
	ErrNotFound        = errors.New("not found")
	ErrValidation      = errors.New("validation error")
	ErrConflict        = errors.New("conflict")
	ErrForbidden       = errors.New("forbidden")
	ErrUnavailable     = errors.New("unavailable")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrSessionNotFound = errors.New("session not found")
)

// FallbackMessage is shown to the user when a failure carries no
// backend-provided message (transport errors, malformed responses).
const FallbackMessage = "something went wrong, please try again"

// BackendError carries a backend-declared error verbatim: the
// human-readable message from the response body and the HTTP status it
// arrived with. It unwraps to the sentinel matching its status so that
// errors.Is checks keep working across the translation boundary.
type BackendError struct {
	Message string
	Status  int
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("backend error (status %d): %s", e.Status, e.Message)
}

func (e *BackendError) Unwrap() error {
	switch {
	case e.Status == 404:
		return ErrNotFound
	case e.Status == 400 || e.Status == 422:
		return ErrValidation
	case e.Status == 401 || e.Status == 403:
		return ErrForbidden
	case e.Status == 409:
		return ErrConflict
	case e.Status >= 500:
		return ErrUnavailable
	default:
		return nil
	}
}

// UserMessage extracts the message to surface to the user for a failed
// call: the backend's message verbatim when one was provided, the
// generic fallback otherwise. A nil error yields an empty string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var be *BackendError
	if errors.As(err, &be) && be.Message != "" {
		return be.Message
	}
	return FallbackMessage
}

// ValidationError provides programmatic access to field-level validation failures.
// Use errors.Is(err, ErrValidation) for simple checks, or errors.As(err, &verr) to
// access verr.Fields for per-field error details.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for field, msg := range e.Fields {
		parts = append(parts, field+": "+msg)
	}
	return fmt.Sprintf("%s: %s", ErrValidation.Error(), strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
