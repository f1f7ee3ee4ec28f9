// internal/apperr/apperr.go
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error raised deliberately by a service so the
// transport layer can pick a status code without inspecting messages.
type Kind int

const (
	KindInternal Kind = iota
	KindNotFound
	KindBadRequest
	KindConflict
)

// Error carries a kind and a human-readable reason. The reason is what
// ends up in the response body, so it must not contain internal detail.
type Error struct {
	Kind   Kind
	Reason string
}

func (e *Error) Error() string {
	return e.Reason
}

// NotFound creates a not-found error with a formatted reason.
func NotFound(format string, args ...any) error {
	return &Error{Kind: KindNotFound, Reason: fmt.Sprintf(format, args...)}
}

// BadRequest creates a bad-request error with a formatted reason.
func BadRequest(format string, args ...any) error {
	return &Error{Kind: KindBadRequest, Reason: fmt.Sprintf(format, args...)}
}

// Conflict creates a conflict error with a formatted reason.
func Conflict(format string, args ...any) error {
	return &Error{Kind: KindConflict, Reason: fmt.Sprintf(format, args...)}
}

// KindOf returns the kind of err, or KindInternal when err was not
// raised through this package.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// Status maps an error to its HTTP status code.
func Status(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return http.StatusNotFound
	case KindBadRequest:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// IsNotFound reports whether err signals a missing record.
func IsNotFound(err error) bool {
	return KindOf(err) == KindNotFound
}
