package apperr

import "errors"

// Kind classifies a business failure raised at the service boundary.
type Kind int

const (
	// KindNotFound marks a lookup for an id that does not exist.
	KindNotFound Kind = iota
	// KindConflict marks a uniqueness-rule violation (duplicate email/name).
	KindConflict
)

// Error is a business failure with a user-facing message.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// NotFound builds a not-found error.
func NotFound(msg string) error {
	return &Error{Kind: KindNotFound, Message: msg}
}

// Conflict builds a uniqueness-conflict error.
func Conflict(msg string) error {
	return &Error{Kind: KindConflict, Message: msg}
}

// IsNotFound reports whether err is a not-found business failure.
func IsNotFound(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindNotFound
}

// IsConflict reports whether err is a uniqueness-conflict business failure.
func IsConflict(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == KindConflict
}
