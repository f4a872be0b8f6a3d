// Package errors defines the closed set of business error kinds raised by the
// user domain. Transport concerns such as status codes live in the delivery layer.
package errors

import (
	"accounts/internal/errors"
)

// Kind tags a domain failure. The set is closed: every domain error carries one
// of the constants below.
type Kind string

const (
	KindInvalidEmail      Kind = "INVALID_EMAIL"
	KindInvalidPassword   Kind = "INVALID_PASSWORD"
	KindInvalidRole       Kind = "INVALID_ROLE"
	KindEmailAlreadyInUse Kind = "EMAIL_ALREADY_IN_USE"
	KindUserNotFound      Kind = "USER_NOT_FOUND"
)

// Kinds lists every domain error kind.
var Kinds = []Kind{
	KindInvalidEmail,
	KindInvalidPassword,
	KindInvalidRole,
	KindEmailAlreadyInUse,
	KindUserNotFound,
}

// Error is a domain failure of a known kind.
type Error struct {
	kind    Kind
	message string
	details string
}

func newError(kind Kind, message string) *Error {
	return &Error{kind: kind, message: message}
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.details == "" {
		return e.message
	}

	return e.message + ": " + e.details
}

// Is matches any *Error of the same kind, so copies made by WithDetails still
// satisfy errors.Is against the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.kind == e.kind
}

func (e *Error) Kind() Kind {
	return e.kind
}

// Message returns the user-facing message without details.
func (e *Error) Message() string {
	return e.message
}

func (e *Error) Details() string {
	return e.details
}

// WithDetails returns a copy of the error carrying extra context.
func (e *Error) WithDetails(details string) *Error {
	return &Error{
		kind:    e.kind,
		message: e.message,
		details: details,
	}
}

// WrapMessage wraps the error with a stack trace and an additional message.
func (e *Error) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

var (
	ErrInvalidEmail = newError(
		KindInvalidEmail,
		"invalid email address",
	)

	ErrInvalidPassword = newError(
		KindInvalidPassword,
		"password must be at least 8 characters long and contain at least one letter and one number",
	)

	ErrInvalidRole = newError(
		KindInvalidRole,
		"role must be one of: student, teacher, admin",
	)

	ErrEmailAlreadyInUse = newError(
		KindEmailAlreadyInUse,
		"email is already in use",
	)

	ErrUserNotFound = newError(
		KindUserNotFound,
		"user not found",
	)
)

// KindOf extracts the kind of the first domain error in err's chain.
func KindOf(err error) (Kind, bool) {
	domainErr, ok := errors.AsType[*Error](err)
	if !ok {
		return "", false
	}

	return domainErr.kind, true
}

// As returns the first domain error in err's chain.
func As(err error) (*Error, bool) {
	return errors.AsType[*Error](err)
}
