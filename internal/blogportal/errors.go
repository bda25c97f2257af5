package blogportal

import (
	"errors"

	"github.com/mdobak/go-xerrors"
)

// Error kinds. Callers match them with errors.Is.
var (
	ErrValidation         = xerrors.Message("validation failed")
	ErrUnauthenticated    = xerrors.Message("authentication required")
	ErrInvalidCredentials = xerrors.Message("invalid credentials")
	ErrForbidden          = xerrors.Message("permission denied")
	ErrNotFound           = xerrors.Message("not found")
	ErrParentNotFound     = xerrors.Message("parent not found")
	ErrConflict           = xerrors.Message("already exists")
	ErrDelivery           = xerrors.Message("delivery failed")
)

// Error is a kind with a message safe to show to API clients.
type Error struct {
	Kind    error
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Message + ": " + e.cause.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() []error {
	if e.cause != nil {
		return []error{e.Kind, e.cause}
	}
	return []error{e.Kind}
}

func newError(kind error, message string) error {
	return &Error{Kind: kind, Message: message}
}

func wrapError(kind error, message string, cause error) error {
	return &Error{Kind: kind, Message: message, cause: cause}
}

func validationError(message string) error {
	return newError(ErrValidation, message)
}

// PublicMessage returns the client-facing message of err, if any.
func PublicMessage(err error) (string, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Message, true
	}
	return "", false
}
