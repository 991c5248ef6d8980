package errs

import "errors"

// Kind is the stable, machine-readable classification of a failure.
type Kind string

const (
	KindNotFound          Kind = "NotFound"
	KindInvalidTransition Kind = "InvalidTransition"
	KindInsufficientStock Kind = "InsufficientStock"
	KindUnauthorized      Kind = "Unauthorized"
	KindValidation        Kind = "ValidationError"
	KindInternal          Kind = "Internal"
)

// KindOf classifies err. Errors outside the taxonomy are Internal.
func KindOf(err error) Kind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return KindNotFound
	case errors.Is(err, ErrInvalidTransition):
		return KindInvalidTransition
	case errors.Is(err, ErrInsufficientStock):
		return KindInsufficientStock
	case errors.Is(err, ErrUnauthorized):
		return KindUnauthorized
	case errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsOutOfRange):
		return KindValidation
	default:
		return KindInternal
	}
}
