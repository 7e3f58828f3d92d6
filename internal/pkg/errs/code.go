package errs

import "errors"

// Code is the transport-neutral classification of an error.
type Code string

const (
	CodeNotFound        Code = "NOT_FOUND"
	CodeNotPending      Code = "NOT_PENDING"
	CodeInvalidState    Code = "INVALID_STATE"
	CodeAlreadyAssigned Code = "ALREADY_ASSIGNED"
	CodeForbidden       Code = "FORBIDDEN"
	CodeValidation      Code = "VALIDATION"
	CodeInternal        Code = "INTERNAL"
)

// CodeOf classifies err. Anything not produced by this package is CodeInternal.
func CodeOf(err error) Code {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrObjectNotFound):
		return CodeNotFound
	case errors.Is(err, ErrAlreadyAssigned):
		return CodeAlreadyAssigned
	case errors.Is(err, ErrNotPending):
		return CodeNotPending
	case errors.Is(err, ErrInvalidState):
		return CodeInvalidState
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrValueIsInvalid),
		errors.Is(err, ErrValueIsRequired),
		errors.Is(err, ErrValueIsOutOfRange):
		return CodeValidation
	default:
		return CodeInternal
	}
}
