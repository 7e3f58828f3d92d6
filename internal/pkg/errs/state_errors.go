package errs

import "fmt"

// StateError reports an operation attempted on an object whose current status does not allow it.
// Kind is one of ErrNotPending, ErrInvalidState or ErrAlreadyAssigned and is what errors.Is matches.
type StateError struct {
	Kind      error
	Object    string
	ID        any
	Status    string
	Operation string
}

func NewNotPendingError(object string, id any, status string) *StateError {
	return &StateError{Kind: ErrNotPending, Object: object, ID: id, Status: status, Operation: "claim"}
}

func NewInvalidStateError(object string, id any, status, operation string) *StateError {
	return &StateError{Kind: ErrInvalidState, Object: object, ID: id, Status: status, Operation: operation}
}

func NewAlreadyAssignedError(object string, id any, status string) *StateError {
	return &StateError{Kind: ErrAlreadyAssigned, Object: object, ID: id, Status: status, Operation: "claim"}
}

func (e *StateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s %v in status %s", e.Kind, e.Operation, e.Object, e.ID, e.Status)
}

func (e *StateError) Unwrap() error {
	return e.Kind
}

// ForbiddenError reports an actor operating on an object owned by someone else.
type ForbiddenError struct {
	Actor  string
	Object string
	ID     any
}

func NewForbiddenError(actor, object string, id any) *ForbiddenError {
	return &ForbiddenError{Actor: actor, Object: object, ID: id}
}

func (e *ForbiddenError) Error() string {
	return fmt.Sprintf("%s: %s is not allowed to act on %s %v", ErrForbidden, e.Actor, e.Object, e.ID)
}

func (e *ForbiddenError) Unwrap() error {
	return ErrForbidden
}
