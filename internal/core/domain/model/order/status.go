package order

import (
	"fmt"

	"waterdelivery/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Assigned ──> Delivering ──> Done
//	   │
//	   └──> Canceled
//
// Done and Canceled are terminal. There are no backward transitions.
type Status int

const (
	// Unknown catches uninitialized values.
	Unknown Status = iota

	// Pending orders wait for a courier to claim them.
	Pending

	// Assigned orders were claimed by exactly one courier.
	Assigned

	// Delivering means the assigned courier is on the way.
	Delivering

	// Done orders are delivered and settled.
	Done

	// Canceled orders were withdrawn while pending.
	Canceled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "unknown",
		Pending:    "pending",
		Assigned:   "assigned",
		Delivering: "delivering",
		Done:       "done",
		Canceled:   "canceled",
	}
}

// ParseStatus maps a persisted status name back to a Status.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s && status != Unknown {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. ones read from storage.
func (s Status) Validate() error {
	if s <= Unknown || s > Canceled {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name used in storage and API responses.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// HasCourier reports whether orders in this status must carry an assignee.
func (s Status) HasCourier() bool {
	return s == Assigned || s == Delivering || s == Done
}

// IsTerminal reports whether no further transitions are possible.
func (s Status) IsTerminal() bool {
	return s == Done || s == Canceled
}

// ValidateCanHaveCourier checks that the presence of an assignee matches the status.
func (s Status) ValidateCanHaveCourier(courier bool) error {
	if courier && !s.HasCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a courier", s),
		)
	}

	if !courier && s.HasCourier() {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no courier", s),
		)
	}

	return nil
}
