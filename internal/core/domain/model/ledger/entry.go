// Package ledger holds the append-only history of client balance changes.
// An Entry is immutable once created; the client balance is the sum of its entries.
package ledger

import (
	"errors"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

var ErrEntryIsNotConstructed = errors.New("ledger entry must be created via NewEntry")

// Entry is a single signed change of a client's balance. Positive changes increase what the
// client owes.
type Entry struct {
	id             kernel.UUID
	clientID       kernel.UUID
	change         kernel.Money
	comment        string
	relatedOrderID *kernel.UUID
	createdAt      time.Time
	guard          guard.ConstructorGuard
}

// NewEntry builds an entry. A zero change is rejected; callers skip posting instead.
func NewEntry(
	id kernel.UUID,
	clientID kernel.UUID,
	change kernel.Money,
	comment string,
	relatedOrderID *kernel.UUID,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		comment:   comment,
		createdAt: createdAt.UTC(),
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setClientID(clientID),
		e.setChange(change),
		e.setRelatedOrderID(relatedOrderID),
	); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

func (e *Entry) ID() kernel.UUID {
	return e.id
}

func (e *Entry) ClientID() kernel.UUID {
	return e.clientID
}

// Change is the signed amount added to the client balance.
func (e *Entry) Change() kernel.Money {
	return e.change
}

func (e *Entry) Comment() string {
	return e.comment
}

// RelatedOrderID is the settled order, or nil for administrative entries.
func (e *Entry) RelatedOrderID() *kernel.UUID {
	return e.relatedOrderID
}

func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	e.clientID = clientID
	return nil
}

func (e *Entry) setChange(change kernel.Money) error {
	if change.IsZero() {
		return errs.NewValueIsInvalidErrorWithCause("change", errors.New("ledger entries must not be zero"))
	}
	e.change = change
	return nil
}

func (e *Entry) setRelatedOrderID(orderID *kernel.UUID) error {
	if orderID == nil {
		return nil
	}
	if err := orderID.Validate(); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("related order id", err)
	}
	id := *orderID
	e.relatedOrderID = &id
	return nil
}
