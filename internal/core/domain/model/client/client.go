// Package client provides the Client aggregate: the owner of orders and of a debt balance
// that only changes through ledger entries.
package client

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrPhoneIsRequired        = errs.NewValueIsRequiredError("phone")
	ErrNameIsRequired         = errs.NewValueIsRequiredError("name")
	ErrClientIsNotConstructed = errors.New("Client must be created via NewClient or RestoreClient constructor")
)

// Client is a customer receiving deliveries.
//
// The balance is positive when the client owes money. It is changed only by ApplyLedgerEntry,
// so it always equals the sum of the client's ledger entries.
type Client struct {
	id          kernel.UUID
	phone       string
	name        string
	location    *kernel.GeoPoint
	balanceDebt kernel.Money
	lastOrderAt *time.Time
	guard       guard.ConstructorGuard
}

// NewClient registers a client with a zero balance. location may be nil.
func NewClient(id kernel.UUID, phone, name string, location *kernel.GeoPoint) (*Client, error) {
	c := &Client{
		balanceDebt: kernel.ZeroMoney(),
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setPhone(phone),
		c.setName(name),
		c.setLocation(location),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreClient rebuilds a client from storage.
func RestoreClient(
	id kernel.UUID,
	phone, name string,
	location *kernel.GeoPoint,
	balanceDebt kernel.Money,
	lastOrderAt *time.Time,
) (*Client, error) {
	c, err := NewClient(id, phone, name, location)
	if err != nil {
		return nil, err
	}

	c.balanceDebt = balanceDebt
	c.lastOrderAt = lastOrderAt
	return c, nil
}

func (c *Client) Validate() error {
	if c == nil {
		return ErrClientIsNotConstructed
	}
	return c.guard.Validate(ErrClientIsNotConstructed)
}

func (c *Client) ID() kernel.UUID {
	return c.id
}

func (c *Client) Phone() string {
	return c.phone
}

func (c *Client) Name() string {
	return c.name
}

// Location is the last known delivery address, or nil.
func (c *Client) Location() *kernel.GeoPoint {
	return c.location
}

func (c *Client) BalanceDebt() kernel.Money {
	return c.balanceDebt
}

func (c *Client) LastOrderAt() *time.Time {
	return c.lastOrderAt
}

// ApplyLedgerEntry adds the entry's change to the balance. The entry must belong to this client.
func (c *Client) ApplyLedgerEntry(entry *ledger.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}
	if !entry.ClientID().IsEqual(c.id) {
		return errs.NewValueIsInvalidErrorWithCause(
			"ledger entry",
			fmt.Errorf("entry %s belongs to client %s, not %s", entry.ID(), entry.ClientID(), c.id),
		)
	}

	c.balanceDebt = c.balanceDebt.Add(entry.Change())
	return nil
}

// TouchLastOrder records the time of the client's latest order.
func (c *Client) TouchLastOrder(at time.Time) {
	utc := at.UTC()
	c.lastOrderAt = &utc
}

// Relocate replaces the delivery address with a newer one.
func (c *Client) Relocate(location kernel.GeoPoint) error {
	if err := location.Validate(); err != nil {
		return err
	}
	c.location = &location
	return nil
}

func (c *Client) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Client) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}

func (c *Client) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Client) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	return c.Relocate(*location)
}
