package services

import (
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/model/order"
)

// Ledger is the only way to change a client's balance. Every change produces an immutable
// ledger.Entry that the caller persists together with the client in one transaction.
type Ledger struct{}

func NewLedger() Ledger {
	return Ledger{}
}

// Post records amount against the client and applies it to the balance.
// A zero amount is skipped: Post returns a nil entry and leaves the client untouched.
func (Ledger) Post(
	c *client.Client,
	amount kernel.Money,
	comment string,
	relatedOrderID *kernel.UUID,
	at time.Time,
) (*ledger.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if amount.IsZero() {
		return nil, nil //nolint:nilnil // nothing to record
	}

	entry, err := ledger.NewEntry(kernel.NewUUID(), c.ID(), amount, comment, relatedOrderID, at)
	if err != nil {
		return nil, err
	}

	if err = c.ApplyLedgerEntry(entry); err != nil {
		return nil, err
	}

	return entry, nil
}

// Settle posts the balance change of a done order.
func (l Ledger) Settle(o *order.Order, c *client.Client, at time.Time) (*ledger.Entry, error) {
	amount, err := o.SettlementAmount()
	if err != nil {
		return nil, err
	}

	orderID := o.ID()
	comment := fmt.Sprintf("Buyurtma #%s yetkazildi (%s)", shortID(orderID), o.PaymentType())
	return l.Post(c, amount, comment, &orderID, at)
}

// SettleDebt zeroes the client's balance, e.g. when an administrator marks a debtor as paid.
func (l Ledger) SettleDebt(c *client.Client, comment string, at time.Time) (*ledger.Entry, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return l.Post(c, c.BalanceDebt().Neg(), comment, nil, at)
}

func shortID(id kernel.UUID) string {
	return id.String()[:8]
}
