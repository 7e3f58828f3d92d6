package order

import (
	"errors"
	"fmt"
	"time"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
)

// DebounceWindow is how long an identical pending order suppresses a new one.
const DebounceWindow = 10 * time.Second

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")
)

// Order is a client's request for a number of water bottles. It is the aggregate root
// of the dispatch lifecycle: a pending order is claimed by one courier, taken into
// transit and finally settled with a payment.
//
// Order keeps these invariants at all times:
//   - a courier is set if and only if the status is Assigned, Delivering or Done
//   - payment type, payment amount and delivery time are set if and only if the status is Done
//   - bottle count is positive and debt change equals bottle count times the unit price at creation
type Order struct {
	id       kernel.UUID
	clientID kernel.UUID

	// courierID is nil until the order is claimed
	courierID *kernel.UUID

	status      Status
	bottleCount int
	note        string

	// debtChange is the order value, frozen at creation
	debtChange kernel.Money
	createdAt  time.Time

	// settlement fields, set together by ConfirmDelivery
	deliveredAt   *time.Time
	paymentType   PaymentType
	paymentAmount *kernel.Money

	isConstructed bool
}

// NewOrder creates a pending order and prices it at unitPrice per bottle.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), clientID, 3, "call at the gate", kernel.MoneyFromInt(12000), time.Now())
//	// o.DebtChange() == 36000
func NewOrder(
	id kernel.UUID,
	clientID kernel.UUID,
	bottleCount int,
	note string,
	unitPrice kernel.Money,
	createdAt time.Time,
) (*Order, error) {
	order := &Order{
		status:        Pending,
		note:          note,
		createdAt:     createdAt.UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setClientID(clientID),
		order.setBottleCount(bottleCount),
		order.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	order.debtChange = unitPrice.Times(bottleCount)
	return order, nil
}

// State is the persisted form of an Order used by RestoreOrder.
type State struct {
	ID            kernel.UUID
	ClientID      kernel.UUID
	CourierID     *kernel.UUID
	Status        Status
	BottleCount   int
	Note          string
	DebtChange    kernel.Money
	CreatedAt     time.Time
	DeliveredAt   *time.Time
	PaymentType   PaymentType
	PaymentAmount *kernel.Money
}

// RestoreOrder rebuilds an Order from storage and rejects any state that breaks the
// aggregate invariants.
func RestoreOrder(state State) (*Order, error) {
	order := &Order{
		courierID:     state.CourierID,
		status:        state.Status,
		note:          state.Note,
		debtChange:    state.DebtChange,
		createdAt:     state.CreatedAt.UTC(),
		deliveredAt:   state.DeliveredAt,
		paymentType:   state.PaymentType,
		paymentAmount: state.PaymentAmount,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(state.ID),
		order.setClientID(state.ClientID),
		order.setBottleCount(state.BottleCount),
		state.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if err := order.validateInvariants(); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) ClientID() kernel.UUID {
	return o.clientID
}

// Courier returns the assignee, or nil for pending and canceled orders.
func (o *Order) Courier() *kernel.UUID {
	return o.courierID
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) BottleCount() int {
	return o.bottleCount
}

func (o *Order) Note() string {
	return o.note
}

func (o *Order) DebtChange() kernel.Money {
	return o.debtChange
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) DeliveredAt() *time.Time {
	return o.deliveredAt
}

func (o *Order) PaymentType() PaymentType {
	return o.paymentType
}

func (o *Order) PaymentAmount() *kernel.Money {
	return o.paymentAmount
}

// IsAssignedTo reports whether courierID is the current assignee.
func (o *Order) IsAssignedTo(courierID kernel.UUID) bool {
	return o.courierID != nil && o.courierID.IsEqual(courierID)
}

// IsDuplicateOf reports whether a new order with the given fields, placed at now, repeats
// this one within DebounceWindow while it is still pending.
func (o *Order) IsDuplicateOf(clientID kernel.UUID, bottleCount int, note string, now time.Time) bool {
	return o.status == Pending &&
		o.clientID.IsEqual(clientID) &&
		o.bottleCount == bottleCount &&
		o.note == note &&
		!o.createdAt.Before(now.UTC().Add(-DebounceWindow))
}

// Assign records a successful claim by courierID.
//
// A pending order moves to Assigned. An order that already has an assignee yields
// errs.ErrAlreadyAssigned; a canceled one yields errs.ErrNotPending.
func (o *Order) Assign(courierID kernel.UUID) error {
	if err := courierID.Validate(); err != nil {
		return err
	}

	switch {
	case o.status == Pending:
		o.status = Assigned
		o.courierID = &courierID
		return nil
	case o.status.HasCourier():
		return errs.NewAlreadyAssignedError("order", o.id.String(), o.status.String())
	default:
		return errs.NewNotPendingError("order", o.id.String(), o.status.String())
	}
}

// StartTransit moves an assigned order to Delivering. Repeating it while delivering is a no-op.
func (o *Order) StartTransit(courierID kernel.UUID) error {
	if !o.IsAssignedTo(courierID) {
		return errs.NewForbiddenError("courier "+courierID.String(), "order", o.id.String())
	}

	switch o.status {
	case Assigned:
		o.status = Delivering
		return nil
	case Delivering:
		return nil
	default:
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String(), "start transit")
	}
}

// ConfirmDelivery settles a delivering order. Confirming an order that is already done is a
// no-op that keeps the original settlement.
func (o *Order) ConfirmDelivery(
	courierID kernel.UUID,
	paymentType PaymentType,
	paymentAmount kernel.Money,
	deliveredAt time.Time,
) error {
	if !o.IsAssignedTo(courierID) {
		return errs.NewForbiddenError("courier "+courierID.String(), "order", o.id.String())
	}

	if o.status == Done {
		return nil
	}

	if o.status != Delivering {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String(), "confirm delivery")
	}

	if err := errors.Join(paymentType.Validate(), validatePaymentAmount(paymentAmount)); err != nil {
		return err
	}

	at := deliveredAt.UTC()
	o.status = Done
	o.deliveredAt = &at
	o.paymentType = paymentType
	o.paymentAmount = &paymentAmount
	return nil
}

// Cancel withdraws a pending order.
func (o *Order) Cancel() error {
	if o.status != Pending {
		return errs.NewInvalidStateError("order", o.id.String(), o.status.String(), "cancel")
	}

	o.status = Canceled
	return nil
}

// SettlementAmount is the signed change to the client's balance caused by settling this
// order: debt adds the paid amount, cash and click subtract it.
func (o *Order) SettlementAmount() (kernel.Money, error) {
	if o.status != Done || o.paymentAmount == nil {
		return kernel.Money{}, errs.NewInvalidStateError("order", o.id.String(), o.status.String(), "settle")
	}

	if o.paymentType == PaymentDebt {
		return *o.paymentAmount, nil
	}
	return o.paymentAmount.Neg(), nil
}

func (o *Order) validateInvariants() error {
	if err := o.status.ValidateCanHaveCourier(o.courierID != nil); err != nil {
		return err
	}

	done := o.status == Done
	if (o.paymentType != PaymentNone) != done ||
		(o.paymentAmount != nil) != done ||
		(o.deliveredAt != nil) != done {
		return errs.NewValueIsInvalidErrorWithCause(
			"settlement is invalid",
			fmt.Errorf("payment and delivery time must be set only for done orders, status is %s", o.status),
		)
	}

	if done {
		return errors.Join(o.paymentType.Validate(), validatePaymentAmount(*o.paymentAmount))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setClientID(clientID kernel.UUID) error {
	if err := clientID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("client id", err)
	}
	o.clientID = clientID
	return nil
}

func (o *Order) setBottleCount(bottleCount int) error {
	if bottleCount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("bottle count is invalid", fmt.Errorf("%d is not greater than 0", bottleCount))
	}
	o.bottleCount = bottleCount
	return nil
}

func (o *Order) setUnitPrice(unitPrice kernel.Money) error {
	if !unitPrice.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause("unit price is invalid", fmt.Errorf("%s is not greater than 0", unitPrice))
	}
	return nil
}

func validatePaymentAmount(amount kernel.Money) error {
	if amount.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("payment amount is invalid", fmt.Errorf("%s is negative", amount))
	}
	return nil
}
