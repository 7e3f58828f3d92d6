package courier

import (
	"errors"
	"strings"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

// Domain errors for courier operations.
var (
	// ErrNameIsRequired is returned when attempting to create a courier without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrPhoneIsRequired is returned when attempting to create a courier without a phone number.
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier constructor")
)

// Courier is a delivery worker who claims pending orders and carries them to clients.
//
// Business rules:
//   - Courier must have a valid UUID, a non-empty name and a phone number
//   - New couriers are active
//   - Only active couriers may claim orders; deactivated couriers keep finishing
//     orders they already hold
//
// The courier's last known position is ephemeral and lives in the position tracker,
// not in the aggregate.
type Courier struct {
	// id uniquely identifies the courier
	id kernel.UUID
	// name is the human-readable name of the courier
	name string
	// phone is the courier's contact number
	phone string
	// isActive is toggled by administrators
	isActive bool
	// guard ensures the courier was properly constructed
	guard guard.ConstructorGuard
}

// NewCourier creates an active courier.
//
// Example:
//
//	c, err := courier.NewCourier(kernel.NewUUID(), "Bekzod", "+998901112233")
//	if err != nil {
//	    return fmt.Errorf("invalid courier: %w", err)
//	}
func NewCourier(id kernel.UUID, name, phone string) (*Courier, error) {
	return RestoreCourier(id, name, phone, true)
}

// RestoreCourier reconstructs a courier from storage, including its activity flag.
func RestoreCourier(id kernel.UUID, name, phone string, isActive bool) (*Courier, error) {
	courier := &Courier{
		isActive: isActive,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		courier.setID(id),
		courier.setName(name),
		courier.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return courier, nil
}

// IsEqual compares two couriers by identity.
func (c *Courier) IsEqual(other *Courier) bool {
	if other == nil {
		return false
	}
	return c.id.IsEqual(other.id)
}

// Validate checks that the Courier was created by a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.UUID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) IsActive() bool {
	return c.isActive
}

// CanClaim returns errs.ErrForbidden for a deactivated courier.
func (c *Courier) CanClaim() error {
	if !c.isActive {
		return errs.NewForbiddenError("inactive courier "+c.id.String(), "order", "claim")
	}
	return nil
}

// Activate allows the courier to claim orders again.
func (c *Courier) Activate() {
	c.isActive = true
}

// Deactivate stops the courier from claiming new orders.
func (c *Courier) Deactivate() {
	c.isActive = false
}

func (c *Courier) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Courier) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}
	c.name = name
	return nil
}

func (c *Courier) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return ErrPhoneIsRequired
	}
	c.phone = phone
	return nil
}
