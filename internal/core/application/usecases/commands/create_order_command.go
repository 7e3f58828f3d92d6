package commands

import (
	"errors"
	"strings"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a client's request for water bottles.
// A non-positive bottle count is accepted and treated as a single bottle.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), clientID, 2, "call at the gate", nil)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	o, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	clientID    kernel.UUID
	bottleCount int
	note        string
	location    *kernel.GeoPoint

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place an order. location is optional; when
// present it replaces the client's delivery address.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	clientID kernel.UUID,
	bottleCount int,
	note string,
	location *kernel.GeoPoint,
) (CreateOrderCommand, error) {
	command := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setClientID(clientID),
		command.setLocation(location),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	command.bottleCount = max(bottleCount, 1)
	command.note = strings.TrimSpace(note)
	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c CreateOrderCommand) BottleCount() int {
	return c.bottleCount
}

func (c CreateOrderCommand) Note() string {
	return c.note
}

// Location returns the new delivery address or nil when the client's stored one is kept.
func (c CreateOrderCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *CreateOrderCommand) setOrderID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.orderID = id
	return nil
}

func (c *CreateOrderCommand) setClientID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.clientID = id
	return nil
}

func (c *CreateOrderCommand) setLocation(location *kernel.GeoPoint) error {
	if location == nil {
		return nil
	}
	if err := location.Validate(); err != nil {
		return err
	}

	point := *location
	c.location = &point
	return nil
}
