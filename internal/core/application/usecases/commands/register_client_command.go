package commands

import (
	"errors"
	"strings"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrPhoneIsRequired = errs.NewValueIsRequiredError("phone")
	ErrNameIsRequired  = errs.NewValueIsRequiredError("name")
)

// RegisterClientCommand adds a client to the directory. The delivery address may be
// unknown at registration and supplied with the first order instead.
type RegisterClientCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	phone    string
	name     string
	location *kernel.GeoPoint

	guard guard.ConstructorGuard
}

func NewRegisterClientCommand(
	clientID kernel.UUID,
	phone string,
	name string,
	location *kernel.GeoPoint,
) (RegisterClientCommand, error) {
	command := RegisterClientCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		clientID.Validate(),
		command.setPhone(phone),
		command.setName(name),
	); err != nil {
		return RegisterClientCommand{}, err
	}

	if location != nil {
		if err := location.Validate(); err != nil {
			return RegisterClientCommand{}, err
		}
		point := *location
		command.location = &point
	}

	command.clientID = clientID
	return command, nil
}

func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

func (c RegisterClientCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c RegisterClientCommand) Phone() string {
	return c.phone
}

func (c RegisterClientCommand) Name() string {
	return c.name
}

func (c RegisterClientCommand) Location() *kernel.GeoPoint {
	return c.location
}

func (c *RegisterClientCommand) setPhone(phone string) error {
	phone = strings.ReplaceAll(strings.TrimSpace(phone), " ", "")
	if phone == "" {
		return ErrPhoneIsRequired
	}

	c.phone = phone
	return nil
}

func (c *RegisterClientCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}
