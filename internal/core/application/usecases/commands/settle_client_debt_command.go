package commands

import (
	"errors"
	"strings"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/guard"
)

var ErrSettleClientDebtCommandIsNotConstructed = errors.New(
	"SettleClientDebtCommand must be created via NewSettleClientDebtCommand constructor",
)

// DefaultSettleComment is used when the administrator gives no reason.
const DefaultSettleComment = "Qarz to'landi"

// SettleClientDebtCommand marks a debtor as paid by posting the opposite of the balance.
type SettleClientDebtCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	comment  string

	guard guard.ConstructorGuard
}

func NewSettleClientDebtCommand(clientID kernel.UUID, comment string) (SettleClientDebtCommand, error) {
	if err := clientID.Validate(); err != nil {
		return SettleClientDebtCommand{}, err
	}

	comment = strings.TrimSpace(comment)
	if comment == "" {
		comment = DefaultSettleComment
	}

	return SettleClientDebtCommand{
		clientID: clientID,
		comment:  comment,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SettleClientDebtCommand) Validate() error {
	return c.guard.Validate(ErrSettleClientDebtCommandIsNotConstructed)
}

func (c SettleClientDebtCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c SettleClientDebtCommand) Comment() string {
	return c.comment
}
