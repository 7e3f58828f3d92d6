package commands

import (
	"errors"
	"strings"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/pkg/errs"
	"waterdelivery/internal/pkg/guard"
)

var (
	ErrPostLedgerEntryCommandIsNotConstructed = errors.New(
		"PostLedgerEntryCommand must be created via NewPostLedgerEntryCommand constructor",
	)
	ErrCommentIsRequired = errs.NewValueIsRequiredError("comment")
)

// PostLedgerEntryCommand is a manual balance adjustment made by an administrator.
// A positive amount increases what the client owes, a negative one decreases it.
type PostLedgerEntryCommand struct { //nolint:recvcheck //using for validation
	clientID kernel.UUID
	amount   kernel.Money
	comment  string

	guard guard.ConstructorGuard
}

func NewPostLedgerEntryCommand(clientID kernel.UUID, amount kernel.Money, comment string) (PostLedgerEntryCommand, error) {
	command := PostLedgerEntryCommand{
		guard: guard.NewConstructorGuard(),
	}

	comment = strings.TrimSpace(comment)
	if err := errors.Join(clientID.Validate(), requireComment(comment)); err != nil {
		return PostLedgerEntryCommand{}, err
	}

	command.clientID = clientID
	command.amount = amount
	command.comment = comment
	return command, nil
}

func (c PostLedgerEntryCommand) Validate() error {
	return c.guard.Validate(ErrPostLedgerEntryCommandIsNotConstructed)
}

func (c PostLedgerEntryCommand) ClientID() kernel.UUID {
	return c.clientID
}

func (c PostLedgerEntryCommand) Amount() kernel.Money {
	return c.amount
}

func (c PostLedgerEntryCommand) Comment() string {
	return c.comment
}

func requireComment(comment string) error {
	if comment == "" {
		return ErrCommentIsRequired
	}
	return nil
}
