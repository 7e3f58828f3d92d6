// Package commands contains business operations that modify system state.
// Each command is built through a validating constructor and executed by a handler that
// wraps all of its writes in one unit of work.
package commands

import (
	"context"

	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
)

// Unit of Work interfaces give each handler exactly the repositories it touches.
// Every ports.UnitOfWork satisfies all of them.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// ClientRepoFactory provides access to client repository within a transaction.
	ClientRepoFactory interface {
		ClientRepository() ports.ClientRepository
	}

	// CourierRepoFactory provides access to courier repository within a transaction.
	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	// LedgerRepoFactory provides access to the append-only ledger within a transaction.
	LedgerRepoFactory interface {
		LedgerRepository() ports.LedgerRepository
	}

	// OrderUoW is used by transitions that only touch the order row.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// ClientUoW is used by client registration.
	ClientUoW interface {
		TxManager
		ClientRepoFactory
	}

	ClientUoWFactory interface {
		Create() ClientUoW
	}

	// CourierUoW is used by courier directory operations.
	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OrderingUoW places orders: it locks the client row and inserts the order.
	OrderingUoW interface {
		TxManager
		ClientRepoFactory
		OrderRepoFactory
	}

	OrderingUoWFactory interface {
		Create() OrderingUoW
	}

	// DispatchUoW claims orders on behalf of couriers.
	DispatchUoW interface {
		TxManager
		CourierRepoFactory
		OrderRepoFactory
	}

	DispatchUoWFactory interface {
		Create() DispatchUoW
	}

	// LedgerUoW posts balance changes: it locks the client row and appends an entry.
	LedgerUoW interface {
		TxManager
		ClientRepoFactory
		LedgerRepoFactory
	}

	LedgerUoWFactory interface {
		Create() LedgerUoW
	}

	// UoW spans every aggregate. Delivery confirmation uses it because the order
	// transition and the ledger post must commit together.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   ok, err := uow.OrderRepository().UpdateIfStatus(ctx, o, order.Delivering)
	//   entry, err := services.NewLedger().Settle(o, c, now)
	//   err = uow.LedgerRepository().Add(ctx, entry)
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		ClientRepoFactory
		CourierRepoFactory
		LedgerRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)

// orderGetter re-reads an order after a lost compare-and-swap.
type orderGetter interface {
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
