package cmd

import (
	"log/slog"
	"time"

	httpadapter "waterdelivery/internal/adapters/in/http"
	"waterdelivery/internal/adapters/out/postgres"
	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/application/usecases/queries"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB         *gorm.DB
	uowFactory     ports.UnitOfWorkFactory
	tracker        ports.PositionTracker
	notifier       ports.Notifier
	unitPrice      kernel.Money
	positionMaxAge time.Duration
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	tracker ports.PositionTracker,
	notifier ports.Notifier,
) CompositionRoot {
	return CompositionRoot{
		gormDB:         gormDB,
		uowFactory:     postgres.NewGormUnitOfWorkFactory(gormDB),
		tracker:        tracker,
		notifier:       notifier,
		unitPrice:      config.UnitPrice,
		positionMaxAge: config.PositionTTL,
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderingUoWFactory = FuncUoWFactory[commands.OrderingUoW](func() commands.OrderingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.notifier, c.unitPrice)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	var f commands.DispatchUoWFactory = FuncUoWFactory[commands.DispatchUoW](func() commands.DispatchUoW {
		return c.uowFactory.Create()
	})
	return commands.NewClaimOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateStartTransitCommandHandler() commands.StartTransitCommandHandler {
	return commands.NewStartTransitCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmDeliveryCommandHandler() commands.ConfirmDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory[commands.UoW](func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewConfirmDeliveryCommandHandler(f, c.notifier)
}

func (c *CompositionRoot) CreatePostLedgerEntryCommandHandler() commands.PostLedgerEntryCommandHandler {
	return commands.NewPostLedgerEntryCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateSettleClientDebtCommandHandler() commands.SettleClientDebtCommandHandler {
	return commands.NewSettleClientDebtCommandHandler(c.ledgerUoWFactory())
}

func (c *CompositionRoot) CreateRegisterClientCommandHandler() commands.RegisterClientCommandHandler {
	var f commands.ClientUoWFactory = FuncUoWFactory[commands.ClientUoW](func() commands.ClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterClientCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	return commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateSetCourierActiveCommandHandler() commands.SetCourierActiveCommandHandler {
	return commands.NewSetCourierActiveCommandHandler(c.courierUoWFactory())
}

func (c *CompositionRoot) CreateUpdateCourierPositionCommandHandler() commands.UpdateCourierPositionCommandHandler {
	return commands.NewUpdateCourierPositionCommandHandler(c.tracker)
}

func (c *CompositionRoot) CreateListClaimableOrdersQueryHandler() queries.ListClaimableOrdersQueryHandler {
	return queries.NewListClaimableOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.gormDB, c.tracker)
}

func (c *CompositionRoot) CreateGetAllCouriersQueryHandler() queries.GetAllCouriersQueryHandler {
	return queries.NewGetAllCouriersQueryHandler(c.gormDB, c.tracker)
}

func (c *CompositionRoot) CreateGetCourierPositionQueryHandler() queries.GetCourierPositionQueryHandler {
	return queries.NewGetCourierPositionQueryHandler(c.tracker)
}

func (c *CompositionRoot) CreateGetClientLedgerQueryHandler() queries.GetClientLedgerQueryHandler {
	return queries.NewGetClientLedgerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindLedgerDiscrepanciesQueryHandler() queries.FindLedgerDiscrepanciesQueryHandler {
	return queries.NewFindLedgerDiscrepanciesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListNotificationsQueryHandler() queries.ListNotificationsQueryHandler {
	return queries.NewListNotificationsQueryHandler(c.gormDB)
}

// CreateHTTPServer wires every use case into the HTTP adapter.
func (c *CompositionRoot) CreateHTTPServer(logger *slog.Logger) *httpadapter.Server {
	return httpadapter.NewServer(httpadapter.Handlers{
		RegisterClient:   c.CreateRegisterClientCommandHandler(),
		PostLedgerEntry:  c.CreatePostLedgerEntryCommandHandler(),
		SettleClientDebt: c.CreateSettleClientDebtCommandHandler(),
		GetClientLedger:  c.CreateGetClientLedgerQueryHandler(),

		CreateCourier:         c.CreateCreateCourierCommandHandler(),
		SetCourierActive:      c.CreateSetCourierActiveCommandHandler(),
		UpdateCourierPosition: c.CreateUpdateCourierPositionCommandHandler(),
		GetAllCouriers:        c.CreateGetAllCouriersQueryHandler(),
		GetCourierPosition:    c.CreateGetCourierPositionQueryHandler(),
		ListClaimableOrders:   c.CreateListClaimableOrdersQueryHandler(),

		CreateOrder:     c.CreateCreateOrderCommandHandler(),
		ClaimOrder:      c.CreateClaimOrderCommandHandler(),
		StartTransit:    c.CreateStartTransitCommandHandler(),
		ConfirmDelivery: c.CreateConfirmDeliveryCommandHandler(),
		CancelOrder:     c.CreateCancelOrderCommandHandler(),
		TrackOrder:      c.CreateTrackOrderQueryHandler(),

		ListNotifications: c.CreateListNotificationsQueryHandler(),
	}, logger)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(c.tracker, c.positionMaxAge, c.CreateFindLedgerDiscrepanciesQueryHandler(), logger)
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncUoWFactory[commands.OrderUoW](func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncUoWFactory[commands.CourierUoW](func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) ledgerUoWFactory() commands.LedgerUoWFactory {
	return FuncUoWFactory[commands.LedgerUoW](func() commands.LedgerUoW {
		return c.uowFactory.Create()
	})
}

// FuncUoWFactory narrows the shared unit of work to the interface a handler asks for.
type FuncUoWFactory[T any] func() T

func (f FuncUoWFactory[T]) Create() T {
	return f()
}
