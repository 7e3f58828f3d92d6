package commands_test

import (
	"testing"

	"waterdelivery/internal/core/application/usecases/commands"
	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"
	"waterdelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type confirmFixture struct {
	client      *client.Client
	courier     *courier.Courier
	orderRepo   *MockOrderRepository
	clientRepo  *MockClientRepository
	courierRepo *MockCourierRepository
	ledgerRepo  *MockLedgerRepository
	notifier    *MockNotifier
	uow         *MockUoW
	handler     commands.ConfirmDeliveryCommandHandler
}

func newConfirmFixture(t *testing.T) *confirmFixture {
	t.Helper()
	f := &confirmFixture{
		client:      newTestClient(t),
		courier:     newTestCourier(t),
		orderRepo:   new(MockOrderRepository),
		clientRepo:  new(MockClientRepository),
		courierRepo: new(MockCourierRepository),
		ledgerRepo:  new(MockLedgerRepository),
		notifier:    new(MockNotifier),
	}
	f.uow = newMockUoW(repos{orders: f.orderRepo, clients: f.clientRepo, couriers: f.courierRepo, ledger: f.ledgerRepo})
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.uow.On("Rollback", mock.Anything).Return(nil).Once()
	f.handler = commands.NewConfirmDeliveryCommandHandler(newFactory[commands.UoW](f.uow), f.notifier)
	return f
}

func TestNewConfirmDeliveryCommand_Validation(t *testing.T) {
	tests := []struct {
		name        string
		paymentType order.PaymentType
		amount      kernel.Money
	}{
		{name: "missing payment type", paymentType: order.PaymentNone, amount: kernel.MoneyFromInt(1)},
		{name: "negative amount", paymentType: order.PaymentCash, amount: kernel.MoneyFromInt(-1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), tt.paymentType, tt.amount)

			require.Error(t, err)
			assert.Equal(t, errs.CodeValidation, errs.CodeOf(err))
		})
	}

	cmd, err := commands.NewConfirmDeliveryCommand(kernel.NewUUID(), kernel.NewUUID(), order.PaymentClick, kernel.ZeroMoney())
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
}

func TestConfirmDeliveryCommandHandler_Handle_SettlesAndNotifies(t *testing.T) {
	tests := []struct {
		name        string
		paymentType order.PaymentType
		wantChange  string
	}{
		{name: "debt increases the balance", paymentType: order.PaymentDebt, wantChange: "24000.00"},
		{name: "cash decreases the balance", paymentType: order.PaymentCash, wantChange: "-24000.00"},
		{name: "click decreases the balance", paymentType: order.PaymentClick, wantChange: "-24000.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newConfirmFixture(t)
			o := orderInStatus(t, f.client.ID(), order.Delivering, f.courier.ID())

			mock.InOrder(
				f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once(),
				f.orderRepo.On("UpdateIfStatus", ctx, o, order.Delivering).Return(true, nil).Once(),
				f.clientRepo.On("GetForUpdate", ctx, f.client.ID()).Return(f.client, nil).Once(),
				f.ledgerRepo.On("Add", ctx, mock.MatchedBy(func(e *ledger.Entry) bool {
					return e.Change().String() == tt.wantChange &&
						e.RelatedOrderID() != nil && e.RelatedOrderID().IsEqual(o.ID())
				})).Return(nil).Once(),
				f.clientRepo.On("Update", ctx, f.client).Return(nil).Once(),
				f.courierRepo.On("Get", ctx, f.courier.ID()).Return(f.courier, nil).Once(),
				f.uow.On("Commit", ctx).Return(nil).Once(),
			)
			f.notifier.On("Notify", ctx, mock.MatchedBy(func(n ports.Notification) bool {
				return n.Title == "Buyurtma yetkazildi" &&
					n.Message == "✅ Buyurtma yetkazildi\nOrder ID: #"+o.ID().String()[:8]+"\nCourier: Bekzod"
			})).Once()

			cmd, err := commands.NewConfirmDeliveryCommand(o.ID(), f.courier.ID(), tt.paymentType, kernel.MoneyFromInt(24000))
			require.NoError(t, err)
			got, err := f.handler.Handle(ctx, cmd)

			require.NoError(t, err)
			assert.Equal(t, order.Done, got.Status())
			assert.Equal(t, tt.paymentType, got.PaymentType())
			assert.NotNil(t, got.DeliveredAt())
			assert.Equal(t, tt.wantChange, f.client.BalanceDebt().String())
			f.ledgerRepo.AssertExpectations(t)
			f.uow.AssertExpectations(t)
			f.notifier.AssertExpectations(t)
		})
	}
}

func TestConfirmDeliveryCommandHandler_Handle_ZeroAmountPostsNothing(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	o := orderInStatus(t, f.client.ID(), order.Delivering, f.courier.ID())

	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orderRepo.On("UpdateIfStatus", ctx, o, order.Delivering).Return(true, nil).Once()
	f.clientRepo.On("GetForUpdate", ctx, f.client.ID()).Return(f.client, nil).Once()
	f.courierRepo.On("Get", ctx, f.courier.ID()).Return(f.courier, nil).Once()
	f.uow.On("Commit", ctx).Return(nil).Once()
	f.notifier.On("Notify", ctx, mock.Anything).Once()

	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), f.courier.ID(), order.PaymentCash, kernel.ZeroMoney())
	_, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	f.ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.clientRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	assert.True(t, f.client.BalanceDebt().IsZero())
}

func TestConfirmDeliveryCommandHandler_Handle_AlreadyDone(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	o := orderInStatus(t, f.client.ID(), order.Done, f.courier.ID())
	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), f.courier.ID(), order.PaymentCash, kernel.MoneyFromInt(999))
	got, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.PaymentDebt, got.PaymentType())
	assert.Equal(t, "24000.00", got.PaymentAmount().String())
	f.orderRepo.AssertNotCalled(t, "UpdateIfStatus", mock.Anything, mock.Anything, mock.Anything)
	f.ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_Rejections(t *testing.T) {
	tests := []struct {
		name      string
		status    order.Status
		otherUser bool
		wantErr   error
	}{
		{name: "other courier", status: order.Delivering, otherUser: true, wantErr: errs.ErrForbidden},
		{name: "other courier on done order", status: order.Done, otherUser: true, wantErr: errs.ErrForbidden},
		{name: "not yet in transit", status: order.Assigned, wantErr: errs.ErrInvalidState},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := t.Context()
			f := newConfirmFixture(t)
			o := orderInStatus(t, f.client.ID(), tt.status, f.courier.ID())
			f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()

			caller := f.courier.ID()
			if tt.otherUser {
				caller = kernel.NewUUID()
			}
			cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), caller, order.PaymentCash, kernel.MoneyFromInt(100))
			_, err := f.handler.Handle(ctx, cmd)

			require.ErrorIs(t, err, tt.wantErr)
			f.ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
			f.uow.AssertNotCalled(t, "Commit", mock.Anything)
		})
	}
}

func TestConfirmDeliveryCommandHandler_Handle_ConcurrentConfirmation(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	stale := orderInStatus(t, f.client.ID(), order.Delivering, f.courier.ID())
	settled := orderInStatus(t, f.client.ID(), order.Done, f.courier.ID())

	f.orderRepo.On("Get", ctx, stale.ID()).Return(stale, nil).Once()
	f.orderRepo.On("UpdateIfStatus", ctx, stale, order.Delivering).Return(false, nil).Once()
	f.orderRepo.On("Get", ctx, stale.ID()).Return(settled, nil).Once()

	cmd, _ := commands.NewConfirmDeliveryCommand(stale.ID(), f.courier.ID(), order.PaymentDebt, kernel.MoneyFromInt(24000))
	got, err := f.handler.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Same(t, settled, got)
	f.ledgerRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestConfirmDeliveryCommandHandler_Handle_LedgerFailureRollsBack(t *testing.T) {
	ctx := t.Context()
	f := newConfirmFixture(t)
	o := orderInStatus(t, f.client.ID(), order.Delivering, f.courier.ID())

	f.orderRepo.On("Get", ctx, o.ID()).Return(o, nil).Once()
	f.orderRepo.On("UpdateIfStatus", ctx, o, order.Delivering).Return(true, nil).Once()
	f.clientRepo.On("GetForUpdate", ctx, f.client.ID()).Return(f.client, nil).Once()
	f.ledgerRepo.On("Add", ctx, mock.Anything).Return(assert.AnError).Once()

	cmd, _ := commands.NewConfirmDeliveryCommand(o.ID(), f.courier.ID(), order.PaymentDebt, kernel.MoneyFromInt(24000))
	_, err := f.handler.Handle(ctx, cmd)

	require.ErrorIs(t, err, assert.AnError)
	f.uow.AssertCalled(t, "Rollback", ctx)
	f.uow.AssertNotCalled(t, "Commit", mock.Anything)
	f.notifier.AssertNotCalled(t, "Notify", mock.Anything, mock.Anything)
}
