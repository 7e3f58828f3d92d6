package commands_test

import (
	"context"
	"testing"
	"time"

	"waterdelivery/internal/core/domain/model/client"
	"waterdelivery/internal/core/domain/model/courier"
	"waterdelivery/internal/core/domain/model/kernel"
	"waterdelivery/internal/core/domain/model/ledger"
	"waterdelivery/internal/core/domain/model/order"
	"waterdelivery/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var unitPrice = kernel.MoneyFromInt(12000)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateIfStatus(ctx context.Context, o *order.Order, expected order.Status) (bool, error) {
	args := m.Called(ctx, o, expected)
	return args.Bool(0), args.Error(1)
}

func (m *MockOrderRepository) FindPendingDuplicate(
	ctx context.Context,
	clientID kernel.UUID,
	bottleCount int,
	note string,
	since time.Time,
) (*order.Order, error) {
	args := m.Called(ctx, clientID, bottleCount, note, since)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

func (m *MockClientRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*client.Client), args.Error(1)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCourierRepository) Get(ctx context.Context, id kernel.UUID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*courier.Courier), args.Error(1)
}

type MockLedgerRepository struct{ mock.Mock }

func (m *MockLedgerRepository) Add(ctx context.Context, e *ledger.Entry) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

// MockUoW satisfies every unit of work interface of the commands package.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}

func (m *MockUoW) LedgerRepository() ports.LedgerRepository {
	args := m.Called()
	return args.Get(0).(ports.LedgerRepository)
}

// MockUoWFactory returns the configured unit of work as T, e.g. commands.OrderUoW.
type MockUoWFactory[T any] struct{ mock.Mock }

func (m *MockUoWFactory[T]) Create() T {
	args := m.Called()
	return args.Get(0).(T)
}

type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) Notify(ctx context.Context, n ports.Notification) {
	m.Called(ctx, n)
}

type MockPositionTracker struct{ mock.Mock }

func (m *MockPositionTracker) UpdatePosition(ctx context.Context, p ports.Position) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPositionTracker) GetPosition(ctx context.Context, courierID kernel.UUID) (ports.Position, bool, error) {
	args := m.Called(ctx, courierID)
	return args.Get(0).(ports.Position), args.Bool(1), args.Error(2)
}

func (m *MockPositionTracker) Evict(ctx context.Context, olderThan time.Time) (int, error) {
	args := m.Called(ctx, olderThan)
	return args.Int(0), args.Error(1)
}

// repos bundles the repositories a MockUoW hands out. Nil repositories are not expected.
type repos struct {
	orders   *MockOrderRepository
	clients  *MockClientRepository
	couriers *MockCourierRepository
	ledger   *MockLedgerRepository
}

func newMockUoW(r repos) *MockUoW {
	uow := new(MockUoW)
	if r.orders != nil {
		uow.On("OrderRepository").Return(r.orders).Maybe()
	}
	if r.clients != nil {
		uow.On("ClientRepository").Return(r.clients).Maybe()
	}
	if r.couriers != nil {
		uow.On("CourierRepository").Return(r.couriers).Maybe()
	}
	if r.ledger != nil {
		uow.On("LedgerRepository").Return(r.ledger).Maybe()
	}
	return uow
}

func newFactory[T any](uow T) *MockUoWFactory[T] {
	factory := new(MockUoWFactory[T])
	factory.On("Create").Return(uow).Once()
	return factory
}

func newTestClient(t *testing.T) *client.Client {
	t.Helper()
	c, err := client.NewClient(kernel.NewUUID(), "+998901112233", "Aziz", nil)
	require.NoError(t, err)
	return c
}

func newTestCourier(t *testing.T) *courier.Courier {
	t.Helper()
	c, err := courier.NewCourier(kernel.NewUUID(), "Bekzod", "+998931234567")
	require.NoError(t, err)
	return c
}

// orderInStatus drives a fresh order of two bottles through the lifecycle up to status.
// courierID is the assignee for every status past pending.
func orderInStatus(t *testing.T, clientID kernel.UUID, status order.Status, courierID kernel.UUID) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), clientID, 2, "", unitPrice, time.Now())
	require.NoError(t, err)

	switch status {
	case order.Pending:
	case order.Canceled:
		require.NoError(t, o.Cancel())
	default:
		require.NoError(t, o.Assign(courierID))
		if status == order.Assigned {
			break
		}
		require.NoError(t, o.StartTransit(courierID))
		if status == order.Delivering {
			break
		}
		require.NoError(t, o.ConfirmDelivery(courierID, order.PaymentDebt, kernel.MoneyFromInt(24000), time.Now()))
	}

	require.Equal(t, status, o.Status())
	return o
}
