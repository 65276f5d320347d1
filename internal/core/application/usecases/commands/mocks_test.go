package commands_test

import (
	"context"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
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

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, job ports.NotificationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockOutboxRepository) MarkSent(ctx context.Context, jobID string) error {
	args := m.Called(ctx, jobID)
	return args.Error(0)
}

func (m *MockOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.NotificationJob, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.NotificationJob), args.Error(1)
}

type MockOrderUoW struct{ mock.Mock }

func (m *MockOrderUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOrderUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockOrderUoW) NotificationOutboxRepository() ports.NotificationOutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationOutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockNotifyingUoWFactory struct{ mock.Mock }

func (m *MockNotifyingUoWFactory) Create() commands.NotifyingUoW {
	args := m.Called()
	return args.Get(0).(commands.NotifyingUoW)
}

type MockCatalogGateway struct{ mock.Mock }

func (m *MockCatalogGateway) GetUnitPrice(ctx context.Context, productID kernel.UUID) (kernel.Price, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(kernel.Price), args.Error(1)
}

type MockContactDirectory struct{ mock.Mock }

func (m *MockContactDirectory) GetPhone(ctx context.Context, ownerID kernel.UUID) (kernel.Phone, error) {
	args := m.Called(ctx, ownerID)
	return args.Get(0).(kernel.Phone), args.Error(1)
}

type MockNotificationQueue struct{ mock.Mock }

func (m *MockNotificationQueue) Connect(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockNotificationQueue) Enqueue(ctx context.Context, job ports.NotificationJob) error {
	args := m.Called(ctx, job)
	return args.Error(0)
}

func (m *MockNotificationQueue) Close() error {
	args := m.Called()
	return args.Error(0)
}
