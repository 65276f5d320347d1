package commands_test

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"storefront/internal/core/application/usecases/commands"
	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func mustPhone(t *testing.T, number string) kernel.Phone {
	t.Helper()
	phone, err := kernel.NewPhone(number)
	require.NoError(t, err)
	return phone
}

// waitFor fails the test unless ch closes within a second. Publish runs on
// its own goroutine, so broker-side expectations need a rendezvous.
func waitFor(t *testing.T, ch <-chan struct{}, what string) {
	t.Helper()
	select {
	case <-ch:
	case <-time.After(time.Second):
		t.Fatalf("timed out waiting for %s", what)
	}
}

func TestReleasePaymentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newCreatedOrder(t, ownerID)
	require.NoError(t, aggregate.AddLine(kernel.NewUUID(), 2, mustPrice(t, "10.00")))
	cmd, _ := commands.NewReleasePaymentCommand(aggregate.ID(), ownerID)

	repo := new(MockOrderRepository)
	txOutbox := new(MockOutboxRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("NotificationOutboxRepository").Return(txOutbox).Once(),
		txOutbox.On("Add", ctx, mock.AnythingOfType("ports.NotificationJob")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyingUoWFactory)
	factory.On("Create").Return(uow).Once()

	contacts := new(MockContactDirectory)
	contacts.On("GetPhone", ctx, ownerID).Return(mustPhone(t, "+79991234567"), nil).Once()

	enqueued := make(chan struct{})
	marked := make(chan struct{})
	queue := new(MockNotificationQueue)
	queue.On("Enqueue", mock.Anything, mock.AnythingOfType("ports.NotificationJob")).
		Run(func(_ mock.Arguments) { close(enqueued) }).Return(nil).Once()
	sentOutbox := new(MockOutboxRepository)
	sentOutbox.On("MarkSent", mock.Anything, mock.AnythingOfType("string")).
		Run(func(_ mock.Arguments) { close(marked) }).Return(nil).Once()

	notifier := commands.NewTransitionNotifier(contacts, queue, sentOutbox, "sms", discardLogger())
	h := commands.NewReleasePaymentCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Paid, aggregate.Status())

	waitFor(t, enqueued, "queue publish")
	waitFor(t, marked, "outbox mark sent")

	parked := txOutbox.Calls[0].Arguments.Get(1).(ports.NotificationJob)
	require.Equal(t, aggregate.ID().String(), parked.OrderID)
	require.Equal(t, []string{"+79991234567"}, parked.Recipients)
	require.Contains(t, parked.Message, aggregate.ID().String())
	require.Equal(t, "sms", parked.SenderKey)

	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	txOutbox.AssertExpectations(t)
	queue.AssertExpectations(t)
	sentOutbox.AssertExpectations(t)
	contacts.AssertExpectations(t)
}

func TestReleasePaymentCommandHandler_Handle_EmptyOrder(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newCreatedOrder(t, ownerID)
	cmd, _ := commands.NewReleasePaymentCommand(aggregate.ID(), ownerID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyingUoWFactory)
	factory.On("Create").Return(uow).Once()

	queue := new(MockNotificationQueue)
	contacts := new(MockContactDirectory)
	notifier := commands.NewTransitionNotifier(contacts, queue, new(MockOutboxRepository), "sms", discardLogger())

	h := commands.NewReleasePaymentCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrEmptyOrder)
	require.Equal(t, order.Created, aggregate.Status())
	uow.AssertNotCalled(t, "Commit", ctx)
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
}

func TestReleaseDeliveryCommandHandler_Handle_WrongSequence(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newCreatedOrder(t, ownerID) // still Created, cannot ship
	cmd, _ := commands.NewReleaseDeliveryCommand(aggregate.ID(), ownerID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := commands.NewTransitionNotifier(
		new(MockContactDirectory), new(MockNotificationQueue), new(MockOutboxRepository), "sms", discardLogger())

	h := commands.NewReleaseDeliveryCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrWrongSequence)
	uow.AssertNotCalled(t, "Commit", ctx)
}

func TestCancelOrderCommandHandler_Handle_ContactLookupFailureStillCommits(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	aggregate := newCreatedOrder(t, ownerID)
	cmd, _ := commands.NewCancelOrderCommand(aggregate.ID(), ownerID)

	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("NotificationOutboxRepository").Return(new(MockOutboxRepository)).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyingUoWFactory)
	factory.On("Create").Return(uow).Once()

	contacts := new(MockContactDirectory)
	contacts.On("GetPhone", ctx, ownerID).
		Return(kernel.Phone{}, errors.New("directory timeout")).Once()

	queue := new(MockNotificationQueue)
	notifier := commands.NewTransitionNotifier(contacts, queue, new(MockOutboxRepository), "sms", discardLogger())

	h := commands.NewCancelOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, order.Cancelled, aggregate.Status())
	queue.AssertNotCalled(t, "Enqueue", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestFinishOrderCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	orderID := kernel.NewUUID()
	cmd, _ := commands.NewFinishOrderCommand(orderID, kernel.NewUUID())

	notFound := errors.New("order missing")
	repo := new(MockOrderRepository)
	uow := new(MockOrderUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Get", ctx, orderID).Return(nil, notFound).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockNotifyingUoWFactory)
	factory.On("Create").Return(uow).Once()

	notifier := commands.NewTransitionNotifier(
		new(MockContactDirectory), new(MockNotificationQueue), new(MockOutboxRepository), "sms", discardLogger())

	h := commands.NewFinishOrderCommandHandler(factory, notifier)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, notFound)
}
