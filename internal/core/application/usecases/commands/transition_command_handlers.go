package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// transitionExecutor runs the shared three-step transition flow:
// guard + status mutation on the locked aggregate, persistence with the
// notification job parked in the same transaction, then post-commit publish.
// The publish never affects the committed transition.
type transitionExecutor struct {
	uowFactory NotifyingUoWFactory
	notifier   TransitionNotifier
}

func (e transitionExecutor) execute(
	ctx context.Context,
	orderID kernel.UUID,
	ownerID kernel.UUID,
	transition func(*order.Order) error,
) error {
	uow := e.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := loadOwnedOrder(ctx, repo, orderID, ownerID)
	if err != nil {
		return err
	}

	if err = transition(aggregate); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	job, hasJob := e.notifier.Prepare(ctx, aggregate, uow.NotificationOutboxRepository())

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if hasJob {
		e.notifier.Publish(job)
	}

	return nil
}

// ReleasePaymentCommandHandler executes the Created -> Paid transition and
// notifies the order owner.
//
// Example:
//
//	handler := NewReleasePaymentCommandHandler(uowFactory, notifier)
//	cmd, _ := NewReleasePaymentCommand(orderID, ownerID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrEmptyOrder):
//	    // Nothing in the order, nothing to pay for
//	case errors.Is(err, order.ErrWrongSequence):
//	    // Order is not in Created status
//	}
type ReleasePaymentCommandHandler struct {
	exec transitionExecutor
}

// NewReleasePaymentCommandHandler creates a handler for payment release.
func NewReleasePaymentCommandHandler(uowFactory NotifyingUoWFactory, notifier TransitionNotifier) ReleasePaymentCommandHandler {
	return ReleasePaymentCommandHandler{
		exec: transitionExecutor{uowFactory: uowFactory, notifier: notifier},
	}
}

// Handle processes the release-payment command.
func (h ReleasePaymentCommandHandler) Handle(ctx context.Context, cmd ReleasePaymentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.exec.execute(ctx, cmd.OrderID(), cmd.OwnerID(), (*order.Order).Pay)
}

// ReleaseDeliveryCommandHandler executes the Paid -> Shipped transition and
// notifies the order owner.
type ReleaseDeliveryCommandHandler struct {
	exec transitionExecutor
}

// NewReleaseDeliveryCommandHandler creates a handler for delivery release.
func NewReleaseDeliveryCommandHandler(uowFactory NotifyingUoWFactory, notifier TransitionNotifier) ReleaseDeliveryCommandHandler {
	return ReleaseDeliveryCommandHandler{
		exec: transitionExecutor{uowFactory: uowFactory, notifier: notifier},
	}
}

// Handle processes the release-delivery command.
func (h ReleaseDeliveryCommandHandler) Handle(ctx context.Context, cmd ReleaseDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.exec.execute(ctx, cmd.OrderID(), cmd.OwnerID(), (*order.Order).Ship)
}

// FinishOrderCommandHandler executes the Shipped -> Finished transition and
// notifies the order owner.
type FinishOrderCommandHandler struct {
	exec transitionExecutor
}

// NewFinishOrderCommandHandler creates a handler for finishing orders.
func NewFinishOrderCommandHandler(uowFactory NotifyingUoWFactory, notifier TransitionNotifier) FinishOrderCommandHandler {
	return FinishOrderCommandHandler{
		exec: transitionExecutor{uowFactory: uowFactory, notifier: notifier},
	}
}

// Handle processes the finish-order command.
func (h FinishOrderCommandHandler) Handle(ctx context.Context, cmd FinishOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.exec.execute(ctx, cmd.OrderID(), cmd.OwnerID(), (*order.Order).Finish)
}

// CancelOrderCommandHandler cancels an order from any non-terminal status
// and notifies the order owner. Cancellation is a terminal status change,
// never a deletion.
type CancelOrderCommandHandler struct {
	exec transitionExecutor
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory NotifyingUoWFactory, notifier TransitionNotifier) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		exec: transitionExecutor{uowFactory: uowFactory, notifier: notifier},
	}
}

// Handle processes the cancel-order command.
func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return h.exec.execute(ctx, cmd.OrderID(), cmd.OwnerID(), (*order.Order).Cancel)
}
