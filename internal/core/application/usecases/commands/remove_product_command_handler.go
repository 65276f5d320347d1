package commands

import (
	"context"
)

// RemoveProductCommandHandler removes products from an editable order.
type RemoveProductCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveProductCommandHandler creates a handler for product removals.
func NewRemoveProductCommandHandler(uowFactory OrderUoWFactory) RemoveProductCommandHandler {
	return RemoveProductCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-product command. A product absent from the
// order leaves the order untouched and still commits successfully.
func (h RemoveProductCommandHandler) Handle(ctx context.Context, cmd RemoveProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	aggregate, err := loadOwnedOrder(ctx, repo, cmd.OrderID(), cmd.OwnerID())
	if err != nil {
		return err
	}

	if err = aggregate.RemoveLine(cmd.ProductID(), cmd.Quantity()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
