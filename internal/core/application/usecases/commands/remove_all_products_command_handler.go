package commands

import (
	"context"
)

// RemoveAllProductsCommandHandler empties an editable order in one operation.
type RemoveAllProductsCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewRemoveAllProductsCommandHandler creates a handler for emptying orders.
func NewRemoveAllProductsCommandHandler(uowFactory OrderUoWFactory) RemoveAllProductsCommandHandler {
	return RemoveAllProductsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the remove-all-products command.
func (h RemoveAllProductsCommandHandler) Handle(ctx context.Context, cmd RemoveAllProductsCommand) error {
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

	if err = aggregate.ClearLines(); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
