package commands

import (
	"context"

	"storefront/internal/core/ports"
)

// AddProductCommandHandler adds products to an editable order. The catalog
// gateway resolves the unit price at the moment of the add; the aggregate
// snapshots it on the line.
//
// Example:
//
//	handler := NewAddProductCommandHandler(uowFactory, catalog)
//	cmd, _ := NewAddProductCommand(orderID, ownerID, productID, 2)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrCannotAddProduct):
//	    // Order already progressed past Created
//	case errors.Is(err, errs.ErrObjectNotFound):
//	    // Unknown order or product
//	}
type AddProductCommandHandler struct {
	uowFactory OrderUoWFactory
	catalog    ports.CatalogGateway
}

// NewAddProductCommandHandler creates a handler for product additions.
func NewAddProductCommandHandler(uowFactory OrderUoWFactory, catalog ports.CatalogGateway) AddProductCommandHandler {
	return AddProductCommandHandler{
		uowFactory: uowFactory,
		catalog:    catalog,
	}
}

// Handle processes the add-product command. The price lookup happens before
// the transaction opens; the order row is then locked, mutated and saved.
func (h AddProductCommandHandler) Handle(ctx context.Context, cmd AddProductCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	unitPrice, err := h.catalog.GetUnitPrice(ctx, cmd.ProductID())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
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

	if err = aggregate.AddLine(cmd.ProductID(), cmd.Quantity(), unitPrice); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
