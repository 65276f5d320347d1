package commands

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/ports"
	"storefront/internal/pkg/errs"
)

// loadOwnedOrder loads an order and verifies it belongs to the caller.
// An order owned by someone else reports the same ObjectNotFound as a
// missing order, so callers cannot probe for other customers' order ids.
func loadOwnedOrder(
	ctx context.Context,
	repo ports.OrderRepository,
	orderID kernel.UUID,
	ownerID kernel.UUID,
) (*order.Order, error) {
	aggregate, err := repo.Get(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !aggregate.Owner().IsEqual(ownerID) {
		return nil, errs.NewObjectNotFoundError("order", orderID.String())
	}

	return aggregate, nil
}
