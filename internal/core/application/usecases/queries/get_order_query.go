package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves one order with its line items, scoped to the
// requesting customer. An order owned by someone else is reported as not
// found, same as a missing one.
//
// Example:
//
//	query, err := NewGetOrderQuery(orderID, ownerID)
//	if err != nil {
//	    return fmt.Errorf("invalid query data: %w", err)
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	view, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // Unknown order, or not this customer's order
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a single order view.
// Both identifiers must be valid UUIDs.
func NewGetOrderQuery(orderID, ownerID kernel.UUID) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the requested order's identifier.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OwnerID returns the identifier of the requesting customer.
func (q GetOrderQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetOrderQueryResponse is the full read model of one order.
type GetOrderQueryResponse struct {
	ID         kernel.UUID
	Status     string
	TotalPrice kernel.Price
	Items      []OrderItemResponse
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// OrderItemResponse is one line of the order view. UnitPrice is the price
// snapshotted when the product was added, not the current catalog price.
type OrderItemResponse struct {
	ProductID kernel.UUID
	Quantity  int
	UnitPrice kernel.Price
	Subtotal  kernel.Price
}
