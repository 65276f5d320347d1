package queries

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New(
	"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
)

// GetOrdersQuery retrieves summaries of all orders belonging to one
// customer, newest first.
type GetOrdersQuery struct {
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query listing a customer's orders.
func NewGetOrdersQuery(ownerID kernel.UUID) (GetOrdersQuery, error) {
	if err := ownerID.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	return GetOrdersQuery{
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OwnerID returns the identifier of the requesting customer.
func (q GetOrdersQuery) OwnerID() kernel.UUID {
	return q.ownerID
}

// GetOrdersQueryResponse is a summary row of one order, without line items.
type GetOrdersQueryResponse struct {
	ID         kernel.UUID
	Status     string
	TotalPrice kernel.Price
	ItemCount  int
	CreatedAt  time.Time
}
