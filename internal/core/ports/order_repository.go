// Package ports defines the contracts between the application core and
// infrastructure: persistence, the catalog collaborator and the notification
// queue. These interfaces enable dependency inversion and testability.
package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates,
// including their line items.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. Line rows are
	// replaced to mirror the aggregate's current lines exactly.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier, locking the
	// order row for the duration of the surrounding transaction. The lock
	// serializes concurrent commands against the same order; commands on
	// different orders proceed in parallel.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
