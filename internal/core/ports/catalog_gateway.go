package ports

import (
	"context"

	"storefront/internal/core/domain/model/kernel"
)

// CatalogGateway is the external catalog collaborator consumed by the order
// core. Only the price-lookup capability is required here; catalog listing,
// pagination and caching live outside this system.
type CatalogGateway interface {
	// GetUnitPrice resolves the current unit price of a product.
	// Returns an error unwrapping to errs.ErrObjectNotFound when the product
	// does not exist.
	GetUnitPrice(ctx context.Context, productID kernel.UUID) (kernel.Price, error)
}

// ContactDirectory resolves the notification contact of an order owner.
// The authentication/user subsystem owning phone numbers is outside this
// core; commands only need "owner id -> phone".
type ContactDirectory interface {
	// GetPhone returns the owner's phone number.
	// Returns an error unwrapping to errs.ErrObjectNotFound for unknown users.
	GetPhone(ctx context.Context, ownerID kernel.UUID) (kernel.Phone, error)
}
