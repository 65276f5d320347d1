package order

import "errors"

// Domain validation errors of the order lifecycle. Callers match them with
// errors.Is; the boundary layer maps each to a stable client-facing code.
// None of them is retryable: re-running a violated business rule cannot
// succeed.
var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrInvalidQuantity is returned when a line quantity is not positive.
	ErrInvalidQuantity = errors.New("quantity must be greater than 0")

	// ErrCannotAddProduct is returned when adding a product to an order that
	// has progressed beyond Created. Distinct from ErrWrongSequence so the
	// caller can tell "order already progressed" from a malformed transition.
	ErrCannotAddProduct = errors.New("products can only be added while the order is in Created status")

	// ErrCannotRemoveProduct is the removal counterpart of ErrCannotAddProduct.
	ErrCannotRemoveProduct = errors.New("products can only be removed while the order is in Created status")

	// ErrWrongSequence is returned when a status transition does not follow
	// the lifecycle graph.
	ErrWrongSequence = errors.New("status transition violates the order lifecycle")

	// ErrEmptyOrder is returned when releasing payment for an order whose
	// total is zero.
	ErrEmptyOrder = errors.New("order with zero total cannot be paid")
)
