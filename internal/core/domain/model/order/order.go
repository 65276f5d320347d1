package order

import (
	"errors"
	"time"

	"storefront/internal/core/domain/model/kernel"
)

// Order is the aggregate root of a customer's purchase request. It owns its
// line items exclusively and is the only place where the order total and the
// lifecycle status may change.
//
// Order maintains these invariants:
//   - TotalPrice always equals the sum of quantity × snapshot unit price over
//     all surviving lines, and is never negative
//   - Lines may only be mutated while the status is Created
//   - Status only moves along the lifecycle graph defined by Status; terminal
//     states absorb every further transition attempt
//   - An order with a zero total never transitions Created -> Paid
//   - No zero-quantity line is ever kept
//
// The aggregate is notification-agnostic: emitting messages on transitions is
// the command layer's concern, which keeps Order independently testable.
//
// Order is not safe for concurrent use; callers serialize access per order
// (the repository does so with a row lock inside the unit of work).
type Order struct {
	id         kernel.UUID
	owner      kernel.UUID
	status     Status
	totalPrice kernel.Price
	lines      map[kernel.UUID]Line
	createdAt  time.Time
	updatedAt  time.Time

	isConstructed bool
}

// NewOrder creates an empty order for the given owner: no lines, zero total,
// Created status. Timestamps are server-assigned.
func NewOrder(id kernel.UUID, owner kernel.UUID) (*Order, error) {
	now := time.Now().UTC()
	o := &Order{
		status:        Created,
		totalPrice:    kernel.ZeroPrice(),
		lines:         make(map[kernel.UUID]Line),
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setOwner(owner),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// trusted as-is; status and identifiers are re-validated so a corrupted row
// cannot produce an invariant-breaking aggregate.
func RestoreOrder(
	id kernel.UUID,
	owner kernel.UUID,
	status Status,
	totalPrice kernel.Price,
	lines []Line,
	createdAt time.Time,
	updatedAt time.Time,
) (*Order, error) {
	if err := errors.Join(
		id.Validate(),
		owner.Validate(),
		status.Validate(),
	); err != nil {
		return nil, err
	}

	lineMap := make(map[kernel.UUID]Line, len(lines))
	for _, line := range lines {
		if line.Quantity() <= 0 {
			return nil, ErrInvalidQuantity
		}
		lineMap[line.ProductID()] = line
	}

	return &Order{
		id:            id,
		owner:         owner,
		status:        status,
		totalPrice:    totalPrice,
		lines:         lineMap,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order was created through NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by identity.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Owner returns the identifier of the user who created the order.
func (o *Order) Owner() kernel.UUID {
	return o.owner
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// TotalPrice returns the running total over all surviving lines.
func (o *Order) TotalPrice() kernel.Price {
	return o.totalPrice
}

// Lines returns a copy of the order's line items. Iteration order is
// unspecified, mirroring the id -> quantity mapping semantics.
func (o *Order) Lines() []Line {
	lines := make([]Line, 0, len(o.lines))
	for _, line := range o.lines {
		lines = append(lines, line)
	}
	return lines
}

// Line returns the line for a product, if present.
func (o *Order) Line(productID kernel.UUID) (Line, bool) {
	line, ok := o.lines[productID]
	return line, ok
}

// CreatedAt returns the server-assigned creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns the timestamp of the last successful mutation.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// AddLine adds quantity units of a product at the given catalog unit price.
//
// If a line for the product already exists, the quantity accumulates and the
// addition is charged at the line's original snapshot price, keeping the
// total equal to the sum of line subtotals. A new product snapshots the
// price passed in.
//
// Fails with ErrInvalidQuantity for non-positive quantities and with
// ErrCannotAddProduct once the order has left Created status.
func (o *Order) AddLine(productID kernel.UUID, quantity int, unitPrice kernel.Price) error {
	if !o.status.AllowsLineMutation() {
		return ErrCannotAddProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	line, exists := o.lines[productID]
	if exists {
		line.quantity += quantity
	} else {
		newLine, err := NewLine(productID, quantity, unitPrice)
		if err != nil {
			return err
		}
		line = newLine
	}

	o.lines[productID] = line
	o.totalPrice = o.totalPrice.Add(line.unitPrice.MulQuantity(quantity))
	o.touch()
	return nil
}

// RemoveLine removes up to quantity units of a product.
//
// Removing a product that is not in the order is a no-op, not an error.
// Removing at least the line's full quantity deletes the line; a partial
// removal decrements it. The removed amount is always priced at the line's
// snapshot unit price and the total is floored at zero.
//
// Fails with ErrInvalidQuantity for non-positive quantities and with
// ErrCannotRemoveProduct once the order has left Created status.
func (o *Order) RemoveLine(productID kernel.UUID, quantity int) error {
	if !o.status.AllowsLineMutation() {
		return ErrCannotRemoveProduct
	}
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	line, exists := o.lines[productID]
	if !exists {
		return nil
	}

	removed := quantity
	if quantity >= line.quantity {
		removed = line.quantity
		delete(o.lines, productID)
	} else {
		line.quantity -= quantity
		o.lines[productID] = line
	}

	o.totalPrice = o.totalPrice.SubFloorZero(line.unitPrice.MulQuantity(removed))
	o.touch()
	return nil
}

// ClearLines deletes all lines and resets the total to zero.
//
// Clearing is guarded on Created status like every other line mutation and
// fails with ErrCannotRemoveProduct otherwise.
func (o *Order) ClearLines() error {
	if !o.status.AllowsLineMutation() {
		return ErrCannotRemoveProduct
	}

	o.lines = make(map[kernel.UUID]Line)
	o.totalPrice = kernel.ZeroPrice()
	o.touch()
	return nil
}

// Pay releases payment for the order, moving it Created -> Paid.
// An order with a zero total fails with ErrEmptyOrder before any mutation.
func (o *Order) Pay() error {
	if o.status == Created && o.totalPrice.IsZero() {
		return ErrEmptyOrder
	}

	newStatus, err := o.status.Pay()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Ship releases delivery for the order, moving it Paid -> Shipped.
func (o *Order) Ship() error {
	newStatus, err := o.status.Ship()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Finish closes the order, moving it Shipped -> Finished.
func (o *Order) Finish() error {
	newStatus, err := o.status.Finish()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

// Cancel abandons the order from any non-terminal status. Cancellation is a
// terminal status change, not a deletion: the order and its lines survive.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.touch()
	return nil
}

func (o *Order) touch() {
	o.updatedAt = time.Now().UTC()
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setOwner(owner kernel.UUID) error {
	if err := owner.Validate(); err != nil {
		return err
	}
	o.owner = owner
	return nil
}
