package order

import (
	"storefront/internal/core/domain/model/kernel"
)

// Line is a (product, quantity) pairing within an order. The unit price is
// snapshotted when the product is first added and never re-fetched from the
// catalog: later catalog price changes do not retroactively affect the total,
// and removals are priced at the same snapshot.
//
// A Line always has a positive quantity; the aggregate deletes a line before
// it would reach zero.
type Line struct {
	productID kernel.UUID
	quantity  int
	unitPrice kernel.Price
}

// NewLine creates a line for a first-time product addition.
func NewLine(productID kernel.UUID, quantity int, unitPrice kernel.Price) (Line, error) {
	if err := productID.Validate(); err != nil {
		return Line{}, err
	}
	if quantity <= 0 {
		return Line{}, ErrInvalidQuantity
	}
	return Line{productID: productID, quantity: quantity, unitPrice: unitPrice}, nil
}

// ProductID returns the catalog product this line refers to.
func (l Line) ProductID() kernel.UUID {
	return l.productID
}

// Quantity returns the number of units of the product.
func (l Line) Quantity() int {
	return l.quantity
}

// UnitPrice returns the price snapshot captured when the line was created.
func (l Line) UnitPrice() kernel.Price {
	return l.unitPrice
}

// Subtotal returns quantity × snapshot unit price.
func (l Line) Subtotal() kernel.Price {
	return l.unitPrice.MulQuantity(l.quantity)
}
