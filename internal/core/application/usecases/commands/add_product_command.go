package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrAddProductCommandIsNotConstructed = errors.New(
	"AddProductCommand must be created via NewAddProductCommand constructor",
)

// AddProductCommand represents a request to add quantity units of a catalog
// product to an order. The unit price is resolved from the catalog by the
// handler and snapshotted on the line at that moment.
type AddProductCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	ownerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewAddProductCommand creates a command to add a product to an order.
// Quantity must be positive; identifiers must be valid UUIDs.
func NewAddProductCommand(orderID, ownerID, productID kernel.UUID, quantity int) (AddProductCommand, error) {
	cmd := AddProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c AddProductCommand) Validate() error {
	return c.guard.Validate(ErrAddProductCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c AddProductCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the customer issuing the command.
func (c AddProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ProductID returns the catalog product to add.
func (c AddProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to add.
func (c AddProductCommand) Quantity() int {
	return c.quantity
}

func (c *AddProductCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *AddProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *AddProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *AddProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return order.ErrInvalidQuantity
	}
	c.quantity = quantity
	return nil
}
