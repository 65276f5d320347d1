package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/pkg/guard"
)

var ErrRemoveProductCommandIsNotConstructed = errors.New(
	"RemoveProductCommand must be created via NewRemoveProductCommand constructor",
)

// RemoveProductCommand represents a request to remove quantity units of a
// product from an order. Removing a product that is not in the order is a
// no-op. Removal is always priced at the line's snapshot price, so no
// catalog lookup is involved.
type RemoveProductCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	ownerID   kernel.UUID
	productID kernel.UUID
	quantity  int

	guard guard.ConstructorGuard
}

// NewRemoveProductCommand creates a command to remove a product from an order.
// Quantity must be positive; identifiers must be valid UUIDs.
func NewRemoveProductCommand(orderID, ownerID, productID kernel.UUID, quantity int) (RemoveProductCommand, error) {
	cmd := RemoveProductCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
		cmd.setProductID(productID),
		cmd.setQuantity(quantity),
	); err != nil {
		return RemoveProductCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveProductCommand) Validate() error {
	return c.guard.Validate(ErrRemoveProductCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveProductCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the customer issuing the command.
func (c RemoveProductCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

// ProductID returns the catalog product to remove.
func (c RemoveProductCommand) ProductID() kernel.UUID {
	return c.productID
}

// Quantity returns the number of units to remove.
func (c RemoveProductCommand) Quantity() int {
	return c.quantity
}

func (c *RemoveProductCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveProductCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}

func (c *RemoveProductCommand) setProductID(productID kernel.UUID) error {
	if err := productID.Validate(); err != nil {
		return err
	}
	c.productID = productID
	return nil
}

func (c *RemoveProductCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return order.ErrInvalidQuantity
	}
	c.quantity = quantity
	return nil
}
