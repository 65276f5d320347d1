package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

var ErrRemoveAllProductsCommandIsNotConstructed = errors.New(
	"RemoveAllProductsCommand must be created via NewRemoveAllProductsCommand constructor",
)

// RemoveAllProductsCommand represents a request to empty an order: all lines
// deleted, total reset to zero. Like every line mutation it is only allowed
// while the order is in Created status.
type RemoveAllProductsCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveAllProductsCommand creates a command to empty an order.
func NewRemoveAllProductsCommand(orderID, ownerID kernel.UUID) (RemoveAllProductsCommand, error) {
	cmd := RemoveAllProductsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setOwnerID(ownerID),
	); err != nil {
		return RemoveAllProductsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c RemoveAllProductsCommand) Validate() error {
	return c.guard.Validate(ErrRemoveAllProductsCommandIsNotConstructed)
}

// OrderID returns the target order's identifier.
func (c RemoveAllProductsCommand) OrderID() kernel.UUID {
	return c.orderID
}

// OwnerID returns the identifier of the customer issuing the command.
func (c RemoveAllProductsCommand) OwnerID() kernel.UUID {
	return c.ownerID
}

func (c *RemoveAllProductsCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *RemoveAllProductsCommand) setOwnerID(ownerID kernel.UUID) error {
	if err := ownerID.Validate(); err != nil {
		return err
	}
	c.ownerID = ownerID
	return nil
}
