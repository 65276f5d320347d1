package commands

import (
	"errors"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/pkg/guard"
)

// The four lifecycle transition commands share the same payload: which
// order, on whose behalf. They stay distinct types so each handler and each
// boundary route binds to exactly one transition.

var (
	ErrReleasePaymentCommandIsNotConstructed = errors.New(
		"ReleasePaymentCommand must be created via NewReleasePaymentCommand constructor",
	)
	ErrReleaseDeliveryCommandIsNotConstructed = errors.New(
		"ReleaseDeliveryCommand must be created via NewReleaseDeliveryCommand constructor",
	)
	ErrFinishOrderCommandIsNotConstructed = errors.New(
		"FinishOrderCommand must be created via NewFinishOrderCommand constructor",
	)
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// orderScope carries the order/owner pair common to all transition commands.
type orderScope struct {
	orderID kernel.UUID
	ownerID kernel.UUID

	guard guard.ConstructorGuard
}

func newOrderScope(orderID, ownerID kernel.UUID) (orderScope, error) {
	if err := errors.Join(orderID.Validate(), ownerID.Validate()); err != nil {
		return orderScope{}, err
	}
	return orderScope{
		orderID: orderID,
		ownerID: ownerID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// OrderID returns the target order's identifier.
func (s orderScope) OrderID() kernel.UUID {
	return s.orderID
}

// OwnerID returns the identifier of the customer issuing the command.
func (s orderScope) OwnerID() kernel.UUID {
	return s.ownerID
}

// ReleasePaymentCommand requests the Created -> Paid transition.
// Fails with order.ErrEmptyOrder when the order total is zero.
type ReleasePaymentCommand struct {
	orderScope
}

// NewReleasePaymentCommand creates a command to release payment for an order.
func NewReleasePaymentCommand(orderID, ownerID kernel.UUID) (ReleasePaymentCommand, error) {
	scope, err := newOrderScope(orderID, ownerID)
	if err != nil {
		return ReleasePaymentCommand{}, err
	}
	return ReleasePaymentCommand{orderScope: scope}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleasePaymentCommand) Validate() error {
	return c.guard.Validate(ErrReleasePaymentCommandIsNotConstructed)
}

// ReleaseDeliveryCommand requests the Paid -> Shipped transition.
type ReleaseDeliveryCommand struct {
	orderScope
}

// NewReleaseDeliveryCommand creates a command to release delivery for an order.
func NewReleaseDeliveryCommand(orderID, ownerID kernel.UUID) (ReleaseDeliveryCommand, error) {
	scope, err := newOrderScope(orderID, ownerID)
	if err != nil {
		return ReleaseDeliveryCommand{}, err
	}
	return ReleaseDeliveryCommand{orderScope: scope}, nil
}

// Validate ensures the command was created through the constructor.
func (c ReleaseDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrReleaseDeliveryCommandIsNotConstructed)
}

// FinishOrderCommand requests the Shipped -> Finished transition.
type FinishOrderCommand struct {
	orderScope
}

// NewFinishOrderCommand creates a command to close a delivered order.
func NewFinishOrderCommand(orderID, ownerID kernel.UUID) (FinishOrderCommand, error) {
	scope, err := newOrderScope(orderID, ownerID)
	if err != nil {
		return FinishOrderCommand{}, err
	}
	return FinishOrderCommand{orderScope: scope}, nil
}

// Validate ensures the command was created through the constructor.
func (c FinishOrderCommand) Validate() error {
	return c.guard.Validate(ErrFinishOrderCommandIsNotConstructed)
}

// CancelOrderCommand requests cancellation from any non-terminal status.
type CancelOrderCommand struct {
	orderScope
}

// NewCancelOrderCommand creates a command to cancel an order.
func NewCancelOrderCommand(orderID, ownerID kernel.UUID) (CancelOrderCommand, error) {
	scope, err := newOrderScope(orderID, ownerID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderScope: scope}, nil
}

// Validate ensures the command was created through the constructor.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
