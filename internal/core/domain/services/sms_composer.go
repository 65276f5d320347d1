package services

import (
	"errors"
	"fmt"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
)

// ErrNoMessageForStatus is returned when a status has no customer-facing
// notification. Only committed transitions out of Created carry an SMS;
// Created itself (and invalid statuses) notify nobody.
var ErrNoMessageForStatus = errors.New("no notification message for status")

// SMSComposer is a domain service that builds the customer-facing SMS text
// for a committed order transition. The texts reference the order id so a
// redelivered message stays recognizable and duplicate-tolerant.
//
// Example usage:
//
//	composer := services.NewSMSComposer()
//	message, err := composer.Compose(order.Paid, orderID)
//	if err != nil {
//	    // Status carries no notification
//	    return
//	}
//	// Enqueue message for the order owner's phone
type SMSComposer struct{}

// NewSMSComposer creates a new SMSComposer instance.
func NewSMSComposer() SMSComposer {
	return SMSComposer{}
}

// Compose returns the message for the order having just entered newStatus.
// Returns ErrNoMessageForStatus when the status does not notify.
func (SMSComposer) Compose(newStatus order.Status, orderID kernel.UUID) (string, error) {
	switch newStatus {
	case order.Paid:
		return fmt.Sprintf("Your order %s is packed, please pay to get it.", orderID), nil
	case order.Shipped:
		return fmt.Sprintf("Your order %s is payed, wait for delivering.", orderID), nil
	case order.Finished:
		return fmt.Sprintf("Thank you for purchasing order %s!", orderID), nil
	case order.Cancelled:
		return fmt.Sprintf("Your order %s is canceled!", orderID), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrNoMessageForStatus, newStatus)
	}
}
