package ports

import (
	"context"
	"errors"

	"storefront/internal/core/domain/model/kernel"
)

// ErrQueueUnavailable signals a dispatch infrastructure failure: the broker
// did not accept the job at all. It is the only notification error the
// enqueuing side ever sees; per-recipient delivery failures stay inside the
// dispatcher. Enqueue failures are retried via the notification outbox.
var ErrQueueUnavailable = errors.New("notification queue unavailable")

// NotificationJob is the unit of asynchronous outbound-message work crossing
// the queue boundary. One job covers one or more recipients; delivery is
// at-least-once, so the message content must be duplicate-tolerant.
type NotificationJob struct {
	// ID identifies the job across redeliveries.
	ID string `json:"id"`

	// OrderID is the order whose transition produced the job.
	OrderID string `json:"order_id"`

	// Recipients are the phone numbers to deliver to, in +<digits> format.
	Recipients []string `json:"recipients"`

	// Message is the templated text, identical for every recipient.
	Message string `json:"message"`

	// SenderKey selects the configured sender capability, e.g. "log".
	SenderKey string `json:"sender_key"`
}

// NewNotificationJob builds a job for one order transition, validating every
// recipient's phone format. At least one recipient is required.
func NewNotificationJob(orderID kernel.UUID, recipients []kernel.Phone, message, senderKey string) (NotificationJob, error) {
	if len(recipients) == 0 {
		return NotificationJob{}, errors.New("at least one recipient must be provided")
	}
	if message == "" {
		return NotificationJob{}, errors.New("message must not be empty")
	}

	numbers := make([]string, 0, len(recipients))
	for _, phone := range recipients {
		if err := phone.Validate(); err != nil {
			return NotificationJob{}, err
		}
		numbers = append(numbers, phone.String())
	}

	return NotificationJob{
		ID:         kernel.NewUUID().String(),
		OrderID:    orderID.String(),
		Recipients: numbers,
		Message:    message,
		SenderKey:  senderKey,
	}, nil
}

// NotificationQueue is the injected message-queue client used to hand
// notification jobs to the dispatch worker without blocking the caller.
// Implementations own connection lifecycle explicitly: Connect before the
// first Enqueue, Close on shutdown.
type NotificationQueue interface {
	// Connect establishes the broker connection.
	Connect(ctx context.Context) error

	// Enqueue submits a job for asynchronous delivery and returns as soon as
	// the broker accepts it. Failure to accept surfaces as an error wrapping
	// ErrQueueUnavailable; it never reports anything about actual delivery.
	Enqueue(ctx context.Context, job NotificationJob) error

	// Close releases the broker connection.
	Close() error
}
