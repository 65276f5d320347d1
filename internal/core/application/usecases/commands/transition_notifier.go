package commands

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"storefront/internal/core/domain/model/kernel"
	"storefront/internal/core/domain/model/order"
	"storefront/internal/core/domain/services"
	"storefront/internal/core/ports"
)

// enqueueTimeout bounds the post-commit broker publish. A slow broker only
// delays its own goroutine; the relay job picks up anything that missed it.
const enqueueTimeout = 5 * time.Second

// TransitionNotifier turns a committed order transition into a notification
// job. The job is parked in the outbox inside the transition's transaction,
// then published to the queue after commit on a separate goroutine, so the
// command caller never blocks on the broker and a broker outage never rolls
// back a transition.
type TransitionNotifier struct {
	contacts  ports.ContactDirectory
	queue     ports.NotificationQueue
	outbox    ports.NotificationOutboxRepository
	composer  services.SMSComposer
	senderKey string
	logger    *slog.Logger
}

// NewTransitionNotifier creates a notifier. The outbox repository here is
// the non-transactional one, used only to mark jobs sent after commit;
// transactional inserts go through the unit of work.
func NewTransitionNotifier(
	contacts ports.ContactDirectory,
	queue ports.NotificationQueue,
	outbox ports.NotificationOutboxRepository,
	senderKey string,
	logger *slog.Logger,
) TransitionNotifier {
	return TransitionNotifier{
		contacts:  contacts,
		queue:     queue,
		outbox:    outbox,
		composer:  services.NewSMSComposer(),
		senderKey: senderKey,
		logger:    logger.With("component", "transition_notifier"),
	}
}

// Prepare composes the job for the order's new status and parks it in the
// transaction-bound outbox. Returns ok=false when no job could be built;
// the transition proceeds regardless, notification being best-effort.
func (n TransitionNotifier) Prepare(
	ctx context.Context,
	aggregate *order.Order,
	txOutbox ports.NotificationOutboxRepository,
) (ports.NotificationJob, bool) {
	message, err := n.composer.Compose(aggregate.Status(), aggregate.ID())
	if err != nil {
		n.logger.WarnContext(ctx, "No notification for transition",
			"order_id", aggregate.ID().String(), "status", aggregate.Status().String(), "error", err)
		return ports.NotificationJob{}, false
	}

	phone, err := n.contacts.GetPhone(ctx, aggregate.Owner())
	if err != nil {
		n.logger.WarnContext(ctx, "Owner contact unavailable, skipping notification",
			"order_id", aggregate.ID().String(), "owner", aggregate.Owner().String(), "error", err)
		return ports.NotificationJob{}, false
	}

	job, err := ports.NewNotificationJob(aggregate.ID(), []kernel.Phone{phone}, message, n.senderKey)
	if err != nil {
		n.logger.WarnContext(ctx, "Notification job rejected",
			"order_id", aggregate.ID().String(), "error", err)
		return ports.NotificationJob{}, false
	}

	if err = txOutbox.Add(ctx, job); err != nil {
		n.logger.ErrorContext(ctx, "Failed to park notification job",
			"order_id", aggregate.ID().String(), "error", err)
		return ports.NotificationJob{}, false
	}

	return job, true
}

// Publish hands the job to the queue without blocking the caller. On broker
// acceptance the outbox row is marked sent; on failure the row stays pending
// and the relay job retries it.
func (n TransitionNotifier) Publish(job ports.NotificationJob) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
		defer cancel()

		if err := n.queue.Enqueue(ctx, job); err != nil {
			if errors.Is(err, ports.ErrQueueUnavailable) {
				n.logger.WarnContext(ctx, "Queue unavailable, job left for relay",
					"job_id", job.ID, "order_id", job.OrderID)
			} else {
				n.logger.ErrorContext(ctx, "Notification enqueue failed",
					"job_id", job.ID, "order_id", job.OrderID, "error", err)
			}
			return
		}

		if err := n.outbox.MarkSent(ctx, job.ID); err != nil {
			// The relay may republish the job; delivery is at-least-once.
			n.logger.WarnContext(ctx, "Failed to mark notification job sent",
				"job_id", job.ID, "error", err)
		}
	}()
}
