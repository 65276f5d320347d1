package ports

import (
	"context"
)

// NotificationOutboxRepository persists notification jobs alongside the
// order transition that produced them, inside the same transaction. A job is
// marked sent once the broker accepts it; unsent rows are periodically
// relayed. This makes notification submission at-least-once: a crash between
// enqueue and mark produces a duplicate, never a loss.
type NotificationOutboxRepository interface {
	// Add stores a pending job. Called within the transition's transaction.
	Add(ctx context.Context, job NotificationJob) error

	// MarkSent records that the broker accepted the job.
	MarkSent(ctx context.Context, jobID string) error

	// FetchPending returns up to limit jobs not yet accepted by the broker,
	// oldest first.
	FetchPending(ctx context.Context, limit int) ([]NotificationJob, error)
}
