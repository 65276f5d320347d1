package jobs

import (
	"context"
	"log/slog"

	"storefront/internal/core/ports"

	"github.com/robfig/cron/v3"
)

// relayBatchSize caps the rows processed per relay tick. A backlog bigger
// than one batch drains over successive ticks.
const relayBatchSize = 100

// OutboxRelayJob republishes notification jobs whose post-commit enqueue
// failed. Runs every ten seconds: fetches pending outbox rows, pushes them
// to the queue and marks accepted ones sent. Together with the outbox insert
// this makes notification submission at-least-once.
type OutboxRelayJob struct {
	outbox ports.NotificationOutboxRepository
	queue  ports.NotificationQueue
	cron   *cron.Cron
	logger *slog.Logger
}

// NewOutboxRelayJob creates a new relay job over the outbox and the queue.
func NewOutboxRelayJob(
	outbox ports.NotificationOutboxRepository,
	queue ports.NotificationQueue,
	logger *slog.Logger,
) *OutboxRelayJob {
	return &OutboxRelayJob{
		outbox: outbox,
		queue:  queue,
		cron:   cron.New(cron.WithSeconds()),
		logger: logger.With("component", "outbox_relay_job"),
	}
}

// Start begins the relay job, running every ten seconds.
func (j *OutboxRelayJob) Start() error {
	_, err := j.cron.AddFunc("*/10 * * * * *", func() {
		ctx := context.Background()
		j.relay(ctx)
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started (running every ten seconds)")
	return nil
}

// Stop stops the relay job.
func (j *OutboxRelayJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) relay(ctx context.Context) {
	pending, err := j.outbox.FetchPending(ctx, relayBatchSize)
	if err != nil {
		j.logger.ErrorContext(ctx, "Failed to fetch pending notification jobs", "error", err)
		return
	}

	for _, job := range pending {
		if err = j.queue.Enqueue(ctx, job); err != nil {
			// Broker still down. The rows stay pending; next tick retries.
			j.logger.WarnContext(ctx, "Relay enqueue failed", "job_id", job.ID, "error", err)
			return
		}

		if err = j.outbox.MarkSent(ctx, job.ID); err != nil {
			j.logger.WarnContext(ctx, "Failed to mark relayed job sent; it may be republished",
				"job_id", job.ID, "error", err)
		}
	}

	if len(pending) > 0 {
		j.logger.InfoContext(ctx, "Relayed pending notification jobs", "count", len(pending))
	}
}
