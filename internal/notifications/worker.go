package notifications

import (
	"context"
	"errors"
	"log/slog"

	"storefront/internal/core/ports"

	"golang.org/x/sync/errgroup"
)

// ErrMalformedJob is returned by a JobSource for a message that cannot be
// decoded into a job. The source has already acknowledged the message; the
// worker logs it and moves on.
var ErrMalformedJob = errors.New("malformed notification job")

// Delivery is one job pulled from the queue together with its
// acknowledgement. Ack must be called only after the job is handled, so a
// crash mid-job redelivers it.
type Delivery struct {
	Job ports.NotificationJob
	Ack func(ctx context.Context) error
}

// Worker consumes jobs from the queue and runs them through the dispatcher
// with bounded concurrency. Recipients within one job are handled by the
// dispatcher; the worker's unit of parallelism is the job.
type Worker struct {
	source     JobSource
	dispatcher Dispatcher
	maxJobs    int
	logger     *slog.Logger
}

// JobSource is the consuming side of the notification queue.
type JobSource interface {
	// Fetch blocks until the next job arrives or the context ends.
	Fetch(ctx context.Context) (Delivery, error)

	// Close stops the source.
	Close() error
}

// NewWorker creates a worker. maxJobs bounds concurrently dispatched jobs.
func NewWorker(source JobSource, dispatcher Dispatcher, maxJobs int, logger *slog.Logger) *Worker {
	if maxJobs < 1 {
		maxJobs = 1
	}
	return &Worker{
		source:     source,
		dispatcher: dispatcher,
		maxJobs:    maxJobs,
		logger:     logger.With("component", "notification_worker"),
	}
}

// Run consumes until the context is cancelled. It returns the context's
// error after in-flight jobs finish; fetch errors other than cancellation
// are logged and retried.
func (w *Worker) Run(ctx context.Context) error {
	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(w.maxJobs)

	for {
		delivery, err := w.source.Fetch(groupCtx)
		if err != nil {
			if groupCtx.Err() != nil {
				break
			}
			if errors.Is(err, ErrMalformedJob) {
				w.logger.ErrorContext(groupCtx, "Dropped malformed job", "error", err)
				continue
			}
			w.logger.ErrorContext(groupCtx, "Fetch failed", "error", err)
			continue
		}

		group.Go(func() error {
			w.handle(groupCtx, delivery)
			return nil
		})
	}

	_ = group.Wait()
	return ctx.Err()
}

func (w *Worker) handle(ctx context.Context, delivery Delivery) {
	result, err := w.dispatcher.Dispatch(ctx, delivery.Job)
	if err != nil {
		// Job-level failure: an unknown sender key will not fix itself on
		// redelivery, so acknowledge and log.
		w.logger.ErrorContext(ctx, "Job dispatch failed",
			"job_id", delivery.Job.ID, "order_id", delivery.Job.OrderID, "error", err)
	} else {
		w.logger.InfoContext(ctx, "Job dispatched",
			"job_id", delivery.Job.ID,
			"order_id", delivery.Job.OrderID,
			"delivered", len(result.Successes),
			"failed", len(result.Failures))
	}

	if ackErr := delivery.Ack(ctx); ackErr != nil {
		w.logger.WarnContext(ctx, "Failed to acknowledge job; it will be redelivered",
			"job_id", delivery.Job.ID, "error", ackErr)
	}
}
