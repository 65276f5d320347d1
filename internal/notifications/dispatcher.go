package notifications

import (
	"context"
	"log/slog"
	"time"

	"storefront/internal/core/ports"
)

// sendTimeout bounds one recipient's send attempt. A hung provider call
// turns into that recipient's failure, never a stuck job.
const sendTimeout = 10 * time.Second

// RecipientFailure records one recipient the dispatcher could not reach.
type RecipientFailure struct {
	Recipient string
	Err       error
}

// Result partitions a job's recipients by delivery outcome. Successes and
// failures are disjoint and together cover every recipient of the job.
type Result struct {
	Successes []string
	Failures  []RecipientFailure
}

// Dispatcher fans one job out to its recipients through the sender the job
// names. Recipients are independent: one failing recipient never prevents
// the remaining sends and never fails the job as a whole.
type Dispatcher struct {
	registry *SenderRegistry
	logger   *slog.Logger
}

// NewDispatcher creates a dispatcher over a populated sender registry.
func NewDispatcher(registry *SenderRegistry, logger *slog.Logger) Dispatcher {
	return Dispatcher{
		registry: registry,
		logger:   logger.With("component", "dispatcher"),
	}
}

// Dispatch delivers the job's message to every recipient. The only job-level
// failure is an unresolvable sender key; any other problem is captured as
// the affected recipient's failure in the result.
func (d Dispatcher) Dispatch(ctx context.Context, job ports.NotificationJob) (Result, error) {
	sender, err := d.registry.Resolve(job.SenderKey)
	if err != nil {
		return Result{}, err
	}

	result := Result{
		Successes: make([]string, 0, len(job.Recipients)),
		Failures:  make([]RecipientFailure, 0),
	}

	for _, recipient := range job.Recipients {
		if sendErr := d.send(ctx, sender, recipient, job.Message); sendErr != nil {
			d.logger.WarnContext(ctx, "Recipient delivery failed",
				"job_id", job.ID, "recipient", recipient, "error", sendErr)
			result.Failures = append(result.Failures, RecipientFailure{
				Recipient: recipient,
				Err:       sendErr,
			})
			continue
		}
		result.Successes = append(result.Successes, recipient)
	}

	return result, nil
}

func (d Dispatcher) send(ctx context.Context, sender Sender, recipient, message string) error {
	sendCtx, cancel := context.WithTimeout(ctx, sendTimeout)
	defer cancel()
	return sender.Send(sendCtx, recipient, message)
}
