// Package notifications delivers queued SMS jobs to their recipients.
// Jobs arrive from the queue at least once; each recipient within a job is
// attempted independently, and a failed recipient never fails the job.
package notifications

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// ErrUnsupportedSender is returned when a job names a sender key no
// capability was registered for. This is a job-level error: no recipient is
// attempted.
var ErrUnsupportedSender = errors.New("unsupported sender")

// Sender is one outbound-message capability, e.g. an SMS provider client.
// Implementations must be safe for concurrent use.
type Sender interface {
	// Send delivers the message to a single recipient.
	Send(ctx context.Context, recipient, message string) error
}

// SenderRegistry resolves sender keys to capabilities. The registry is
// populated once at composition time and read-only afterwards.
type SenderRegistry struct {
	senders map[string]Sender
}

// NewSenderRegistry creates an empty registry.
func NewSenderRegistry() *SenderRegistry {
	return &SenderRegistry{senders: make(map[string]Sender)}
}

// Register binds a sender to a key, replacing any previous binding.
func (r *SenderRegistry) Register(key string, sender Sender) {
	r.senders[key] = sender
}

// Resolve returns the sender for a key.
func (r *SenderRegistry) Resolve(key string) (Sender, error) {
	sender, ok := r.senders[key]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSender, key)
	}
	return sender, nil
}

// LogSender writes messages to the log instead of a provider. It is the
// development and test capability; real provider clients register under
// their own keys.
type LogSender struct {
	logger *slog.Logger
}

// NewLogSender creates a sender that logs instead of delivering.
func NewLogSender(logger *slog.Logger) *LogSender {
	return &LogSender{logger: logger.With("component", "log_sender")}
}

// Send logs the message.
func (s *LogSender) Send(ctx context.Context, recipient, message string) error {
	s.logger.InfoContext(ctx, "SMS delivered", "recipient", recipient, "message", message)
	return nil
}
