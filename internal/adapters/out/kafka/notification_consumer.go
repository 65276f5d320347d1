package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"storefront/internal/core/ports"
	"storefront/internal/notifications"

	"github.com/segmentio/kafka-go"
)

// NotificationConsumer implements notifications.JobSource over a Kafka
// consumer group. Offsets are committed only after the dispatcher has
// processed the job, so a crash mid-job redelivers it: at-least-once, which
// the duplicate-tolerant message content allows.
type NotificationConsumer struct {
	reader *kafka.Reader
}

// NewNotificationConsumer creates a consumer-group reader for the topic.
func NewNotificationConsumer(brokersCSV, topic, groupID string) (*NotificationConsumer, error) {
	brokers := make([]string, 0)
	for _, broker := range strings.Split(brokersCSV, ",") {
		broker = strings.TrimSpace(broker)
		if broker != "" {
			brokers = append(brokers, broker)
		}
	}

	if len(brokers) == 0 {
		return nil, errors.New("at least one kafka broker must be provided")
	}
	if topic == "" {
		return nil, errors.New("kafka topic must not be empty")
	}
	if groupID == "" {
		return nil, errors.New("kafka consumer group must not be empty")
	}

	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  brokers,
		Topic:    topic,
		GroupID:  groupID,
		MinBytes: 10e3,
		MaxBytes: 10e6,
	})

	return &NotificationConsumer{reader: reader}, nil
}

// Fetch blocks until the next job arrives. The returned ack commits the
// message's offset; callers invoke it only after handling the job.
func (c *NotificationConsumer) Fetch(ctx context.Context) (notifications.Delivery, error) {
	message, err := c.reader.FetchMessage(ctx)
	if err != nil {
		return notifications.Delivery{}, err
	}

	var job ports.NotificationJob
	if err = json.Unmarshal(message.Value, &job); err != nil {
		// A payload that never parses would wedge the partition if left
		// uncommitted. Commit and surface the parse error instead.
		if commitErr := c.reader.CommitMessages(ctx, message); commitErr != nil {
			return notifications.Delivery{}, commitErr
		}
		return notifications.Delivery{}, notifications.ErrMalformedJob
	}

	return notifications.Delivery{
		Job: job,
		Ack: func(ackCtx context.Context) error {
			return c.reader.CommitMessages(ackCtx, message)
		},
	}, nil
}

// Close stops the reader and leaves the consumer group.
func (c *NotificationConsumer) Close() error {
	return c.reader.Close()
}
