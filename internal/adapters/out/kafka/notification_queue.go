// Package kafka implements the notification queue over a Kafka topic.
// Jobs cross the broker as JSON keyed by order id, so all notifications for
// one order land in the same partition and keep their relative order.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"storefront/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// NotificationQueue implements ports.NotificationQueue over a Kafka writer.
// Construct it with NewNotificationQueue, call Connect before the first
// Enqueue and Close on shutdown; the writer is safe for concurrent use in
// between.
type NotificationQueue struct {
	brokers []string
	topic   string
	writer  *kafka.Writer
}

// NewNotificationQueue creates a queue client for the given brokers and
// topic. Brokers come as a comma-separated list, matching the config format.
func NewNotificationQueue(brokersCSV, topic string) (*NotificationQueue, error) {
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

	return &NotificationQueue{brokers: brokers, topic: topic}, nil
}

// Connect prepares the writer. The segmentio writer dials lazily, so this
// cannot detect an unreachable broker; the first Enqueue does.
func (q *NotificationQueue) Connect(_ context.Context) error {
	if q.writer != nil {
		return nil
	}

	q.writer = &kafka.Writer{
		Addr:         kafka.TCP(q.brokers...),
		Topic:        q.topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return nil
}

// Enqueue publishes the job. Broker-side failures come back wrapping
// ports.ErrQueueUnavailable so callers can route the job to the outbox.
func (q *NotificationQueue) Enqueue(ctx context.Context, job ports.NotificationJob) error {
	if q.writer == nil {
		return fmt.Errorf("%w: not connected", ports.ErrQueueUnavailable)
	}

	payload, err := json.Marshal(job)
	if err != nil {
		return err
	}

	err = q.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(job.OrderID),
		Value: payload,
	})
	if err != nil {
		return fmt.Errorf("%w: %w", ports.ErrQueueUnavailable, err)
	}

	return nil
}

// Close flushes and releases the writer.
func (q *NotificationQueue) Close() error {
	if q.writer == nil {
		return nil
	}

	err := q.writer.Close()
	q.writer = nil
	return err
}
