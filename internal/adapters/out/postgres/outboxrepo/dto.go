// Package outboxrepo persists notification jobs awaiting broker acceptance.
// A row is written in the same transaction as the order transition that
// produced it and marked sent once the broker takes the job; the relay job
// republishes whatever stays pending.
package outboxrepo

import (
	"encoding/json"
	"time"

	"storefront/internal/core/ports"

	"github.com/google/uuid"
)

// Outbox row states. There is no failed state: a job either reaches the
// broker eventually or stays pending and keeps being relayed.
const (
	statusPending = 0
	statusSent    = 1
)

// NotificationJobDTO represents the database structure for outbox rows.
// Recipients are stored as a JSON array; the queue payload is JSON anyway,
// so the row round-trips the job without a schema per recipient.
type NotificationJobDTO struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID    uuid.UUID `gorm:"type:uuid;index"`
	Recipients string    `gorm:"not null"`
	Message    string    `gorm:"not null"`
	SenderKey  string    `gorm:"not null"`
	Status     int       `gorm:"index;default:0"`
	CreatedAt  time.Time
	SentAt     *time.Time
}

// TableName specifies the database table name for outbox rows.
func (NotificationJobDTO) TableName() string {
	return "notification_outbox"
}

// fromJob converts a queue job to its database representation.
func fromJob(job ports.NotificationJob) (NotificationJobDTO, error) {
	id, err := uuid.Parse(job.ID)
	if err != nil {
		return NotificationJobDTO{}, err
	}

	orderID, err := uuid.Parse(job.OrderID)
	if err != nil {
		return NotificationJobDTO{}, err
	}

	recipients, err := json.Marshal(job.Recipients)
	if err != nil {
		return NotificationJobDTO{}, err
	}

	return NotificationJobDTO{
		ID:         id,
		OrderID:    orderID,
		Recipients: string(recipients),
		Message:    job.Message,
		SenderKey:  job.SenderKey,
		Status:     statusPending,
	}, nil
}

// toJob converts a database row back to a queue job.
func toJob(dto NotificationJobDTO) (ports.NotificationJob, error) {
	var recipients []string
	if err := json.Unmarshal([]byte(dto.Recipients), &recipients); err != nil {
		return ports.NotificationJob{}, err
	}

	return ports.NotificationJob{
		ID:         dto.ID.String(),
		OrderID:    dto.OrderID.String(),
		Recipients: recipients,
		Message:    dto.Message,
		SenderKey:  dto.SenderKey,
	}, nil
}
