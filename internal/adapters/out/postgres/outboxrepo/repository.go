package outboxrepo

import (
	"context"
	"time"

	"storefront/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormNotificationOutboxRepository implements NotificationOutboxRepository
// using GORM.
type GormNotificationOutboxRepository struct {
	db *gorm.DB
}

// NewGormNotificationOutboxRepository creates a new GORM outbox repository.
func NewGormNotificationOutboxRepository(db *gorm.DB) *GormNotificationOutboxRepository {
	return &GormNotificationOutboxRepository{db: db}
}

// Add stores a pending job. Called within the transition's transaction, so
// the row commits atomically with the status change that produced it.
func (r *GormNotificationOutboxRepository) Add(ctx context.Context, job ports.NotificationJob) error {
	dto, err := fromJob(job)
	if err != nil {
		return err
	}
	return r.db.WithContext(ctx).Create(&dto).Error
}

// MarkSent records that the broker accepted the job. Marking an already
// sent or unknown job is a no-op, which keeps the relay and the post-commit
// publisher safe to race.
func (r *GormNotificationOutboxRepository) MarkSent(ctx context.Context, jobID string) error {
	id, err := uuid.Parse(jobID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	return r.db.WithContext(ctx).
		Model(&NotificationJobDTO{}).
		Where("id = ? AND status = ?", id, statusPending).
		Updates(map[string]any{"status": statusSent, "sent_at": &now}).Error
}

// FetchPending returns up to limit jobs not yet accepted by the broker,
// oldest first.
func (r *GormNotificationOutboxRepository) FetchPending(ctx context.Context, limit int) ([]ports.NotificationJob, error) {
	var dtos []NotificationJobDTO
	err := r.db.WithContext(ctx).
		Where("status = ?", statusPending).
		Order("created_at").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, err
	}

	jobs := make([]ports.NotificationJob, 0, len(dtos))
	for _, dto := range dtos {
		job, jobErr := toJob(dto)
		if jobErr != nil {
			return nil, jobErr
		}
		jobs = append(jobs, job)
	}

	return jobs, nil
}
