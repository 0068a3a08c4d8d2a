// Package outboxrepo stores domain events in the outbox_messages table until
// the relay job hands them to the broker.
package outboxrepo

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MessageDTO is one outbox row. PublishedAt stays NULL until the relay delivers it.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	AggregateID uuid.UUID  `gorm:"type:uuid;not null;index"`
	EventType   string     `gorm:"type:varchar(64);not null"`
	Payload     string     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_messages"
}

// GormOutboxRepository implements ports.OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

// Add stores messages with the connection the repository was created with,
// which is the open transaction when used through the unit of work.
func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, message := range messages {
		if err := message.ID.Validate(); err != nil {
			return err
		}
		dtos = append(dtos, MessageDTO{
			ID:          message.ID.Bytes(),
			AggregateID: message.AggregateID.Bytes(),
			EventType:   message.EventType,
			Payload:     string(message.Payload),
			OccurredAt:  message.OccurredAt,
		})
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return errs.NewRepositoryError("add outbox messages", err)
	}
	return nil
}

// GetUnpublished locks up to limit unpublished rows with SKIP LOCKED so
// relays running side by side never pick the same message.
func (r *GormOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	if limit <= 0 {
		return nil, errs.NewValueIsInvalidError("limit")
	}

	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, errs.NewRepositoryError("get unpublished outbox messages", err)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, idErr := kernel.UUIDFromBytes(dto.ID[:])
		if idErr != nil {
			return nil, idErr
		}
		aggregateID, idErr := kernel.UUIDFromBytes(dto.AggregateID[:])
		if idErr != nil {
			return nil, idErr
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			AggregateID: aggregateID,
			EventType:   dto.EventType,
			Payload:     []byte(dto.Payload),
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", publishedAt.UTC()).Error
	if err != nil {
		return errs.NewRepositoryError("mark outbox messages published", err)
	}
	return nil
}
