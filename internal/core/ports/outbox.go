package ports

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/kernel"
)

// OutboxMessage is a serialized domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	AggregateID kernel.UUID
	EventType   string
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository stores domain events in the transaction that produced them.
type OutboxRepository interface {
	// Add stores messages within the current transaction.
	Add(ctx context.Context, messages ...OutboxMessage) error

	// GetUnpublished returns up to limit messages in occurrence order, locking
	// them so concurrent relays skip them.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkPublished stamps the messages as delivered.
	MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error
}

// EventPublisher delivers outbox messages to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, messages []OutboxMessage) error
}
