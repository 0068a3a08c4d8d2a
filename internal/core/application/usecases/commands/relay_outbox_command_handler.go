package commands

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/ports"
)

// RelayOutboxCommandHandler moves stored events to the broker.
//
// The batch stays locked until the transaction ends. Messages are marked
// published only after the broker accepted all of them, so a failed publish
// leaves the batch for the next run and delivery is at least once.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle publishes one batch and returns how many messages were delivered.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnpublished(ctx, cmd.BatchSize())
	if err != nil {
		return 0, err
	}
	if len(messages) == 0 {
		return 0, nil
	}

	if err = h.publisher.Publish(ctx, messages); err != nil {
		return 0, err
	}

	ids := make([]kernel.UUID, 0, len(messages))
	for _, message := range messages {
		ids = append(ids, message.ID)
	}

	if err = repo.MarkPublished(ctx, ids, time.Now()); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return len(messages), nil
}
