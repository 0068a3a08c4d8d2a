package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/ports"
)

// OrderEventPayload is the JSON body of an order event on the wire.
type OrderEventPayload struct {
	EventID       string    `json:"event_id"`
	EventType     string    `json:"event_type"`
	OrderID       string    `json:"order_id"`
	RequestNumber int64     `json:"request_number"`
	OwnerID       string    `json:"owner_id"`
	ActorID       string    `json:"actor_id"`
	Status        string    `json:"status"`
	TotalAmount   string    `json:"total_amount"`
	Reason        string    `json:"reason,omitempty"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func (uow *GormUnitOfWork) flushOutbox(ctx context.Context) error {
	var messages []ports.OutboxMessage
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(*order.Order)
		if !ok {
			continue
		}
		for _, event := range source.PullEvents() {
			message, err := newOrderEventMessage(source.RequestNumber(), event)
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
	}

	if len(messages) == 0 {
		return nil
	}
	return uow.OutboxRepository().Add(ctx, messages...)
}

func newOrderEventMessage(requestNumber int64, event order.Event) (ports.OutboxMessage, error) {
	id := kernel.NewUUID()
	payload, err := json.Marshal(OrderEventPayload{
		EventID:       id.String(),
		EventType:     string(event.Type),
		OrderID:       event.OrderID.String(),
		RequestNumber: requestNumber,
		OwnerID:       event.OwnerID.String(),
		ActorID:       event.ActorID.String(),
		Status:        event.Status.String(),
		TotalAmount:   event.TotalAmount.String(),
		Reason:        event.Reason,
		OccurredAt:    event.OccurredAt,
	})
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("encode %s event: %w", event.Type, err)
	}

	return ports.OutboxMessage{
		ID:          id,
		AggregateID: event.OrderID,
		EventType:   string(event.Type),
		Payload:     payload,
		OccurredAt:  event.OccurredAt,
	}, nil
}
