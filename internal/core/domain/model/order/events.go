package order

import (
	"time"

	"purchasing/internal/core/domain/model/kernel"
)

// EventType names a change in an order's lifecycle.
type EventType string

const (
	EventSubmitted   EventType = "order.submitted"
	EventResubmitted EventType = "order.resubmitted"
	EventApproved    EventType = "order.approved"
	EventRejected    EventType = "order.rejected"
	EventDeleted     EventType = "order.deleted"
)

// Event is recorded by the aggregate on every state change and written to the
// outbox in the same transaction as the change itself.
type Event struct {
	Type        EventType
	OrderID     kernel.UUID
	OwnerID     kernel.UUID
	ActorID     kernel.UUID
	Status      Status
	TotalAmount kernel.Money
	Reason      string
	OccurredAt  time.Time
}
