package commands

import (
	"context"
	"time"

	"purchasing/internal/core/domain/model/order"
)

// CreateOrderCommandHandler submits new purchase orders.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("order creation failed: %w", err)
//	}
//	// The order is Pending and its order.submitted event sits in the outbox
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle creates the order owned by the actor and stores it with its items.
// Returns the request number assigned by storage.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (int64, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		cmd.Title(),
		cmd.Justification(),
		cmd.Items(),
		time.Now(),
	)
	if err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return 0, err
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return o.RequestNumber(), nil
}
