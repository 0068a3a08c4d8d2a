package commands

import (
	"context"
	"time"
)

// DeleteOrderCommandHandler removes an order together with its items.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle deletes a Pending or Rejected order owned by the actor.
// Approved orders are kept and yield InvalidStateError.
func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OrderRepository()
	o, err := repo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Delete(cmd.Actor().ID(), time.Now()); err != nil {
		return err
	}

	if err = repo.Delete(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
