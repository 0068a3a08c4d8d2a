package commands

import (
	"context"
	"time"
)

// EditOrderCommandHandler lets owners fix and resubmit their orders.
// A Rejected order returns to Pending and loses its reviewer notes.
type EditOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewEditOrderCommandHandler(uowFactory OrderUoWFactory) EditOrderCommandHandler {
	return EditOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle loads the order, applies the edit and stores it under the version
// read in the same transaction.
//
// Returns:
//   - ObjectNotFoundError if the order does not exist
//   - AuthorizationError if the actor does not own the order
//   - InvalidStateError if the order is Approved
//   - ConflictError if the order changed after it was loaded
func (h *EditOrderCommandHandler) Handle(ctx context.Context, cmd EditOrderCommand) error {
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

	if err = o.Edit(cmd.Actor().ID(), cmd.Title(), cmd.Justification(), cmd.Items(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
