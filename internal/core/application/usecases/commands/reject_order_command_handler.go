package commands

import (
	"context"
	"time"

	"purchasing/internal/core/domain/services"
)

// RejectOrderCommandHandler applies a reviewer's rejection.
type RejectOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
}

func NewRejectOrderCommandHandler(uowFactory OrderUoWFactory) RejectOrderCommandHandler {
	return RejectOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
	}
}

// Handle rejects a Pending order with the command's reason.
func (h *RejectOrderCommandHandler) Handle(ctx context.Context, cmd RejectOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.policy.AuthorizeReview(cmd.Actor()); err != nil {
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

	if err = h.policy.Reject(cmd.Actor(), o, cmd.Reason(), time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
