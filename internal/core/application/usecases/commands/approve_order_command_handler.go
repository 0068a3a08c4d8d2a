package commands

import (
	"context"
	"time"

	"purchasing/internal/core/domain/services"
)

// ApproveOrderCommandHandler applies a reviewer's approval.
//
// The role check runs before any storage access, so an employee gets an
// AuthorizationError even for an order id that does not exist.
type ApproveOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	policy     services.OrderAccessPolicy
}

func NewApproveOrderCommandHandler(uowFactory OrderUoWFactory) ApproveOrderCommandHandler {
	return ApproveOrderCommandHandler{
		uowFactory: uowFactory,
		policy:     services.NewOrderAccessPolicy(),
	}
}

// Handle approves the order if it is still Pending when written back.
// Two reviewers deciding at once resolve to one winner and one ConflictError.
func (h *ApproveOrderCommandHandler) Handle(ctx context.Context, cmd ApproveOrderCommand) error {
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

	if err = h.policy.Approve(cmd.Actor(), o, time.Now()); err != nil {
		return err
	}

	if err = repo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
