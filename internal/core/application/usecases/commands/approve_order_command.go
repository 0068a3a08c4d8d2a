package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrApproveOrderCommandIsNotConstructed = errors.New(
	"ApproveOrderCommand must be created via NewApproveOrderCommand constructor",
)

// ApproveOrderCommand represents a reviewer's decision to approve a Pending order.
type ApproveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewApproveOrderCommand(orderID kernel.UUID, actor identity.Actor) (ApproveOrderCommand, error) {
	cmd := ApproveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return ApproveOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c ApproveOrderCommand) Validate() error {
	return c.guard.Validate(ErrApproveOrderCommandIsNotConstructed)
}

func (c ApproveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c ApproveOrderCommand) Actor() identity.Actor {
	return c.actor
}
