package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/guard"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
)

// DeleteOrderCommand represents an owner withdrawing an order that was not approved.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewDeleteOrderCommand(orderID kernel.UUID, actor identity.Actor) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
	); err != nil {
		return DeleteOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

func (c DeleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c DeleteOrderCommand) Actor() identity.Actor {
	return c.actor
}
