package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var ErrEditOrderCommandIsNotConstructed = errors.New(
	"EditOrderCommand must be created via NewEditOrderCommand constructor",
)

// EditOrderCommand replaces the content of a Pending or Rejected order and
// sends it back to review.
type EditOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor
	content orderContent

	guard guard.ConstructorGuard
}

func NewEditOrderCommand(
	orderID kernel.UUID,
	actor identity.Actor,
	title, justification string,
	items []LineItemInput,
) (EditOrderCommand, error) {
	cmd := EditOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setContent(title, justification, items),
	); err != nil {
		return EditOrderCommand{}, err
	}

	return cmd, nil
}

func (c EditOrderCommand) Validate() error {
	return c.guard.Validate(ErrEditOrderCommandIsNotConstructed)
}

func (c EditOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c EditOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c EditOrderCommand) Title() string {
	return c.content.title
}

func (c EditOrderCommand) Justification() string {
	return c.content.justification
}

func (c EditOrderCommand) Items() []order.LineItem {
	return c.content.items
}

func (c *EditOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *EditOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *EditOrderCommand) setContent(title, justification string, items []LineItemInput) error {
	content, err := newOrderContent(title, justification, items)
	if err != nil {
		return err
	}

	c.content = content
	return nil
}
