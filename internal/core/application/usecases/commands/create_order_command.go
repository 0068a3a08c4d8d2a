package commands

import (
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to submit a new purchase order.
// The requester becomes the owner; the order starts in Pending.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), actor, "Workshop", "Restock",
//	    []LineItemInput{{ProductName: "Screws", Quantity: 3, UnitPrice: decimal.RequireFromString("10.00")}})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor
	content orderContent

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates the submission. Every invalid line item is
// reported with its index, next to a missing justification.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	actor identity.Actor,
	title, justification string,
	items []LineItemInput,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setActor(actor),
		cmd.setContent(title, justification, items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c CreateOrderCommand) Title() string {
	return c.content.title
}

func (c CreateOrderCommand) Justification() string {
	return c.content.justification
}

func (c CreateOrderCommand) Items() []order.LineItem {
	return c.content.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setActor(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setContent(title, justification string, items []LineItemInput) error {
	content, err := newOrderContent(title, justification, items)
	if err != nil {
		return err
	}

	c.content = content
	return nil
}
