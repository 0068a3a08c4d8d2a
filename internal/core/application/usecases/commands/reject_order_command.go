package commands

import (
	"errors"
	"strings"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var ErrRejectOrderCommandIsNotConstructed = errors.New(
	"RejectOrderCommand must be created via NewRejectOrderCommand constructor",
)

// RejectOrderCommand represents a reviewer's rejection. The reason is shown
// to the owner as reviewer notes.
type RejectOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	actor   identity.Actor
	reason  string

	guard guard.ConstructorGuard
}

func NewRejectOrderCommand(orderID kernel.UUID, actor identity.Actor, reason string) (RejectOrderCommand, error) {
	cmd := RejectOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderID.Validate(),
		actor.Validate(),
		cmd.setReason(reason),
	); err != nil {
		return RejectOrderCommand{}, err
	}

	cmd.orderID = orderID
	cmd.actor = actor
	return cmd, nil
}

func (c RejectOrderCommand) Validate() error {
	return c.guard.Validate(ErrRejectOrderCommandIsNotConstructed)
}

func (c RejectOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c RejectOrderCommand) Actor() identity.Actor {
	return c.actor
}

func (c RejectOrderCommand) Reason() string {
	return c.reason
}

func (c *RejectOrderCommand) setReason(reason string) error {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return errs.NewValueIsRequiredError("reason")
	}

	c.reason = reason
	return nil
}
