package services

import (
	"time"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/pkg/errs"
)

// OrderAccessPolicy applies role based rules before an order is read or reviewed.
//
// Business rules:
//   - Only reviewers approve or reject orders
//   - Only reviewers list orders of other users
//   - An order is visible to its owner and to every reviewer
//
// Ownership rules for edit and delete live in the aggregate itself.
//
// Example usage:
//
//	policy := services.NewOrderAccessPolicy()
//	if err := policy.Approve(actor, o, time.Now()); err != nil {
//	    // AuthorizationError, InvalidStateError
//	    return err
//	}
type OrderAccessPolicy struct{}

func NewOrderAccessPolicy() OrderAccessPolicy {
	return OrderAccessPolicy{}
}

// AuthorizeReview fails unless the actor holds the reviewer role.
func (OrderAccessPolicy) AuthorizeReview(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return errs.NewAuthorizationError("review order", "reviewer role required")
	}
	return nil
}

// AuthorizeQueue fails unless the actor may list orders across owners.
func (OrderAccessPolicy) AuthorizeQueue(actor identity.Actor) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if !actor.IsReviewer() {
		return errs.NewAuthorizationError("list orders", "reviewer role required")
	}
	return nil
}

// AuthorizeView fails unless the actor owns the order or is a reviewer.
func (OrderAccessPolicy) AuthorizeView(actor identity.Actor, ownerID kernel.UUID) error {
	if err := actor.Validate(); err != nil {
		return err
	}
	if actor.IsReviewer() || actor.Is(ownerID) {
		return nil
	}
	return errs.NewAuthorizationError("view order", "only the owner or a reviewer may read it")
}

// Approve checks the reviewer role and then approves the order.
//
// Parameters:
//   - actor: the caller, must be a reviewer
//   - o: the order to approve, must be Pending
//   - now: decision time
//
// Returns:
//   - AuthorizationError if the actor is not a reviewer
//   - InvalidStateError if the order is not Pending
func (p OrderAccessPolicy) Approve(actor identity.Actor, o *order.Order, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.AuthorizeReview(actor); err != nil {
		return err
	}
	return o.Approve(actor.ID(), now)
}

// Reject checks the reviewer role and then rejects the order with reason.
func (p OrderAccessPolicy) Reject(actor identity.Actor, o *order.Order, reason string, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := p.AuthorizeReview(actor); err != nil {
		return err
	}
	return o.Reject(actor.ID(), reason, now)
}
