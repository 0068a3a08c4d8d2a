package queries

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its items.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID, actor)
//	details, err := handler.Handle(ctx, query)
//	if err != nil {
//	    // ObjectNotFoundError, AuthorizationError
//	    return err
//	}
type GetOrderQuery struct {
	orderID kernel.UUID
	actor   identity.Actor

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID, actor identity.Actor) (GetOrderQuery, error) {
	if err := errors.Join(orderID.Validate(), actor.Validate()); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{orderID: orderID, actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

func (q GetOrderQuery) Actor() identity.Actor {
	return q.actor
}

// GetOrderQueryHandler loads order details visible to the owner and reviewers.
type GetOrderQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db, policy: services.NewOrderAccessPolicy()}
}

func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+orderFrom+` WHERE o.id = ?`, query.OrderID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return OrderDetails{}, errs.NewRepositoryError("get order", err)
	}
	if len(rows) == 0 {
		return OrderDetails{}, errs.NewObjectNotFoundError("order", query.OrderID().String())
	}

	ownerID, err := kernel.UUIDFromBytes(rows[0].OwnerID[:])
	if err != nil {
		return OrderDetails{}, err
	}
	if err = h.policy.AuthorizeView(query.Actor(), ownerID); err != nil {
		return OrderDetails{}, err
	}

	var items []itemRow
	err = h.db.WithContext(ctx).
		Raw(`
			SELECT product_name, supplier, quantity, unit_price
			FROM order_items
			WHERE order_id = ?
			ORDER BY position ASC
		`, query.OrderID().Bytes()).
		Scan(&items).Error
	if err != nil {
		return OrderDetails{}, errs.NewRepositoryError("get order items", err)
	}

	return rows[0].details(items)
}
