package queries

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/order"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery is the reviewer queue: orders of every owner, newest first,
// optionally limited to some statuses. No statuses means all of them.
type ListOrdersQuery struct {
	actor    identity.Actor
	statuses []order.Status

	guard guard.ConstructorGuard
}

func NewListOrdersQuery(actor identity.Actor, statuses []order.Status) (ListOrdersQuery, error) {
	validationErrs := []error{actor.Validate()}
	for _, status := range statuses {
		validationErrs = append(validationErrs, status.Validate())
	}
	if err := errors.Join(validationErrs...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{
		actor:    actor,
		statuses: statuses,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Actor() identity.Actor {
	return q.actor
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// ListOrdersQueryHandler serves the reviewer queue. Employees get AuthorizationError.
type ListOrdersQueryHandler struct {
	db     *gorm.DB
	policy services.OrderAccessPolicy
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db, policy: services.NewOrderAccessPolicy()}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	if err := h.policy.AuthorizeQueue(query.Actor()); err != nil {
		return nil, err
	}

	sql := `SELECT ` + orderColumns + orderFrom
	var args []any
	if len(query.Statuses()) > 0 {
		names := make([]string, 0, len(query.Statuses()))
		for _, status := range query.Statuses() {
			names = append(names, status.String())
		}
		sql += ` WHERE o.status = ANY(?)`
		args = append(args, pq.Array(names))
	}
	sql += ` ORDER BY o.created_at DESC, o.request_number DESC`

	var rows []orderRow
	if err := h.db.WithContext(ctx).Raw(sql, args...).Scan(&rows).Error; err != nil {
		return nil, errs.NewRepositoryError("list orders", err)
	}

	return summaries(rows)
}
