package queries

import (
	"context"
	"errors"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrListMyOrdersQueryIsNotConstructed = errors.New(
	"ListMyOrdersQuery must be created via NewListMyOrdersQuery constructor",
)

// ListMyOrdersQuery lists the orders the actor submitted, newest first.
type ListMyOrdersQuery struct {
	actor identity.Actor

	guard guard.ConstructorGuard
}

func NewListMyOrdersQuery(actor identity.Actor) (ListMyOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return ListMyOrdersQuery{}, err
	}

	return ListMyOrdersQuery{actor: actor, guard: guard.NewConstructorGuard()}, nil
}

func (q ListMyOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListMyOrdersQueryIsNotConstructed)
}

func (q ListMyOrdersQuery) Actor() identity.Actor {
	return q.actor
}

type ListMyOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListMyOrdersQueryHandler(db *gorm.DB) ListMyOrdersQueryHandler {
	return ListMyOrdersQueryHandler{db: db}
}

func (h ListMyOrdersQueryHandler) Handle(ctx context.Context, query ListMyOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw(`SELECT `+orderColumns+orderFrom+`
			WHERE o.owner_id = ?
			ORDER BY o.created_at DESC, o.request_number DESC`, query.Actor().ID().Bytes()).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewRepositoryError("list my orders", err)
	}

	return summaries(rows)
}
