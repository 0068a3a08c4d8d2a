package queries

import (
	"context"
	"errors"
	"fmt"

	"purchasing/internal/core/domain/model/identity"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"

	"gorm.io/gorm"
)

var ErrResolveActorQueryIsNotConstructed = errors.New(
	"ResolveActorQuery must be created via NewResolveActorQuery constructor",
)

// ResolveActorQuery turns an authenticated user id into an actor with a role.
type ResolveActorQuery struct {
	userID kernel.UUID

	guard guard.ConstructorGuard
}

func NewResolveActorQuery(userID kernel.UUID) (ResolveActorQuery, error) {
	if err := userID.Validate(); err != nil {
		return ResolveActorQuery{}, err
	}

	return ResolveActorQuery{userID: userID, guard: guard.NewConstructorGuard()}, nil
}

func (q ResolveActorQuery) Validate() error {
	return q.guard.Validate(ErrResolveActorQueryIsNotConstructed)
}

func (q ResolveActorQuery) UserID() kernel.UUID {
	return q.userID
}

// ResolveActorQueryHandler reads the role from the profiles table.
// Users without a profile row are employees. A stored role that is not
// recognised denies access instead of guessing one.
type ResolveActorQueryHandler struct {
	db *gorm.DB
}

func NewResolveActorQueryHandler(db *gorm.DB) ResolveActorQueryHandler {
	return ResolveActorQueryHandler{db: db}
}

func (h ResolveActorQueryHandler) Handle(ctx context.Context, query ResolveActorQuery) (identity.Actor, error) {
	if err := query.Validate(); err != nil {
		return identity.Actor{}, err
	}

	var roles []string
	err := h.db.WithContext(ctx).
		Raw(`SELECT role FROM profiles WHERE id = ?`, query.UserID().Bytes()).
		Scan(&roles).Error
	if err != nil {
		return identity.Actor{}, errs.NewRepositoryError("resolve actor", err)
	}

	roleName := ""
	if len(roles) > 0 {
		roleName = roles[0]
	}

	role, err := identity.ParseRole(roleName)
	if err != nil {
		return identity.Actor{}, errs.NewAuthorizationError("resolve actor", fmt.Sprintf("profile role %q is not recognised", roleName))
	}

	return identity.NewActor(query.UserID(), role)
}
