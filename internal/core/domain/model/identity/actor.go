// Package identity models who is acting on an order: an authenticated user id
// and the role resolved for the current request.
package identity

import (
	"errors"
	"fmt"
	"strings"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/pkg/errs"
	"purchasing/internal/pkg/guard"
)

var ErrActorIsNotConstructed = errors.New("Actor must be created via NewActor constructor")

// Role is the capability an actor holds.
type Role string

const (
	Employee Role = "employee"
	Reviewer Role = "reviewer"
)

// legacyReviewerRole is the role name stored by older profile records.
const legacyReviewerRole = "boss"

// ParseRole maps a stored role name to a Role. Blank names default to Employee.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Employee):
		return Employee, nil
	case string(Reviewer), legacyReviewerRole:
		return Reviewer, nil
	default:
		return "", errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", s))
	}
}

func (r Role) String() string {
	return string(r)
}

// Actor is the already-authenticated caller of a use case.
type Actor struct {
	id    kernel.UUID
	role  Role
	guard guard.ConstructorGuard
}

func NewActor(id kernel.UUID, role Role) (Actor, error) {
	if err := id.Validate(); err != nil {
		return Actor{}, err
	}
	if role != Employee && role != Reviewer {
		return Actor{}, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%q is not a known role", role))
	}

	return Actor{id: id, role: role, guard: guard.NewConstructorGuard()}, nil
}

func (a Actor) Validate() error {
	return a.guard.Validate(ErrActorIsNotConstructed)
}

func (a Actor) ID() kernel.UUID {
	return a.id
}

func (a Actor) Role() Role {
	return a.role
}

func (a Actor) IsReviewer() bool {
	return a.role == Reviewer
}

// Is reports whether the actor is the user with the given id.
func (a Actor) Is(userID kernel.UUID) bool {
	return a.id.IsEqual(userID)
}
