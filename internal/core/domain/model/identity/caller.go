package identity

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCallerIsNotConstructed = errors.New("Caller must be created via NewCaller constructor")

// Caller is the principal on whose behalf an operation runs, with its role set
// resolved once per request. Authorization checks only ever look at a Caller.
type Caller struct {
	id    kernel.UUID
	roles RoleSet

	guard guard.ConstructorGuard
}

// NewCaller builds a caller for principal id holding roles.
func NewCaller(id kernel.UUID, roles RoleSet) (Caller, error) {
	if err := id.Validate(); err != nil {
		return Caller{}, err
	}
	return Caller{
		id:    id,
		roles: roles,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the caller was resolved through NewCaller.
func (c Caller) Validate() error {
	return c.guard.Validate(ErrCallerIsNotConstructed)
}

func (c Caller) ID() kernel.UUID {
	return c.id
}

func (c Caller) Roles() RoleSet {
	return c.roles
}

// Has reports whether the caller holds role.
func (c Caller) Has(role Role) bool {
	return c.roles.Has(role)
}

// HasAny reports whether the caller holds at least one of roles.
func (c Caller) HasAny(roles ...Role) bool {
	return c.roles.HasAny(roles...)
}

// Is reports whether the caller is the principal id.
func (c Caller) Is(id kernel.UUID) bool {
	return c.id.IsEqual(id)
}
