package ports

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
)

// ErrPrincipalAlreadyExists is returned by Add when the id or username is taken.
var ErrPrincipalAlreadyExists = errors.New("principal already exists")

// PrincipalRepository persists principals and their role sets.
type PrincipalRepository interface {
	// Add stores a new principal.
	// Returns ErrPrincipalAlreadyExists on an id or username conflict.
	Add(ctx context.Context, aggregate *identity.Principal) error

	// Update persists role changes.
	Update(ctx context.Context, aggregate *identity.Principal) error

	// Get retrieves a principal.
	// Returns *errs.ObjectNotFoundError when no principal has the given id.
	Get(ctx context.Context, id kernel.UUID) (*identity.Principal, error)

	// GetForUpdate is Get with a row lock held until the transaction ends.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*identity.Principal, error)
}
