package ports

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
)

// CartRepository stores carts as the set of lines owned by one principal.
// A principal without lines has an empty cart, never a missing one.
type CartRepository interface {
	// Get returns the owner's cart.
	Get(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)

	// GetForUpdate returns the owner's cart with its lines locked until the
	// transaction ends. Must be called inside a transaction.
	GetForUpdate(ctx context.Context, ownerID kernel.UUID) (*cart.Cart, error)

	// Save makes the stored lines match the aggregate: lines that are gone are
	// deleted, the rest are inserted or updated.
	Save(ctx context.Context, aggregate *cart.Cart) error
}
