package ports

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their lines.
type OrderRepository interface {
	// Add persists a new order and all of its lines.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the mutable part of an order: assignee and status.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order with its lines.
	// Returns *errs.ObjectNotFoundError when no order has the given id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetForUpdate is Get with a row lock held until the transaction ends, so
	// concurrent assigners are serialized and the later one observes the first
	// one's assignee. Must be called inside a transaction.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
