package ports

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
)

// CategoryRepository persists categories. Deleting a category removes its
// menu items through the storage layer's cascade.
type CategoryRepository interface {
	Add(ctx context.Context, aggregate *catalog.Category) error
	Update(ctx context.Context, aggregate *catalog.Category) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.Category, error)
	Delete(ctx context.Context, id kernel.UUID) error
}

// MenuItemRepository persists menu items.
type MenuItemRepository interface {
	Add(ctx context.Context, aggregate *catalog.MenuItem) error
	Update(ctx context.Context, aggregate *catalog.MenuItem) error
	Get(ctx context.Context, id kernel.UUID) (*catalog.MenuItem, error)

	// GetMany returns the menu items found among ids, keyed by id. Missing ids
	// are simply absent from the result.
	GetMany(ctx context.Context, ids []kernel.UUID) (map[kernel.UUID]*catalog.MenuItem, error)

	Delete(ctx context.Context, id kernel.UUID) error
}
