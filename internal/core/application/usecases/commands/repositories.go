// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, authorization,
// transaction management, and persistence.
package commands

import (
	"context"

	"restaurant/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest set of repositories it needs.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PrincipalRepoFactory interface {
		PrincipalRepository() ports.PrincipalRepository
	}

	CategoryRepoFactory interface {
		CategoryRepository() ports.CategoryRepository
	}

	MenuItemRepoFactory interface {
		MenuItemRepository() ports.MenuItemRepository
	}

	CartRepoFactory interface {
		CartRepository() ports.CartRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PrincipalUoW manages transactions for principal provisioning and role grants.
	PrincipalUoW interface {
		TxManager
		PrincipalRepoFactory
	}

	PrincipalUoWFactory interface {
		Create() PrincipalUoW
	}

	// CatalogUoW manages transactions over categories and menu items.
	CatalogUoW interface {
		TxManager
		CategoryRepoFactory
		MenuItemRepoFactory
	}

	CatalogUoWFactory interface {
		Create() CatalogUoW
	}

	// CartUoW manages transactions over a cart; menu items are read to check
	// that added lines reference existing items.
	CartUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
	}

	CartUoWFactory interface {
		Create() CartUoW
	}

	// OrderUoW manages transactions over orders and the principals they are
	// assigned to.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		PrincipalRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CheckoutUoW spans the cart, the menu items it prices from and the order
	// it turns into, so conversion commits or rolls back as one.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   c, err := uow.CartRepository().GetForUpdate(ctx, ownerID)
	//   items, err := uow.MenuItemRepository().GetMany(ctx, ids)
	//   // ... place the order, add it, save the drained cart
	//
	//   err = uow.Commit(ctx)
	CheckoutUoW interface {
		TxManager
		CartRepoFactory
		MenuItemRepoFactory
		OrderRepoFactory
	}

	CheckoutUoWFactory interface {
		Create() CheckoutUoW
	}
)
