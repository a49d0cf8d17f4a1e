// Package queries contains read-only operations that project stored state into
// response views. Queries bypass the aggregates and read with SQL through gorm.
package queries

import (
	"restaurant/internal/core/domain/model/kernel"
)

// CategoryView is a category as shown to clients.
type CategoryView struct {
	ID    kernel.UUID
	Title string
}

// MenuItemView is a menu item with its category resolved.
type MenuItemView struct {
	ID       kernel.UUID
	Title    string
	Price    kernel.Money
	Category CategoryView
}

// CartLineView is one line of the caller's cart, priced at the current menu price.
type CartLineView struct {
	ID        kernel.UUID
	Owner     string
	MenuItem  MenuItemView
	Quantity  int
	UnitPrice kernel.Money
	Subtotal  kernel.Money
}

// OrderItemView is an order line snapshot. MenuItem is nil when the menu item
// has been deleted since the order was placed.
type OrderItemView struct {
	ID        kernel.UUID
	OrderID   kernel.UUID
	Title     string
	UnitPrice kernel.Money
	Quantity  int
	Subtotal  kernel.Money
	MenuItem  *MenuItemView
}

// OrderView renders owner and delivery crew as usernames, never as credentials.
type OrderView struct {
	ID           kernel.UUID
	Owner        string
	DeliveryCrew *string
	Status       string
	Total        kernel.Money
	Items        []OrderItemView
}

// UserView lists a principal with its role names.
type UserView struct {
	ID       kernel.UUID
	Username string
	Email    string
	Roles    []string
}
