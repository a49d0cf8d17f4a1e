// Package cart models the per-principal collection of pending order lines.
//
// A Cart is identified by its owner; it has no identity of its own. Each line
// pairs a menu item with a positive quantity, and there is at most one line per
// menu item: adding an item that is already in the cart replaces its quantity.
package cart
