// Package catalog holds the restaurant's reference data: categories and the menu
// items priced within them. Carts and orders reference menu items by ID; orders
// copy the title and price they need at conversion time.
package catalog
