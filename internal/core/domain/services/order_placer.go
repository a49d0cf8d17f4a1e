package services

import (
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// OrderPlacer converts a cart into an order.
type OrderPlacer struct{}

func NewOrderPlacer() OrderPlacer {
	return OrderPlacer{}
}

// Place builds an order from every line of c, pricing each line with the menu
// item found in items, and clears the cart. The cart is left untouched on error.
//
// Returns:
//   - cart.ErrCartIsEmpty when c has no lines
//   - *errs.ObjectNotFoundError when a line references a menu item missing from items
func (OrderPlacer) Place(c *cart.Cart, items map[kernel.UUID]*catalog.MenuItem) (*order.Order, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if c.IsEmpty() {
		return nil, cart.ErrCartIsEmpty
	}

	cartLines := c.Lines()
	lines := make([]*order.Line, 0, len(cartLines))
	for _, cl := range cartLines {
		item, ok := items[cl.MenuItemID()]
		if !ok || item == nil {
			return nil, errs.NewObjectNotFoundError("menuItemID", cl.MenuItemID())
		}

		l, err := order.NewLine(kernel.NewUUID(), item.ID(), item.Title(), item.Price(), cl.Quantity())
		if err != nil {
			return nil, err
		}
		lines = append(lines, l)
	}

	o, err := order.NewOrder(kernel.NewUUID(), c.OwnerID(), lines)
	if err != nil {
		return nil, err
	}

	c.Clear()
	return o, nil
}
