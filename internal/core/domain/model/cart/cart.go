package cart

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
)

var (
	ErrCartIsNotConstructed = errors.New("Cart must be created via NewCart or RestoreCart constructor")

	// ErrCartIsEmpty is returned when an order is requested from a cart with no lines.
	ErrCartIsEmpty = errors.New("cart is empty")
)

// Cart is the aggregate of all lines owned by one principal.
type Cart struct {
	ownerID kernel.UUID
	lines   []*Line

	isConstructed bool
}

// NewCart returns an empty cart for ownerID.
func NewCart(ownerID kernel.UUID) (*Cart, error) {
	return RestoreCart(ownerID, nil)
}

// RestoreCart rebuilds a cart from persisted lines. Lines must be constructed and
// reference distinct menu items.
func RestoreCart(ownerID kernel.UUID, lines []*Line) (*Cart, error) {
	if err := ownerID.Validate(); err != nil {
		return nil, err
	}

	c := &Cart{ownerID: ownerID, isConstructed: true}
	for _, l := range lines {
		if err := l.Validate(); err != nil {
			return nil, err
		}
		if c.find(l.MenuItemID()) != nil {
			return nil, errors.New("cart has more than one line for menu item " + l.MenuItemID().String())
		}
		c.lines = append(c.lines, l)
	}

	return c, nil
}

func (c *Cart) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartIsNotConstructed
	}
	return nil
}

func (c *Cart) OwnerID() kernel.UUID {
	return c.ownerID
}

// Lines returns a copy of the line slice; the lines themselves are shared.
func (c *Cart) Lines() []*Line {
	lines := make([]*Line, len(c.lines))
	copy(lines, c.lines)
	return lines
}

func (c *Cart) IsEmpty() bool {
	return len(c.lines) == 0
}

// AddOrUpdateLine sets the quantity of menuItemID in the cart, creating the line
// when the item is not in the cart yet. The returned line is the one stored.
func (c *Cart) AddOrUpdateLine(menuItemID kernel.UUID, quantity int) (*Line, error) {
	if existing := c.find(menuItemID); existing != nil {
		if err := existing.setQuantity(quantity); err != nil {
			return nil, err
		}
		return existing, nil
	}

	line, err := NewLine(kernel.NewUUID(), menuItemID, quantity)
	if err != nil {
		return nil, err
	}
	c.lines = append(c.lines, line)
	return line, nil
}

// Clear drops every line. Clearing an empty cart is a no-op.
func (c *Cart) Clear() {
	c.lines = nil
}

func (c *Cart) find(menuItemID kernel.UUID) *Line {
	for _, l := range c.lines {
		if l.MenuItemID().IsEqual(menuItemID) {
			return l
		}
	}
	return nil
}
