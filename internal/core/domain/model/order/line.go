package order

import (
	"errors"
	"strings"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("order Line must be created via NewLine constructor")

// Line is a priced snapshot of one cart line. The title and unit price are
// copied from the menu item at conversion time, so later catalog changes never
// alter a placed order.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	title      string
	unitPrice  kernel.Money
	quantity   int

	isConstructed bool
}

// NewLine validates the snapshot. Quantity must be positive.
//
// Example:
//
//	price, _ := kernel.MoneyFromString("10.00")
//	line, err := order.NewLine(kernel.NewUUID(), menuItemID, "Margherita", price, 2)
func NewLine(id, menuItemID kernel.UUID, title string, unitPrice kernel.Money, quantity int) (*Line, error) {
	l := &Line{
		title:         strings.TrimSpace(title),
		isConstructed: true,
	}

	var errTitle error
	if l.title == "" {
		errTitle = errs.NewValueIsRequiredError("title")
	}

	var errQuantity error
	if quantity <= 0 {
		errQuantity = errs.NewValueIsOutOfRangeError("quantity", quantity, 1, "unbounded")
	}

	if err := errors.Join(
		id.Validate(),
		menuItemID.Validate(),
		errTitle,
		unitPrice.Validate(),
		errQuantity,
	); err != nil {
		return nil, err
	}

	l.id = id
	l.menuItemID = menuItemID
	l.unitPrice = unitPrice
	l.quantity = quantity
	return l, nil
}

// Validate ensures the line was created through NewLine.
func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

// ID returns the line identifier.
func (l *Line) ID() kernel.UUID {
	return l.id
}

// MenuItemID returns the menu item the line was copied from.
func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

// Title returns the menu item title at conversion time.
func (l *Line) Title() string {
	return l.title
}

// UnitPrice returns the menu item price at conversion time.
func (l *Line) UnitPrice() kernel.Money {
	return l.unitPrice
}

// Quantity returns the number of units ordered.
func (l *Line) Quantity() int {
	return l.quantity
}

// Subtotal returns UnitPrice * Quantity.
func (l *Line) Subtotal() kernel.Money {
	return l.unitPrice.Mul(l.quantity)
}
