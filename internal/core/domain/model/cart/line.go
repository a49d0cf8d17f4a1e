package cart

import (
	"errors"
	"fmt"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrLineIsNotConstructed = errors.New("Line must be created via NewLine constructor")

// MaxQuantity caps a single cart line.
const MaxQuantity = 1000

// Line is one (menu item, quantity) entry in a cart.
type Line struct {
	id         kernel.UUID
	menuItemID kernel.UUID
	quantity   int

	isConstructed bool
}

// NewLine validates the identifiers and requires 0 < quantity <= MaxQuantity.
func NewLine(id, menuItemID kernel.UUID, quantity int) (*Line, error) {
	l := &Line{isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setMenuItem(menuItemID),
		l.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

func (l *Line) MenuItemID() kernel.UUID {
	return l.menuItemID
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setMenuItem(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	l.menuItemID = menuItemID
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if err := ValidateQuantity(quantity); err != nil {
		return err
	}
	l.quantity = quantity
	return nil
}

// ValidateQuantity reports whether quantity is a positive integer no larger
// than MaxQuantity.
func ValidateQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	if quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxQuantity)
	}
	return nil
}
