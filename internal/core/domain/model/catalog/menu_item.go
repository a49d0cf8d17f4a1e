package catalog

import (
	"errors"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"
)

var ErrMenuItemIsNotConstructed = errors.New("MenuItem must be created via NewMenuItem constructor")

// MaxPrice is the largest price a menu item can be stored with.
var MaxPrice = kernel.MustMoney("99999999.99")

// MenuItem is a priced dish that belongs to exactly one category.
type MenuItem struct {
	id         kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	isConstructed bool
}

// NewMenuItem validates every attribute; price must be a constructed, non-negative Money.
func NewMenuItem(id kernel.UUID, title string, price kernel.Money, categoryID kernel.UUID) (*MenuItem, error) {
	m := &MenuItem{isConstructed: true}

	if err := errors.Join(
		m.setID(id),
		m.setTitle(title),
		m.setPrice(price),
		m.setCategory(categoryID),
	); err != nil {
		return nil, err
	}

	return m, nil
}

func (m *MenuItem) Validate() error {
	if m == nil || !m.isConstructed {
		return ErrMenuItemIsNotConstructed
	}
	return nil
}

func (m *MenuItem) ID() kernel.UUID {
	return m.id
}

func (m *MenuItem) Title() string {
	return m.title
}

func (m *MenuItem) Price() kernel.Money {
	return m.price
}

func (m *MenuItem) CategoryID() kernel.UUID {
	return m.categoryID
}

// Update replaces title, price and category together; nothing changes on failure.
func (m *MenuItem) Update(title string, price kernel.Money, categoryID kernel.UUID) error {
	next := *m
	if err := errors.Join(
		next.setTitle(title),
		next.setPrice(price),
		next.setCategory(categoryID),
	); err != nil {
		return err
	}
	*m = next
	return nil
}

func (m *MenuItem) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	m.id = id
	return nil
}

func (m *MenuItem) setTitle(title string) error {
	title, err := validateTitle(title)
	if err != nil {
		return err
	}
	m.title = title
	return nil
}

func (m *MenuItem) setPrice(price kernel.Money) error {
	if err := price.Validate(); err != nil {
		return err
	}
	if price.GreaterThan(MaxPrice) {
		return errs.NewValueIsOutOfRangeError("price", price.String(), kernel.ZeroMoney().String(), MaxPrice.String())
	}
	m.price = price
	return nil
}

func (m *MenuItem) setCategory(categoryID kernel.UUID) error {
	if err := categoryID.Validate(); err != nil {
		return err
	}
	m.categoryID = categoryID
	return nil
}
