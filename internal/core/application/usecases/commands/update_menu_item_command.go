package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateMenuItemCommandIsNotConstructed = errors.New(
	"UpdateMenuItemCommand must be created via NewUpdateMenuItemCommand constructor",
)

// UpdateMenuItemCommand replaces the title, price and category of a menu item.
// Orders already placed keep the price they were placed with.
type UpdateMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	menuItemID kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewUpdateMenuItemCommand(
	caller identity.Caller,
	menuItemID kernel.UUID,
	title string,
	price kernel.Money,
	categoryID kernel.UUID,
) (UpdateMenuItemCommand, error) {
	if err := errors.Join(
		caller.Validate(),
		menuItemID.Validate(),
		price.Validate(),
		categoryID.Validate(),
	); err != nil {
		return UpdateMenuItemCommand{}, err
	}
	return UpdateMenuItemCommand{
		caller:     caller,
		menuItemID: menuItemID,
		title:      title,
		price:      price,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrUpdateMenuItemCommandIsNotConstructed)
}

func (c UpdateMenuItemCommand) Caller() identity.Caller {
	return c.caller
}

func (c UpdateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c UpdateMenuItemCommand) Title() string {
	return c.title
}

func (c UpdateMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c UpdateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
