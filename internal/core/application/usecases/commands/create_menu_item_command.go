package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateMenuItemCommandIsNotConstructed = errors.New(
	"CreateMenuItemCommand must be created via NewCreateMenuItemCommand constructor",
)

// CreateMenuItemCommand adds a priced menu item to an existing category.
type CreateMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	menuItemID kernel.UUID
	title      string
	price      kernel.Money
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewCreateMenuItemCommand(
	caller identity.Caller,
	menuItemID kernel.UUID,
	title string,
	price kernel.Money,
	categoryID kernel.UUID,
) (CreateMenuItemCommand, error) {
	if err := errors.Join(
		caller.Validate(),
		menuItemID.Validate(),
		price.Validate(),
		categoryID.Validate(),
	); err != nil {
		return CreateMenuItemCommand{}, err
	}
	return CreateMenuItemCommand{
		caller:     caller,
		menuItemID: menuItemID,
		title:      title,
		price:      price,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrCreateMenuItemCommandIsNotConstructed)
}

func (c CreateMenuItemCommand) Caller() identity.Caller {
	return c.caller
}

func (c CreateMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c CreateMenuItemCommand) Title() string {
	return c.title
}

func (c CreateMenuItemCommand) Price() kernel.Money {
	return c.price
}

func (c CreateMenuItemCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
