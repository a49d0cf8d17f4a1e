package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAddCartLineCommandIsNotConstructed = errors.New(
	"AddCartLineCommand must be created via NewAddCartLineCommand constructor",
)

// AddCartLineCommand sets the quantity of a menu item in the caller's cart.
//
// Example:
//
//	cmd, err := NewAddCartLineCommand(caller, menuItemID, 2)
//	if err != nil {
//	    return err
//	}
//	lineID, err := handler.Handle(ctx, cmd)
type AddCartLineCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	menuItemID kernel.UUID
	quantity   int

	guard guard.ConstructorGuard
}

// NewAddCartLineCommand validates the caller, the menu item id and the quantity.
func NewAddCartLineCommand(caller identity.Caller, menuItemID kernel.UUID, quantity int) (AddCartLineCommand, error) {
	cmd := AddCartLineCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCaller(caller),
		cmd.setMenuItemID(menuItemID),
		cmd.setQuantity(quantity),
	); err != nil {
		return AddCartLineCommand{}, err
	}

	return cmd, nil
}

func (c AddCartLineCommand) Validate() error {
	return c.guard.Validate(ErrAddCartLineCommandIsNotConstructed)
}

func (c AddCartLineCommand) Caller() identity.Caller {
	return c.caller
}

func (c AddCartLineCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}

func (c AddCartLineCommand) Quantity() int {
	return c.quantity
}

func (c *AddCartLineCommand) setCaller(caller identity.Caller) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	c.caller = caller
	return nil
}

func (c *AddCartLineCommand) setMenuItemID(menuItemID kernel.UUID) error {
	if err := menuItemID.Validate(); err != nil {
		return err
	}
	c.menuItemID = menuItemID
	return nil
}

func (c *AddCartLineCommand) setQuantity(quantity int) error {
	if err := cart.ValidateQuantity(quantity); err != nil {
		return err
	}
	c.quantity = quantity
	return nil
}
