package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteMenuItemCommandIsNotConstructed = errors.New(
	"DeleteMenuItemCommand must be created via NewDeleteMenuItemCommand constructor",
)

// DeleteMenuItemCommand removes a menu item. Cart lines referencing it are
// removed by storage; order lines keep their snapshot.
type DeleteMenuItemCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	menuItemID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteMenuItemCommand(caller identity.Caller, menuItemID kernel.UUID) (DeleteMenuItemCommand, error) {
	if err := errors.Join(caller.Validate(), menuItemID.Validate()); err != nil {
		return DeleteMenuItemCommand{}, err
	}
	return DeleteMenuItemCommand{
		caller:     caller,
		menuItemID: menuItemID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteMenuItemCommand) Validate() error {
	return c.guard.Validate(ErrDeleteMenuItemCommandIsNotConstructed)
}

func (c DeleteMenuItemCommand) Caller() identity.Caller {
	return c.caller
}

func (c DeleteMenuItemCommand) MenuItemID() kernel.UUID {
	return c.menuItemID
}
