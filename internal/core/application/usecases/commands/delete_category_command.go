package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrDeleteCategoryCommandIsNotConstructed = errors.New(
	"DeleteCategoryCommand must be created via NewDeleteCategoryCommand constructor",
)

// DeleteCategoryCommand removes a category together with its menu items.
type DeleteCategoryCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	categoryID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteCategoryCommand(caller identity.Caller, categoryID kernel.UUID) (DeleteCategoryCommand, error) {
	if err := errors.Join(caller.Validate(), categoryID.Validate()); err != nil {
		return DeleteCategoryCommand{}, err
	}
	return DeleteCategoryCommand{
		caller:     caller,
		categoryID: categoryID,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteCategoryCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCategoryCommandIsNotConstructed)
}

func (c DeleteCategoryCommand) Caller() identity.Caller {
	return c.caller
}

func (c DeleteCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}
