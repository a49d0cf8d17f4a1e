package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrUpdateCategoryCommandIsNotConstructed = errors.New(
	"UpdateCategoryCommand must be created via NewUpdateCategoryCommand constructor",
)

// UpdateCategoryCommand renames a category.
type UpdateCategoryCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	categoryID kernel.UUID
	title      string

	guard guard.ConstructorGuard
}

func NewUpdateCategoryCommand(caller identity.Caller, categoryID kernel.UUID, title string) (UpdateCategoryCommand, error) {
	if err := errors.Join(caller.Validate(), categoryID.Validate()); err != nil {
		return UpdateCategoryCommand{}, err
	}
	return UpdateCategoryCommand{
		caller:     caller,
		categoryID: categoryID,
		title:      title,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCategoryCommandIsNotConstructed)
}

func (c UpdateCategoryCommand) Caller() identity.Caller {
	return c.caller
}

func (c UpdateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c UpdateCategoryCommand) Title() string {
	return c.title
}
