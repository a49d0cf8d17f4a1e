package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrCreateCategoryCommandIsNotConstructed = errors.New(
	"CreateCategoryCommand must be created via NewCreateCategoryCommand constructor",
)

// CreateCategoryCommand adds a category to the catalog.
type CreateCategoryCommand struct { //nolint:recvcheck //using for validation
	caller     identity.Caller
	categoryID kernel.UUID
	title      string

	guard guard.ConstructorGuard
}

func NewCreateCategoryCommand(caller identity.Caller, categoryID kernel.UUID, title string) (CreateCategoryCommand, error) {
	if err := errors.Join(caller.Validate(), categoryID.Validate()); err != nil {
		return CreateCategoryCommand{}, err
	}
	return CreateCategoryCommand{
		caller:     caller,
		categoryID: categoryID,
		title:      title,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

func (c CreateCategoryCommand) Validate() error {
	return c.guard.Validate(ErrCreateCategoryCommandIsNotConstructed)
}

func (c CreateCategoryCommand) Caller() identity.Caller {
	return c.caller
}

func (c CreateCategoryCommand) CategoryID() kernel.UUID {
	return c.categoryID
}

func (c CreateCategoryCommand) Title() string {
	return c.title
}
