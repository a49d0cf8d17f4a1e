package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

type CreateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateCategoryCommandHandler(uowFactory CatalogUoWFactory) CreateCategoryCommandHandler {
	return CreateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateCategoryCommandHandler) Handle(ctx context.Context, cmd CreateCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.CanManageCatalog(cmd.Caller()); err != nil {
		return err
	}

	c, err := catalog.NewCategory(cmd.CategoryID(), cmd.Title())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CategoryRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
