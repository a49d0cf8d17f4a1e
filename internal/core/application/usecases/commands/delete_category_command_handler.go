package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// DeleteCategoryCommandHandler deletes a category. Its menu items, and the
// cart lines referencing them, go with it through storage cascades.
type DeleteCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewDeleteCategoryCommandHandler(uowFactory CatalogUoWFactory) DeleteCategoryCommandHandler {
	return DeleteCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h DeleteCategoryCommandHandler) Handle(ctx context.Context, cmd DeleteCategoryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.CanManageCatalog(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.CategoryRepository().Delete(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
