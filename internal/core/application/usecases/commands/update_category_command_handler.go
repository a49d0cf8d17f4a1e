package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

type UpdateCategoryCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateCategoryCommandHandler(uowFactory CatalogUoWFactory) UpdateCategoryCommandHandler {
	return UpdateCategoryCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateCategoryCommandHandler) Handle(ctx context.Context, cmd UpdateCategoryCommand) error {
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

	repo := uow.CategoryRepository()
	c, err := repo.Get(ctx, cmd.CategoryID())
	if err != nil {
		return err
	}

	if err = c.Rename(cmd.Title()); err != nil {
		return err
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
