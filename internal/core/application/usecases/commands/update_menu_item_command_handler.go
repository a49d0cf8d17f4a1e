package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

type UpdateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewUpdateMenuItemCommandHandler(uowFactory CatalogUoWFactory) UpdateMenuItemCommandHandler {
	return UpdateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h UpdateMenuItemCommandHandler) Handle(ctx context.Context, cmd UpdateMenuItemCommand) error {
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

	repo := uow.MenuItemRepository()
	item, err := repo.Get(ctx, cmd.MenuItemID())
	if err != nil {
		return err
	}

	if !item.CategoryID().IsEqual(cmd.CategoryID()) {
		if _, err = uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
			return err
		}
	}

	if err = item.Update(cmd.Title(), cmd.Price(), cmd.CategoryID()); err != nil {
		return err
	}

	if err = repo.Update(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
