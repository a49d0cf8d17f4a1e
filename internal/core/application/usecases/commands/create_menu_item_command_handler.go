package commands

import (
	"context"

	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/services"
)

// CreateMenuItemCommandHandler stores a new menu item after checking that its
// category exists.
type CreateMenuItemCommandHandler struct {
	uowFactory CatalogUoWFactory
}

func NewCreateMenuItemCommandHandler(uowFactory CatalogUoWFactory) CreateMenuItemCommandHandler {
	return CreateMenuItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h CreateMenuItemCommandHandler) Handle(ctx context.Context, cmd CreateMenuItemCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := services.CanManageCatalog(cmd.Caller()); err != nil {
		return err
	}

	item, err := catalog.NewMenuItem(cmd.MenuItemID(), cmd.Title(), cmd.Price(), cmd.CategoryID())
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

	if _, err = uow.CategoryRepository().Get(ctx, cmd.CategoryID()); err != nil {
		return err
	}

	if err = uow.MenuItemRepository().Add(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
