package commands

import (
	"context"

	"restaurant/internal/core/domain/model/kernel"
)

// AddCartLineCommandHandler creates or updates one line of the caller's cart.
// The referenced menu item must exist; no stock check is made.
type AddCartLineCommandHandler struct {
	uowFactory CartUoWFactory
}

func NewAddCartLineCommandHandler(uowFactory CartUoWFactory) AddCartLineCommandHandler {
	return AddCartLineCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the id of the line that now holds the menu item.
func (h AddCartLineCommandHandler) Handle(ctx context.Context, cmd AddCartLineCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.MenuItemRepository().Get(ctx, cmd.MenuItemID()); err != nil {
		return kernel.UUID{}, err
	}

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetForUpdate(ctx, cmd.Caller().ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	line, err := c.AddOrUpdateLine(cmd.MenuItemID(), cmd.Quantity())
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return line.ID(), nil
}
