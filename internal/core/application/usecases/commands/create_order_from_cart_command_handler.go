package commands

import (
	"context"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/services"
)

// CreateOrderFromCartCommandHandler converts a cart into an order in one
// transaction: the cart lines are locked, priced, turned into order lines, and
// deleted. Either the order exists and the cart is empty, or nothing changed.
type CreateOrderFromCartCommandHandler struct {
	uowFactory CheckoutUoWFactory
	placer     services.OrderPlacer
}

func NewCreateOrderFromCartCommandHandler(uowFactory CheckoutUoWFactory) CreateOrderFromCartCommandHandler {
	return CreateOrderFromCartCommandHandler{
		uowFactory: uowFactory,
		placer:     services.NewOrderPlacer(),
	}
}

// Handle returns the new order's id, or cart.ErrCartIsEmpty when there is
// nothing to convert.
func (h CreateOrderFromCartCommandHandler) Handle(ctx context.Context, cmd CreateOrderFromCartCommand) (kernel.UUID, error) {
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

	cartRepo := uow.CartRepository()
	c, err := cartRepo.GetForUpdate(ctx, cmd.Caller().ID())
	if err != nil {
		return kernel.UUID{}, err
	}

	if c.IsEmpty() {
		return kernel.UUID{}, cart.ErrCartIsEmpty
	}

	lines := c.Lines()
	ids := make([]kernel.UUID, 0, len(lines))
	for _, l := range lines {
		ids = append(ids, l.MenuItemID())
	}

	items, err := uow.MenuItemRepository().GetMany(ctx, ids)
	if err != nil {
		return kernel.UUID{}, err
	}

	o, err := h.placer.Place(c, items)
	if err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return kernel.UUID{}, err
	}

	if err = cartRepo.Save(ctx, c); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return o.ID(), nil
}
