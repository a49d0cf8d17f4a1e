package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// MarkOrderDeliveredCommandHandler moves an order to Delivered under a row lock.
// A repeated call returns order.ErrAlreadyDelivered and writes nothing.
type MarkOrderDeliveredCommandHandler struct {
	uowFactory OrderUoWFactory
	deliverer  services.OrderDeliverer
}

func NewMarkOrderDeliveredCommandHandler(uowFactory OrderUoWFactory) MarkOrderDeliveredCommandHandler {
	return MarkOrderDeliveredCommandHandler{
		uowFactory: uowFactory,
		deliverer:  services.NewOrderDeliverer(),
	}
}

func (h MarkOrderDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkOrderDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.deliverer.CanDeliver(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.deliverer.MarkDelivered(cmd.Caller(), o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
