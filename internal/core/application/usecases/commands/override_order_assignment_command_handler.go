package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// OverrideOrderAssignmentCommandHandler runs the administrative assignment.
// Both the target user and the order must exist.
type OverrideOrderAssignmentCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   services.OrderAssigner
}

func NewOverrideOrderAssignmentCommandHandler(uowFactory OrderUoWFactory) OverrideOrderAssignmentCommandHandler {
	return OverrideOrderAssignmentCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewOrderAssigner(),
	}
}

func (h OverrideOrderAssignmentCommandHandler) Handle(ctx context.Context, cmd OverrideOrderAssignmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.assigner.CanOverride(cmd.Caller()); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	target, err := uow.PrincipalRepository().Get(ctx, cmd.TargetID())
	if err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = h.assigner.Override(cmd.Caller(), o, target); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
