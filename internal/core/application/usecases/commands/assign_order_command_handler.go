package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// AssignOrderCommandHandler performs the guarded, single-shot assignment.
//
// The order row is locked before the assignee is checked, so of two managers
// assigning the same order concurrently the second one waits, then sees the
// first assignee and gets order.ErrAlreadyAssigned.
//
// Failure order: forbidden, order not found (or not visible), delivery crew
// member not found, already assigned, target lacks the role, self-assignment.
type AssignOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	assigner   services.OrderAssigner
}

func NewAssignOrderCommandHandler(uowFactory OrderUoWFactory) AssignOrderCommandHandler {
	return AssignOrderCommandHandler{
		uowFactory: uowFactory,
		assigner:   services.NewOrderAssigner(),
	}
}

func (h AssignOrderCommandHandler) Handle(ctx context.Context, cmd AssignOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if err := h.assigner.CanAssign(cmd.Caller()); err != nil {
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
	if err = services.EnsureVisible(cmd.Caller(), o); err != nil {
		return err
	}

	target, err := uow.PrincipalRepository().Get(ctx, cmd.DeliveryCrewID())
	if err != nil {
		return err
	}

	if err = h.assigner.Assign(cmd.Caller(), o, target); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
