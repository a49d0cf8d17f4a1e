package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrAssignOrderCommandIsNotConstructed = errors.New(
	"AssignOrderCommand must be created via NewAssignOrderCommand constructor",
)

// AssignOrderCommand is a manager's request to hand an order to a delivery
// crew member. It is the guarded path: the assignee can be set only once.
//
// Example:
//
//	cmd, _ := NewAssignOrderCommand(caller, orderID, crewID)
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, order.ErrAlreadyAssigned):
//	case errors.Is(err, services.ErrAssigneeIsNotDeliveryCrew):
//	case errors.Is(err, services.ErrSelfAssignment):
//	}
type AssignOrderCommand struct { //nolint:recvcheck //using for validation
	caller         identity.Caller
	orderID        kernel.UUID
	deliveryCrewID kernel.UUID

	guard guard.ConstructorGuard
}

func NewAssignOrderCommand(caller identity.Caller, orderID, deliveryCrewID kernel.UUID) (AssignOrderCommand, error) {
	cmd := AssignOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		caller.Validate(),
		orderID.Validate(),
		deliveryCrewID.Validate(),
	); err != nil {
		return AssignOrderCommand{}, err
	}

	cmd.caller = caller
	cmd.orderID = orderID
	cmd.deliveryCrewID = deliveryCrewID
	return cmd, nil
}

func (c AssignOrderCommand) Validate() error {
	return c.guard.Validate(ErrAssignOrderCommandIsNotConstructed)
}

func (c AssignOrderCommand) Caller() identity.Caller {
	return c.caller
}

func (c AssignOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AssignOrderCommand) DeliveryCrewID() kernel.UUID {
	return c.deliveryCrewID
}
