package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrOverrideOrderAssignmentCommandIsNotConstructed = errors.New(
	"OverrideOrderAssignmentCommand must be created via NewOverrideOrderAssignmentCommand constructor",
)

// OverrideOrderAssignmentCommand is the administrative path that sets an
// order's assignee to a user without the single-shot, role or self checks.
// Only the Manager role is required.
type OverrideOrderAssignmentCommand struct { //nolint:recvcheck //using for validation
	caller   identity.Caller
	targetID kernel.UUID
	orderID  kernel.UUID

	guard guard.ConstructorGuard
}

func NewOverrideOrderAssignmentCommand(
	caller identity.Caller,
	targetID, orderID kernel.UUID,
) (OverrideOrderAssignmentCommand, error) {
	if err := errors.Join(caller.Validate(), targetID.Validate(), orderID.Validate()); err != nil {
		return OverrideOrderAssignmentCommand{}, err
	}
	return OverrideOrderAssignmentCommand{
		caller:   caller,
		targetID: targetID,
		orderID:  orderID,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c OverrideOrderAssignmentCommand) Validate() error {
	return c.guard.Validate(ErrOverrideOrderAssignmentCommandIsNotConstructed)
}

func (c OverrideOrderAssignmentCommand) Caller() identity.Caller {
	return c.caller
}

func (c OverrideOrderAssignmentCommand) TargetID() kernel.UUID {
	return c.targetID
}

func (c OverrideOrderAssignmentCommand) OrderID() kernel.UUID {
	return c.orderID
}
