package commands

import (
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/guard"
)

var ErrGrantRoleCommandIsNotConstructed = errors.New(
	"GrantRoleCommand must be created via NewGrantRoleCommand constructor",
)

// GrantRoleCommand promotes a user. Admins grant Manager, managers grant
// DeliveryCrew.
//
// Example:
//
//	cmd, _ := NewGrantRoleCommand(caller, userID, identity.DeliveryCrew)
//	changed, err := handler.Handle(ctx, cmd)
type GrantRoleCommand struct { //nolint:recvcheck //using for validation
	caller   identity.Caller
	targetID kernel.UUID
	role     identity.Role

	guard guard.ConstructorGuard
}

func NewGrantRoleCommand(caller identity.Caller, targetID kernel.UUID, role identity.Role) (GrantRoleCommand, error) {
	if err := errors.Join(caller.Validate(), targetID.Validate(), role.Validate()); err != nil {
		return GrantRoleCommand{}, err
	}
	return GrantRoleCommand{
		caller:   caller,
		targetID: targetID,
		role:     role,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c GrantRoleCommand) Validate() error {
	return c.guard.Validate(ErrGrantRoleCommandIsNotConstructed)
}

func (c GrantRoleCommand) Caller() identity.Caller {
	return c.caller
}

func (c GrantRoleCommand) TargetID() kernel.UUID {
	return c.targetID
}

func (c GrantRoleCommand) Role() identity.Role {
	return c.role
}
