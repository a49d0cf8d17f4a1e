package commands

import (
	"context"

	"restaurant/internal/core/domain/services"
)

// GrantRoleCommandHandler adds a role to a user. Granting a role the user
// already holds succeeds and writes nothing.
type GrantRoleCommandHandler struct {
	uowFactory PrincipalUoWFactory
	granter    services.RoleGranter
}

func NewGrantRoleCommandHandler(uowFactory PrincipalUoWFactory) GrantRoleCommandHandler {
	return GrantRoleCommandHandler{
		uowFactory: uowFactory,
		granter:    services.NewRoleGranter(),
	}
}

// Handle reports whether the user's role set changed.
func (h GrantRoleCommandHandler) Handle(ctx context.Context, cmd GrantRoleCommand) (bool, error) {
	if err := cmd.Validate(); err != nil {
		return false, err
	}

	if err := h.granter.CanGrant(cmd.Caller(), cmd.Role()); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PrincipalRepository()
	target, err := repo.GetForUpdate(ctx, cmd.TargetID())
	if err != nil {
		return false, err
	}

	changed, err := h.granter.Grant(cmd.Caller(), target, cmd.Role())
	if err != nil || !changed {
		return false, err
	}

	if err = repo.Update(ctx, target); err != nil {
		return false, err
	}

	if err = uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
