package commands

import (
	"context"
	"errors"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/ports"
	"restaurant/internal/pkg/errs"
)

// EnsurePrincipalCommandHandler resolves a token subject into a Caller.
//
// Unknown subjects are stored as new principals holding the Customer role,
// plus Admin when the username is listed in adminUsernames. Listed usernames
// that already exist without Admin are promoted.
type EnsurePrincipalCommandHandler struct {
	uowFactory     PrincipalUoWFactory
	adminUsernames map[string]struct{}
}

func NewEnsurePrincipalCommandHandler(uowFactory PrincipalUoWFactory, adminUsernames []string) EnsurePrincipalCommandHandler {
	admins := make(map[string]struct{}, len(adminUsernames))
	for _, u := range adminUsernames {
		admins[u] = struct{}{}
	}
	return EnsurePrincipalCommandHandler{
		uowFactory:     uowFactory,
		adminUsernames: admins,
	}
}

// Handle retries once when a concurrent request provisioned the same principal.
func (h EnsurePrincipalCommandHandler) Handle(ctx context.Context, cmd EnsurePrincipalCommand) (identity.Caller, error) {
	if err := cmd.Validate(); err != nil {
		return identity.Caller{}, err
	}

	caller, err := h.ensure(ctx, cmd)
	if errors.Is(err, ports.ErrPrincipalAlreadyExists) {
		caller, err = h.ensure(ctx, cmd)
	}
	return caller, err
}

func (h EnsurePrincipalCommandHandler) ensure(ctx context.Context, cmd EnsurePrincipalCommand) (identity.Caller, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return identity.Caller{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	_, isAdmin := h.adminUsernames[cmd.Username()]
	repo := uow.PrincipalRepository()

	p, err := repo.Get(ctx, cmd.PrincipalID())
	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		var roles []identity.Role
		if isAdmin {
			roles = append(roles, identity.Admin)
		}
		if p, err = identity.NewPrincipal(cmd.PrincipalID(), cmd.Username(), cmd.Email(), roles...); err != nil {
			return identity.Caller{}, err
		}
		if err = repo.Add(ctx, p); err != nil {
			return identity.Caller{}, err
		}
	case err != nil:
		return identity.Caller{}, err
	case isAdmin && !p.HasRole(identity.Admin):
		if _, err = p.GrantRole(identity.Admin); err != nil {
			return identity.Caller{}, err
		}
		if err = repo.Update(ctx, p); err != nil {
			return identity.Caller{}, err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return identity.Caller{}, err
	}

	return p.AsCaller()
}
