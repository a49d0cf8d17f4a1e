package services

import (
	"fmt"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/pkg/errs"
)

const (
	ActionGrantRole = "grant role"
	ActionListUsers = "list users"
)

// RoleGranter decides who may promote whom. Admins grant Manager; managers
// grant DeliveryCrew. No other role can be granted through it.
type RoleGranter struct{}

func NewRoleGranter() RoleGranter {
	return RoleGranter{}
}

// GrantorsOf returns the roles allowed to grant role.
func (RoleGranter) GrantorsOf(role identity.Role) ([]identity.Role, error) {
	//nolint:exhaustive // only two roles are grantable
	switch role {
	case identity.Manager:
		return []identity.Role{identity.Admin}, nil
	case identity.DeliveryCrew:
		return []identity.Role{identity.Manager}, nil
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("role", fmt.Errorf("%s cannot be granted", role))
	}
}

// CanGrant checks the caller's role before the target is loaded.
func (g RoleGranter) CanGrant(caller identity.Caller, role identity.Role) error {
	grantors, err := g.GrantorsOf(role)
	if err != nil {
		return err
	}
	return RequireAnyRole(caller, ActionGrantRole+" "+role.String(), grantors...)
}

// Grant adds role to target. It reports whether the role set changed; granting
// a role the target already holds succeeds without change.
func (g RoleGranter) Grant(caller identity.Caller, target *identity.Principal, role identity.Role) (bool, error) {
	if err := g.CanGrant(caller, role); err != nil {
		return false, err
	}
	if err := target.Validate(); err != nil {
		return false, err
	}
	return target.GrantRole(role)
}

// CanListUsers is satisfied by Admin or Manager.
func (RoleGranter) CanListUsers(caller identity.Caller) error {
	return RequireAnyRole(caller, ActionListUsers, identity.Admin, identity.Manager)
}
