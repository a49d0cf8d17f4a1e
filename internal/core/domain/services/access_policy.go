package services

import (
	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"
)

// RequireAnyRole returns an *errs.ForbiddenError naming action unless caller
// holds at least one of roles.
func RequireAnyRole(caller identity.Caller, action string, roles ...identity.Role) error {
	if err := caller.Validate(); err != nil {
		return err
	}
	if caller.HasAny(roles...) {
		return nil
	}

	names := make([]string, 0, len(roles))
	for _, r := range roles {
		names = append(names, r.String())
	}
	return errs.NewForbiddenError(action, names...)
}

// Scope says which orders a caller may see.
type Scope int

const (
	// ScopeOwned limits the caller to orders they placed.
	ScopeOwned Scope = iota
	// ScopeAssigned limits the caller to orders assigned to them for delivery.
	ScopeAssigned
	// ScopeAll grants visibility of every order.
	ScopeAll
)

func (s Scope) String() string {
	switch s {
	case ScopeAll:
		return "all"
	case ScopeAssigned:
		return "assigned"
	default:
		return "owned"
	}
}

// OrderVisibility is the resolved order scope of one caller.
type OrderVisibility struct {
	Scope       Scope
	PrincipalID kernel.UUID
}

// VisibilityFor resolves the caller's scope. Manager or Admin supersedes
// DeliveryCrew, which supersedes the default owner scope.
func VisibilityFor(caller identity.Caller) OrderVisibility {
	v := OrderVisibility{Scope: ScopeOwned, PrincipalID: caller.ID()}
	switch {
	case caller.HasAny(identity.Manager, identity.Admin):
		v.Scope = ScopeAll
	case caller.Has(identity.DeliveryCrew):
		v.Scope = ScopeAssigned
	}
	return v
}

// Allows reports whether o is inside the scope.
func (v OrderVisibility) Allows(o *order.Order) bool {
	if o == nil {
		return false
	}
	switch v.Scope {
	case ScopeAll:
		return true
	case ScopeAssigned:
		return o.IsAssignedTo(v.PrincipalID)
	default:
		return o.OwnerID().IsEqual(v.PrincipalID)
	}
}

// EnsureVisible reports an order outside the caller's scope as not found, so
// callers cannot learn whether other principals' orders exist.
func EnsureVisible(caller identity.Caller, o *order.Order) error {
	if !VisibilityFor(caller).Allows(o) {
		var id any
		if o != nil {
			id = o.ID()
		}
		return errs.NewObjectNotFoundError("orderID", id)
	}
	return nil
}

// ActionManageCatalog names catalog writes in forbidden errors.
const ActionManageCatalog = "manage catalog"

// CanManageCatalog is satisfied by Manager or Admin.
func CanManageCatalog(caller identity.Caller) error {
	return RequireAnyRole(caller, ActionManageCatalog, identity.Manager, identity.Admin)
}
