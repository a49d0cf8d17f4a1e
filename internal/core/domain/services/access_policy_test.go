package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRequireAnyRole(t *testing.T) {
	manager := callerOf(t, newPrincipal(t, "mia", identity.Manager))
	customer := callerOf(t, newPrincipal(t, "carl"))

	require.NoError(t, services.RequireAnyRole(manager, "list users", identity.Admin, identity.Manager))

	err := services.RequireAnyRole(customer, "list users", identity.Admin, identity.Manager)
	require.ErrorIs(t, err, errs.ErrForbidden)
	assert.Equal(t, "forbidden: list users requires one of [Admin, Manager]", err.Error())

	t.Run("zero caller is rejected", func(t *testing.T) {
		err := services.RequireAnyRole(identity.Caller{}, "list users", identity.Customer)
		require.ErrorIs(t, err, identity.ErrCallerIsNotConstructed)
	})
}

func TestVisibilityFor(t *testing.T) {
	tests := []struct {
		name  string
		roles []identity.Role
		want  services.Scope
	}{
		{name: "customer", want: services.ScopeOwned},
		{name: "delivery crew", roles: []identity.Role{identity.DeliveryCrew}, want: services.ScopeAssigned},
		{name: "manager", roles: []identity.Role{identity.Manager}, want: services.ScopeAll},
		{name: "admin", roles: []identity.Role{identity.Admin}, want: services.ScopeAll},
		{name: "manager and crew", roles: []identity.Role{identity.DeliveryCrew, identity.Manager}, want: services.ScopeAll},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := callerOf(t, newPrincipal(t, "user", tt.roles...))
			assert.Equal(t, tt.want, services.VisibilityFor(c).Scope)
		})
	}
}

// Three orders: one placed by the customer, one assigned to the crew member,
// one unrelated to both.
func TestOrderVisibility_Allows(t *testing.T) {
	customer := newPrincipal(t, "carl")
	crew := newPrincipal(t, "dora", identity.DeliveryCrew)
	manager := newPrincipal(t, "mia", identity.Manager)
	other := newPrincipal(t, "otto")

	owned := newOrder(t, customer.ID())
	assigned := newOrder(t, other.ID())
	require.NoError(t, assigned.Assign(crew.ID()))
	unrelated := newOrder(t, other.ID())
	all := []*order.Order{owned, assigned, unrelated}

	visible := func(p *identity.Principal) []*order.Order {
		v := services.VisibilityFor(callerOf(t, p))
		var out []*order.Order
		for _, o := range all {
			if v.Allows(o) {
				out = append(out, o)
			}
		}
		return out
	}

	assert.Equal(t, []*order.Order{owned}, visible(customer))
	assert.Equal(t, []*order.Order{assigned}, visible(crew))
	assert.Equal(t, all, visible(manager))
	assert.Len(t, visible(other), 2)
}

func TestEnsureVisible(t *testing.T) {
	customer := newPrincipal(t, "carl")
	foreign := newOrder(t, newPrincipal(t, "otto").ID())

	err := services.EnsureVisible(callerOf(t, customer), foreign)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCanManageCatalog(t *testing.T) {
	require.NoError(t, services.CanManageCatalog(callerOf(t, newPrincipal(t, "ada", identity.Admin))))
	require.NoError(t, services.CanManageCatalog(callerOf(t, newPrincipal(t, "mia", identity.Manager))))
	require.ErrorIs(t, services.CanManageCatalog(callerOf(t, newPrincipal(t, "carl"))), errs.ErrForbidden)
}
