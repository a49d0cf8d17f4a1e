package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoleGranter_Grant(t *testing.T) {
	granter := services.NewRoleGranter()
	admin := newPrincipal(t, "ada", identity.Admin)
	manager := newPrincipal(t, "mia", identity.Manager)

	tests := []struct {
		name    string
		caller  *identity.Principal
		role    identity.Role
		wantErr error
	}{
		{name: "admin grants manager", caller: admin, role: identity.Manager},
		{name: "manager grants delivery crew", caller: manager, role: identity.DeliveryCrew},
		{name: "manager cannot grant manager", caller: manager, role: identity.Manager, wantErr: errs.ErrForbidden},
		{name: "admin alone cannot grant delivery crew", caller: admin, role: identity.DeliveryCrew, wantErr: errs.ErrForbidden},
		{name: "admin is not grantable", caller: admin, role: identity.Admin, wantErr: errs.ErrValueIsInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := newPrincipal(t, "tina")

			changed, err := granter.Grant(callerOf(t, tt.caller), target, tt.role)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.False(t, target.HasRole(tt.role))
				return
			}
			require.NoError(t, err)
			assert.True(t, changed)
			assert.True(t, target.HasRole(tt.role))
		})
	}

	t.Run("granting twice is idempotent", func(t *testing.T) {
		target := newPrincipal(t, "tina")
		_, err := granter.Grant(callerOf(t, manager), target, identity.DeliveryCrew)
		require.NoError(t, err)

		changed, err := granter.Grant(callerOf(t, manager), target, identity.DeliveryCrew)

		require.NoError(t, err)
		assert.False(t, changed)
	})
}

func TestRoleGranter_CanListUsers(t *testing.T) {
	granter := services.NewRoleGranter()

	require.NoError(t, granter.CanListUsers(callerOf(t, newPrincipal(t, "ada", identity.Admin))))
	require.NoError(t, granter.CanListUsers(callerOf(t, newPrincipal(t, "mia", identity.Manager))))
	require.ErrorIs(t, granter.CanListUsers(callerOf(t, newPrincipal(t, "dora", identity.DeliveryCrew))), errs.ErrForbidden)
}
