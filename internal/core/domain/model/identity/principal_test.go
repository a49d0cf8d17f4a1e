package identity_test

import (
	"strings"
	"testing"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrincipal(t *testing.T) {
	id := kernel.NewUUID()

	t.Run("creates a customer by default", func(t *testing.T) {
		p, err := identity.NewPrincipal(id, "  mario ", "mario@example.com")

		require.NoError(t, err)
		require.NoError(t, p.Validate())
		assert.True(t, p.ID().IsEqual(id))
		assert.Equal(t, "mario", p.Username())
		assert.Equal(t, "mario@example.com", p.Email())
		assert.True(t, p.HasRole(identity.Customer))
		assert.False(t, p.HasRole(identity.Manager))
	})

	t.Run("collects every validation failure", func(t *testing.T) {
		p, err := identity.NewPrincipal(kernel.UUID{}, " ", "")

		require.Error(t, err)
		assert.Nil(t, p)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects overlong usernames", func(t *testing.T) {
		_, err := identity.NewPrincipal(id, strings.Repeat("a", 151), "")

		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestPrincipal_GrantRole(t *testing.T) {
	p, _ := identity.NewPrincipal(kernel.NewUUID(), "luigi", "")

	changed, err := p.GrantRole(identity.DeliveryCrew)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, p.HasRole(identity.DeliveryCrew))

	changed, err = p.GrantRole(identity.DeliveryCrew)
	require.NoError(t, err)
	assert.False(t, changed, "granting a held role is a no-op")

	_, err = p.GrantRole(identity.RoleUnknown)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestPrincipal_Validate(t *testing.T) {
	var p *identity.Principal
	assert.Equal(t, identity.ErrPrincipalIsNotConstructed, p.Validate())
	assert.Equal(t, identity.ErrPrincipalIsNotConstructed, (&identity.Principal{}).Validate())
}

func TestPrincipal_AsCaller(t *testing.T) {
	p, _ := identity.NewPrincipal(kernel.NewUUID(), "peach", "", identity.Manager)

	caller, err := p.AsCaller()

	require.NoError(t, err)
	require.NoError(t, caller.Validate())
	assert.True(t, caller.Is(p.ID()))
	assert.True(t, caller.Has(identity.Manager))
	assert.True(t, caller.HasAny(identity.Admin, identity.Manager))
	assert.False(t, caller.Has(identity.Admin))
}

func TestCaller_ZeroValue(t *testing.T) {
	var c identity.Caller
	assert.Equal(t, identity.ErrCallerIsNotConstructed, c.Validate())

	_, err := identity.NewCaller(kernel.UUID{}, identity.NewRoleSet())
	require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}
