package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/identity"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newPrincipal(t *testing.T, username string, roles ...identity.Role) *identity.Principal {
	t.Helper()
	p, err := identity.NewPrincipal(kernel.NewUUID(), username, username+"@example.com", roles...)
	require.NoError(t, err)
	return p
}

func callerOf(t *testing.T, p *identity.Principal) identity.Caller {
	t.Helper()
	c, err := p.AsCaller()
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T, ownerID kernel.UUID) *order.Order {
	t.Helper()
	price, err := kernel.MoneyFromString("7.00")
	require.NoError(t, err)
	l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Pasta", price, 1)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), ownerID, []*order.Line{l})
	require.NoError(t, err)
	return o
}
