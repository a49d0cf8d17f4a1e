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

func TestOrderAssigner_Assign(t *testing.T) {
	assigner := services.NewOrderAssigner()
	manager := newPrincipal(t, "mia", identity.Manager)
	crew := newPrincipal(t, "dora", identity.DeliveryCrew)
	customer := newPrincipal(t, "carl")

	t.Run("manager assigns to delivery crew", func(t *testing.T) {
		o := newOrder(t, customer.ID())

		err := assigner.Assign(callerOf(t, manager), o, crew)

		require.NoError(t, err)
		assert.True(t, o.IsAssignedTo(crew.ID()))
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("second assignment is rejected", func(t *testing.T) {
		o := newOrder(t, customer.ID())
		require.NoError(t, assigner.Assign(callerOf(t, manager), o, crew))
		otherCrew := newPrincipal(t, "dan", identity.DeliveryCrew)

		err := assigner.Assign(callerOf(t, manager), o, otherCrew)

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(crew.ID()))
	})

	t.Run("non manager is forbidden", func(t *testing.T) {
		o := newOrder(t, customer.ID())

		err := assigner.Assign(callerOf(t, crew), o, crew)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.False(t, o.IsAssigned())
	})

	t.Run("target must be delivery crew", func(t *testing.T) {
		o := newOrder(t, customer.ID())

		err := assigner.Assign(callerOf(t, manager), o, customer)

		require.ErrorIs(t, err, services.ErrAssigneeIsNotDeliveryCrew)
		assert.False(t, o.IsAssigned())
	})

	t.Run("manager cannot assign to self", func(t *testing.T) {
		both := newPrincipal(t, "max", identity.Manager, identity.DeliveryCrew)
		o := newOrder(t, customer.ID())

		err := assigner.Assign(callerOf(t, both), o, both)

		require.ErrorIs(t, err, services.ErrSelfAssignment)
		assert.False(t, o.IsAssigned())
	})

	t.Run("already assigned wins over role checks", func(t *testing.T) {
		o := newOrder(t, customer.ID())
		require.NoError(t, o.Assign(crew.ID()))

		err := assigner.Assign(callerOf(t, manager), o, customer)

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
	})
}

func TestOrderAssigner_Override(t *testing.T) {
	assigner := services.NewOrderAssigner()
	manager := newPrincipal(t, "mia", identity.Manager)
	customer := newPrincipal(t, "carl")
	crew := newPrincipal(t, "dora", identity.DeliveryCrew)

	t.Run("skips single-shot, role and self checks", func(t *testing.T) {
		o := newOrder(t, customer.ID())
		require.NoError(t, o.Assign(crew.ID()))

		require.NoError(t, assigner.Override(callerOf(t, manager), o, manager))
		assert.True(t, o.IsAssignedTo(manager.ID()))

		require.NoError(t, assigner.Override(callerOf(t, manager), o, customer))
		assert.True(t, o.IsAssignedTo(customer.ID()))
	})

	t.Run("still requires manager", func(t *testing.T) {
		o := newOrder(t, customer.ID())

		err := assigner.Override(callerOf(t, crew), o, crew)

		require.ErrorIs(t, err, errs.ErrForbidden)
	})
}

func TestOrderDeliverer_MarkDelivered(t *testing.T) {
	deliverer := services.NewOrderDeliverer()
	customer := newPrincipal(t, "carl")
	crew := newPrincipal(t, "dora", identity.DeliveryCrew)

	t.Run("assigned crew delivers once, then gets a warning", func(t *testing.T) {
		o := newOrder(t, customer.ID())
		require.NoError(t, o.Assign(crew.ID()))

		require.NoError(t, deliverer.MarkDelivered(callerOf(t, crew), o))
		assert.Equal(t, order.Delivered, o.Status())

		err := deliverer.MarkDelivered(callerOf(t, crew), o)
		require.ErrorIs(t, err, order.ErrAlreadyDelivered)
		assert.True(t, services.IsWarning(err))
		assert.Equal(t, order.Delivered, o.Status())
	})

	t.Run("customer is forbidden", func(t *testing.T) {
		o := newOrder(t, customer.ID())

		err := deliverer.MarkDelivered(callerOf(t, customer), o)

		require.ErrorIs(t, err, errs.ErrForbidden)
		assert.Equal(t, order.Placed, o.Status())
	})

	t.Run("crew cannot deliver an order assigned to someone else", func(t *testing.T) {
		o := newOrder(t, customer.ID())
		require.NoError(t, o.Assign(newPrincipal(t, "dan", identity.DeliveryCrew).ID()))

		err := deliverer.MarkDelivered(callerOf(t, crew), o)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.Equal(t, order.Placed, o.Status())
	})
}
