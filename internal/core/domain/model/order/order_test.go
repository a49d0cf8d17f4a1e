package order_test

import (
	"testing"

	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func line(t *testing.T, title, price string, quantity int) *order.Line {
	t.Helper()
	l, err := order.NewLine(kernel.NewUUID(), kernel.NewUUID(), title, money(t, price), quantity)
	require.NoError(t, err)
	return l
}

func placedOrder(t *testing.T) *order.Order {
	t.Helper()
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{line(t, "Soup", "4.50", 1)})
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}

func TestNewLine(t *testing.T) {
	t.Run("computes subtotal", func(t *testing.T) {
		l := line(t, " Tiramisu ", "6.25", 3)

		assert.Equal(t, "Tiramisu", l.Title())
		assert.Equal(t, "18.75", l.Subtotal().String())
	})

	t.Run("joins every validation error", func(t *testing.T) {
		l, err := order.NewLine(kernel.UUID{}, kernel.UUID{}, "", kernel.Money{}, 0)

		assert.Nil(t, l)
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, kernel.ErrMoneyIsNotConstructed)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})
}

func TestNewOrder(t *testing.T) {
	t.Run("computes the price-weighted total", func(t *testing.T) {
		ownerID := kernel.NewUUID()
		lines := []*order.Line{
			line(t, "A", "10.00", 2),
			line(t, "B", "5.00", 1),
		}

		o, err := order.NewOrder(kernel.NewUUID(), ownerID, lines)

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.Equal(t, "25.00", o.Total().String())
		assert.Equal(t, order.Placed, o.Status())
		assert.Nil(t, o.AssigneeID())
		assert.True(t, o.OwnerID().IsEqual(ownerID))
		assert.Len(t, o.Lines(), 2)
	})

	t.Run("records an order.placed event", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{line(t, "A", "3.00", 3)})
		require.NoError(t, err)

		events := o.DomainEvents()
		require.Len(t, events, 1)
		placed, ok := events[0].(order.PlacedEvent)
		require.True(t, ok)
		assert.Equal(t, order.EventPlaced, placed.EventName())
		assert.True(t, placed.AggregateID().IsEqual(o.ID()))
		assert.Equal(t, "9.00", placed.Total.String())
	})

	t.Run("rejects an order without lines", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), nil)

		assert.Nil(t, o)
		require.ErrorIs(t, err, order.ErrOrderHasNoLines)
	})

	t.Run("requires an owner", func(t *testing.T) {
		_, err := order.NewOrder(kernel.NewUUID(), kernel.UUID{}, []*order.Line{line(t, "A", "1.00", 1)})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects a total that cannot be stored", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{
			line(t, "A", "99999999.99", 1000),
		})

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	})

	t.Run("accepts the largest storable total", func(t *testing.T) {
		o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), []*order.Line{
			line(t, "A", "99999999.99", 100),
			line(t, "B", "0.99", 1),
		})

		require.NoError(t, err)
		assert.True(t, o.Total().IsEqual(order.MaxTotal))
	})
}

func TestOrder_Assign(t *testing.T) {
	t.Run("assigns once", func(t *testing.T) {
		o := placedOrder(t)
		crew := kernel.NewUUID()

		require.NoError(t, o.Assign(crew))

		assert.True(t, o.IsAssignedTo(crew))
		assert.Equal(t, order.Placed, o.Status())
		require.Len(t, o.DomainEvents(), 1)
		assert.False(t, o.DomainEvents()[0].(order.AssignedEvent).Override)
	})

	t.Run("second assignment fails and keeps the first assignee", func(t *testing.T) {
		o := placedOrder(t)
		first := kernel.NewUUID()
		require.NoError(t, o.Assign(first))

		err := o.Assign(kernel.NewUUID())

		require.ErrorIs(t, err, order.ErrAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(first))
	})

	t.Run("rejects the nil UUID", func(t *testing.T) {
		o := placedOrder(t)

		require.ErrorIs(t, o.Assign(kernel.UUID{}), kernel.ErrUUIDIsNotConstructed)
		assert.False(t, o.IsAssigned())
	})
}

func TestOrder_OverrideAssignee(t *testing.T) {
	o := placedOrder(t)
	require.NoError(t, o.Assign(kernel.NewUUID()))
	replacement := kernel.NewUUID()

	require.NoError(t, o.OverrideAssignee(replacement))

	assert.True(t, o.IsAssignedTo(replacement))
	events := o.DomainEvents()
	require.Len(t, events, 2)
	assert.True(t, events[1].(order.AssignedEvent).Override)
}

func TestOrder_MarkDelivered(t *testing.T) {
	o := placedOrder(t)

	require.NoError(t, o.MarkDelivered())
	assert.Equal(t, order.Delivered, o.Status())

	err := o.MarkDelivered()
	require.ErrorIs(t, err, order.ErrAlreadyDelivered)
	assert.Equal(t, order.Delivered, o.Status())
	assert.Len(t, o.DomainEvents(), 1, "only the first transition records an event")
}

func TestRestoreOrder(t *testing.T) {
	lines := []*order.Line{line(t, "A", "2.00", 1)}
	assignee := kernel.NewUUID()

	t.Run("restores without events", func(t *testing.T) {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &assignee, order.Delivered, money(t, "2.00"), lines)

		require.NoError(t, err)
		assert.True(t, o.IsAssignedTo(assignee))
		assert.Equal(t, order.Delivered, o.Status())
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("rejects unknown status", func(t *testing.T) {
		_, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), nil, order.Unknown, money(t, "2.00"), lines)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}
