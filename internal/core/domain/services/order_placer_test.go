package services_test

import (
	"testing"

	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/catalog"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/core/domain/model/order"
	"restaurant/internal/core/domain/services"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func menuItem(t *testing.T, title, price string) *catalog.MenuItem {
	t.Helper()
	m, err := kernel.MoneyFromString(price)
	require.NoError(t, err)
	item, err := catalog.NewMenuItem(kernel.NewUUID(), title, m, kernel.NewUUID())
	require.NoError(t, err)
	return item
}

func TestOrderPlacer_Place(t *testing.T) {
	placer := services.NewOrderPlacer()
	owner := kernel.NewUUID()
	a := menuItem(t, "A", "10.00")
	b := menuItem(t, "B", "5.00")
	items := map[kernel.UUID]*catalog.MenuItem{a.ID(): a, b.ID(): b}

	t.Run("two lines become an order of 25.00 and the cart is drained", func(t *testing.T) {
		c, _ := cart.NewCart(owner)
		_, _ = c.AddOrUpdateLine(a.ID(), 2)
		_, _ = c.AddOrUpdateLine(b.ID(), 1)

		o, err := placer.Place(c, items)

		require.NoError(t, err)
		assert.Equal(t, "25.00", o.Total().String())
		assert.Len(t, o.Lines(), 2)
		assert.Equal(t, order.Placed, o.Status())
		assert.False(t, o.IsAssigned())
		assert.True(t, o.OwnerID().IsEqual(owner))
		assert.True(t, c.IsEmpty())
	})

	t.Run("lines snapshot title and price", func(t *testing.T) {
		c, _ := cart.NewCart(owner)
		_, _ = c.AddOrUpdateLine(a.ID(), 1)

		o, err := placer.Place(c, items)
		require.NoError(t, err)

		require.NoError(t, a.Update("A renamed", kernel.ZeroMoney(), a.CategoryID()))
		l := o.Lines()[0]
		assert.Equal(t, "A", l.Title())
		assert.Equal(t, "10.00", l.UnitPrice().String())
		assert.Equal(t, "10.00", o.Total().String())
	})

	t.Run("empty cart", func(t *testing.T) {
		c, _ := cart.NewCart(owner)

		o, err := placer.Place(c, items)

		assert.Nil(t, o)
		require.ErrorIs(t, err, cart.ErrCartIsEmpty)
	})

	t.Run("missing menu item leaves the cart intact", func(t *testing.T) {
		c, _ := cart.NewCart(owner)
		_, _ = c.AddOrUpdateLine(kernel.NewUUID(), 1)

		_, err := placer.Place(c, items)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		assert.False(t, c.IsEmpty())
	})

	t.Run("a total too large to store is rejected and the cart kept", func(t *testing.T) {
		pricey := menuItem(t, "Caviar", catalog.MaxPrice.String())
		c, _ := cart.NewCart(owner)
		_, _ = c.AddOrUpdateLine(pricey.ID(), cart.MaxQuantity)

		o, err := placer.Place(c, map[kernel.UUID]*catalog.MenuItem{pricey.ID(): pricey})

		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
		assert.False(t, c.IsEmpty())
	})
}
