package commands_test

import (
	"errors"
	"testing"

	"restaurant/internal/core/application/usecases/commands"
	"restaurant/internal/core/domain/model/cart"
	"restaurant/internal/core/domain/model/kernel"
	"restaurant/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewAddCartLineCommand(t *testing.T) {
	caller := callerOf(t, newPrincipal(t, "carl"))

	_, err := commands.NewAddCartLineCommand(caller, kernel.NewUUID(), 0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	cmd, err := commands.NewAddCartLineCommand(caller, kernel.NewUUID(), 3)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 3, cmd.Quantity())

	require.ErrorIs(t, commands.AddCartLineCommand{}.Validate(), commands.ErrAddCartLineCommandIsNotConstructed)
}

func TestAddCartLineCommandHandler_Handle(t *testing.T) {
	carl := newPrincipal(t, "carl")
	item := newMenuItem(t, "Pizza", "9.00")

	t.Run("adds the line and commits", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		c, _ := cart.NewCart(carl.ID())

		uow.expectTx(ctx, true)
		uow.menuItems.On("Get", ctx, item.ID()).Return(item, nil).Once()
		uow.carts.On("GetForUpdate", ctx, carl.ID()).Return(c, nil).Once()
		uow.carts.On("Save", ctx, mock.MatchedBy(func(saved *cart.Cart) bool {
			lines := saved.Lines()
			return len(lines) == 1 && lines[0].Quantity() == 2 && lines[0].MenuItemID().IsEqual(item.ID())
		})).Return(nil).Once()

		cmd, _ := commands.NewAddCartLineCommand(callerOf(t, carl), item.ID(), 2)
		lineID, err := commands.NewAddCartLineCommandHandler(cartFactory(uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		require.NoError(t, lineID.Validate())
		uow.assertAll(t)
	})

	t.Run("unknown menu item", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		missing := kernel.NewUUID()

		uow.expectTx(ctx, false)
		uow.menuItems.On("Get", ctx, missing).Return(nil, errs.NewObjectNotFoundError("menuItemID", missing)).Once()

		cmd, _ := commands.NewAddCartLineCommand(callerOf(t, carl), missing, 1)
		_, err := commands.NewAddCartLineCommandHandler(cartFactory(uow)).Handle(ctx, cmd)

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
		uow.assertAll(t)
	})

	t.Run("unconstructed command", func(t *testing.T) {
		h := commands.NewAddCartLineCommandHandler(cartUoWFactory(unusedFactory[commands.CartUoW](t)))

		_, err := h.Handle(t.Context(), commands.AddCartLineCommand{})

		require.ErrorIs(t, err, commands.ErrAddCartLineCommandIsNotConstructed)
	})
}

func TestClearCartCommandHandler_Handle(t *testing.T) {
	carl := newPrincipal(t, "carl")

	t.Run("clears lines", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		c, _ := cart.NewCart(carl.ID())
		_, _ = c.AddOrUpdateLine(kernel.NewUUID(), 4)

		uow.expectTx(ctx, true)
		uow.carts.On("GetForUpdate", ctx, carl.ID()).Return(c, nil).Once()
		uow.carts.On("Save", ctx, c).Return(nil).Once()

		cmd, _ := commands.NewClearCartCommand(callerOf(t, carl))
		err := commands.NewClearCartCommandHandler(cartFactory(uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
		uow.assertAll(t)
	})

	t.Run("empty cart still succeeds", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		c, _ := cart.NewCart(carl.ID())

		uow.expectTx(ctx, true)
		uow.carts.On("GetForUpdate", ctx, carl.ID()).Return(c, nil).Once()
		uow.carts.On("Save", ctx, c).Return(nil).Once()

		cmd, _ := commands.NewClearCartCommand(callerOf(t, carl))
		err := commands.NewClearCartCommandHandler(cartFactory(uow)).Handle(ctx, cmd)

		require.NoError(t, err)
		uow.assertAll(t)
	})

	t.Run("begin error", func(t *testing.T) {
		ctx := t.Context()
		uow := newMockUoW()
		uow.On("Begin", ctx).Return(errors.New("begin error")).Once()

		cmd, _ := commands.NewClearCartCommand(callerOf(t, carl))
		err := commands.NewClearCartCommandHandler(cartFactory(uow)).Handle(ctx, cmd)

		require.Error(t, err)
		uow.assertAll(t)
	})
}
