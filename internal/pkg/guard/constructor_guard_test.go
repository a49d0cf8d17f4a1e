package guard_test

import (
	"errors"
	"testing"

	"restaurant/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("ClearCartCommand must be created via NewClearCartCommand")

	testCases := []struct {
		name      string
		guard     guard.ConstructorGuard
		given     error
		wantError error
	}{
		{
			name:  "constructed_guard_passes",
			guard: guard.NewConstructorGuard(),
			given: errNotConstructed,
		},
		{
			name:  "constructed_guard_passes_with_nil_error",
			guard: guard.NewConstructorGuard(),
		},
		{
			name:      "zero_value_returns_given_error",
			given:     errNotConstructed,
			wantError: errNotConstructed,
		},
		{
			name:      "zero_value_returns_default_error",
			wantError: guard.ErrDefaultConstructorGuard,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.guard.Validate(tc.given)

			if tc.wantError == nil {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tc.wantError, err)
		})
	}
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type quantity struct {
		value int
		guard guard.ConstructorGuard
	}
	errQuantityNotConstructed := errors.New("quantity must be created via newQuantity")

	newQuantity := func(v int) (quantity, error) {
		if v <= 0 {
			return quantity{}, errors.New("quantity must be positive")
		}
		return quantity{value: v, guard: guard.NewConstructorGuard()}, nil
	}

	t.Run("constructed_value_is_valid", func(t *testing.T) {
		q, err := newQuantity(2)

		require.NoError(t, err)
		require.NoError(t, q.guard.Validate(errQuantityNotConstructed))
		assert.Equal(t, 2, q.value)
	})

	t.Run("rejected_value_keeps_zero_guard", func(t *testing.T) {
		q, err := newQuantity(0)

		require.Error(t, err)
		assert.Equal(t, errQuantityNotConstructed, q.guard.Validate(errQuantityNotConstructed))
	})

	t.Run("copies_keep_guard_state", func(t *testing.T) {
		q, _ := newQuantity(3)
		cp := q

		require.NoError(t, cp.guard.Validate(errQuantityNotConstructed))
	})
}

func TestConstructorGuard_DefaultErrorMessage(t *testing.T) {
	assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
}
