package guard_test

import (
	"errors"
	"testing"

	"foodorder/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	errNotConstructed := errors.New("cart must be created via NewCart")

	t.Run("constructed guard passes", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errNotConstructed))
		require.NoError(t, g.Validate(nil))
	})

	t.Run("zero value returns the given error", func(t *testing.T) {
		var g guard.ConstructorGuard

		err := g.Validate(errNotConstructed)

		require.Error(t, err)
		assert.Equal(t, errNotConstructed, err)
	})

	t.Run("zero value falls back to the default error", func(t *testing.T) {
		var g guard.ConstructorGuard

		assert.Equal(t, guard.ErrDefaultConstructorGuard, g.Validate(nil))
	})
}

func TestConstructorGuard_EmbeddedInValueObject(t *testing.T) {
	type cart struct {
		lines int
		guard guard.ConstructorGuard
	}
	errCartNotConstructed := errors.New("cart must be created via newCart")
	newCart := func(lines int) cart {
		return cart{lines: lines, guard: guard.NewConstructorGuard()}
	}

	require.NoError(t, newCart(2).guard.Validate(errCartNotConstructed))
	require.ErrorIs(t, cart{lines: 2}.guard.Validate(errCartNotConstructed), errCartNotConstructed)
}
