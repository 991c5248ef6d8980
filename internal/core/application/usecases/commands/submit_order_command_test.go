package commands_test

import (
	"testing"

	"foodorder/internal/core/application/usecases/commands"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubmitOrderCommand(t *testing.T) {
	jane := newActor(t, "jane", kernel.RoleCustomer)

	t.Run("merges repeated items and sorts by id", func(t *testing.T) {
		cmd, err := commands.NewSubmitOrderCommand(jane, " pho-place ", []commands.CartItem{
			{ItemID: 9, Quantity: 1},
			{ItemID: 2, Quantity: 2},
			{ItemID: 9, Quantity: 3},
		})
		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, "pho-place", cmd.RestaurantSlug())
		assert.Equal(t, []commands.CartItem{{ItemID: 2, Quantity: 2}, {ItemID: 9, Quantity: 4}}, cmd.Items())
	})

	tests := []struct {
		name  string
		slug  string
		items []commands.CartItem
		want  error
	}{
		{"empty cart", "pho-place", nil, errs.ErrValueIsRequired},
		{"missing restaurant", " ", []commands.CartItem{{ItemID: 1, Quantity: 1}}, errs.ErrValueIsRequired},
		{"zero quantity", "pho-place", []commands.CartItem{{ItemID: 1, Quantity: 0}}, errs.ErrValueIsInvalid},
		{"negative quantity", "pho-place", []commands.CartItem{{ItemID: 1, Quantity: -2}}, errs.ErrValueIsInvalid},
		{"missing item id", "pho-place", []commands.CartItem{{Quantity: 1}}, errs.ErrValueIsRequired},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := commands.NewSubmitOrderCommand(jane, tt.slug, tt.items)
			require.ErrorIs(t, err, tt.want)
			assert.Equal(t, errs.KindValidation, errs.KindOf(err))
		})
	}

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.SubmitOrderCommand{}.Validate(), commands.ErrSubmitOrderCommandIsNotConstructed)
	})
}
