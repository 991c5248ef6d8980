package userrepo_test

import (
	"context"
	"testing"

	"foodorder/internal/adapters/out/postgres/restaurantrepo"
	"foodorder/internal/adapters/out/postgres/storetest"
	"foodorder/internal/adapters/out/postgres/userrepo"
	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGormUserDirectory_GetByUsername(t *testing.T) {
	db := storetest.Open(t)
	fx := storetest.Seed(t, db)
	directory := userrepo.NewGormUserDirectory(db)
	ctx := context.Background()

	jane, err := directory.GetByUsername(ctx, "jane")
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", jane.FullName)
	assert.Equal(t, kernel.RoleCustomer, jane.Role)
	require.NotNil(t, jane.AddressID)
	assert.Equal(t, fx.JaneHome, *jane.AddressID)

	chef, err := directory.GetByUsername(ctx, "chef")
	require.NoError(t, err)
	actor, err := chef.Actor()
	require.NoError(t, err)
	assert.Equal(t, fx.PhoPlace, actor.RestaurantID())
	assert.True(t, actor.Is(kernel.RoleRestaurantEmployee))

	_, err = directory.GetByUsername(ctx, "nobody")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestGormRestaurantCatalog_GetBySlug(t *testing.T) {
	db := storetest.Open(t)
	fx := storetest.Seed(t, db)
	catalog := restaurantrepo.NewGormRestaurantCatalog(db)
	ctx := context.Background()

	r, err := catalog.GetBySlug(ctx, "pho-place")
	require.NoError(t, err)
	assert.Equal(t, fx.PhoPlace, r.ID)
	assert.Equal(t, "Pho Place", r.Name)

	_, err = catalog.GetBySlug(ctx, "burger-barn")
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
