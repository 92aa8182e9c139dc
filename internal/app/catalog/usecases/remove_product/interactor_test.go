package remove_product

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func TestRemoveProduct_DeletesProductAndCounter(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, zap.NewNop())

	testutil.SeedProduct(t, store, 42, "beer", 3.5)
	require.NoError(t, store.Increment(ctx, 42))

	err := interactor.Execute(ctx, &Request{ProductID: 42})
	require.NoError(t, err)

	_, ok := store.Product(42)
	assert.False(t, ok)
	_, ok = store.ViewCount(42)
	assert.False(t, ok)
}

func TestRemoveProduct_NotFound(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, zap.NewNop())

	err := interactor.Execute(ctx, &Request{ProductID: 404})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)
	assert.Equal(t, domain.KindNotFound, domain.KindOf(err))
}

func TestRemoveProduct_LeavesOtherProducts(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, zap.NewNop())

	testutil.SeedProduct(t, store, 1, "beer", 3.5)
	testutil.SeedProduct(t, store, 2, "wine", 9)
	require.NoError(t, store.Increment(ctx, 2))

	require.NoError(t, interactor.Execute(ctx, &Request{ProductID: 1}))

	_, ok := store.Product(2)
	assert.True(t, ok)
	n, ok := store.ViewCount(2)
	assert.True(t, ok)
	assert.Equal(t, int64(1), n)
}
