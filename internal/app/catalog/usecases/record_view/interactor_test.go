package record_view

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func TestRecordView_FirstViewCreatesCounter(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, store, zap.NewNop())
	testutil.SeedProduct(t, store, 7, "beer", 2)

	require.NoError(t, interactor.Execute(ctx, &Request{ProductID: 7}))
	require.NoError(t, interactor.Execute(ctx, &Request{ProductID: 7}))

	n, ok := store.ViewCount(7)
	require.True(t, ok)
	assert.Equal(t, int64(2), n)
}

func TestRecordView_NotFoundCreatesNoRow(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, store, zap.NewNop())

	err := interactor.Execute(ctx, &Request{ProductID: 404})
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrProductNotFound)

	_, ok := store.ViewCount(404)
	assert.False(t, ok)
}

// staleProducts claims every product exists, simulating a delete that lands
// between the existence check and the upsert.
type staleProducts struct {
	*testutil.MemoryStore
}

func (staleProducts) Exists(context.Context, int64) (bool, error) {
	return true, nil
}

func TestRecordView_ProductDeletedBeforeUpsert(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(staleProducts{store}, store, zap.NewNop())

	err := interactor.Execute(ctx, &Request{ProductID: 9})
	require.Error(t, err)
	assert.Equal(t, domain.KindReferential, domain.KindOf(err))

	_, ok := store.ViewCount(9)
	assert.False(t, ok, "no orphan counter may be created")
}

func TestRecordView_ConcurrentViewsAreNotLost(t *testing.T) {
	defer goleak.VerifyNone(t, testutil.LeakOptions()...)

	ctx := context.Background()
	store := testutil.NewMemoryStore()
	interactor := NewInteractor(store, store, zap.NewNop())
	testutil.SeedProduct(t, store, 1, "beer", 2)

	const viewers = 200
	var wg sync.WaitGroup
	errs := make(chan error, viewers)

	for range viewers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- interactor.Execute(ctx, &Request{ProductID: 1})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	n, ok := store.ViewCount(1)
	require.True(t, ok)
	assert.Equal(t, int64(viewers), n)
}
