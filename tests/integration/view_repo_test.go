//go:build integration

package integration

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/spannerrepo"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
	"github.com/light-bringer/procat-analytics/internal/pkg/committer"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func TestViewRepository_IncrementCreatesThenAdds(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	views := spannerrepo.NewViewRepo(committer.NewCommitter(client))
	testutil.CreateTestProduct(t, client, 3, "beer")

	require.NoError(t, views.Increment(ctx, 3))
	n, ok := testutil.GetViewCount(t, client, 3)
	require.True(t, ok)
	assert.Equal(t, int64(1), n)

	require.NoError(t, views.Increment(ctx, 3))
	n, _ = testutil.GetViewCount(t, client, 3)
	assert.Equal(t, int64(2), n)
}

func TestViewRepository_IncrementMissingProduct(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	views := spannerrepo.NewViewRepo(committer.NewCommitter(client))

	err := views.Increment(context.Background(), 404)
	require.Error(t, err)
	assert.Equal(t, domain.KindReferential, domain.KindOf(err))

	testutil.AssertRowCount(t, client, m_view.TableName, 0)
}

func TestViewRepository_ConcurrentIncrements(t *testing.T) {
	client, cleanup := testutil.SetupSpannerTest(t)
	defer cleanup()

	ctx := context.Background()
	views := spannerrepo.NewViewRepo(committer.NewCommitter(client))
	testutil.CreateTestProduct(t, client, 1, "beer")

	const viewers = 20
	var wg sync.WaitGroup
	errs := make(chan error, viewers)

	for range viewers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- views.Increment(ctx, 1)
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}

	n, ok := testutil.GetViewCount(t, client, 1)
	require.True(t, ok)
	assert.Equal(t, int64(viewers), n)
}
