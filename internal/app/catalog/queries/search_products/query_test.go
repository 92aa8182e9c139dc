package search_products

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func TestSearch_CapsAtMaxResultsNewestFirst(t *testing.T) {
	store := testutil.NewMemoryStore()
	for id := int64(1); id <= 25; id++ {
		testutil.SeedProduct(t, store, id, "beer", 2)
	}

	products, err := NewQuery(store).Execute(context.Background(), &Request{Name: "bier"})
	require.NoError(t, err)

	require.Len(t, products, contracts.MaxResults)
	assert.Equal(t, int64(25), products[0].ProductID)
	assert.Equal(t, int64(6), products[len(products)-1].ProductID)
}

func TestSearch_MatchesSoundexCodeOnly(t *testing.T) {
	store := testutil.NewMemoryStore()
	testutil.SeedProduct(t, store, 1, "beer", 2)
	testutil.SeedProduct(t, store, 2, "beers", 2)
	testutil.SeedProduct(t, store, 3, "be", 2)
	testutil.SeedProduct(t, store, 4, "beer4", 2)
	testutil.SeedProduct(t, store, 5, "apple", 2)

	products, err := NewQuery(store).Execute(context.Background(), &Request{Name: "beer"})
	require.NoError(t, err)

	// beers is B620 and be is B000; only B600 names match.
	var ids []int64
	for _, p := range products {
		ids = append(ids, p.ProductID)
	}
	assert.Equal(t, []int64{4, 1}, ids)
}

func TestSearch_NameWithoutLettersMatchesNothing(t *testing.T) {
	store := testutil.NewMemoryStore()
	testutil.SeedProduct(t, store, 1, "beer", 2)

	products, err := NewQuery(store).Execute(context.Background(), &Request{Name: "123"})
	require.NoError(t, err)

	assert.NotNil(t, products)
	assert.Empty(t, products)
}

func TestSearch_StoreFailure(t *testing.T) {
	store := testutil.NewMemoryStore()
	store.FailWith(errors.New("connection refused"))

	_, err := NewQuery(store).Execute(context.Background(), &Request{Name: "beer"})
	assert.Error(t, err)
}
