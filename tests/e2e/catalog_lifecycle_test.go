//go:build integration

package e2e

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func TestCatalogLifecycle(t *testing.T) {
	env, cleanup := setupTest(t)
	defer cleanup()

	// Add: full reference and a bare key resolved against the default bucket
	w := env.do(t, http.MethodPost, "/add", addBody(1, "beer", "gs://products/beer.jpg", 4.99))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = env.do(t, http.MethodPost, "/add", addBody(2, "bear", "bear.jpg", 12.5))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	w = env.do(t, http.MethodPost, "/add", addBody(3, "apple", "gs://products/apple.jpg", 1))
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	testutil.AssertRowCount(t, env.Client, m_product.TableName, 3)
	testutil.AssertRowCount(t, env.Client, m_view.TableName, 0)

	// View
	for range 2 {
		require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/analytics/view/1", nil).Code)
	}
	require.Equal(t, http.StatusOK, env.do(t, http.MethodGet, "/analytics/view/3", nil).Code)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodGet, "/analytics/view/99", nil).Code)

	// Search
	found := env.products(t, "/search?name=bier")
	require.Len(t, found.Products, 2)
	assert.Equal(t, int64(2), found.Products[0].ProductID)
	assert.Nil(t, found.Products[0].ViewCount)
	assert.Equal(t, int64(1), found.Products[1].ProductID)
	require.NotNil(t, found.Products[1].ViewCount)
	assert.Equal(t, int64(2), *found.Products[1].ViewCount)

	// Top viewed
	top := env.products(t, "/getall")
	require.Len(t, top.Products, 3)
	assert.Equal(t, int64(1), top.Products[0].ProductID)
	assert.Equal(t, int64(3), top.Products[1].ProductID)
	assert.Equal(t, int64(2), top.Products[2].ProductID)

	// Remove takes the counter with it
	require.Equal(t, http.StatusOK, env.do(t, http.MethodDelete, "/remove/1", nil).Code)
	_, ok := testutil.GetViewCount(t, env.Client, 1)
	assert.False(t, ok)
	assert.Equal(t, http.StatusNotFound, env.do(t, http.MethodDelete, "/remove/1", nil).Code)

	top = env.products(t, "/getall")
	assert.Len(t, top.Products, 2)
}

func TestAddProduct_RejectedInputLeavesStoreUntouched(t *testing.T) {
	env, cleanup := setupTest(t)
	defer cleanup()

	tests := []struct {
		name string
		body map[string]any
	}{
		{"three decimals", addBody(1, "beer", "gs://products/beer.jpg", 1.005)},
		{"too large", addBody(1, "beer", "gs://products/beer.jpg", 100000000)},
		{"missing image", addBody(1, "beer", "gs://products/nothing.jpg", 2)},
		{"other scheme", addBody(1, "beer", "s3://products/beer.jpg", 2)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := env.do(t, http.MethodPost, "/add", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			testutil.AssertRowCount(t, env.Client, m_product.TableName, 0)
		})
	}
}

func TestAddProduct_DuplicateKeepsOriginal(t *testing.T) {
	env, cleanup := setupTest(t)
	defer cleanup()

	require.Equal(t, http.StatusOK, env.do(t, http.MethodPost, "/add", addBody(1, "beer", "beer.jpg", 4.99)).Code)

	w := env.do(t, http.MethodPost, "/add", addBody(1, "apple", "apple.jpg", 1))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	data := testutil.GetProductByID(t, env.Client, 1)
	assert.Equal(t, "beer", data.Name)
	assert.Equal(t, "4.99", testutil.PriceOf(data))
}
