package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/queries/search_products"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/usecases/add_product"
	httptransport "github.com/light-bringer/procat-analytics/internal/transport/http"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

func memoryCatalog(defaultBucket string) (*Catalog, *testutil.MemoryStore, *testutil.FakeOracle) {
	store := testutil.NewMemoryStore()
	oracle := testutil.NewFakeOracle("gs", "products/beer.jpg")
	c := NewCatalog(Store{
		Products:  store,
		Views:     store,
		ReadModel: store,
		Health:    store,
	}, oracle, defaultBucket, testutil.NewFixedClock(), zap.NewNop())
	return c, store, oracle
}

func TestNewCatalog_WiresEveryOperation(t *testing.T) {
	c, _, _ := memoryCatalog("")

	assert.NotNil(t, c.AddProduct)
	assert.NotNil(t, c.RemoveProduct)
	assert.NotNil(t, c.RecordView)
	assert.NotNil(t, c.RecordPurchase)
	assert.NotNil(t, c.SearchProducts)
	assert.NotNil(t, c.ListTopProducts)
	assert.NotNil(t, c.HTTPHandler)
}

func TestNewCatalog_DefaultBucketAcceptsBareKeys(t *testing.T) {
	ctx := context.Background()
	c, store, _ := memoryCatalog("products")

	err := c.AddProduct.Execute(ctx, &add_product.Request{
		ProductID: 1, Name: "beer", ImageRef: "beer.jpg", Price: 3.25,
	})
	require.NoError(t, err)

	p, ok := store.Product(1)
	require.True(t, ok)
	assert.Equal(t, "beer.jpg", p.ImageRef())
}

func TestNewCatalog_NoDefaultBucketRejectsBareKeys(t *testing.T) {
	ctx := context.Background()
	c, store, oracle := memoryCatalog("")

	err := c.AddProduct.Execute(ctx, &add_product.Request{
		ProductID: 1, Name: "beer", ImageRef: "beer.jpg", Price: 3.25,
	})
	assert.ErrorIs(t, err, domain.ErrInvalidImageRef)
	assert.Equal(t, 0, oracle.Calls())
	assert.Equal(t, 0, store.ProductCount())
}

func TestNewCatalog_Lifecycle(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctx := context.Background()
	c, store, _ := memoryCatalog("")
	router := httptransport.NewRouter(c.HTTPHandler, zap.NewNop())

	call := func(method, path, body string) int {
		req := httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, call(http.MethodPost, "/add",
		`{"product_id":10,"name":"beer","description":"","image_ref":"gs://products/beer.jpg","price":5}`))
	require.Equal(t, http.StatusOK, call(http.MethodGet, "/analytics/view/10", ""))

	hits, err := c.SearchProducts.Execute(ctx, &search_products.Request{Name: "bear"})
	require.NoError(t, err)
	require.Len(t, hits, 1)

	require.Equal(t, http.StatusOK, call(http.MethodDelete, "/remove/10", ""))
	assert.Equal(t, 0, store.ProductCount())
	_, viewed := store.ViewCount(10)
	assert.False(t, viewed)
}
