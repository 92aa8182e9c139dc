//go:build integration

package e2e

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/repo/spannerrepo"
	"github.com/light-bringer/procat-analytics/internal/pkg/committer"
	"github.com/light-bringer/procat-analytics/internal/services"
	httptransport "github.com/light-bringer/procat-analytics/internal/transport/http"
	"github.com/light-bringer/procat-analytics/tests/testutil"
)

// Env holds the wired catalog, its router and the backing fakes for E2E tests.
type Env struct {
	Catalog *services.Catalog
	Router  *gin.Engine
	Oracle  *testutil.FakeOracle
	Client  *spanner.Client
}

// setupTest wires the catalog over a clean Spanner database and an in-memory blob oracle.
func setupTest(t *testing.T) (*Env, func()) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	client, cleanup := testutil.SetupSpannerTest(t)
	comm := committer.NewCommitter(client)
	readModel := spannerrepo.NewReadModel(client)

	store := services.Store{
		Products:  spannerrepo.NewProductRepo(client, comm),
		Views:     spannerrepo.NewViewRepo(comm),
		ReadModel: readModel,
		Health:    readModel,
	}
	oracle := testutil.NewFakeOracle("gs", "products/beer.jpg", "products/bear.jpg", "products/apple.jpg")
	logger := zap.NewNop()

	catalog := services.NewCatalog(store, oracle, "products", testutil.NewFixedClock(), logger)

	return &Env{
		Catalog: catalog,
		Router:  httptransport.NewRouter(catalog.HTTPHandler, logger),
		Oracle:  oracle,
		Client:  client,
	}, cleanup
}

func (e *Env) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	e.Router.ServeHTTP(w, req)
	return w
}

func (e *Env) products(t *testing.T, path string) httptransport.ProductsResponse {
	t.Helper()

	w := e.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp httptransport.ProductsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func addBody(id int64, name, imageRef string, price float64) map[string]any {
	return map[string]any{
		"product_id":  id,
		"name":        name,
		"description": "Description for " + name,
		"image_ref":   imageRef,
		"price":       price,
	}
}
