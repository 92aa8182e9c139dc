package testutil

import (
	"context"
	"math/big"
	"testing"

	"cloud.google.com/go/spanner"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
)

// NewTestProduct builds a valid product whose image lives at gs://products/<name>.jpg.
func NewTestProduct(t *testing.T, id int64, name string, price float64) *domain.Product {
	t.Helper()

	p, err := domain.NewProduct(id, name, "Description for "+name, "gs://products/"+name+".jpg", price)
	require.NoError(t, err, "failed to build test product")
	return p
}

// SeedProduct inserts a test product into an in-memory store.
func SeedProduct(t *testing.T, store *MemoryStore, id int64, name string, price float64) *domain.Product {
	t.Helper()

	p := NewTestProduct(t, id, name, price)
	require.NoError(t, store.Insert(context.Background(), p), "failed to seed product")
	return p
}

// CreateTestProduct inserts a product row directly into Spanner.
func CreateTestProduct(t *testing.T, client *spanner.Client, id int64, name string) {
	t.Helper()

	data := &m_product.Data{
		ProductID:   id,
		Name:        name,
		Description: "Test product description",
		ImageRef:    "gs://products/" + name + ".jpg",
	}
	data.Price.SetFrac64(1999, 100)

	_, err := client.Apply(context.Background(), []*spanner.Mutation{m_product.NewModel().InsertMut(data)})
	require.NoError(t, err, "failed to create test product")
}

// SetViewCount writes a counter row directly into Spanner.
func SetViewCount(t *testing.T, client *spanner.Client, id, count int64) {
	t.Helper()

	mut := spanner.InsertOrUpdate(m_view.TableName,
		[]string{m_view.ProductID, m_view.ViewCount},
		[]interface{}{id, count})
	_, err := client.Apply(context.Background(), []*spanner.Mutation{mut})
	require.NoError(t, err, "failed to set view count")
}

// GetViewCount reads a counter row. ok is false when the product was never viewed.
func GetViewCount(t *testing.T, client *spanner.Client, id int64) (count int64, ok bool) {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_view.TableName, spanner.Key{id}, []string{m_view.ViewCount})
	if spanner.ErrCode(err) == codes.NotFound {
		return 0, false
	}
	require.NoError(t, err, "failed to read view count")

	require.NoError(t, row.Column(0, &count))
	return count, true
}

// GetProductByID reads a product row back for verification.
func GetProductByID(t *testing.T, client *spanner.Client, id int64) *m_product.Data {
	t.Helper()

	row, err := client.Single().ReadRow(context.Background(), m_product.TableName, spanner.Key{id}, m_product.Columns)
	require.NoError(t, err, "failed to get product by id")

	var data m_product.Data
	require.NoError(t, row.ToStruct(&data), "failed to parse product data")
	return &data
}

// PriceOf renders a stored NUMERIC price with two decimals.
func PriceOf(data *m_product.Data) string {
	return new(big.Rat).Set(&data.Price).FloatString(2)
}
