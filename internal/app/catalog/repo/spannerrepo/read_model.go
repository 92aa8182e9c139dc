package spannerrepo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/api/iterator"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
	"github.com/light-bringer/procat-analytics/internal/pkg/query"
)

// ReadModelImpl implements ReadModel for Spanner.
type ReadModelImpl struct {
	client *spanner.Client
}

var (
	_ contracts.ReadModel     = (*ReadModelImpl)(nil)
	_ contracts.HealthChecker = (*ReadModelImpl)(nil)
)

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(client *spanner.Client) *ReadModelImpl {
	return &ReadModelImpl{
		client: client,
	}
}

type productRow struct {
	ProductID   int64               `spanner:"product_id"`
	Name        string              `spanner:"name"`
	Description string              `spanner:"description"`
	ImageRef    string              `spanner:"image_ref"`
	Price       spanner.NullNumeric `spanner:"price"`
	ViewCount   spanner.NullInt64   `spanner:"view_count"`
}

// base selects every product column plus the joined counter.
func base(viewCountExpr string) *query.Builder {
	return query.From(m_product.TableName).As("p").
		Select(
			"p."+m_product.ProductID,
			"p."+m_product.Name,
			"p."+m_product.Description,
			"p."+m_product.ImageRef,
			"p."+m_product.Price,
			viewCountExpr+" AS "+m_view.ViewCount,
		).
		LeftJoin(m_view.TableName, "v", "p."+m_product.ProductID+" = v."+m_view.ProductID)
}

// SearchByName matches names by Soundex code, newest id first.
func (rm *ReadModelImpl) SearchByName(ctx context.Context, name string, limit int) ([]*contracts.ProductDTO, error) {
	stmt := base("v."+m_view.ViewCount).
		Where(query.SoundsLike("p."+m_product.Name, name)).
		OrderBy("p."+m_product.ProductID, query.Desc).
		Limit(int64(limit)).
		Build()

	return rm.collect(ctx, stmt, limit)
}

// ListTopViewed returns products by view count (never viewed as 0), ties by id.
func (rm *ReadModelImpl) ListTopViewed(ctx context.Context, limit int) ([]*contracts.ProductDTO, error) {
	stmt := base("COALESCE(v."+m_view.ViewCount+", 0)").
		OrderBy(m_view.ViewCount, query.Desc).
		OrderBy("p."+m_product.ProductID, query.Desc).
		Limit(int64(limit)).
		Build()

	return rm.collect(ctx, stmt, limit)
}

// Ping runs a trivial query to prove the database is reachable.
func (rm *ReadModelImpl) Ping(ctx context.Context) error {
	iter := rm.client.Single().Query(ctx, spanner.Statement{SQL: "SELECT 1"})
	defer iter.Stop()

	if _, err := iter.Next(); err != nil {
		return translateError(err)
	}
	return nil
}

func (rm *ReadModelImpl) collect(ctx context.Context, stmt spanner.Statement, limit int) ([]*contracts.ProductDTO, error) {
	iter := rm.client.Single().Query(ctx, stmt)
	defer iter.Stop()

	products := make([]*contracts.ProductDTO, 0, limit)
	for {
		row, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, translateError(err)
		}

		var data productRow
		if err := row.ToStruct(&data); err != nil {
			return nil, fmt.Errorf("failed to parse product: %w", err)
		}

		dto, err := rowToDTO(&data)
		if err != nil {
			return nil, err
		}
		products = append(products, dto)
	}

	return products, nil
}

func rowToDTO(data *productRow) (*contracts.ProductDTO, error) {
	dto := &contracts.ProductDTO{
		ProductID:   data.ProductID,
		Name:        data.Name,
		Description: data.Description,
		ImageRef:    data.ImageRef,
	}

	if data.Price.Valid {
		price, err := domain.PriceFromRat(&data.Price.Numeric)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", domain.ErrInvalidData, err)
		}
		dto.Price = price.Float64()
	}

	if data.ViewCount.Valid {
		n := data.ViewCount.Int64
		dto.ViewCount = &n
	}

	return dto, nil
}
