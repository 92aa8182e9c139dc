package mysqlrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
)

// ReadModelImpl implements ReadModel for MySQL.
type ReadModelImpl struct {
	db *gorm.DB
}

var (
	_ contracts.ReadModel     = (*ReadModelImpl)(nil)
	_ contracts.HealthChecker = (*ReadModelImpl)(nil)
)

// NewReadModel creates a new ReadModel implementation.
func NewReadModel(db *gorm.DB) *ReadModelImpl {
	return &ReadModelImpl{db: db}
}

func (rm *ReadModelImpl) joined(ctx context.Context, viewCountExpr string) *gorm.DB {
	return rm.db.WithContext(ctx).
		Table(m_product.TableName + " AS p").
		Select("p.product_id, p.name, p.description, p.image_ref, p.price, " + viewCountExpr + " AS view_count").
		Joins("LEFT JOIN " + m_view.TableName + " AS v ON v.product_id = p.product_id")
}

// SearchByName compares four-character Soundex codes. MySQL's SOUNDEX does
// not truncate, so both sides are cut to the classic code length.
func (rm *ReadModelImpl) SearchByName(ctx context.Context, name string, limit int) ([]*contracts.ProductDTO, error) {
	var rows []productRow
	err := rm.joined(ctx, "v.view_count").
		Where("LEFT(SOUNDEX(p.name), 4) = LEFT(SOUNDEX(?), 4)", name).
		Order("p.product_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDTOs(rows), nil
}

// ListTopViewed returns products by view count (never viewed as 0), ties by id.
func (rm *ReadModelImpl) ListTopViewed(ctx context.Context, limit int) ([]*contracts.ProductDTO, error) {
	var rows []productRow
	err := rm.joined(ctx, "COALESCE(v.view_count, 0)").
		Order("view_count DESC, p.product_id DESC").
		Limit(limit).
		Scan(&rows).Error
	if err != nil {
		return nil, translateError(err)
	}
	return toDTOs(rows), nil
}

// Ping checks the connection pool.
func (rm *ReadModelImpl) Ping(ctx context.Context) error {
	sqlDB, err := rm.db.DB()
	if err != nil {
		return translateError(err)
	}
	return translateError(sqlDB.PingContext(ctx))
}

func toDTOs(rows []productRow) []*contracts.ProductDTO {
	products := make([]*contracts.ProductDTO, 0, len(rows))
	for _, row := range rows {
		products = append(products, &contracts.ProductDTO{
			ProductID:   row.ProductID,
			Name:        row.Name,
			Description: row.Description,
			ImageRef:    row.ImageRef,
			Price:       row.Price.InexactFloat64(),
			ViewCount:   row.ViewCount,
		})
	}
	return products
}
