package mysqlrepo

import (
	"github.com/shopspring/decimal"

	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
)

// ProductModel maps the products table.
type ProductModel struct {
	ProductID   int64           `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	Name        string          `gorm:"column:name;type:varchar(255);not null"`
	Description string          `gorm:"column:description;type:text;not null"`
	ImageRef    string          `gorm:"column:image_ref;type:varchar(1024);not null"`
	Price       decimal.Decimal `gorm:"column:price;type:decimal(10,2);not null"`
}

func (ProductModel) TableName() string { return m_product.TableName }

// ViewModel maps the product_views table.
type ViewModel struct {
	ProductID int64 `gorm:"column:product_id;primaryKey;autoIncrement:false"`
	ViewCount int64 `gorm:"column:view_count;not null;default:0"`
}

func (ViewModel) TableName() string { return m_view.TableName }

// productRow is a product joined with its (nullable) counter.
type productRow struct {
	ProductID   int64
	Name        string
	Description string
	ImageRef    string
	Price       decimal.Decimal
	ViewCount   *int64
}
