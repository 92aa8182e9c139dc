package mysqlrepo

import (
	"context"

	"gorm.io/gorm"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
)

// ProductRepo implements ProductRepository for MySQL.
type ProductRepo struct {
	db *gorm.DB
}

var _ contracts.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(db *gorm.DB) *ProductRepo {
	return &ProductRepo{db: db}
}

// Insert creates the product row. A taken id fails on the primary key.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product) error {
	model := &ProductModel{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		ImageRef:    product.ImageRef(),
		Price:       product.Price().Decimal(),
	}
	return translateError(r.db.WithContext(ctx).Create(model).Error)
}

// Delete removes the counter and then the product in one transaction.
func (r *ProductRepo) Delete(ctx context.Context, productID int64) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where(m_product.ProductID+" = ?", productID).Delete(&ViewModel{}).Error; err != nil {
			return err
		}

		res := tx.Where(m_product.ProductID+" = ?", productID).Delete(&ProductModel{})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
	return translateError(err)
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&ProductModel{}).
		Where(m_product.ProductID+" = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, translateError(err)
	}
	return count > 0, nil
}
