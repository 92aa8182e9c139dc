// Package spannerrepo persists the catalog in Cloud Spanner.
package spannerrepo

import (
	"context"
	"fmt"

	"cloud.google.com/go/spanner"
	"google.golang.org/grpc/codes"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
	"github.com/light-bringer/procat-analytics/internal/models/m_product"
	"github.com/light-bringer/procat-analytics/internal/models/m_view"
	"github.com/light-bringer/procat-analytics/internal/pkg/committer"
)

// ProductRepo implements ProductRepository for Spanner.
type ProductRepo struct {
	client    *spanner.Client
	committer *committer.Committer
	model     *m_product.Model
	views     *m_view.Model
}

var _ contracts.ProductRepository = (*ProductRepo)(nil)

// NewProductRepo creates a new ProductRepo.
func NewProductRepo(client *spanner.Client, c *committer.Committer) *ProductRepo {
	return &ProductRepo{
		client:    client,
		committer: c,
		model:     m_product.NewModel(),
		views:     m_view.NewModel(),
	}
}

// Insert commits the product row on its own. No view counter is created.
func (r *ProductRepo) Insert(ctx context.Context, product *domain.Product) error {
	plan := committer.NewPlan()
	plan.Add(r.model.InsertMut(r.domainToData(product)))

	if err := r.committer.Apply(ctx, plan); err != nil {
		return translateError(err)
	}
	return nil
}

// Delete removes the view counter, then the product, in one transaction.
// If no product row matched, the transaction is rolled back.
func (r *ProductRepo) Delete(ctx context.Context, productID int64) error {
	err := r.committer.ApplyWithReadWriteTransaction(ctx, func(ctx context.Context, txn *spanner.ReadWriteTransaction) error {
		if _, err := txn.Update(ctx, r.views.DeleteByProductStmt(productID)); err != nil {
			return fmt.Errorf("failed to delete view counter: %w", err)
		}

		deleted, err := txn.Update(ctx, r.model.DeleteStmt(productID))
		if err != nil {
			return fmt.Errorf("failed to delete product: %w", err)
		}
		if deleted == 0 {
			return domain.ErrProductNotFound
		}
		return nil
	})
	if err != nil {
		return translateError(err)
	}
	return nil
}

// Exists checks if a product exists.
func (r *ProductRepo) Exists(ctx context.Context, productID int64) (bool, error) {
	_, err := r.client.Single().ReadRow(ctx, m_product.TableName, r.model.Key(productID), []string{m_product.ProductID})
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return false, nil
		}
		return false, translateError(err)
	}
	return true, nil
}

// GetByID loads a product. It is used by tooling and tests; the catalog
// operations never read a product back.
func (r *ProductRepo) GetByID(ctx context.Context, productID int64) (*domain.Product, error) {
	row, err := r.client.Single().ReadRow(ctx, m_product.TableName, r.model.Key(productID), m_product.Columns)
	if err != nil {
		if spanner.ErrCode(err) == codes.NotFound {
			return nil, domain.ErrProductNotFound
		}
		return nil, translateError(err)
	}

	var data m_product.Data
	if err := row.ToStruct(&data); err != nil {
		return nil, fmt.Errorf("failed to parse product: %w", err)
	}
	return r.dataToDomain(&data)
}

func (r *ProductRepo) domainToData(product *domain.Product) *m_product.Data {
	return &m_product.Data{
		ProductID:   product.ID(),
		Name:        product.Name(),
		Description: product.Description(),
		ImageRef:    product.ImageRef(),
		Price:       *product.Price().Rat(),
	}
}

func (r *ProductRepo) dataToDomain(data *m_product.Data) (*domain.Product, error) {
	price, err := domain.PriceFromRat(&data.Price)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidData, err)
	}
	return domain.ReconstructProduct(data.ProductID, data.Name, data.Description, data.ImageRef, price), nil
}
