package record_view

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// Request contains the product ID that was viewed.
type Request struct {
	ProductID int64
}

// Interactor handles the record view use case.
type Interactor struct {
	products contracts.ProductRepository
	views    contracts.ViewRepository
	logger   *zap.Logger
}

// NewInteractor creates a new record view interactor.
func NewInteractor(products contracts.ProductRepository, views contracts.ViewRepository, logger *zap.Logger) *Interactor {
	return &Interactor{
		products: products,
		views:    views,
		logger:   logger,
	}
}

// Execute checks that the product exists and then increments its counter.
// The increment is a single store-side upsert; nothing is read back here.
// A product removed between the two steps surfaces as a referential error.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	exists, err := i.products.Exists(ctx, req.ProductID)
	if err != nil {
		return fmt.Errorf("failed to look up product %d: %w", req.ProductID, err)
	}
	if !exists {
		return domain.ErrProductNotFound
	}

	if err := i.views.Increment(ctx, req.ProductID); err != nil {
		return fmt.Errorf("failed to record view of product %d: %w", req.ProductID, err)
	}

	i.logger.Debug("view incremented", zap.Int64("product_id", req.ProductID))
	return nil
}
