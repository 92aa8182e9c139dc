package remove_product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
)

// Request contains the product ID to remove.
type Request struct {
	ProductID int64
}

// Interactor handles the remove product use case.
type Interactor struct {
	repo   contracts.ProductRepository
	logger *zap.Logger
}

// NewInteractor creates a new remove product interactor.
func NewInteractor(repo contracts.ProductRepository, logger *zap.Logger) *Interactor {
	return &Interactor{
		repo:   repo,
		logger: logger,
	}
}

// Execute deletes the product together with its view counter.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	if err := i.repo.Delete(ctx, req.ProductID); err != nil {
		return fmt.Errorf("failed to remove product %d: %w", req.ProductID, err)
	}

	i.logger.Info("product removed", zap.Int64("product_id", req.ProductID))
	return nil
}
