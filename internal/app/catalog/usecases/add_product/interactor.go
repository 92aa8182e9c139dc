package add_product

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// Request contains the data needed to add a product.
type Request struct {
	ProductID   int64
	Name        string
	Description string
	ImageRef    string
	Price       float64
}

// Validator checks input that cannot be verified by the store.
type Validator interface {
	ValidatePrice(price float64) bool
	ValidateImageRef(ctx context.Context, ref string) bool
}

// Interactor handles the add product use case.
type Interactor struct {
	repo      contracts.ProductRepository
	validator Validator
	logger    *zap.Logger
}

// NewInteractor creates a new add product interactor.
func NewInteractor(repo contracts.ProductRepository, validator Validator, logger *zap.Logger) *Interactor {
	return &Interactor{
		repo:      repo,
		validator: validator,
		logger:    logger,
	}
}

// Execute validates the request and inserts the product.
// The blob lookup runs before the store transaction is opened.
func (i *Interactor) Execute(ctx context.Context, req *Request) error {
	// 1. Validate price and name, then the image reference (remote lookup)
	if !i.validator.ValidatePrice(req.Price) {
		return domain.ErrInvalidPrice
	}
	if err := domain.ValidateName(req.Name); err != nil {
		return err
	}
	if !i.validator.ValidateImageRef(ctx, req.ImageRef) {
		return domain.ErrInvalidImageRef
	}

	// 2. Create domain entity
	product, err := domain.NewProduct(req.ProductID, req.Name, req.Description, req.ImageRef, req.Price)
	if err != nil {
		return err
	}

	// 3. Persist
	if err := i.repo.Insert(ctx, product); err != nil {
		return fmt.Errorf("failed to add product %d: %w", req.ProductID, err)
	}

	i.logger.Info("product added",
		zap.Int64("product_id", product.ID()),
		zap.String("name", product.Name()),
		zap.String("price", product.Price().String()))
	return nil
}
