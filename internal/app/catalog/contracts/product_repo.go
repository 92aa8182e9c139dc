package contracts

import (
	"context"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// ProductRepository defines the interface for product persistence.
// Every method runs in exactly one store transaction and returns typed domain errors.
type ProductRepository interface {
	// Insert creates the product row. A taken id yields a duplicate error.
	Insert(ctx context.Context, product *domain.Product) error

	// Delete removes the view counter and then the product in one transaction.
	// A missing product yields domain.ErrProductNotFound and leaves the store unchanged.
	Delete(ctx context.Context, productID int64) error

	// Exists checks if a product exists
	Exists(ctx context.Context, productID int64) (bool, error)
}
