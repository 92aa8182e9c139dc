package list_top_products

import (
	"context"
	"fmt"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
)

// Query handles the trending products listing.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new list top products query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns up to contracts.MaxResults products, most viewed first.
// Never-viewed products carry a count of 0.
func (q *Query) Execute(ctx context.Context) ([]*contracts.ProductDTO, error) {
	products, err := q.readModel.ListTopViewed(ctx, contracts.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to list top products: %w", err)
	}
	return products, nil
}
