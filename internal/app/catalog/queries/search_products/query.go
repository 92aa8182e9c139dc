package search_products

import (
	"context"
	"fmt"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// Request contains the name to match phonetically.
type Request struct {
	Name string
}

// Query handles the phonetic product search.
type Query struct {
	readModel contracts.ReadModel
}

// NewQuery creates a new search query.
func NewQuery(readModel contracts.ReadModel) *Query {
	return &Query{
		readModel: readModel,
	}
}

// Execute returns up to contracts.MaxResults products whose name sounds like req.Name,
// newest id first. A name without letters has no Soundex code and matches nothing.
func (q *Query) Execute(ctx context.Context, req *Request) ([]*contracts.ProductDTO, error) {
	if !domain.HasPhoneticCode(req.Name) {
		return []*contracts.ProductDTO{}, nil
	}

	products, err := q.readModel.SearchByName(ctx, req.Name, contracts.MaxResults)
	if err != nil {
		return nil, fmt.Errorf("failed to search products: %w", err)
	}
	return products, nil
}
