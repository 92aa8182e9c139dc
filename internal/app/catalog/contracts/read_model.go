package contracts

import "context"

// MaxResults caps every product listing.
const MaxResults = 20

// ProductDTO is a data transfer object for product queries.
type ProductDTO struct {
	ProductID   int64
	Name        string
	Description string
	ImageRef    string
	Price       float64 // Approximate representation for display
	ViewCount   *int64  // nil when the product was never viewed and the query does not coalesce
}

// ReadModel defines the interface for product queries.
// Read models can bypass the domain layer for performance.
type ReadModel interface {
	// SearchByName returns products whose name has the same Soundex code as name,
	// newest id first, with the raw (nullable) view count.
	SearchByName(ctx context.Context, name string, limit int) ([]*ProductDTO, error)

	// ListTopViewed returns products by view count (absent counters as 0), then id, both descending.
	ListTopViewed(ctx context.Context, limit int) ([]*ProductDTO, error)
}

// HealthChecker reports whether the store is reachable.
type HealthChecker interface {
	Ping(ctx context.Context) error
}
