package contracts

import "context"

// ViewRepository defines the interface for view counter persistence.
type ViewRepository interface {
	// Increment inserts the counter with value 1 or adds 1 to it, as one atomic store
	// operation. A missing product yields a referential error from the store's foreign key.
	Increment(ctx context.Context, productID int64) error
}
