package contracts

import "context"

// BlobOracle answers whether an object exists in a blob store. It never mutates the store.
type BlobOracle interface {
	// Scheme is the reference scheme this oracle serves ("gs", "s3").
	Scheme() string

	// Exists reports whether bucket/key exists. A missing object is (false, nil);
	// an error means the lookup itself failed.
	Exists(ctx context.Context, bucket, key string) (bool, error)
}
