package blob

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// GCSOracle looks objects up in Google Cloud Storage.
type GCSOracle struct {
	client  *storage.Client
	project string
}

// NewGCSOracle creates a storage client. A non-empty endpoint points the
// client at an emulator without credentials.
func NewGCSOracle(ctx context.Context, project, endpoint string) (*GCSOracle, error) {
	var opts []option.ClientOption
	if endpoint != "" {
		opts = append(opts, option.WithEndpoint(endpoint), option.WithoutAuthentication())
	}

	client, err := storage.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create GCS client: %w", err)
	}
	return &GCSOracle{client: client, project: project}, nil
}

func (o *GCSOracle) Scheme() string { return SchemeGCS }

// Exists fetches object attributes, billing the lookup to the configured
// project. A missing object or bucket is (false, nil).
func (o *GCSOracle) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := o.client.Bucket(bucket).UserProject(o.project).Object(key).Attrs(ctx)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, storage.ErrObjectNotExist), errors.Is(err, storage.ErrBucketNotExist):
		return false, nil
	default:
		return false, fmt.Errorf("failed to stat gs://%s/%s: %w", bucket, key, err)
	}
}

func (o *GCSOracle) Close() error {
	return o.client.Close()
}
