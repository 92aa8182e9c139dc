package blob

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// S3Options configures an S3-compatible endpoint (AWS S3, MinIO).
type S3Options struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Region    string
}

// S3Oracle looks objects up with HEAD requests.
type S3Oracle struct {
	client *minio.Client
}

// NewS3Oracle creates the client. Setting Region skips the bucket location lookup.
func NewS3Oracle(opts S3Options) (*S3Oracle, error) {
	client, err := minio.New(opts.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(opts.AccessKey, opts.SecretKey, ""),
		Secure: opts.UseSSL,
		Region: opts.Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create S3 client: %w", err)
	}
	return &S3Oracle{client: client}, nil
}

func (o *S3Oracle) Scheme() string { return SchemeS3 }

// Exists issues a StatObject. A missing object or bucket is (false, nil).
func (o *S3Oracle) Exists(ctx context.Context, bucket, key string) (bool, error) {
	_, err := o.client.StatObject(ctx, bucket, key, minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}

	resp := minio.ToErrorResponse(err)
	if resp.StatusCode == http.StatusNotFound || resp.Code == "NoSuchKey" || resp.Code == "NoSuchBucket" {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat s3://%s/%s: %w", bucket, key, err)
}

// Close is a no-op; the client holds no resources beyond pooled connections.
func (o *S3Oracle) Close() error {
	return nil
}
