// Package blob answers whether an image object exists in the configured blob
// store. Nothing here writes to a store.
package blob

import (
	"context"
	"fmt"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/config"
)

// Reference schemes served by the oracles.
const (
	SchemeGCS = "gs"
	SchemeS3  = "s3"
)

// Oracle is a closable existence oracle.
type Oracle interface {
	contracts.BlobOracle
	Close() error
}

// New builds the oracle selected by cfg.Backend.
func New(ctx context.Context, cfg config.BlobConfig) (Oracle, error) {
	switch cfg.Backend {
	case config.BlobGCS:
		return NewGCSOracle(ctx, cfg.GCSProject, cfg.GCSEndpoint)
	case config.BlobS3:
		return NewS3Oracle(S3Options{
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			UseSSL:    cfg.S3UseSSL,
			Region:    cfg.S3Region,
		})
	default:
		return nil, fmt.Errorf("unknown blob backend %q", cfg.Backend)
	}
}
