// Package validation checks product input before anything touches the store.
//
// Image references are checked against the blob store exactly once, at creation.
// Every lookup failure, whether the object is missing or the store is unreachable,
// collapses to an invalid reference; the cause is logged so the two stay
// distinguishable in operations.
package validation

import (
	"context"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/app/catalog/contracts"
	"github.com/light-bringer/procat-analytics/internal/app/catalog/domain"
)

// Validator validates prices and image references.
type Validator struct {
	oracle        contracts.BlobOracle
	defaultBucket string
	logger        *zap.Logger
}

// NewValidator creates a Validator backed by oracle. defaultBucket, when set,
// lets callers pass a bare object key.
func NewValidator(oracle contracts.BlobOracle, defaultBucket string, logger *zap.Logger) *Validator {
	return &Validator{
		oracle:        oracle,
		defaultBucket: defaultBucket,
		logger:        logger,
	}
}

// ValidatePrice reports whether price is a storable two-decimal amount.
func (v *Validator) ValidatePrice(price float64) bool {
	return domain.ValidatePrice(price)
}

// ValidateImageRef checks the syntax of raw and then performs one existence lookup.
func (v *Validator) ValidateImageRef(ctx context.Context, raw string) bool {
	ref, err := domain.ParseImageRef(raw, v.oracle.Scheme(), v.defaultBucket)
	if err != nil {
		v.logger.Debug("malformed image reference", zap.String("image_ref", raw), zap.Error(err))
		return false
	}
	if ref.Scheme != v.oracle.Scheme() {
		v.logger.Debug("image reference scheme not served",
			zap.String("image_ref", raw),
			zap.String("scheme", ref.Scheme),
			zap.String("served", v.oracle.Scheme()))
		return false
	}

	exists, err := v.oracle.Exists(ctx, ref.Bucket, ref.Key)
	if err != nil {
		v.logger.Warn("blob existence lookup failed", zap.String("image_ref", ref.String()), zap.Error(err))
		return false
	}
	return exists
}
