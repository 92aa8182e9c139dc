package record_purchase_intent

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/light-bringer/procat-analytics/internal/pkg/clock"
)

// Request identifies who wants to buy what. Neither id is checked.
type Request struct {
	UserID    int64
	ProductID int64
}

// Reply acknowledges a purchase intent.
type Reply struct {
	ReceivedAt time.Time
}

// Interactor handles the purchase intent use case. Nothing is persisted and no
// payment is taken; the intent is only logged.
type Interactor struct {
	logger *zap.Logger
	clock  clock.Clock
}

// NewInteractor creates a new purchase intent interactor.
func NewInteractor(logger *zap.Logger, clock clock.Clock) *Interactor {
	return &Interactor{
		logger: logger,
		clock:  clock,
	}
}

// Execute logs the intent and always succeeds.
func (i *Interactor) Execute(_ context.Context, req *Request) *Reply {
	now := i.clock.Now()
	i.logger.Info("purchase request",
		zap.Int64("user_id", req.UserID),
		zap.Int64("product_id", req.ProductID),
		zap.Time("received_at", now))
	return &Reply{ReceivedAt: now}
}
