package testutil

import (
	"time"

	"github.com/light-bringer/procat-analytics/internal/pkg/clock"
)

// FixedTime is the instant used by fixed test clocks.
var FixedTime = time.Date(2024, 3, 15, 10, 30, 0, 0, time.UTC)

// NewFixedClock creates a mock clock fixed at FixedTime.
func NewFixedClock() *clock.MockClock {
	return clock.NewMockClock(FixedTime)
}
