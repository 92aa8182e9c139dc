package domain

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"
)

const (
	// MaxPrice is the largest value a DECIMAL(10,2) column holds.
	MaxPrice = 99999999.99

	// centEpsilon absorbs float representation error when checking for whole cents.
	centEpsilon = 0.0001
)

// ValidatePrice reports whether price is positive, has at most two decimal places
// and fits in DECIMAL(10,2).
func ValidatePrice(price float64) bool {
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return false
	}
	if price <= 0 {
		return false
	}
	cents := price * 100
	if math.Abs(cents-math.Round(cents)) > centEpsilon {
		return false
	}
	if price > MaxPrice {
		return false
	}
	return true
}

// Price is a fixed-point currency amount with two decimal places.
type Price struct {
	amount decimal.Decimal
}

// NewPrice creates a Price from a float, rejecting values ValidatePrice rejects.
func NewPrice(value float64) (Price, error) {
	if !ValidatePrice(value) {
		return Price{}, ErrInvalidPrice
	}
	return Price{amount: decimal.NewFromFloat(value).Round(2)}, nil
}

// PriceFromDecimal wraps an amount read back from storage.
func PriceFromDecimal(d decimal.Decimal) Price {
	return Price{amount: d.Round(2)}
}

// PriceFromRat wraps a NUMERIC value read back from Spanner.
func PriceFromRat(r *big.Rat) (Price, error) {
	if r == nil {
		return Price{}, fmt.Errorf("price is null")
	}
	d, err := decimal.NewFromString(r.FloatString(2))
	if err != nil {
		return Price{}, fmt.Errorf("invalid stored price %q: %w", r.FloatString(2), err)
	}
	return Price{amount: d}, nil
}

// Decimal returns the underlying decimal amount.
func (p Price) Decimal() decimal.Decimal {
	return p.amount
}

// Rat returns the amount as a *big.Rat (the Spanner NUMERIC representation).
func (p Price) Rat() *big.Rat {
	return p.amount.Rat()
}

// Float64 returns an approximate float64 representation (for display only).
func (p Price) Float64() float64 {
	f, _ := p.amount.Float64()
	return f
}

// String returns the amount with exactly two decimal places.
func (p Price) String() string {
	return p.amount.StringFixed(2)
}

// Equals returns true if both prices hold the same amount.
func (p Price) Equals(other Price) bool {
	return p.amount.Equal(other.amount)
}
