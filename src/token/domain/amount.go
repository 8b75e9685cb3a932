package domain

import (
	"errors"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// MaxAmountLength bounds the raw input accepted as an amount.
	MaxAmountLength = 100
	// MaxAmountExponent bounds the decimal exponent in either direction, so
	// 1e64 and 1e-64 parse but 1e65 does not.
	MaxAmountExponent = 64
)

var ErrInvalidAmount = errors.New("invalid amount")

// ParseAmount parses a non-negative amount in plain or exponent notation.
// Surrounding whitespace is ignored.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > MaxAmountLength {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	if exp := d.Exponent(); exp > MaxAmountExponent || exp < -MaxAmountExponent {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}
