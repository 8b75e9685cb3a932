package domain

import "github.com/shopspring/decimal"

// RateProvider supplies the exchange rate of an ordered pair:
// 1 unit of fromID = rate units of toID.
type RateProvider interface {
	Rate(fromID, toID string) (decimal.Decimal, error)
}
