package repository

import (
	"fmt"
	"sync"

	"github.com/MMN3003/carbondesk/src/swap/domain"
	"github.com/shopspring/decimal"
)

var _ domain.RateProvider = (*RateTable)(nil)

// RateTable holds configured rates keyed by "FROM|TO". A lookup falls back to
// the inverse of the opposite pair, then to the default rate when one is set.
type RateTable struct {
	mu          sync.RWMutex
	rates       map[string]decimal.Decimal
	defaultRate decimal.Decimal
}

// NewRateTable creates a table. A zero defaultRate disables the fallback.
func NewRateTable(defaultRate decimal.Decimal) *RateTable {
	return &RateTable{
		rates:       make(map[string]decimal.Decimal),
		defaultRate: defaultRate,
	}
}

func (t *RateTable) Set(fromID, toID string, rate decimal.Decimal) error {
	if !rate.IsPositive() {
		return domain.ErrInvalidRate
	}
	if fromID == toID {
		return domain.ErrSameToken
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	t.rates[key(fromID, toID)] = rate
	return nil
}

func (t *RateTable) Rate(fromID, toID string) (decimal.Decimal, error) {
	if fromID == toID {
		return decimal.Zero, domain.ErrSameToken
	}
	t.mu.RLock()
	defer t.mu.RUnlock()

	if r, ok := t.rates[key(fromID, toID)]; ok {
		return r, nil
	}
	if r, ok := t.rates[key(toID, fromID)]; ok {
		return decimal.NewFromInt(1).Div(r), nil
	}
	if t.defaultRate.IsPositive() {
		return t.defaultRate, nil
	}
	return decimal.Zero, fmt.Errorf("%s/%s: %w", fromID, toID, domain.ErrRateUnavailable)
}

func key(fromID, toID string) string {
	return fmt.Sprintf("%s|%s", fromID, toID)
}
