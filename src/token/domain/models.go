package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	ErrUnknownToken   = errors.New("unknown token")
	ErrDuplicateToken = errors.New("token id already registered")
	ErrInvalidToken   = errors.New("token requires id, symbol and a non-negative balance")
)

// Token is a tradeable asset. Balance is a non-negative decimal string.
type Token struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Symbol      string `json:"symbol" yaml:"symbol"`
	Balance     string `json:"balance" yaml:"balance"`
	Decimals    int    `json:"decimals" yaml:"decimals"`
	Description string `json:"description,omitempty" yaml:"description"`
}

// BalanceDecimal parses Balance; malformed balances count as zero.
func (t Token) BalanceDecimal() decimal.Decimal {
	d, err := ParseAmount(t.Balance)
	if err != nil {
		return decimal.Zero
	}
	return d
}

func (t Token) Validate() error {
	if t.ID == "" || t.Symbol == "" {
		return ErrInvalidToken
	}
	if _, err := ParseAmount(t.Balance); err != nil {
		return ErrInvalidToken
	}
	return nil
}
