package domain

import "errors"

var (
	ErrDivisionByZero  = errors.New("division by zero rate")
	ErrInvalidRate     = errors.New("rate must be positive")
	ErrRateUnavailable = errors.New("rate not available for pair")
	ErrSameToken       = errors.New("pair needs two distinct tokens")
	ErrInvalidSlippage = errors.New("slippage out of range")
)
