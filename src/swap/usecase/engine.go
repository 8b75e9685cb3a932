package usecase

import (
	"strconv"
	"strings"

	"github.com/MMN3003/carbondesk/src/swap/domain"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/shopspring/decimal"
)

// Arithmetic selects how the engine computes amounts.
//
// FloatArithmetic multiplies and divides IEEE-754 doubles and formats the
// result with the shortest representation that parses back to the same
// double, so 500 * 0.02 prints "10" while 0.1 * 3 prints "0.30000000000000004".
//
// DecimalArithmetic uses exact decimal multiplication. Division keeps
// decimal.DivisionPrecision (16) fractional digits, rounded half up.
type Arithmetic int

const (
	FloatArithmetic Arithmetic = iota
	DecimalArithmetic
)

// ParseArithmetic maps the configuration value to an Arithmetic. Unknown values mean float.
func ParseArithmetic(s string) Arithmetic {
	if strings.EqualFold(s, "decimal") {
		return DecimalArithmetic
	}
	return FloatArithmetic
}

func (a Arithmetic) String() string {
	if a == DecimalArithmetic {
		return "decimal"
	}
	return "float"
}

// Engine is pure and safe for concurrent use.
type Engine struct {
	mode Arithmetic
}

func NewEngine(mode Arithmetic) *Engine {
	return &Engine{mode: mode}
}

func (e *Engine) Mode() Arithmetic { return e.mode }

// ParseAmount accepts plain or exponent decimal notation. Empty, non-numeric,
// negative and out-of-range input is not an amount.
func ParseAmount(s string) (decimal.Decimal, bool) {
	d, err := token.ParseAmount(s)
	return d, err == nil
}

// Quote converts amount across the pair. Forward yields amount*rate, Reverse
// yields amount/rate. An amount that is not a number yields "" and no error.
func (e *Engine) Quote(amount string, rate decimal.Decimal, dir domain.Direction) (string, error) {
	if rate.IsNegative() {
		return "", domain.ErrInvalidRate
	}
	if dir == domain.Reverse && rate.IsZero() {
		return "", domain.ErrDivisionByZero
	}
	a, ok := ParseAmount(amount)
	if !ok {
		return "", nil
	}

	if e.mode == DecimalArithmetic {
		if dir == domain.Reverse {
			return a.Div(rate).String(), nil
		}
		return a.Mul(rate).String(), nil
	}

	af, r := a.InexactFloat64(), rate.InexactFloat64()
	if dir == domain.Reverse {
		return formatFloat(af / r), nil
	}
	return formatFloat(af * r), nil
}

// MinimumReceived is output*(1 - slippage/100), never below zero. An empty or
// non-numeric output gives "0".
func (e *Engine) MinimumReceived(output, slippagePercent string) (string, error) {
	s, ok := ParseAmount(slippagePercent)
	if !ok {
		return "", domain.ErrInvalidSlippage
	}
	out, ok := ParseAmount(output)
	if !ok {
		return "0", nil
	}

	if e.mode == DecimalArithmetic {
		hundred := decimal.NewFromInt(100)
		v := out.Mul(decimal.NewFromInt(1).Sub(s.Div(hundred)))
		if v.IsNegative() {
			return "0", nil
		}
		return v.String(), nil
	}

	v := out.InexactFloat64() * (1 - s.InexactFloat64()/100)
	if v < 0 {
		return "0", nil
	}
	return formatFloat(v), nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
