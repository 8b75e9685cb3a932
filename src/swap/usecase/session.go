package usecase

import (
	"context"
	"fmt"
	"sync"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/swap/domain"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/shopspring/decimal"
)

var (
	minSlippage = decimal.RequireFromString("0.1")
	maxSlippage = decimal.RequireFromString("5")
)

// Session owns one swap form: the selected pair, both amount fields and the
// slippage tolerance. Every edit recomputes the opposite amount synchronously.
type Session struct {
	catalog token.Catalog
	rates   domain.RateProvider
	engine  *Engine
	ledger  ledger.Ledger
	runner  *actionUC.Runner
	logger  *logger.Logger
	account func() string

	mu         sync.Mutex
	from       token.Token
	to         token.Token
	fromAmount string
	toAmount   string
	slippage   string
	lastEdited domain.Side
}

type SessionOption func(*Session)

// WithAccount supplies the connected wallet account recorded on swaps.
func WithAccount(account func() string) SessionOption {
	return func(s *Session) { s.account = account }
}

// NewSession starts with the first catalog token on the from side and the
// next distinct token on the to side.
func NewSession(
	catalog token.Catalog,
	rates domain.RateProvider,
	engine *Engine,
	l ledger.Ledger,
	runner *actionUC.Runner,
	logg *logger.Logger,
	slippage string,
	opts ...SessionOption,
) (*Session, error) {
	tokens := catalog.List()
	if len(tokens) == 0 {
		return nil, token.ErrUnknownToken
	}
	to, ok := catalog.Other(tokens[0].ID)
	if !ok {
		return nil, domain.ErrSameToken
	}
	if err := validateSlippage(slippage); err != nil {
		return nil, err
	}
	s := &Session{
		catalog:  catalog,
		rates:    rates,
		engine:   engine,
		ledger:   l,
		runner:   runner,
		logger:   logg,
		account:  func() string { return "" },
		from:     tokens[0],
		to:       to,
		slippage: slippage,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// SetFromAmount makes the from field the source of truth and derives toAmount.
func (s *Session) SetFromAmount(v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fromAmount = v
	s.lastEdited = domain.SideFrom
	return s.recomputeLocked(domain.SideFrom)
}

// SetToAmount makes the to field the source of truth and derives fromAmount.
func (s *Session) SetToAmount(v string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.toAmount = v
	s.lastEdited = domain.SideTo
	return s.recomputeLocked(domain.SideTo)
}

// SelectFromToken picks the from token. Picking the current to token moves
// the to side onto another token.
func (s *Session) SelectFromToken(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%q: %w", id, token.ErrUnknownToken)
	}
	if t.ID == s.to.ID {
		other, ok := s.catalog.Other(t.ID)
		if !ok {
			return domain.ErrSameToken
		}
		s.to = other
	}
	s.from = t
	return s.recomputeLocked(s.lastEdited)
}

func (s *Session) SelectToToken(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.catalog.Get(id)
	if !ok {
		return fmt.Errorf("%q: %w", id, token.ErrUnknownToken)
	}
	if t.ID == s.from.ID {
		other, ok := s.catalog.Other(t.ID)
		if !ok {
			return domain.ErrSameToken
		}
		s.from = other
	}
	s.to = t
	return s.recomputeLocked(s.lastEdited)
}

// SwapDirection exchanges tokens and amounts in one step. The old output
// becomes the new input verbatim; nothing is requoted.
func (s *Session) SwapDirection() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.from, s.to = s.to, s.from
	s.fromAmount, s.toAmount = s.toAmount, s.fromAmount
	switch s.lastEdited {
	case domain.SideFrom:
		s.lastEdited = domain.SideTo
	case domain.SideTo:
		s.lastEdited = domain.SideFrom
	}
}

// SetMax fills the from field with the whole balance.
func (s *Session) SetMax() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fromAmount = s.from.Balance
	s.lastEdited = domain.SideFrom
	return s.recomputeLocked(domain.SideFrom)
}

// SetSlippage accepts a tolerance between 0.1 and 5 percent.
func (s *Session) SetSlippage(v string) error {
	if err := validateSlippage(v); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.slippage = v
	return nil
}

func validateSlippage(v string) error {
	d, ok := ParseAmount(v)
	if !ok || d.LessThan(minSlippage) || d.GreaterThan(maxSlippage) {
		return actionDomain.Invalid("slippage", "Slippage tolerance must be between 0.1% and 5%.")
	}
	return nil
}

// Quote derives the current quote. It is never cached.
func (s *Session) Quote() domain.Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.quoteLocked()
}

func (s *Session) State() domain.State {
	busy := s.runner.Busy()
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.State{
		FromToken:       s.from,
		ToToken:         s.to,
		FromAmount:      s.fromAmount,
		ToAmount:        s.toAmount,
		SlippagePercent: s.slippage,
		LastEdited:      s.lastEdited,
		Quote:           s.quoteLocked(),
		Busy:            busy,
	}
}

// Submit validates the form and sends the swap to the ledger. Validation
// failures and ledger failures both end up as notifications.
func (s *Session) Submit(ctx context.Context) actionDomain.Result {
	var (
		from, to     token.Token
		amount, recv string
	)
	return s.runner.Submit(ctx, actionUC.Action{
		Name: "swap",
		Validate: func() error {
			s.mu.Lock()
			defer s.mu.Unlock()
			from, to, amount, recv = s.from, s.to, s.fromAmount, s.toAmount
			a, ok := ParseAmount(amount)
			if !ok || !a.IsPositive() || recv == "" {
				return actionDomain.Invalid("from_amount", "Please enter a valid amount to swap.")
			}
			if a.GreaterThan(from.BalanceDecimal()) {
				return actionDomain.Invalid("from_amount", fmt.Sprintf("Insufficient %s balance.", from.Symbol))
			}
			return nil
		},
		Work: func(ctx context.Context) error {
			_, err := s.ledger.Submit(ctx, ledger.Operation{
				Kind:          ledger.KindSwap,
				Account:       s.account(),
				Asset:         from.Symbol,
				Amount:        amount,
				CounterAsset:  to.Symbol,
				CounterAmount: recv,
			})
			return err
		},
		Success: func() string {
			return fmt.Sprintf("Successfully swapped %s %s for %s %s!", amount, from.Symbol, recv, to.Symbol)
		},
		Failure: "Failed to complete swap. Please try again.",
		OnSuccess: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			s.fromAmount, s.toAmount = "", ""
			s.lastEdited = ""
		},
	})
}

// Close detaches the session from in-flight submissions.
func (s *Session) Close() {
	s.runner.Detach()
}

func (s *Session) recomputeLocked(source domain.Side) error {
	switch source {
	case domain.SideFrom:
		out, err := s.convertLocked(s.fromAmount, domain.Forward)
		s.toAmount = out
		return err
	case domain.SideTo:
		in, err := s.convertLocked(s.toAmount, domain.Reverse)
		s.fromAmount = in
		return err
	}
	return nil
}

func (s *Session) convertLocked(amount string, dir domain.Direction) (string, error) {
	rate, err := s.rates.Rate(s.from.ID, s.to.ID)
	if err != nil {
		s.logger.Debugf("no rate for %s/%s: %v", s.from.ID, s.to.ID, err)
		return "", err
	}
	return s.engine.Quote(amount, rate, dir)
}

func (s *Session) quoteLocked() domain.Quote {
	q := domain.Quote{
		InputAmount:     s.fromAmount,
		OutputAmount:    s.toAmount,
		SlippagePercent: s.slippage,
		MinimumReceived: "0",
	}
	if rate, err := s.rates.Rate(s.from.ID, s.to.ID); err == nil {
		q.Rate = rate.String()
	}
	if mr, err := s.engine.MinimumReceived(s.toAmount, s.slippage); err == nil {
		q.MinimumReceived = mr
	}
	return q
}
