package usecase

import (
	"context"
	"fmt"
	"sync"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/mint/domain"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	wallet "github.com/MMN3003/carbondesk/src/wallet/domain"
	"github.com/shopspring/decimal"
)

type Service struct {
	ledger  ledger.Ledger
	runner  *actionUC.Runner
	account wallet.AccountSource
	logger  *logger.Logger

	mu      sync.RWMutex
	records []domain.Record
}

func NewService(l ledger.Ledger, runner *actionUC.Runner, account wallet.AccountSource, logg *logger.Logger) *Service {
	return &Service{ledger: l, runner: runner, account: account, logger: logg}
}

// Load replaces the local history with the ledger's mint records.
func (s *Service) Load(ctx context.Context) error {
	ops, err := s.ledger.List(ctx, ledger.KindMint)
	if err != nil {
		return fmt.Errorf("loading mint history: %w", err)
	}
	records := make([]domain.Record, 0, len(ops))
	for _, op := range ops {
		records = append(records, toRecord(op))
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

func (s *Service) Busy() bool { return s.runner.Busy() }

// Mint locks the equivalent registry credits and issues tokens to the
// connected account.
func (s *Service) Mint(ctx context.Context, form domain.Form) actionDomain.Result {
	var (
		minter  = s.account.Account()
		receipt ledger.Receipt
	)
	return s.runner.Submit(ctx, actionUC.Action{
		Name: "mint",
		Validate: func() error {
			if !form.Confirmed {
				return actionDomain.Invalid("confirmed", "You must confirm that you are locking equivalent carbon credits.")
			}
			if a, err := token.ParseAmount(form.Amount); err != nil || !a.IsPositive() {
				return actionDomain.Invalid("amount", "Please enter a valid amount to mint.")
			}
			return nil
		},
		Work: func(ctx context.Context) error {
			var err error
			receipt, err = s.ledger.Submit(ctx, ledger.Operation{
				Kind:    ledger.KindMint,
				Account: minter,
				Asset:   domain.Asset,
				Amount:  form.Amount,
			})
			return err
		},
		Success: func() string {
			return fmt.Sprintf("Successfully minted %s %s tokens!", form.Amount, domain.Asset)
		},
		Failure: "Failed to mint tokens. Please try again.",
		OnSuccess: func() {
			rec := domain.Record{
				ID:        receipt.ID,
				Amount:    form.Amount,
				Minter:    minter,
				Status:    domain.StatusCompleted,
				Timestamp: receipt.CreatedAt,
			}
			s.mu.Lock()
			s.records = append([]domain.Record{rec}, s.records...)
			s.mu.Unlock()
		},
	})
}

// History returns records matching filter, newest first.
func (s *Service) History(filter domain.Filter) []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, 0, len(s.records))
	for _, r := range s.records {
		if filter.Match(r.Status) {
			out = append(out, r)
		}
	}
	return out
}

func (s *Service) Stats() domain.Stats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var st domain.Stats
	total := decimal.Zero
	for _, r := range s.records {
		switch r.Status {
		case domain.StatusCompleted:
			st.Completed++
			if a, err := token.ParseAmount(r.Amount); err == nil {
				total = total.Add(a)
			}
		case domain.StatusPending:
			st.Pending++
		case domain.StatusFailed:
			st.Failed++
		}
	}
	st.TotalMinted = total.String()
	return st
}

func toRecord(op ledger.Operation) domain.Record {
	return domain.Record{
		ID:        op.ID,
		Amount:    op.Amount,
		Minter:    op.Account,
		Status:    domain.Status(op.Status),
		Timestamp: op.CreatedAt,
	}
}
