package usecase

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/redeem/domain"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/ethereum/go-ethereum/common"
)

type Service struct {
	ledger ledger.Ledger
	runner *actionUC.Runner
	logger *logger.Logger

	mu      sync.RWMutex
	records []domain.Record
}

func NewService(l ledger.Ledger, runner *actionUC.Runner, logg *logger.Logger) *Service {
	return &Service{ledger: l, runner: runner, logger: logg}
}

// Load replaces the local history with the ledger's redemptions, numbering
// them by position so new redemptions continue the sequence.
func (s *Service) Load(ctx context.Context) error {
	ops, err := s.ledger.List(ctx, ledger.KindRedeem)
	if err != nil {
		return fmt.Errorf("loading redemptions: %w", err)
	}
	// ops arrive newest first; the oldest redemption is number 1.
	records := make([]domain.Record, 0, len(ops))
	for i, op := range ops {
		records = append(records, domain.Record{
			ID:        strconv.Itoa(len(ops) - i),
			Date:      op.CreatedAt,
			Amount:    op.Amount,
			Address:   op.Address,
			Status:    domain.Status(op.Status),
			LedgerRef: op.ID,
		})
	}
	s.mu.Lock()
	s.records = records
	s.mu.Unlock()
	return nil
}

func (s *Service) Busy() bool { return s.runner.Busy() }

// Redeem burns tokens and asks the registry to release credits to address.
// The redemption stays pending until the registry settles it.
func (s *Service) Redeem(ctx context.Context, form domain.Form) actionDomain.Result {
	address := strings.TrimSpace(form.Address)
	var receipt ledger.Receipt
	return s.runner.Submit(ctx, actionUC.Action{
		Name: "redeem",
		Validate: func() error {
			if a, err := token.ParseAmount(form.Amount); err != nil || !a.IsPositive() {
				return actionDomain.Invalid("amount", "Please enter a valid amount to redeem.")
			}
			if !common.IsHexAddress(address) {
				return actionDomain.Invalid("address", "Please enter a valid address to receive carbon credits.")
			}
			return nil
		},
		Work: func(ctx context.Context) error {
			var err error
			receipt, err = s.ledger.Submit(ctx, ledger.Operation{
				Kind:    ledger.KindRedeem,
				Asset:   domain.Asset,
				Amount:  form.Amount,
				Address: address,
				Status:  ledger.StatusPending,
			})
			return err
		},
		Success: func() string {
			return fmt.Sprintf("Successfully initiated redemption of %s %s tokens!", form.Amount, domain.Asset)
		},
		Failure: "Failed to redeem tokens. Please try again.",
		OnSuccess: func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			rec := domain.Record{
				ID:        strconv.Itoa(len(s.records) + 1),
				Date:      receipt.CreatedAt,
				Amount:    form.Amount,
				Address:   address,
				Status:    domain.StatusPending,
				LedgerRef: receipt.ID,
			}
			s.records = append([]domain.Record{rec}, s.records...)
		},
	})
}

// History returns redemptions newest first.
func (s *Service) History() []domain.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Record, len(s.records))
	copy(out, s.records)
	return out
}
