package usecase

import (
	"context"
	"strings"
	"sync"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	token "github.com/MMN3003/carbondesk/src/token/domain"
	"github.com/MMN3003/carbondesk/src/whitelist/domain"
	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Service manages the whitelist. Saving and deleting share one runner, so
// only one of them can be in flight at a time.
type Service struct {
	repo   domain.Repository
	ledger ledger.Ledger
	runner *actionUC.Runner
	logger *logger.Logger

	mu        sync.Mutex
	editingID string
}

func NewService(repo domain.Repository, l ledger.Ledger, runner *actionUC.Runner, logg *logger.Logger) *Service {
	return &Service{repo: repo, ledger: l, runner: runner, logger: logg}
}

func (s *Service) Busy() bool { return s.runner.Busy() }

func (s *Service) Entries() []domain.Entry { return s.repo.List() }

// Edit loads an entry into the form; the next Save updates it.
func (s *Service) Edit(id string) (domain.Form, error) {
	e, ok := s.repo.Get(id)
	if !ok {
		return domain.Form{}, domain.ErrNotFound
	}
	s.mu.Lock()
	s.editingID = id
	s.mu.Unlock()
	return domain.Form{Address: e.Address, Amount: e.Amount, EditingID: id}, nil
}

func (s *Service) Cancel() {
	s.mu.Lock()
	s.editingID = ""
	s.mu.Unlock()
}

// EditingID is the entry currently loaded into the form, or "".
func (s *Service) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// Save adds a new entry, or updates the one being edited. form.EditingID
// takes precedence over the entry loaded with Edit.
func (s *Service) Save(ctx context.Context, form domain.Form) actionDomain.Result {
	address := strings.TrimSpace(form.Address)
	var entry domain.Entry
	editing := false
	return s.runner.Submit(ctx, actionUC.Action{
		Name: "whitelist",
		Validate: func() error {
			if !common.IsHexAddress(address) {
				return actionDomain.Invalid("address", "Please enter a valid wallet address.")
			}
			if a, err := token.ParseAmount(form.Amount); err != nil || !a.IsPositive() {
				return actionDomain.Invalid("amount", "Please enter a valid amount.")
			}
			id := form.EditingID
			if id == "" {
				id = s.EditingID()
			}
			if id != "" {
				if _, ok := s.repo.Get(id); !ok {
					return actionDomain.Invalid("id", "Address not found in whitelist.")
				}
				editing = true
			} else {
				id = uuid.NewString()
			}
			entry = domain.Entry{ID: id, Address: address, Amount: form.Amount}
			return nil
		},
		Work: func(ctx context.Context) error {
			_, err := s.ledger.Submit(ctx, ledger.Operation{
				Kind:      ledger.KindWhitelistSave,
				Address:   entry.Address,
				Amount:    entry.Amount,
				Reference: entry.ID,
			})
			return err
		},
		Success: func() string {
			if editing {
				return "Address updated successfully!"
			}
			return "Address added to whitelist successfully!"
		},
		Failure: "Failed to update whitelist. Please try again.",
		OnSuccess: func() {
			s.repo.Put(entry)
			if editing {
				s.Cancel()
			}
		},
	})
}

func (s *Service) Delete(ctx context.Context, id string) actionDomain.Result {
	var entry domain.Entry
	return s.runner.Submit(ctx, actionUC.Action{
		Name: "whitelist",
		Validate: func() error {
			e, ok := s.repo.Get(id)
			if !ok {
				return actionDomain.Invalid("id", "Address not found in whitelist.")
			}
			entry = e
			return nil
		},
		Work: func(ctx context.Context) error {
			_, err := s.ledger.Submit(ctx, ledger.Operation{
				Kind:      ledger.KindWhitelistDelete,
				Address:   entry.Address,
				Reference: entry.ID,
			})
			return err
		},
		Success: func() string { return "Address removed from whitelist successfully!" },
		Failure: "Failed to remove address from whitelist. Please try again.",
		OnSuccess: func() {
			s.repo.Delete(entry.ID)
			s.mu.Lock()
			if s.editingID == entry.ID {
				s.editingID = ""
			}
			s.mu.Unlock()
		},
	})
}

// Search matches the address case-insensitively, or the amount as typed.
// An empty term matches everything.
func (s *Service) Search(term string) []domain.Entry {
	term = strings.TrimSpace(term)
	all := s.repo.List()
	if term == "" {
		return all
	}
	lower := strings.ToLower(term)
	out := make([]domain.Entry, 0, len(all))
	for _, e := range all {
		if strings.Contains(strings.ToLower(e.Address), lower) || strings.Contains(e.Amount, term) {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the whitelisted amounts. Malformed amounts count as zero.
func (s *Service) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.repo.List() {
		if a, err := token.ParseAmount(e.Amount); err == nil {
			total = total.Add(a)
		}
	}
	return total
}
