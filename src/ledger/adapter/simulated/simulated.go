// Package simulated is an in-process stand-in for the ledger. Every call
// waits a fixed latency before settling, as a network round trip would.
package simulated

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/google/uuid"
)

var _ domain.Ledger = (*Ledger)(nil)

type Ledger struct {
	latency time.Duration
	logger  *logger.Logger

	mu       sync.Mutex
	ops      []domain.Operation
	failures map[domain.Kind]error
	now      func() time.Time
}

type Option func(*Ledger)

// WithOperations preloads the journal.
func WithOperations(ops ...domain.Operation) Option {
	return func(l *Ledger) { l.ops = append(l.ops, ops...) }
}

func WithNow(now func() time.Time) Option {
	return func(l *Ledger) { l.now = now }
}

func New(latency time.Duration, logg *logger.Logger, opts ...Option) *Ledger {
	l := &Ledger{
		latency:  latency,
		logger:   logg,
		failures: make(map[domain.Kind]error),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// FailWith makes every later operation of kind fail with err. A nil err clears it.
func (l *Ledger) FailWith(kind domain.Kind, err error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err == nil {
		delete(l.failures, kind)
		return
	}
	l.failures[kind] = err
}

func (l *Ledger) Submit(ctx context.Context, op domain.Operation) (domain.Receipt, error) {
	if err := l.wait(ctx); err != nil {
		return domain.Receipt{}, err
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	if err, ok := l.failures[op.Kind]; ok {
		return domain.Receipt{}, err
	}
	if op.Kind == "" {
		return domain.Receipt{}, errors.New("operation kind required")
	}

	op.ID = uuid.New().String()
	op.CreatedAt = l.now().UTC()
	if op.Status == "" {
		op.Status = domain.StatusCompleted
	}
	l.ops = append(l.ops, op)
	l.logger.Infof("simulated ledger op=%s kind=%s asset=%s amount=%s", op.ID, op.Kind, op.Asset, op.Amount)
	return domain.Receipt{ID: op.ID, Status: op.Status, CreatedAt: op.CreatedAt}, nil
}

// List returns operations of kind, newest first. An empty kind lists everything.
func (l *Ledger) List(ctx context.Context, kind domain.Kind) ([]domain.Operation, error) {
	if err := l.wait(ctx); err != nil {
		return nil, err
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	out := make([]domain.Operation, 0, len(l.ops))
	for i := len(l.ops) - 1; i >= 0; i-- {
		if kind == "" || l.ops[i].Kind == kind {
			out = append(out, l.ops[i])
		}
	}
	return out, nil
}

func (l *Ledger) wait(ctx context.Context) error {
	if l.latency <= 0 {
		return nil
	}
	t := time.NewTimer(l.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// SeedMintHistory returns the demo mint records shown on a fresh install.
func SeedMintHistory() []domain.Operation {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []domain.Operation{
		{ID: "4", Kind: domain.KindMint, Asset: "CCT", Amount: "300", Account: "0x1234...5678", Status: domain.StatusFailed, CreatedAt: at("2025-04-05T16:20:00Z")},
		{ID: "3", Kind: domain.KindMint, Asset: "CCT", Amount: "750", Account: "0xabcd...ef12", Status: domain.StatusCompleted, CreatedAt: at("2025-04-06T09:45:00Z")},
		{ID: "2", Kind: domain.KindMint, Asset: "CCT", Amount: "500", Account: "0x1234...5678", Status: domain.StatusCompleted, CreatedAt: at("2025-04-07T10:15:00Z")},
		{ID: "1", Kind: domain.KindMint, Asset: "CCT", Amount: "1000", Account: "0x1234...5678", Status: domain.StatusCompleted, CreatedAt: at("2025-04-08T14:30:00Z")},
		{ID: "5", Kind: domain.KindMint, Asset: "CCT", Amount: "1200", Account: "0x1234...5678", Status: domain.StatusPending, CreatedAt: at("2025-04-10T08:05:00Z")},
	}
}

// SeedRedemptions returns the demo redemption records shown on a fresh install.
func SeedRedemptions() []domain.Operation {
	at := func(s string) time.Time {
		t, _ := time.Parse(time.RFC3339, s)
		return t
	}
	return []domain.Operation{
		{ID: "1", Kind: domain.KindRedeem, Asset: "CCT", Amount: "500", Address: "0x1234...5678", Status: domain.StatusCompleted, CreatedAt: at("2025-04-05T11:30:00Z")},
		{ID: "2", Kind: domain.KindRedeem, Asset: "CCT", Amount: "300", Address: "0x1234...5678", Status: domain.StatusCompleted, CreatedAt: at("2025-04-03T09:15:00Z")},
		{ID: "3", Kind: domain.KindRedeem, Asset: "CCT", Amount: "750", Address: "0x1234...5678", Status: domain.StatusPending, CreatedAt: at("2025-04-09T14:45:00Z")},
	}
}
