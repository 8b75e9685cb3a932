package usecase

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"sync"
	"time"

	actionDomain "github.com/MMN3003/carbondesk/src/action/domain"
	actionUC "github.com/MMN3003/carbondesk/src/action/usecase"
	ledger "github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/registry/domain"
	"github.com/benbjohnson/clock"
)

var errProbeFailed = errors.New("registry probe failed")

// Service owns the registry form. Saving and testing have their own runners
// and may be in flight at the same time.
type Service struct {
	ledger ledger.Ledger
	prober domain.Prober
	save   *actionUC.Runner
	test   *actionUC.Runner
	clock  clock.Clock
	logger *logger.Logger

	mu         sync.Mutex
	cfg        domain.Config
	status     domain.ConnectionStatus
	lastTested *time.Time
	version    uint64
}

func NewService(
	l ledger.Ledger,
	prober domain.Prober,
	save, test *actionUC.Runner,
	clk clock.Clock,
	logg *logger.Logger,
	initial domain.Config,
) *Service {
	return &Service{
		ledger: l,
		prober: prober,
		save:   save,
		test:   test,
		clock:  clk,
		logger: logg,
		cfg:    initial,
		status: domain.StatusUntested,
	}
}

// Update replaces the form. Any change forgets the last test result.
func (s *Service) Update(cfg domain.Config) domain.State {
	s.mu.Lock()
	if cfg != s.cfg {
		s.cfg = cfg
		s.status = domain.StatusUntested
		s.lastTested = nil
		s.version++
	}
	s.mu.Unlock()
	return s.State()
}

func (s *Service) State() domain.State {
	saving, testing := s.save.Busy(), s.test.Busy()
	s.mu.Lock()
	defer s.mu.Unlock()
	st := domain.State{
		Config:  s.cfg,
		Status:  s.status,
		Saving:  saving,
		Testing: testing,
	}
	if s.lastTested != nil {
		t := *s.lastTested
		st.LastTested = &t
	}
	return st
}

// Save stores the endpoint configuration.
func (s *Service) Save(ctx context.Context) actionDomain.Result {
	var cfg domain.Config
	return s.save.Submit(ctx, actionUC.Action{
		Name: "registry-save",
		Validate: func() error {
			cfg = s.config()
			if !validEndpoint(cfg.Endpoint) {
				return actionDomain.Invalid("endpoint", "Please enter a valid registry endpoint URL.")
			}
			return nil
		},
		Work: func(ctx context.Context) error {
			_, err := s.ledger.Submit(ctx, ledger.Operation{
				Kind:      ledger.KindRegistrySave,
				Account:   cfg.AccountID,
				Reference: cfg.Endpoint,
			})
			return err
		},
		Success: func() string { return "Registry endpoint configuration saved successfully!" },
		Failure: "Failed to save registry endpoint configuration. Please try again.",
	})
}

// TestConnection probes the registry with the current form. The result is
// recorded only if the form has not changed while the probe ran.
func (s *Service) TestConnection(ctx context.Context) actionDomain.Result {
	var (
		cfg     domain.Config
		version uint64
	)
	return s.test.Submit(ctx, actionUC.Action{
		Name: "registry-test",
		Validate: func() error {
			s.mu.Lock()
			cfg, version = s.cfg, s.version
			s.mu.Unlock()
			if !cfg.Complete() {
				return actionDomain.Invalid("config", "Please fill in the endpoint, API key and account ID before testing.")
			}
			return nil
		},
		Work: func(ctx context.Context) error {
			return s.prober.Probe(ctx, cfg)
		},
		Success: func() string { return "Successfully connected to the registry!" },
		Failure: "Failed to connect to the registry. Please check your configuration.",
		OnSuccess: func() {
			s.record(version, domain.StatusSuccess)
		},
		OnFailure: func(error) {
			s.record(version, domain.StatusFailed)
		},
	})
}

// Probe is the scheduled variant of TestConnection. An incomplete form is
// skipped silently.
func (s *Service) Probe(ctx context.Context) error {
	if !s.config().Complete() {
		return nil
	}
	res := s.TestConnection(ctx)
	if res.Outcome == actionDomain.OutcomeFailed {
		return errors.Join(errProbeFailed, res.Err)
	}
	return nil
}

func (s *Service) config() domain.Config {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cfg
}

func (s *Service) record(version uint64, status domain.ConnectionStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if version != s.version {
		s.logger.Debugf("registry test result %s dropped: form changed", status)
		return
	}
	now := s.clock.Now()
	s.status = status
	s.lastTested = &now
}

func validEndpoint(raw string) bool {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Host == "" {
		return false
	}
	return u.Scheme == "http" || u.Scheme == "https"
}
