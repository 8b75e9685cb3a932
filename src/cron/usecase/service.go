package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/MMN3003/carbondesk/src/cron/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

var _ domain.CronUseCase = (*Service)(nil)

// Service runs scheduled jobs under a lock so a slow run is never overlapped
// by the next tick.
type Service struct {
	cron     *cron.Cron
	cronRepo domain.CronRepository
	logger   *logger.Logger
}

func NewService(c *cron.Cron, cronRepo domain.CronRepository, logg *logger.Logger) *Service {
	return &Service{
		cron:     c,
		cronRepo: cronRepo,
		logger:   logg,
	}
}

func (s *Service) CreateCron(ctx context.Context, id uuid.UUID, name string) error {
	_, err := s.cronRepo.SaveCron(ctx, &domain.Cron{ID: id, Name: name})
	return err
}

func (s *Service) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return s.cronRepo.DeleteCron(ctx, id)
}

// Schedule registers job on spec (six fields, seconds first).
func (s *Service) Schedule(spec string, id uuid.UUID, name string, job func(ctx context.Context) error) (cron.EntryID, error) {
	entry, err := s.cron.AddFunc(spec, func() {
		s.Run(context.Background(), id, name, job)
	})
	if err != nil {
		return 0, fmt.Errorf("schedule %s: %w", name, err)
	}
	s.logger.Infof("cron %s scheduled on %q", name, spec)
	return entry, nil
}

// Run executes job once if its lock is free. It reports whether the job ran.
func (s *Service) Run(ctx context.Context, id uuid.UUID, name string, job func(ctx context.Context) error) bool {
	if err := s.CreateCron(ctx, id, name); err != nil {
		if errors.Is(err, domain.ErrLocked) {
			s.logger.Debugf("cron %s skipped: previous run still active", name)
		} else {
			s.logger.Errorf("cron %s lock: %v", name, err)
		}
		return false
	}
	defer func() {
		if err := s.DeleteCron(ctx, id); err != nil {
			s.logger.Errorf("cron %s unlock: %v", name, err)
		}
	}()

	if err := job(ctx); err != nil {
		s.logger.Errorf("cron %s: %v", name, err)
	}
	return true
}
