package repository

import (
	"context"
	"sync"
	"time"

	"github.com/MMN3003/carbondesk/src/cron/domain"
	"github.com/google/uuid"
)

var _ domain.CronRepository = (*MemoryCronRepo)(nil)

// MemoryCronRepo holds locks for a single process.
type MemoryCronRepo struct {
	mu    sync.Mutex
	locks map[uuid.UUID]domain.Cron
}

func NewMemoryCronRepo() *MemoryCronRepo {
	return &MemoryCronRepo{locks: make(map[uuid.UUID]domain.Cron)}
}

func (r *MemoryCronRepo) SaveCron(_ context.Context, c *domain.Cron) (*domain.Cron, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.locks[c.ID]; ok {
		return nil, domain.ErrLocked
	}
	held := domain.Cron{ID: c.ID, Name: c.Name, CreatedAt: time.Now()}
	r.locks[c.ID] = held
	return &held, nil
}

func (r *MemoryCronRepo) DeleteCron(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.locks, id)
	return nil
}
