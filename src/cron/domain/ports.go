package domain

import (
	"context"

	"github.com/google/uuid"
)

// CronRepository stores job locks. SaveCron fails with ErrLocked when the
// lock is already held.
type CronRepository interface {
	SaveCron(ctx context.Context, c *Cron) (*Cron, error)
	DeleteCron(ctx context.Context, id uuid.UUID) error
}

type CronUseCase interface {
	CreateCron(ctx context.Context, id uuid.UUID, name string) error
	DeleteCron(ctx context.Context, id uuid.UUID) error
}
