package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MMN3003/carbondesk/src/cron/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ domain.CronRepository = (*CronRepo)(nil)

// Cron is a job lock. Rows only live while the job runs.
type Cron struct {
	ID        uuid.UUID `gorm:"type:uuid;primarykey"`
	Name      string    `gorm:"not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Cron) TableName() string { return "cron_locks" }

// ---------- REPO ----------

type CronRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewCronRepo expects db opened with TranslateError so duplicate keys surface
// as gorm.ErrDuplicatedKey.
func NewCronRepo(db *gorm.DB, log *logger.Logger) *CronRepo {
	if err := db.AutoMigrate(&Cron{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &CronRepo{db: db, log: log}
}

func (r *CronRepo) SaveCron(ctx context.Context, c *domain.Cron) (*domain.Cron, error) {
	model := Cron{
		ID:   c.ID,
		Name: c.Name,
	}
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrLocked
		}
		return nil, err
	}
	return r.toDomainCron(&model), nil
}

func (r *CronRepo) DeleteCron(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&Cron{}, "id = ?", id).Error
}

// ---------- HELPERS ----------

func (r *CronRepo) toDomainCron(c *Cron) *domain.Cron {
	return &domain.Cron{
		ID:        c.ID,
		Name:      c.Name,
		CreatedAt: c.CreatedAt,
	}
}
