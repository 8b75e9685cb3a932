package repository

import (
	"context"
	"errors"
	"time"

	"github.com/MMN3003/carbondesk/src/ledger/domain"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

var _ domain.Ledger = (*Journal)(nil)

// ---------- LEDGER OPERATIONS ----------

type LedgerOperation struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	Kind          string    `gorm:"not null;index:idx_ledger_kind_created"`
	Account       string
	Asset         string
	Amount        string `gorm:"type:numeric"`
	CounterAsset  string
	CounterAmount string `gorm:"type:numeric"`
	Address       string
	Reference     string
	Status        string    `gorm:"not null;default:completed"`
	CreatedAt     time.Time `gorm:"index:idx_ledger_kind_created"`
	UpdatedAt     time.Time
}

func (LedgerOperation) TableName() string { return "ledger_operations" }

// ---------- REPO ----------

// Journal records every operation in postgres and settles it immediately.
type Journal struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewJournal(db *gorm.DB, log *logger.Logger) *Journal {
	if err := db.AutoMigrate(&LedgerOperation{}); err != nil {
		log.Fatalf("failed to migrate schema: %v", err)
	}
	return &Journal{db: db, log: log}
}

func (j *Journal) Submit(ctx context.Context, op domain.Operation) (domain.Receipt, error) {
	if op.Kind == "" {
		return domain.Receipt{}, errors.New("operation kind required")
	}
	status := op.Status
	if status == "" {
		status = domain.StatusCompleted
	}
	model := LedgerOperation{
		ID:            uuid.New(),
		Kind:          string(op.Kind),
		Account:       op.Account,
		Asset:         op.Asset,
		Amount:        nullableNumeric(op.Amount),
		CounterAsset:  op.CounterAsset,
		CounterAmount: nullableNumeric(op.CounterAmount),
		Address:       op.Address,
		Reference:     op.Reference,
		Status:        string(status),
	}
	if err := j.db.WithContext(ctx).Create(&model).Error; err != nil {
		return domain.Receipt{}, err
	}
	j.log.Infof("journal op=%s kind=%s asset=%s amount=%s", model.ID, model.Kind, model.Asset, model.Amount)
	return domain.Receipt{ID: model.ID.String(), Status: status, CreatedAt: model.CreatedAt}, nil
}

func (j *Journal) List(ctx context.Context, kind domain.Kind) ([]domain.Operation, error) {
	var models []LedgerOperation
	q := j.db.WithContext(ctx).Order("created_at DESC")
	if kind != "" {
		q = q.Where("kind = ?", string(kind))
	}
	if err := q.Find(&models).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Operation, 0, len(models))
	for i := range models {
		out = append(out, toDomainOperation(&models[i]))
	}
	return out, nil
}

// numeric columns reject the empty string
func nullableNumeric(v string) string {
	if v == "" {
		return "0"
	}
	return v
}

func toDomainOperation(m *LedgerOperation) domain.Operation {
	return domain.Operation{
		ID:            m.ID.String(),
		Kind:          domain.Kind(m.Kind),
		Account:       m.Account,
		Asset:         m.Asset,
		Amount:        m.Amount,
		CounterAsset:  m.CounterAsset,
		CounterAmount: m.CounterAmount,
		Address:       m.Address,
		Reference:     m.Reference,
		Status:        domain.Status(m.Status),
		CreatedAt:     m.CreatedAt,
	}
}
