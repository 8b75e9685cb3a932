package domain

import "time"

const Asset = "CCT"

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

type Form struct {
	Amount  string `json:"amount"`
	Address string `json:"address"`
}

// Record is one redemption. ID is its position in the history, starting at
// 1; LedgerRef points at the ledger operation behind it.
type Record struct {
	ID        string    `json:"id"`
	Date      time.Time `json:"date"`
	Amount    string    `json:"amount"`
	Address   string    `json:"address"`
	Status    Status    `json:"status"`
	LedgerRef string    `json:"ledger_ref,omitempty"`
}
