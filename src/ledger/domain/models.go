package domain

import "time"

type Kind string

const (
	KindSwap            Kind = "swap"
	KindMint            Kind = "mint"
	KindRedeem          Kind = "redeem"
	KindTokenCreate     Kind = "token_create"
	KindWhitelistSave   Kind = "whitelist_save"
	KindWhitelistDelete Kind = "whitelist_delete"
	KindRegistrySave    Kind = "registry_save"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
)

// Operation is one request sent to the ledger. Amounts are decimal strings.
type Operation struct {
	ID            string    `json:"id"`
	Kind          Kind      `json:"kind"`
	Account       string    `json:"account,omitempty"`
	Asset         string    `json:"asset,omitempty"`
	Amount        string    `json:"amount,omitempty"`
	CounterAsset  string    `json:"counter_asset,omitempty"`
	CounterAmount string    `json:"counter_amount,omitempty"`
	Address       string    `json:"address,omitempty"`
	Reference     string    `json:"reference,omitempty"`
	Status        Status    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// Receipt acknowledges an accepted operation.
type Receipt struct {
	ID        string    `json:"id"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}
