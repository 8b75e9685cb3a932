package domain

import "errors"

var ErrInvalidAccount = errors.New("account is not a hex address")

// Wallet is the connection state reported by the wallet provider.
type Wallet struct {
	Account   string `json:"account"`
	Connected bool   `json:"connected"`
}

// AccountSource yields the connected account, or "" when none is connected.
type AccountSource interface {
	Account() string
}
