package domain

import "context"

// Ledger is the remote side of every mutating action. Implementations may
// block for as long as the round trip takes.
type Ledger interface {
	Submit(ctx context.Context, op Operation) (Receipt, error)
	List(ctx context.Context, kind Kind) ([]Operation, error)
}
