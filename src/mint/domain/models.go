package domain

import (
	"errors"
	"time"
)

const Asset = "CCT"

var ErrInvalidFilter = errors.New("filter must be all, completed, pending or failed")

type Status string

const (
	StatusCompleted Status = "completed"
	StatusPending   Status = "pending"
	StatusFailed    Status = "failed"
)

// Filter selects history records by status. FilterAll keeps everything.
type Filter string

const (
	FilterAll       Filter = "all"
	FilterCompleted Filter = Filter(StatusCompleted)
	FilterPending   Filter = Filter(StatusPending)
	FilterFailed    Filter = Filter(StatusFailed)
)

func ParseFilter(s string) (Filter, error) {
	switch f := Filter(s); f {
	case "", FilterAll:
		return FilterAll, nil
	case FilterCompleted, FilterPending, FilterFailed:
		return f, nil
	}
	return "", ErrInvalidFilter
}

func (f Filter) Match(s Status) bool {
	return f == FilterAll || Status(f) == s
}

// Form is what the minter submits.
type Form struct {
	Amount    string `json:"amount"`
	Confirmed bool   `json:"confirmed"`
}

type Record struct {
	ID        string    `json:"id"`
	Amount    string    `json:"amount"`
	Minter    string    `json:"minter"`
	Status    Status    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// Stats summarises the history shown above the mint form.
type Stats struct {
	TotalMinted string `json:"total_minted"`
	Completed   int    `json:"completed"`
	Pending     int    `json:"pending"`
	Failed      int    `json:"failed"`
}
