package domain

import "time"

type ConnectionStatus string

const (
	StatusUntested ConnectionStatus = "untested"
	StatusSuccess  ConnectionStatus = "success"
	StatusFailed   ConnectionStatus = "failed"
)

// Config locates the registry account the dashboard mints against.
type Config struct {
	Endpoint  string `json:"endpoint"`
	APIKey    string `json:"api_key"`
	AccountID string `json:"account_id"`
}

// Complete reports whether every field is filled in.
func (c Config) Complete() bool {
	return c.Endpoint != "" && c.APIKey != "" && c.AccountID != ""
}

// State is the form plus the outcome of the last connection test.
type State struct {
	Config     Config           `json:"config"`
	Status     ConnectionStatus `json:"status"`
	LastTested *time.Time       `json:"last_tested,omitempty"`
	Saving     bool             `json:"saving"`
	Testing    bool             `json:"testing"`
}
