package domain

import "errors"

var ErrNotFound = errors.New("whitelist entry not found")

// Entry allows Address to hold up to Amount tokens.
type Entry struct {
	ID      string `json:"id"`
	Address string `json:"address"`
	Amount  string `json:"amount"`
}

// Form is the add/edit form. EditingID is set while an entry is loaded for editing.
type Form struct {
	Address   string `json:"address"`
	Amount    string `json:"amount"`
	EditingID string `json:"editing_id,omitempty"`
}
