package repository

import (
	"sync"

	"github.com/MMN3003/carbondesk/src/whitelist/domain"
)

var _ domain.Repository = (*MemoryRepo)(nil)

func SeedEntries() []domain.Entry {
	return []domain.Entry{
		{ID: "1", Address: "0x1234567890abcdef1234567890abcdef12345678", Amount: "1000"},
		{ID: "2", Address: "0xabcdef1234567890abcdef1234567890abcdef12", Amount: "500"},
	}
}

type MemoryRepo struct {
	mu      sync.RWMutex
	entries []domain.Entry
}

func NewMemoryRepo(seed ...domain.Entry) *MemoryRepo {
	r := &MemoryRepo{}
	r.entries = append(r.entries, seed...)
	return r
}

func (r *MemoryRepo) List() []domain.Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]domain.Entry, len(r.entries))
	copy(out, r.entries)
	return out
}

func (r *MemoryRepo) Get(id string) (domain.Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, e := range r.entries {
		if e.ID == id {
			return e, true
		}
	}
	return domain.Entry{}, false
}

// Put replaces the entry with the same id in place, or appends it.
func (r *MemoryRepo) Put(e domain.Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == e.ID {
			r.entries[i] = e
			return
		}
	}
	r.entries = append(r.entries, e)
}

func (r *MemoryRepo) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.entries {
		if r.entries[i].ID == id {
			r.entries = append(r.entries[:i], r.entries[i+1:]...)
			return true
		}
	}
	return false
}
