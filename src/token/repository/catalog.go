package repository

import (
	"fmt"
	"os"
	"sync"

	"github.com/MMN3003/carbondesk/src/token/domain"
	"gopkg.in/yaml.v3"
)

var _ domain.Catalog = (*MemoryCatalog)(nil)

// DefaultTokens is the catalog shipped with the dashboard.
func DefaultTokens() []domain.Token {
	return []domain.Token{
		{ID: "cct", Name: "Carbon Credit Token", Symbol: "CCT", Balance: "1000", Decimals: 18},
		{ID: "eth", Name: "Ethereum", Symbol: "ETH", Balance: "5.5", Decimals: 18},
		{ID: "usdc", Name: "USD Coin", Symbol: "USDC", Balance: "2500", Decimals: 6},
	}
}

// MemoryCatalog keeps tokens in insertion order. Tokens are never mutated once added.
type MemoryCatalog struct {
	mu     sync.RWMutex
	tokens []domain.Token
	index  map[string]int
}

func NewMemoryCatalog(tokens []domain.Token) (*MemoryCatalog, error) {
	c := &MemoryCatalog{index: make(map[string]int, len(tokens))}
	for _, t := range tokens {
		if err := c.Add(t); err != nil {
			return nil, fmt.Errorf("token %q: %w", t.ID, err)
		}
	}
	return c, nil
}

type catalogFile struct {
	Tokens []domain.Token `yaml:"tokens"`
}

// LoadCatalogFile reads a YAML catalog of the form `tokens: [{id, name, symbol, balance}]`.
func LoadCatalogFile(path string) (*MemoryCatalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading token catalog: %w", err)
	}
	var f catalogFile
	if err := yaml.Unmarshal(content, &f); err != nil {
		return nil, fmt.Errorf("parsing token catalog: %w", err)
	}
	if len(f.Tokens) < 2 {
		return nil, fmt.Errorf("token catalog needs at least two tokens, got %d", len(f.Tokens))
	}
	return NewMemoryCatalog(f.Tokens)
}

func (c *MemoryCatalog) List() []domain.Token {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Token, len(c.tokens))
	copy(out, c.tokens)
	return out
}

func (c *MemoryCatalog) Get(id string) (domain.Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	i, ok := c.index[id]
	if !ok {
		return domain.Token{}, false
	}
	return c.tokens[i], true
}

func (c *MemoryCatalog) Other(excludeID string) (domain.Token, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, t := range c.tokens {
		if t.ID != excludeID {
			return t, true
		}
	}
	return domain.Token{}, false
}

func (c *MemoryCatalog) Add(t domain.Token) error {
	if err := t.Validate(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.index[t.ID]; ok {
		return domain.ErrDuplicateToken
	}
	c.index[t.ID] = len(c.tokens)
	c.tokens = append(c.tokens, t)
	return nil
}
