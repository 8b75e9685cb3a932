package domain

// Catalog is the queryable list of tradeable assets, in a stable order.
type Catalog interface {
	List() []Token
	Get(id string) (Token, bool)
	// Other returns the first token, in catalog order, whose id differs from excludeID.
	Other(excludeID string) (Token, bool)
	Add(t Token) error
}
