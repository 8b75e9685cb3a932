package domain

// Repository keeps entries in insertion order.
type Repository interface {
	List() []Entry
	Get(id string) (Entry, bool)
	Put(e Entry)
	Delete(id string) bool
}
