package domain

// Notifier is implemented by anything that accepts user-facing messages.
type Notifier interface {
	Push(kind Kind, message string, opts ...PushOption) string
}
