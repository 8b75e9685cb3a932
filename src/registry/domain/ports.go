package domain

import "context"

// Prober checks that the registry answers with the given configuration.
type Prober interface {
	Probe(ctx context.Context, cfg Config) error
}
