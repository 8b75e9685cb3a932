package network

import (
	"context"
	"time"

	"github.com/MMN3003/carbondesk/src/Infrastructure/registry"
	"github.com/MMN3003/carbondesk/src/logger"
	"github.com/MMN3003/carbondesk/src/registry/domain"
)

var (
	_ domain.Prober = (*HTTPProber)(nil)
	_ domain.Prober = (*SimulatedProber)(nil)
)

// HTTPProber probes the real registry health endpoint.
type HTTPProber struct {
	client *registry.Client
}

func NewHTTPProber(client *registry.Client) *HTTPProber {
	return &HTTPProber{client: client}
}

func (p *HTTPProber) Probe(ctx context.Context, cfg domain.Config) error {
	_, err := p.client.Health(ctx, registry.Credentials{
		Endpoint:  cfg.Endpoint,
		APIKey:    cfg.APIKey,
		AccountID: cfg.AccountID,
	})
	return err
}

// SimulatedProber waits latency and then reports the configured error, if any.
type SimulatedProber struct {
	latency time.Duration
	err     error
	logger  *logger.Logger
}

func NewSimulatedProber(latency time.Duration, err error, logg *logger.Logger) *SimulatedProber {
	return &SimulatedProber{latency: latency, err: err, logger: logg}
}

func (p *SimulatedProber) Probe(ctx context.Context, cfg domain.Config) error {
	if p.latency > 0 {
		t := time.NewTimer(p.latency)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-t.C:
		}
	}
	p.logger.Infof("simulated registry probe endpoint=%s account=%s", cfg.Endpoint, cfg.AccountID)
	return p.err
}
