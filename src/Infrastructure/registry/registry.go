// Package registry implements an HTTP client for a carbon credit registry API.
//
// Coverage: the health endpoint used to verify a configured connection.
//
// Notes:
//   - Requires the x-api-key header; the account is sent as x-account-id
//   - Calls are rate limited per client and retried with exponential backoff
//     on transport errors and 5xx responses; 4xx responses fail immediately
package registry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"time"

	"github.com/eapache/go-resiliency/retrier"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

var DefaultHTTPClient = &http.Client{Timeout: 10 * time.Second}

// ErrRejected wraps responses the registry refused outright (4xx).
var ErrRejected = errors.New("registry rejected request")

type Option func(*Client)

func WithHTTPClient(h *http.Client) Option { return func(c *Client) { c.HTTP = h } }
func WithUserAgent(ua string) Option       { return func(c *Client) { c.UserAgent = ua } }
func WithLogger(l zerolog.Logger) Option   { return func(c *Client) { c.Logger = l } }

// WithRateLimit allows one call per interval with no burst.
func WithRateLimit(every time.Duration) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Every(every), 1) }
}

// WithBackoff sets the delays between attempts.
func WithBackoff(backoff []time.Duration) Option {
	return func(c *Client) { c.backoff = backoff }
}

type Client struct {
	HTTP      *http.Client
	UserAgent string
	Logger    zerolog.Logger

	limiter *rate.Limiter
	backoff []time.Duration
}

func NewClient(opts ...Option) *Client {
	c := &Client{
		HTTP:      DefaultHTTPClient,
		UserAgent: "carbondesk/1.0",
		Logger:    log.Logger,
		limiter:   rate.NewLimiter(rate.Every(time.Second), 1),
		backoff:   retrier.ExponentialBackoff(3, 200*time.Millisecond),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Credentials select the registry account a call acts for.
type Credentials struct {
	Endpoint  string
	APIKey    string
	AccountID string
}

type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// Health calls GET {endpoint}/health. Any 2xx counts as healthy; a JSON body
// is decoded when the server labels it as such.
func (c *Client) Health(ctx context.Context, cred Credentials) (*HealthResponse, error) {
	var out HealthResponse
	if err := c.do(ctx, cred, http.MethodGet, "/health", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type classifier struct{}

func (classifier) Classify(err error) retrier.Action {
	switch {
	case err == nil:
		return retrier.Succeed
	case errors.Is(err, ErrRejected), errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return retrier.Fail
	default:
		return retrier.Retry
	}
}

func (c *Client) do(ctx context.Context, cred Credentials, method, p string, out any) error {
	base, err := url.Parse(cred.Endpoint)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return fmt.Errorf("%w: invalid endpoint %q", ErrRejected, cred.Endpoint)
	}
	u := *base
	u.Path = path.Join(u.Path, p)

	r := retrier.New(c.backoff, classifier{})
	return r.RunCtx(ctx, func(ctx context.Context) error {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
		return c.once(ctx, cred, method, u.String(), out)
	})
}

func (c *Client) once(ctx context.Context, cred Credentials, method, target string, out any) error {
	req, err := http.NewRequestWithContext(ctx, method, target, nil)
	if err != nil {
		return fmt.Errorf("new request: %w", err)
	}
	if cred.APIKey != "" {
		req.Header.Set("x-api-key", cred.APIKey)
	}
	if cred.AccountID != "" {
		req.Header.Set("x-account-id", cred.AccountID)
	}
	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("http do: %w", err)
	}
	defer resp.Body.Close()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	c.Logger.Info().
		Str("method", method).
		Str("url", target).
		Int("status", resp.StatusCode).
		Str("duration", time.Since(start).String()).
		Msg("registry response")

	switch {
	case resp.StatusCode >= 400 && resp.StatusCode < 500:
		return fmt.Errorf("%w: http %d: %s", ErrRejected, resp.StatusCode, truncate(b, 256))
	case resp.StatusCode < 200 || resp.StatusCode >= 300:
		return fmt.Errorf("http error %d: %s", resp.StatusCode, truncate(b, 256))
	}

	if out == nil || len(b) == 0 || !strings.Contains(resp.Header.Get("Content-Type"), "json") {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return fmt.Errorf("unmarshal result: %w", err)
	}
	return nil
}

func truncate(b []byte, max int) string {
	if len(b) > max {
		return string(b[:max])
	}
	return string(b)
}
