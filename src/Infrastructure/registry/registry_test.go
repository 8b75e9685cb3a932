package registry

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient() *Client {
	return NewClient(
		WithRateLimit(time.Microsecond),
		WithBackoff([]time.Duration{time.Millisecond, time.Millisecond, time.Millisecond}),
		WithLogger(zerolog.Nop()),
	)
}

func TestHealthSendsCredentials(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v2/health", r.URL.Path)
		assert.Equal(t, "secret", r.Header.Get("x-api-key"))
		assert.Equal(t, "acct-7", r.Header.Get("x-account-id"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"status":"ok","version":"2.0"}`))
	}))
	defer srv.Close()

	resp, err := testClient().Health(context.Background(), Credentials{Endpoint: srv.URL + "/v2", APIKey: "secret", AccountID: "acct-7"})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "2.0", resp.Version)
}

func TestHealthRetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		_, _ = w.Write([]byte("OK"))
	}))
	defer srv.Close()

	_, err := testClient().Health(context.Background(), Credentials{Endpoint: srv.URL})
	require.NoError(t, err)
	assert.EqualValues(t, 3, calls.Load())
}

func TestHealthGivesUpAfterBackoff(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := testClient().Health(context.Background(), Credentials{Endpoint: srv.URL})
	require.Error(t, err)
	assert.EqualValues(t, 4, calls.Load())
}

func TestHealthDoesNotRetryRejections(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	_, err := testClient().Health(context.Background(), Credentials{Endpoint: srv.URL, APIKey: "wrong"})
	assert.ErrorIs(t, err, ErrRejected)
	assert.EqualValues(t, 1, calls.Load())
}

func TestHealthRejectsBadEndpoint(t *testing.T) {
	_, err := testClient().Health(context.Background(), Credentials{Endpoint: "registry.local"})
	assert.ErrorIs(t, err, ErrRejected)
}
