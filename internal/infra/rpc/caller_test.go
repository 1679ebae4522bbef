package rpc

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus/config"
	domainerrors "campus/internal/domain/errors"
)

func testCaller() *Caller {
	cfg := &config.Config{}
	cfg.Resilience.MaxAttempts = 3
	cfg.Resilience.RetryBackoff = time.Millisecond
	cfg.Resilience.CallTimeout = 200 * time.Millisecond
	cfg.Resilience.Breaker.FailureRateThreshold = 50
	cfg.Resilience.Breaker.MinimumCalls = 4
	cfg.Resilience.Breaker.WindowSize = 10
	cfg.Resilience.Breaker.OpenDuration = time.Minute
	cfg.Resilience.Breaker.HalfOpenCalls = 2

	return NewCaller(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestCaller_Get_DecodesResponse(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"personId": 42}`))
	}))
	defer server.Close()

	var payload struct {
		PersonID int64 `json:"personId"`
	}
	err := testCaller().Get(context.Background(), "user-service", server.URL, &payload)

	require.NoError(t, err)
	assert.Equal(t, int64(42), payload.PersonID)
}

func TestCaller_RetriesTransientFailuresThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)

			return
		}
		_, _ = w.Write([]byte(`{}`))
	}))
	defer server.Close()

	err := testCaller().Get(context.Background(), "user-service", server.URL, nil)

	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCaller_ExhaustsAttemptBudget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	err := testCaller().Get(context.Background(), "user-service", server.URL, nil)

	require.ErrorIs(t, err, domainerrors.ErrUpstreamUnavailable)
	assert.Equal(t, int32(3), calls.Load())
}

func TestCaller_DoesNotRetryNotFound(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	err := testCaller().Get(context.Background(), "user-service", server.URL, nil)

	require.ErrorIs(t, err, domainerrors.ErrNotFound)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCaller_GatewayTimeoutMapsToDeadline(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusGatewayTimeout)
	}))
	defer server.Close()

	err := testCaller().Get(context.Background(), "user-service", server.URL, nil)

	require.ErrorIs(t, err, domainerrors.ErrDeadlineExceeded)
}

func TestCaller_OpenBreakerFailsFastWithoutNetwork(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	caller := testCaller()

	// Repeated failing calls reach the minimum volume at 100% failure
	// rate and trip the breaker.
	for range 2 {
		_ = caller.Get(context.Background(), "user-service", server.URL, nil)
	}
	tripped := calls.Load()

	err := caller.Get(context.Background(), "user-service", server.URL, nil)

	require.ErrorIs(t, err, domainerrors.ErrCallNotPermitted)
	assert.Equal(t, tripped, calls.Load(), "open breaker must not reach the network")
}

func TestCaller_BreakersAreIndependentPerTarget(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	okServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}))
	defer okServer.Close()

	caller := testCaller()
	for range 2 {
		_ = caller.Get(context.Background(), "user-service", server.URL, nil)
	}

	// The user-service breaker is open; the codelist one is untouched.
	err := caller.Get(context.Background(), "codelist-service", okServer.URL, nil)

	require.NoError(t, err)
}

func TestCaller_ParentCancellationStopsRetrying(t *testing.T) {
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()

	caller := testCaller()
	caller.retry.Backoff = 50 * time.Millisecond

	err := caller.Get(ctx, "user-service", server.URL, nil)

	require.ErrorIs(t, err, context.Canceled)
	assert.Less(t, calls.Load(), int32(3))
}
