// Package rpc implements the outbound JSON facades to sibling services,
// guarded by per-target circuit breakers and a bounded retry policy.
package rpc

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"time"

	"campus/config"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/errors"
	"campus/internal/resilience"
)

const defaultCallTimeout = time.Second

// Caller executes JSON calls against sibling services. Every call goes
// through the target's circuit breaker and the shared retry policy with a
// per-attempt deadline.
type Caller struct {
	client      *http.Client
	breakers    *resilience.Registry
	retry       resilience.RetryConfig
	callTimeout time.Duration
	logger      *slog.Logger
}

// NewCaller is the constructor for Caller.
func NewCaller(cfg *config.Config, logger *slog.Logger) *Caller {
	callTimeout := cfg.Resilience.CallTimeout
	if callTimeout <= 0 {
		callTimeout = defaultCallTimeout
	}

	return &Caller{
		client: &http.Client{},
		breakers: resilience.NewRegistry(resilience.BreakerConfig{
			FailureRateThreshold: cfg.Resilience.Breaker.FailureRateThreshold,
			MinimumCalls:         cfg.Resilience.Breaker.MinimumCalls,
			WindowSize:           cfg.Resilience.Breaker.WindowSize,
			OpenDuration:         cfg.Resilience.Breaker.OpenDuration,
			HalfOpenCalls:        cfg.Resilience.Breaker.HalfOpenCalls,
		}),
		retry: resilience.RetryConfig{
			MaxAttempts: cfg.Resilience.MaxAttempts,
			Backoff:     cfg.Resilience.RetryBackoff,
		},
		callTimeout: callTimeout,
		logger:      logger,
	}
}

// Post executes a POST with a JSON body and decodes the JSON response into
// out. The target names the breaker guarding the downstream service.
func (c *Caller) Post(ctx context.Context, target, url string, body, out any) error {
	payload, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "failed to marshal request body")
	}

	return c.call(ctx, target, http.MethodPost, url, payload, out)
}

// Get executes a GET and decodes the JSON response into out.
func (c *Caller) Get(ctx context.Context, target, url string, out any) error {
	return c.call(ctx, target, http.MethodGet, url, nil, out)
}

func (c *Caller) call(ctx context.Context, target, method, url string, payload []byte, out any) error {
	breaker := c.breakers.Get(target)

	err := resilience.Retry(ctx, c.retry, isTransient, func(ctx context.Context) error {
		return c.attempt(ctx, breaker, target, method, url, payload, out)
	})
	if err != nil {
		c.logger.Warn("remote call failed",
			"target", target,
			"method", method,
			"url", url,
			"error", err,
		)
	}

	return err
}

// attempt performs one guarded HTTP exchange. Breaker outcomes track only
// transport health; business statuses such as 404 count as successes.
func (c *Caller) attempt(ctx context.Context, breaker *resilience.Breaker, target, method, url string, payload []byte, out any) error {
	if !breaker.Allow() {
		return errors.Wrapf(domainerrors.ErrCallNotPermitted, "breaker open for %s", target)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, c.callTimeout)
	defer cancel()

	var reqBody io.Reader
	if payload != nil {
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, url, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		breaker.RecordFailure()
		if ctx.Err() != nil {
			// Parent cancellation, not this attempt's deadline.
			return ctx.Err()
		}
		if errors.Is(err, context.DeadlineExceeded) {
			return errors.Wrapf(domainerrors.ErrDeadlineExceeded, "%s did not answer in time", target)
		}

		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s unreachable: %s", target, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode >= http.StatusInternalServerError {
		breaker.RecordFailure()
	} else {
		breaker.RecordSuccess()
	}

	switch {
	case resp.StatusCode >= http.StatusOK && resp.StatusCode < http.StatusMultipleChoices:
		if out == nil {
			return nil
		}
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return errors.Wrap(err, "failed to decode response")
		}

		return nil
	case resp.StatusCode == http.StatusNotFound:
		return errors.Wrapf(domainerrors.ErrNotFound, "%s returned not found", target)
	case resp.StatusCode == http.StatusBadRequest:
		return errors.Wrapf(domainerrors.ErrInvalidArgument, "%s rejected the request", target)
	case resp.StatusCode == http.StatusServiceUnavailable || resp.StatusCode == http.StatusBadGateway:
		return errors.Wrapf(domainerrors.ErrUpstreamUnavailable, "%s returned %d", target, resp.StatusCode)
	case resp.StatusCode == http.StatusGatewayTimeout:
		return errors.Wrapf(domainerrors.ErrDeadlineExceeded, "%s returned %d", target, resp.StatusCode)
	default:
		return errors.Wrapf(domainerrors.ErrInternalError, "%s returned unexpected status %d", target, resp.StatusCode)
	}
}

// isTransient marks the error classes worth another attempt.
func isTransient(err error) bool {
	return errors.Is(err, domainerrors.ErrUpstreamUnavailable) ||
		errors.Is(err, domainerrors.ErrDeadlineExceeded)
}
