// Package resilience guards outbound calls to sibling services with a
// count-based circuit breaker and a bounded retry policy.
package resilience

import (
	"sync"
	"time"
)

// State represents the breaker state machine.
type State int

const (
	// StateClosed lets calls through and records outcomes.
	StateClosed State = iota
	// StateOpen rejects calls without a network attempt.
	StateOpen
	// StateHalfOpen lets a limited number of probe calls through.
	StateHalfOpen
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateClosed:
		return "closed"
	case StateOpen:
		return "open"
	case StateHalfOpen:
		return "half-open"
	default:
		return "unknown"
	}
}

// BreakerConfig tunes one breaker. Zero values fall back to defaults.
type BreakerConfig struct {
	// FailureRateThreshold opens the breaker when the failure rate over
	// the sliding window reaches this percentage. Default 50.
	FailureRateThreshold float64
	// MinimumCalls is the call volume required before the failure rate is
	// evaluated at all. Default 10.
	MinimumCalls int
	// WindowSize is the length of the count-based sliding window.
	// Default 100.
	WindowSize int
	// OpenDuration is how long the breaker stays open before allowing
	// half-open probes. Default 30s.
	OpenDuration time.Duration
	// HalfOpenCalls is the number of probe calls permitted in half-open
	// state. Default 3.
	HalfOpenCalls int
}

func (c BreakerConfig) withDefaults() BreakerConfig {
	if c.FailureRateThreshold <= 0 {
		c.FailureRateThreshold = 50
	}
	if c.MinimumCalls <= 0 {
		c.MinimumCalls = 10
	}
	if c.WindowSize <= 0 {
		c.WindowSize = 100
	}
	if c.OpenDuration <= 0 {
		c.OpenDuration = 30 * time.Second
	}
	if c.HalfOpenCalls <= 0 {
		c.HalfOpenCalls = 3
	}
	return c
}

// Breaker is a count-based sliding-window circuit breaker. All methods are
// safe for concurrent use.
type Breaker struct {
	name string
	cfg  BreakerConfig
	now  func() time.Time

	mu        sync.Mutex
	state     State
	window    []bool // true = failure
	windowPos int
	filled    bool
	openedAt  time.Time
	probes    int
	probeOK   int
}

// BreakerOption customizes a breaker.
type BreakerOption func(*Breaker)

// WithClock overrides the time source. Used by tests.
func WithClock(now func() time.Time) BreakerOption {
	return func(b *Breaker) { b.now = now }
}

// NewBreaker creates a closed breaker for the named target.
func NewBreaker(name string, cfg BreakerConfig, opts ...BreakerOption) *Breaker {
	b := &Breaker{
		name:  name,
		cfg:   cfg.withDefaults(),
		now:   time.Now,
		state: StateClosed,
	}
	b.window = make([]bool, b.cfg.WindowSize)
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the breaker's target name.
func (b *Breaker) Name() string {
	return b.name
}

// State returns the current state, promoting open to half-open when the
// open duration has elapsed.
func (b *Breaker) State() State {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()
	return b.state
}

// Allow reports whether a call may proceed. In half-open state it also
// claims one probe slot.
func (b *Breaker) Allow() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()

	switch b.state {
	case StateClosed:
		return true
	case StateHalfOpen:
		if b.probes >= b.cfg.HalfOpenCalls {
			return false
		}
		b.probes++
		return true
	default:
		return false
	}
}

// RecordSuccess records a successful call outcome.
func (b *Breaker) RecordSuccess() {
	b.record(false)
}

// RecordFailure records a failed call outcome.
func (b *Breaker) RecordFailure() {
	b.record(true)
}

func (b *Breaker) record(failure bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.refreshLocked()

	switch b.state {
	case StateClosed:
		b.window[b.windowPos] = failure
		b.windowPos++
		if b.windowPos == len(b.window) {
			b.windowPos = 0
			b.filled = true
		}
		if b.failureRateLocked() >= b.cfg.FailureRateThreshold {
			b.tripLocked()
		}
	case StateHalfOpen:
		// Any probe failure reopens; enough probe successes close.
		if failure {
			b.tripLocked()
			return
		}
		b.probeOK++
		if b.probeOK >= b.cfg.HalfOpenCalls {
			b.resetLocked()
		}
	}
}

// refreshLocked promotes open to half-open after the open duration.
func (b *Breaker) refreshLocked() {
	if b.state == StateOpen && b.now().Sub(b.openedAt) >= b.cfg.OpenDuration {
		b.state = StateHalfOpen
		b.probes = 0
		b.probeOK = 0
	}
}

// failureRateLocked returns the failure percentage over the window, or 0
// when the call volume is below the minimum.
func (b *Breaker) failureRateLocked() float64 {
	total := b.windowPos
	if b.filled {
		total = len(b.window)
	}
	if total < b.cfg.MinimumCalls {
		return 0
	}
	failures := 0
	for i := range total {
		if b.window[i] {
			failures++
		}
	}
	return float64(failures) / float64(total) * 100
}

func (b *Breaker) tripLocked() {
	b.state = StateOpen
	b.openedAt = b.now()
}

func (b *Breaker) resetLocked() {
	b.state = StateClosed
	b.windowPos = 0
	b.filled = false
	for i := range b.window {
		b.window[i] = false
	}
}

// Registry hands out one breaker per target name.
type Registry struct {
	cfg  BreakerConfig
	opts []BreakerOption

	mu       sync.Mutex
	breakers map[string]*Breaker
}

// NewRegistry creates a registry applying cfg to every breaker it creates.
func NewRegistry(cfg BreakerConfig, opts ...BreakerOption) *Registry {
	return &Registry{
		cfg:      cfg,
		opts:     opts,
		breakers: make(map[string]*Breaker),
	}
}

// Get returns the breaker for name, creating it on first use.
func (r *Registry) Get(name string) *Breaker {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.breakers[name]
	if !ok {
		b = NewBreaker(name, r.cfg, r.opts...)
		r.breakers[name] = b
	}
	return b
}
