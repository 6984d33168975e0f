package circuitbreaker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/smartwaste360/gateway/internal/pkg/logger"
)

var (
	// ErrOpen is returned while the breaker is rejecting calls
	ErrOpen = errors.New("circuit breaker is open")
)

// State represents the circuit breaker state
type State int

const (
	// StateClosed allows calls to pass through
	StateClosed State = iota
	// StateOpen rejects calls immediately
	StateOpen
	// StateHalfOpen allows one probe call to test recovery
	StateHalfOpen
)

func (s State) String() string {
	switch s {
	case StateClosed:
		return "CLOSED"
	case StateOpen:
		return "OPEN"
	case StateHalfOpen:
		return "HALF_OPEN"
	default:
		return "UNKNOWN"
	}
}

// Config holds circuit breaker configuration
type Config struct {
	Name             string
	FailureThreshold uint32        // consecutive failures that open the breaker
	CooldownPeriod   time.Duration // how long to stay open before probing
	IsFailure        func(err error) bool
}

// CircuitBreaker stops hammering a collaborator that keeps failing. The
// position provider is a local daemon that can disappear for minutes when
// the device loses its fix; without the breaker every resolution attempt
// would wait out the full request timeout.
type CircuitBreaker struct {
	cfg Config

	mu       sync.Mutex
	state    State
	failures uint32
	openedAt time.Time
}

// New creates a new circuit breaker
func New(cfg Config) *CircuitBreaker {
	if cfg.FailureThreshold == 0 {
		cfg.FailureThreshold = 5
	}
	if cfg.CooldownPeriod == 0 {
		cfg.CooldownPeriod = 60 * time.Second
	}
	if cfg.IsFailure == nil {
		cfg.IsFailure = func(err error) bool { return err != nil }
	}
	return &CircuitBreaker{cfg: cfg}
}

// Execute runs fn under breaker protection
func (cb *CircuitBreaker) Execute(ctx context.Context, fn func(context.Context) error) error {
	if err := cb.beforeCall(); err != nil {
		return err
	}

	err := fn(ctx)
	cb.afterCall(err)
	return err
}

// State returns the current state
func (cb *CircuitBreaker) State() State {
	cb.mu.Lock()
	defer cb.mu.Unlock()
	return cb.state
}

func (cb *CircuitBreaker) beforeCall() error {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.state == StateOpen {
		if time.Since(cb.openedAt) < cb.cfg.CooldownPeriod {
			return ErrOpen
		}
		cb.setState(StateHalfOpen)
	}
	return nil
}

func (cb *CircuitBreaker) afterCall(err error) {
	cb.mu.Lock()
	defer cb.mu.Unlock()

	if cb.cfg.IsFailure(err) {
		cb.failures++
		if cb.state == StateHalfOpen || cb.failures >= cb.cfg.FailureThreshold {
			cb.setState(StateOpen)
			cb.openedAt = time.Now()
		}
		return
	}

	cb.failures = 0
	if cb.state == StateHalfOpen {
		cb.setState(StateClosed)
	}
}

func (cb *CircuitBreaker) setState(state State) {
	if cb.state == state {
		return
	}
	prev := cb.state
	cb.state = state

	logger.Info("Circuit breaker state changed",
		logger.String("name", cb.cfg.Name),
		logger.String("from", prev.String()),
		logger.String("to", state.String()))
}
