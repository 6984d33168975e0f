package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/smartwaste360/gateway/internal/pkg/circuitbreaker"
	"github.com/smartwaste360/gateway/internal/pkg/logger"
	"github.com/smartwaste360/gateway/internal/pkg/models"
	"github.com/smartwaste360/gateway/internal/utils"
)

// Config holds position provider configuration
type Config struct {
	// ProviderURL is the local positioning daemon endpoint
	ProviderURL string
	// Timeout bounds the wait for a fresh fix
	Timeout time.Duration
	// MaxAge is how long a cached fix stays acceptable
	MaxAge time.Duration
}

// Provider fetches one-shot position fixes from the device's positioning
// daemon over HTTP. A fix younger than MaxAge is served from cache
// without touching the daemon, and a refetch that lands in the same
// geohash cell as the held fix refreshes it instead of replacing it.
type Provider struct {
	mu       sync.Mutex
	client   *http.Client
	breaker  *circuitbreaker.CircuitBreaker
	url      string
	maxAge   time.Duration
	lastFix  *models.Position
	lastCell string
	now      func() time.Time
}

// NewProvider creates a new position provider
func NewProvider(cfg Config) *Provider {
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	maxAge := cfg.MaxAge
	if maxAge == 0 {
		maxAge = 5 * time.Minute
	}

	return &Provider{
		client: &http.Client{Timeout: timeout},
		// a daemon that lost its fix fails every call until the device
		// recovers; stop waiting out the full timeout each time
		breaker: circuitbreaker.New(circuitbreaker.Config{
			Name:             "position-provider",
			FailureThreshold: 3,
			CooldownPeriod:   30 * time.Second,
		}),
		url:    cfg.ProviderURL,
		maxAge: maxAge,
		now:    time.Now,
	}
}

// CurrentPosition returns the most recent acceptable fix
func (p *Provider) CurrentPosition(ctx context.Context) (*models.Position, error) {
	p.mu.Lock()
	if p.lastFix != nil && p.now().Sub(p.lastFix.Timestamp) < p.maxAge {
		fix := *p.lastFix
		p.mu.Unlock()
		return &fix, nil
	}
	p.mu.Unlock()

	var fix *models.Position
	err := p.breaker.Execute(ctx, func(ctx context.Context) error {
		var ferr error
		fix, ferr = p.fetchFix(ctx)
		return ferr
	})
	if err != nil {
		return nil, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if p.lastFix != nil && utils.SameCell(*p.lastFix, *fix, utils.FixCellPrecision) {
		// negligible move: keep the held fix, just extend its freshness
		p.lastFix.Timestamp = fix.Timestamp
		result := *p.lastFix
		return &result, nil
	}
	cell := utils.EncodePosition(*fix, utils.FixCellPrecision)
	if p.lastCell != "" {
		logger.Debug("Position moved to a new cell",
			logger.String("cell", cell),
			logger.String("previous_cell", p.lastCell))
	}
	p.lastFix = fix
	p.lastCell = cell

	result := *fix
	return &result, nil
}

func (p *Provider) fetchFix(ctx context.Context) (*models.Position, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create position request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("position provider unreachable: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("position provider returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read position response: %w", err)
	}

	var fix models.Position
	if err := json.Unmarshal(body, &fix); err != nil {
		return nil, fmt.Errorf("failed to parse position response: %w", err)
	}
	if !utils.ValidCoordinates(fix.Latitude, fix.Longitude) {
		return nil, fmt.Errorf("position provider returned out-of-range coordinates")
	}
	if fix.Timestamp.IsZero() {
		fix.Timestamp = p.now()
	}

	return &fix, nil
}
