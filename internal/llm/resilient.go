package llm

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/felixgeelhaar/fortify/bulkhead"
	"github.com/felixgeelhaar/fortify/circuitbreaker"
)

// ResilientProvider bounds concurrency and trips a breaker after repeated
// upstream failures. Calls are never retried: a failed completion is
// reported to the caller as-is.
type ResilientProvider struct {
	provider       Provider
	circuitBreaker circuitbreaker.CircuitBreaker[*Response]
	bulkhead       bulkhead.Bulkhead[*Response]
}

type ResilientConfig struct {
	MaxConcurrent       int
	ConsecutiveFailures int
	OpenTimeout         time.Duration
	Logger              *slog.Logger
}

func DefaultResilientConfig() ResilientConfig {
	return ResilientConfig{
		MaxConcurrent:       5,
		ConsecutiveFailures: 5,
		OpenTimeout:         30 * time.Second,
	}
}

func NewResilientProvider(provider Provider, cfg ResilientConfig) *ResilientProvider {
	defaults := DefaultResilientConfig()
	if cfg.MaxConcurrent <= 0 {
		cfg.MaxConcurrent = defaults.MaxConcurrent
	}
	if cfg.ConsecutiveFailures <= 0 {
		cfg.ConsecutiveFailures = defaults.ConsecutiveFailures
	}
	if cfg.OpenTimeout <= 0 {
		cfg.OpenTimeout = defaults.OpenTimeout
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &ResilientProvider{
		provider: provider,
		circuitBreaker: circuitbreaker.New[*Response](circuitbreaker.Config{
			MaxRequests:  1,
			Interval:     time.Minute,
			Timeout:      cfg.OpenTimeout,
			IsSuccessful: countsAsHealthy,
			ReadyToTrip: func(counts circuitbreaker.Counts) bool {
				return int(counts.ConsecutiveFailures) >= cfg.ConsecutiveFailures
			},
			OnStateChange: func(from, to circuitbreaker.State) {
				logger.Warn("llm circuit breaker state change",
					"provider", provider.Name(),
					"from", from.String(),
					"to", to.String())
			},
		}),
		bulkhead: bulkhead.New[*Response](bulkhead.Config{
			MaxConcurrent: cfg.MaxConcurrent,
			MaxQueue:      cfg.MaxConcurrent * 2,
			QueueTimeout:  10 * time.Second,
		}),
	}
}

func (p *ResilientProvider) Name() string {
	return p.provider.Name()
}

func (p *ResilientProvider) Generate(ctx context.Context, req *Request) (*Response, error) {
	return p.circuitBreaker.Execute(ctx, func(ctx context.Context) (*Response, error) {
		return p.bulkhead.Execute(ctx, func(ctx context.Context) (*Response, error) {
			return p.provider.Generate(ctx, req)
		})
	})
}

// countsAsHealthy keeps caller-caused upstream rejections out of the breaker
// failure count. 429 still counts: it means the upstream is under pressure.
func countsAsHealthy(err error) bool {
	if err == nil {
		return true
	}
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode >= 400 && apiErr.StatusCode < 500 && apiErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}
