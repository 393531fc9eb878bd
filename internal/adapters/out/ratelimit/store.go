package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/bnema/zerowrap"
)

// Config describes the global and per-client buckets.
type Config struct {
	GlobalRPS float64
	PerIPRPS  float64
	Burst     int
	IdleTTL   time.Duration
}

// Limiters pairs the global bucket with the per-client buckets.
type Limiters struct {
	Global *MemoryStore
	PerIP  *MemoryStore
}

// NewLimiters validates cfg and builds both stores.
func NewLimiters(cfg Config, log zerowrap.Logger) (*Limiters, error) {
	if cfg.GlobalRPS <= 0 || cfg.PerIPRPS <= 0 {
		return nil, fmt.Errorf("rate limits must be positive (global=%v, per_ip=%v)", cfg.GlobalRPS, cfg.PerIPRPS)
	}
	if cfg.Burst < 1 {
		return nil, fmt.Errorf("rate limit burst must be at least 1, got %d", cfg.Burst)
	}

	globalBurst := cfg.Burst
	if b := int(cfg.GlobalRPS); b > globalBurst {
		globalBurst = b
	}

	return &Limiters{
		// The global bucket has a single key, so it never needs pruning.
		Global: NewMemoryStore(cfg.GlobalRPS, globalBurst, 0, log),
		PerIP:  NewMemoryStore(cfg.PerIPRPS, cfg.Burst, cfg.IdleTTL, log),
	}, nil
}

// Run prunes idle per-client buckets until ctx is done.
func (l *Limiters) Run(ctx context.Context, interval time.Duration) {
	l.PerIP.Run(ctx, interval)
}
