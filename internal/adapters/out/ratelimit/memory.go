// Package ratelimit provides the in-memory request limiter used by the HTTP adapter.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/zerowrap"
	"golang.org/x/time/rate"

	"github.com/bnema/walrus-registry/internal/boundaries/out"
)

var _ out.RateLimiter = (*MemoryStore)(nil)

type entry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key. Keys that stay idle longer
// than the configured TTL are dropped by Prune.
type MemoryStore struct {
	mu      sync.Mutex
	entries map[string]*entry
	rps     float64
	burst   int
	idleTTL time.Duration
	now     func() time.Time
	log     zerowrap.Logger
}

// NewMemoryStore creates a limiter allowing rps requests per second per key
// with the given burst. An idleTTL of zero disables pruning.
func NewMemoryStore(rps float64, burst int, idleTTL time.Duration, log zerowrap.Logger) *MemoryStore {
	return &MemoryStore{
		entries: make(map[string]*entry),
		rps:     rps,
		burst:   burst,
		idleTTL: idleTTL,
		now:     time.Now,
		log:     log,
	}
}

// Allow reports whether one request for key may proceed now.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key may proceed now.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.now()
	if s.limiterFor(key, now).AllowN(now, n) {
		return true
	}

	s.log.Debug().
		Str(zerowrap.FieldLayer, "adapter").
		Str(zerowrap.FieldAdapter, "ratelimit").
		Str("key", key).
		Int("tokens", n).
		Msg("rate limit exceeded")
	return false
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Prune drops keys not seen within the idle TTL and returns how many were removed.
func (s *MemoryStore) Prune() int {
	if s.idleTTL <= 0 {
		return 0
	}

	cutoff := s.now().Add(-s.idleTTL)

	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	for key, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}

// Run prunes idle keys every interval until ctx is done.
func (s *MemoryStore) Run(ctx context.Context, interval time.Duration) {
	if s.idleTTL <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Prune(); n > 0 {
				s.log.Debug().
					Str(zerowrap.FieldLayer, "adapter").
					Str(zerowrap.FieldAdapter, "ratelimit").
					Int("pruned", n).
					Msg("dropped idle rate limit keys")
			}
		}
	}
}

func (s *MemoryStore) limiterFor(key string, now time.Time) *rate.Limiter {
	s.mu.Lock()
	defer s.mu.Unlock()

	e, ok := s.entries[key]
	if !ok {
		e = &entry{limiter: rate.NewLimiter(rate.Limit(s.rps), s.burst)}
		s.entries[key] = e
	}
	e.lastSeen = now
	return e.limiter
}
