package registry

import (
	"encoding/json"
	"net/http"
	"net/netip"

	"github.com/bnema/zerowrap"

	"github.com/bnema/walrus-registry/internal/adapters/dto"
	"github.com/bnema/walrus-registry/internal/adapters/in/http/middleware"
	"github.com/bnema/walrus-registry/internal/boundaries/out"
)

const globalKey = "global"

// RateLimitMiddleware rejects requests over the global or per-client limit
// with 429. A nil limiter disables limiting entirely.
func RateLimitMiddleware(
	globalLimiter out.RateLimiter,
	ipLimiter out.RateLimiter,
	trusted []netip.Prefix,
	log zerowrap.Logger,
) func(http.Handler) http.Handler {
	if globalLimiter == nil || ipLimiter == nil {
		return func(next http.Handler) http.Handler {
			return next
		}
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if !globalLimiter.Allow(ctx, globalKey) {
				sendRateLimitError(w)
				return
			}

			ip := middleware.GetClientIP(r, trusted)
			if !ipLimiter.Allow(ctx, "ip:"+ip) {
				log.Warn().
					Str(zerowrap.FieldLayer, "adapter").
					Str(zerowrap.FieldAdapter, "http").
					Str(zerowrap.FieldClientIP, ip).
					Str(zerowrap.FieldPath, r.URL.Path).
					Msg("client rate limited")
				sendRateLimitError(w)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func sendRateLimitError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set(apiVersionHeader, apiVersion)
	w.Header().Set("Retry-After", "1")
	w.WriteHeader(http.StatusTooManyRequests)
	_ = json.NewEncoder(w).Encode(dto.NewRegistryError(dto.ErrCodeTooManyRequests, "rate limit exceeded"))
}
