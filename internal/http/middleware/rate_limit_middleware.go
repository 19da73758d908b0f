package middleware

import (
	"net/http"
	"time"

	"github.com/go-chi/httprate"

	"github.com/sandeepkv93/notes-ai-backend/internal/http/response"
	"github.com/sandeepkv93/notes-ai-backend/internal/observability"
)

// RateLimitByIP applies a sliding window per client IP. A non-positive limit
// disables the limiter.
func RateLimitByIP(scope string, limit int, window time.Duration) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	return httprate.Limit(limit, window,
		httprate.WithKeyFuncs(httprate.KeyByIP),
		httprate.WithLimitHandler(func(w http.ResponseWriter, r *http.Request) {
			observability.RecordMiddlewareValidationEvent(r.Context(), "rate_limit_"+scope, "rejected")
			response.Error(w, r, http.StatusTooManyRequests, "RATE_LIMITED", "Too many requests, please try again later", nil)
		}),
	)
}
