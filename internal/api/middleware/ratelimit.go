package middleware

import (
	"net/http"

	"github.com/drahmed023/hamokshaaaaaaaaaaaaaaaa-sub000/internal/api/shared"
	"golang.org/x/time/rate"
)

// NewRateLimitMiddleware rejects requests beyond perSecond sustained with
// the given burst. The server has a single local client, so one limiter
// covers every caller. A non-positive rate disables limiting.
func NewRateLimitMiddleware(perSecond float64, burst int) func(http.Handler) http.Handler {
	if perSecond <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}
	if burst < 1 {
		burst = 1
	}
	limiter := rate.NewLimiter(rate.Limit(perSecond), burst)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				w.Header().Set("Retry-After", "1")
				shared.RespondWithError(w, r, http.StatusTooManyRequests, "Too many requests")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
