package api

import (
	"encoding/json/v2"
	"net"
	"net/http"
	"strings"

	"github.com/readerly/readerly-server/internal/ratelimit"
)

// discoverRateLimit throttles the discovery surface per client. Catalog
// and recommendation requests fan out to paid external services, so they
// get a tighter budget than the rest of the API.
func discoverRateLimit(limiter *ratelimit.KeyedLimiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if strings.HasPrefix(r.URL.Path, "/api/v1/discover/") && !limiter.Allow(clientKey(r)) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				_ = json.MarshalWrite(w, &envelope{
					V:       envelopeVersion,
					Success: false,
					Error:   "too many requests, slow down",
					Code:    "RATE_LIMITED",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// clientKey identifies the caller for rate limiting. RealIP middleware
// has already resolved proxy headers into RemoteAddr.
func clientKey(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
