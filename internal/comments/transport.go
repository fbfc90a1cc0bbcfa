package comments

import (
	"fmt"
	"net/http"

	"golang.org/x/time/rate"
)

// rateLimitedTransport waits for a limiter token before each round trip.
type rateLimitedTransport struct {
	base    http.RoundTripper
	limiter *rate.Limiter
}

func newRateLimitedTransport(base http.RoundTripper, requestsPerSecond float64) *rateLimitedTransport {
	if base == nil {
		base = http.DefaultTransport
	}
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	return &rateLimitedTransport{
		base:    base,
		limiter: rate.NewLimiter(limit, 1),
	}
}

// RoundTrip implements http.RoundTripper.
func (t *rateLimitedTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}
	return t.base.RoundTrip(req)
}
