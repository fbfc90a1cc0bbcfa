package comments

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/sony/gobreaker"

	"github.com/rshade/commentgrid/internal/logging"
)

// maxResponseBytes caps the decoded body.
const maxResponseBytes = 16 << 20

// ErrUnexpectedStatus is returned when the endpoint answers with a non-200 status.
var ErrUnexpectedStatus = errors.New("unexpected response status")

// HTTPConfig configures an HTTPSource.
type HTTPConfig struct {
	Endpoint          string
	Timeout           time.Duration
	UserAgent         string
	RequestsPerSecond float64
	Breaker           BreakerConfig

	// Transport overrides the base transport; nil uses http.DefaultTransport.
	Transport http.RoundTripper
}

// HTTPSource fetches the comment list with a single GET.
type HTTPSource struct {
	endpoint  string
	userAgent string
	client    *http.Client
	breaker   *gobreaker.CircuitBreaker
	log       zerolog.Logger
}

// NewHTTPSource builds an HTTPSource. log receives breaker state changes.
func NewHTTPSource(cfg HTTPConfig, log zerolog.Logger) *HTTPSource {
	log = logging.ComponentLogger(log, "comments")
	return &HTTPSource{
		endpoint:  cfg.Endpoint,
		userAgent: cfg.UserAgent,
		client: &http.Client{
			Timeout:   cfg.Timeout,
			Transport: newRateLimitedTransport(cfg.Transport, cfg.RequestsPerSecond),
		},
		breaker: newBreaker(cfg.Breaker, log),
		log:     log,
	}
}

// Endpoint returns the URL this source fetches.
func (s *HTTPSource) Endpoint() string {
	return s.endpoint
}

// Fetch implements Source.
func (s *HTTPSource) Fetch(ctx context.Context) ([]Comment, error) {
	start := time.Now()

	result, err := s.breaker.Execute(func() (interface{}, error) {
		return s.doFetch(ctx)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			s.log.Warn().Ctx(ctx).
				Str("endpoint", s.endpoint).
				Str("state", s.breaker.State().String()).
				Msg("circuit breaker rejected request")
		}
		return nil, fmt.Errorf("fetching %s: %w", s.endpoint, err)
	}

	records, _ := result.([]Comment)
	s.log.Debug().Ctx(ctx).
		Str("endpoint", s.endpoint).
		Int("count", len(records)).
		Dur("duration_ms", time.Since(start)).
		Msg("comments fetched")
	return records, nil
}

func (s *HTTPSource) doFetch(ctx context.Context) ([]Comment, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if s.userAgent != "" {
		req.Header.Set("User-Agent", s.userAgent)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: %s", ErrUnexpectedStatus, resp.Status)
	}

	var records []Comment
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxResponseBytes)).Decode(&records); err != nil {
		return nil, fmt.Errorf("decoding comments: %w", err)
	}
	if records == nil {
		records = []Comment{}
	}
	return records, nil
}
