package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/nikhil-r0/Green-Terrace/internal/logger"
	"github.com/nikhil-r0/Green-Terrace/internal/metrics"
)

// ErrUnavailable is returned when the breaker rejects a call
var ErrUnavailable = errors.New("upstream unavailable")

// StatusError is returned for non-2xx responses
type StatusError struct {
	Upstream   string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s returned HTTP %d", e.Upstream, e.StatusCode)
}

// Options configures a Client
type Options struct {
	Name      string
	BaseURL   string
	Timeout   time.Duration
	RateLimit rate.Limit // 0 disables limiting
	Burst     int
	UserAgent string
	HTTP      *http.Client
}

// Client is a JSON HTTP client guarded by a circuit breaker and a rate limiter
type Client struct {
	name      string
	baseURL   string
	userAgent string
	http      *http.Client
	limiter   *rate.Limiter
	cb        *gobreaker.CircuitBreaker[[]byte]
}

// NewClient creates a new upstream client.
// Breaker: opens at a 60% failure rate over at least 5 requests, probes after 30s.
func NewClient(opts Options) *Client {
	if opts.Timeout <= 0 {
		opts.Timeout = DefaultTimeout
	}
	if opts.UserAgent == "" {
		opts.UserAgent = DefaultUserAgent
	}
	httpClient := opts.HTTP
	if httpClient == nil {
		httpClient = &http.Client{Timeout: opts.Timeout}
	}

	var limiter *rate.Limiter
	if opts.RateLimit > 0 {
		burst := opts.Burst
		if burst <= 0 {
			burst = 1
		}
		limiter = rate.NewLimiter(opts.RateLimit, burst)
	}

	metrics.CircuitBreakerState.WithLabelValues(opts.Name).Set(0)
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(opts.Name).Set(0)

	c := &Client{
		name:      opts.Name,
		baseURL:   strings.TrimRight(opts.BaseURL, "/"),
		userAgent: opts.UserAgent,
		http:      httpClient,
		limiter:   limiter,
	}
	c.cb = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:          opts.Name,
		MaxRequests:   BreakerMaxHalfOpenRequests,
		Interval:      BreakerInterval,
		Timeout:       BreakerOpenTimeout,
		ReadyToTrip:   readyToTrip,
		OnStateChange: onStateChange,
		IsSuccessful:  isSuccessful,
	})
	return c
}

// Name returns the upstream name used in metrics
func (c *Client) Name() string {
	return c.name
}

// State returns the breaker state as a string
func (c *Client) State() string {
	return stateToString(c.cb.State())
}

// GetJSON issues a GET for path with query and decodes the JSON body into out
func (c *Client) GetJSON(ctx context.Context, path string, query url.Values, out interface{}) error {
	body, err := c.Get(ctx, path, query)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("%s: failed to decode response: %w", c.name, err)
	}
	return nil
}

// Get issues a GET for path with query and returns the raw body
func (c *Client) Get(ctx context.Context, path string, query url.Values) ([]byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%s: rate limit wait: %w", c.name, err)
		}
	}

	start := time.Now()
	body, err := c.cb.Execute(func() ([]byte, error) {
		return c.do(ctx, path, query)
	})
	metrics.UpstreamDuration.WithLabelValues(c.name).Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			metrics.UpstreamRequests.WithLabelValues(c.name, metrics.ResultRejected).Inc()
			logger.FromContext(ctx).Warn("Upstream request rejected", "upstream", c.name, "state", c.State())
			return nil, fmt.Errorf("%w: %s: %v", ErrUnavailable, c.name, err)
		}
		metrics.UpstreamRequests.WithLabelValues(c.name, metrics.ResultFailure).Inc()
		counts := c.cb.Counts()
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(float64(counts.ConsecutiveFailures))
		return nil, err
	}

	metrics.UpstreamRequests.WithLabelValues(c.name, metrics.ResultSuccess).Inc()
	metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(c.name).Set(0)
	return body, nil
}

func (c *Client) do(ctx context.Context, path string, query url.Values) ([]byte, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to build request: %w", c.name, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: request failed: %w", c.name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, MaxResponseBytes))
		return nil, &StatusError{Upstream: c.name, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("%s: failed to read response: %w", c.name, err)
	}
	return body, nil
}

func readyToTrip(counts gobreaker.Counts) bool {
	if counts.Requests < BreakerMinRequests {
		return false
	}
	return float64(counts.TotalFailures)/float64(counts.Requests) >= BreakerFailureRatio
}

func onStateChange(name string, from, to gobreaker.State) {
	fromStr, toStr := stateToString(from), stateToString(to)
	logger.FromContext(context.Background()).Info("Circuit breaker state transition", "upstream", name, "from", fromStr, "to", toStr)

	metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
	metrics.CircuitBreakerTransitions.WithLabelValues(name, fromStr, toStr).Inc()
	if to == gobreaker.StateClosed {
		metrics.CircuitBreakerConsecutiveFailures.WithLabelValues(name).Set(0)
	}
}

// isSuccessful keeps caller cancellations and 4xx answers from tripping the breaker
func isSuccessful(err error) bool {
	if err == nil {
		return true
	}
	if errors.Is(err, context.Canceled) {
		return true
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.StatusCode < 500 && statusErr.StatusCode != http.StatusTooManyRequests
	}
	return false
}

// stateToFloat converts circuit breaker state to numeric value for metrics
func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return StateClosed
	case gobreaker.StateHalfOpen:
		return StateHalfOpen
	case gobreaker.StateOpen:
		return StateOpen
	default:
		return StateUnknown
	}
}
