package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"net/http"
	"time"

	"golang.org/x/time/rate"
)

// returned when the upstream responds with 404
var ErrNotFound = errors.New("resource not found")

const (
	defaultRetries    = 3
	defaultRetryDelay = time.Second
	maxBodySize       = 10 << 20 // 10 MB cap on fetched pages
)

// shared HTTP client for Codeforces page and API fetches
// reuses connection pool and timeout configuration
var sharedHTTPClient = &http.Client{
	Timeout: 30 * time.Second,
	Transport: &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
		TLSHandshakeTimeout: 10 * time.Second,
	},
}

type Config struct {
	UserAgent string
	Retries   int
	// requests per second allowed against the upstream host
	RequestsPerSecond float64
	Burst             int
}

// Client fetches pages with retry, backoff and host-level rate limiting.
type Client struct {
	config     Config
	httpClient *http.Client
	limiter    *rate.Limiter
}

func New(config Config) *Client {
	if config.Retries == 0 {
		config.Retries = defaultRetries
	}

	if config.RequestsPerSecond == 0 {
		config.RequestsPerSecond = 2
	}

	if config.Burst == 0 {
		config.Burst = 4
	}

	return &Client{
		config:     config,
		httpClient: sharedHTTPClient,
		limiter:    rate.NewLimiter(rate.Limit(config.RequestsPerSecond), config.Burst),
	}
}

// fetches url and returns the response body
// retries transient failures with exponential backoff; a 404 maps to ErrNotFound without retrying
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	var lastErr error

	for attempt := 0; attempt <= c.config.Retries; attempt++ {
		if attempt > 0 {
			delay := time.Duration(math.Pow(2, float64(attempt-1))) * defaultRetryDelay
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(delay):
			}
		}

		body, err := c.doGet(ctx, url)
		if err == nil {
			return body, nil
		}

		// permanent failures are not worth retrying
		if errors.Is(err, ErrNotFound) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil, err
		}

		lastErr = err
	}

	return nil, fmt.Errorf("request failed after %d attempts: %w", c.config.Retries+1, lastErr)
}

func (c *Client) doGet(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limiter error: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "GET", url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	if c.config.UserAgent != "" {
		req.Header.Set("User-Agent", c.config.UserAgent)
	}
	req.Header.Set("Accept-Language", "en")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}

	defer resp.Body.Close() //nolint:errcheck

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s: %w", url, ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096)) //nolint:errcheck
		return nil, fmt.Errorf("request to %s failed with status %d: %s", url, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	return body, nil
}
