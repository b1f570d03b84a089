package radarr

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"prunarr/internal/logging"
)

const defaultHTTPTimeout = 30 * time.Second

// Config captures the runtime settings required to talk to Radarr.
type Config struct {
	URL            string
	APIKey         string
	TimeoutSeconds int
}

// RetryPolicy describes how failed requests are retried. Delays[n] is the
// wait inserted before attempt n+2; no wait follows the final attempt.
type RetryPolicy struct {
	MaxAttempts int
	Delays      []time.Duration
}

// DefaultRetryPolicy returns the fixed 3-attempt schedule with exponential
// backoff delays of 1s, 2s and 4s.
func DefaultRetryPolicy() RetryPolicy {
	return RetryPolicy{
		MaxAttempts: 3,
		Delays:      []time.Duration{time.Second, 2 * time.Second, 4 * time.Second},
	}
}

// delayBefore returns the wait applied after a failed attempt (1-based).
func (p RetryPolicy) delayBefore(attempt int) time.Duration {
	if attempt < 1 || attempt > len(p.Delays) {
		return 0
	}
	return p.Delays[attempt-1]
}

// APIError describes a terminal failure while talking to the Radarr API.
// StatusCode is 0 when no HTTP response was ever received.
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("radarr api error %d at %s: %s", e.StatusCode, e.Endpoint, e.Message)
}

// Client wraps the Radarr v3 HTTP API with authentication and retries.
// It holds no mutable state beyond the base URL and credential.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	policy     RetryPolicy
	sleeper    func(time.Duration)
	logger     *slog.Logger
}

// Option customizes the client.
type Option func(*Client)

// WithHTTPClient overrides the default HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		if client != nil {
			c.httpClient = client
		}
	}
}

// WithRetryPolicy overrides the default retry schedule.
func WithRetryPolicy(policy RetryPolicy) Option {
	return func(c *Client) {
		if policy.MaxAttempts > 0 {
			c.policy = policy
		}
	}
}

// WithSleeper overrides how retry sleeps are performed (useful for tests).
func WithSleeper(sleeper func(time.Duration)) Option {
	return func(c *Client) {
		c.sleeper = sleeper
	}
}

// WithLogger attaches a logger for request diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logging.NewComponentLogger(logger, "radarr")
	}
}

// New constructs a Radarr client using the supplied configuration.
func New(cfg Config, opts ...Option) *Client {
	timeout := defaultHTTPTimeout
	if cfg.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.TimeoutSeconds) * time.Second
	}
	client := &Client{
		baseURL:    strings.TrimRight(strings.TrimSpace(cfg.URL), "/"),
		apiKey:     strings.TrimSpace(cfg.APIKey),
		httpClient: &http.Client{Timeout: timeout},
		policy:     DefaultRetryPolicy(),
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// TestConnection fetches the system status and verifies the response carries
// a version marker, proving both connectivity and authentication.
func (c *Client) TestConnection(ctx context.Context) (SystemStatus, error) {
	var status SystemStatus
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v3/system/status", nil)
	if err != nil {
		return status, err
	}
	if err := json.Unmarshal(body, &status); err != nil {
		return status, &APIError{
			StatusCode: http.StatusOK,
			Message:    fmt.Sprintf("decode system status: %v", err),
			Endpoint:   "/api/v3/system/status",
		}
	}
	if strings.TrimSpace(status.Version) == "" {
		return status, &APIError{
			StatusCode: http.StatusOK,
			Message:    "response did not include a version; is this a Radarr instance?",
			Endpoint:   "/api/v3/system/status",
		}
	}
	return status, nil
}

// ListMovies returns every movie in the Radarr library.
func (c *Client) ListMovies(ctx context.Context) ([]Movie, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v3/movie", nil)
	if err != nil {
		return nil, err
	}
	var movies []Movie
	if len(body) > 0 {
		if err := json.Unmarshal(body, &movies); err != nil {
			return nil, &APIError{
				StatusCode: http.StatusOK,
				Message:    fmt.Sprintf("decode movie list: %v", err),
				Endpoint:   "/api/v3/movie",
			}
		}
	}
	return movies, nil
}

// DeleteMovie removes one movie. deleteFiles controls whether files on disk
// are removed; addExclusion adds an import exclusion so subscribed lists do
// not re-import the title.
func (c *Client) DeleteMovie(ctx context.Context, id int64, deleteFiles, addExclusion bool) error {
	query := url.Values{}
	query.Set("deleteFiles", strconv.FormatBool(deleteFiles))
	query.Set("addImportExclusion", strconv.FormatBool(addExclusion))

	endpoint := fmt.Sprintf("/api/v3/movie/%d", id)
	_, err := c.doRequest(ctx, http.MethodDelete, endpoint, query)
	return err
}

// ListExclusions returns the current import exclusion records.
func (c *Client) ListExclusions(ctx context.Context) ([]Exclusion, error) {
	body, err := c.doRequest(ctx, http.MethodGet, "/api/v3/exclusions", nil)
	if err != nil {
		return nil, err
	}
	var exclusions []Exclusion
	if len(body) > 0 {
		if err := json.Unmarshal(body, &exclusions); err != nil {
			return nil, &APIError{
				StatusCode: http.StatusOK,
				Message:    fmt.Sprintf("decode exclusions: %v", err),
				Endpoint:   "/api/v3/exclusions",
			}
		}
	}
	return exclusions, nil
}

// doRequest performs one API call with the retry policy applied. Transport
// failures and 5xx responses are retried; 4xx responses fail immediately.
// A 2xx response with an empty body yields a nil payload.
func (c *Client) doRequest(ctx context.Context, method, endpoint string, query url.Values) ([]byte, error) {
	attempts := c.policy.MaxAttempts
	if attempts < 1 {
		attempts = 1
	}

	for attempt := 1; attempt <= attempts; attempt++ {
		body, statusCode, err := c.sendOnce(ctx, method, endpoint, query)

		switch {
		case err != nil:
			// The caller's context ending is not a Radarr failure; surface it
			// as-is instead of burning retries on it.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			// Transport-level failure: connection refused, timeout, DNS.
			if attempt < attempts {
				c.logger.Warn("request failed, retrying",
					logging.String("endpoint", endpoint),
					logging.Int("attempt", attempt),
					logging.Error(err))
				if sleepErr := c.sleep(ctx, c.policy.delayBefore(attempt)); sleepErr != nil {
					return nil, sleepErr
				}
				continue
			}
			return nil, &APIError{
				StatusCode: 0,
				Message:    fmt.Sprintf("connection error after %d attempts: %v", attempts, err),
				Endpoint:   endpoint,
			}

		case statusCode < http.StatusBadRequest:
			return body, nil

		case statusCode < http.StatusInternalServerError:
			// 4xx is the caller's fault; retrying cannot help.
			return nil, &APIError{
				StatusCode: statusCode,
				Message:    errorMessageFromBody(body),
				Endpoint:   endpoint,
			}

		default:
			if attempt < attempts {
				c.logger.Warn("server error, retrying",
					logging.String("endpoint", endpoint),
					logging.Int("attempt", attempt),
					logging.Int("status", statusCode))
				if sleepErr := c.sleep(ctx, c.policy.delayBefore(attempt)); sleepErr != nil {
					return nil, sleepErr
				}
				continue
			}
			return nil, &APIError{
				StatusCode: statusCode,
				Message:    fmt.Sprintf("server error after %d attempts: %s", attempts, strings.TrimSpace(string(body))),
				Endpoint:   endpoint,
			}
		}
	}

	return nil, &APIError{StatusCode: 0, Message: "unknown error occurred", Endpoint: endpoint}
}

func (c *Client) sendOnce(ctx context.Context, method, endpoint string, query url.Values) ([]byte, int, error) {
	requestURL := c.baseURL + endpoint
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, requestURL, nil)
	if err != nil {
		return nil, 0, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, fmt.Errorf("read response body: %w", err)
	}
	if resp.StatusCode == http.StatusNoContent || len(body) == 0 {
		return nil, resp.StatusCode, nil
	}
	return body, resp.StatusCode, nil
}

func (c *Client) sleep(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if c.sleeper != nil {
		c.sleeper(delay)
		return ctx.Err()
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// errorMessageFromBody extracts Radarr's error message from a failure
// response, falling back to the raw body when it is not the usual JSON shape.
func errorMessageFromBody(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return "request failed"
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && strings.TrimSpace(payload.Message) != "" {
		return payload.Message
	}
	return text
}

// IsNotFound reports whether err is an APIError carrying a 404 status.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}
