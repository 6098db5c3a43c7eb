package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/isbndb/client-go/internal/apierrors"
	"github.com/isbndb/client-go/internal/ratelimit"
)

// Defaults for client construction.
const (
	// DefaultBaseURL is the host for the default subscription plan.
	DefaultBaseURL = "https://api2.isbndb.com"
	// DefaultTimeout is the HTTP client timeout.
	DefaultTimeout = 30 * time.Second
	// DefaultMaxRetries bounds re-issues of a request after a 429.
	DefaultMaxRetries = 3
	// DefaultRetryAfter is the delay used when a 429 response carries no
	// Retry-After header.
	DefaultRetryAfter = time.Second
)

// Client is the HTTP API client. All requests funnel through Do.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	limiter    *ratelimit.Limiter
	maxRetries int
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithLimiter sets the rate limiter guarding outbound calls.
func WithLimiter(l *ratelimit.Limiter) Option {
	return func(c *Client) {
		c.limiter = l
	}
}

// WithMaxRetries sets the number of re-issues allowed after 429 responses.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.maxRetries = retries
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, apierrors.ErrMissingAPIKey
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		maxRetries: DefaultMaxRetries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// HTTPClient returns the underlying HTTP client.
func (c *Client) HTTPClient() *http.Client {
	return c.httpClient
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes an API request and decodes the JSON response into result.
// The query may be nil; body is JSON-encoded when non-nil. 429 responses
// are retried after the server-supplied delay up to the retry budget.
func (c *Client) Do(ctx context.Context, method, path string, query url.Values, body, result interface{}) error {
	return c.do(ctx, method, path, query, body, result, 0)
}

func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, result interface{}, attempt int) error {
	fullURL := c.baseURL + path
	if len(query) > 0 {
		fullURL += "?" + query.Encode()
	}

	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, fullURL, bodyReader)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}

	// ISBNdb expects the raw key, not a Bearer scheme.
	req.Header.Set("Authorization", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	// Rate limiter admission guards every attempt, including retries.
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return err
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return &apierrors.NetworkError{Err: err, URL: fullURL}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests && attempt < c.maxRetries {
		delay := retryAfterDelay(resp)
		io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		if err := sleepContext(ctx, delay); err != nil {
			return err
		}
		return c.do(ctx, method, path, query, body, result, attempt+1)
	}

	if resp.StatusCode >= 400 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// retryAfterDelay reads the Retry-After header in seconds, defaulting to
// one second when absent or malformed.
func retryAfterDelay(resp *http.Response) time.Duration {
	header := resp.Header.Get("Retry-After")
	if header == "" {
		return DefaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds < 0 {
		return DefaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}

// sleepContext blocks for the given delay or until the context is done.
// Only the calling goroutine is suspended, not the limiter.
func sleepContext(ctx context.Context, delay time.Duration) error {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// parseErrorResponse maps an HTTP error status onto an APIError, extracting
// the server-provided message when the body carries one.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		ErrorMessage string `json:"errorMessage"`
		Message      string `json:"message"`
	}

	message := ""
	if err := json.Unmarshal(body, &errResp); err == nil {
		if errResp.ErrorMessage != "" {
			message = errResp.ErrorMessage
		} else if errResp.Message != "" {
			message = errResp.Message
		}
	}

	if message == "" {
		if resp.StatusCode == http.StatusNotFound {
			message = "Resource not found"
		} else if len(body) > 0 {
			message = string(body)
		} else {
			message = resp.Status
		}
	}

	return &apierrors.APIError{
		StatusCode: resp.StatusCode,
		Message:    message,
	}
}
