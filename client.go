package isbndb

import (
	"context"

	"github.com/isbndb/client-go/internal/api"
	"github.com/isbndb/client-go/internal/ratelimit"
)

// Client is the ISBNdb API client. It owns the HTTP connection pool and
// the rate limiter for its lifetime and is safe for concurrent use.
type Client struct {
	api     *api.Client
	plan    Plan
	baseURL string
	limiter *ratelimit.Limiter
}

// normalizePlan maps unrecognized plan names to PlanDefault.
func normalizePlan(plan Plan) Plan {
	if _, ok := planBaseURLs[plan]; !ok {
		return PlanDefault
	}
	return plan
}

// New creates a new ISBNdb client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		plan:       PlanDefault,
		timeout:    defaultTimeout,
		maxRetries: defaultMaxRetries,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	plan := normalizePlan(cfg.plan)

	baseURL := cfg.baseURL
	if baseURL == "" {
		baseURL = planBaseURLs[plan]
	}

	rps := cfg.requestsPerSecond
	if rps <= 0 {
		rps = planRateLimits[plan]
	}
	limiter := ratelimit.New(string(plan), rps)

	apiClient, err := api.New(apiKey,
		api.WithBaseURL(baseURL),
		api.WithLimiter(limiter),
		api.WithMaxRetries(cfg.maxRetries),
		api.WithTimeout(cfg.timeout),
	)
	if err != nil {
		return nil, wrapError(err)
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{
		api:     apiClient,
		plan:    plan,
		baseURL: baseURL,
		limiter: limiter,
	}, nil
}

// Plan returns the effective subscription plan after normalization.
func (c *Client) Plan() Plan {
	return c.plan
}

// BaseURL returns the API base URL in use.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// RateLimit returns the effective calls-per-second cap.
func (c *Client) RateLimit() int {
	return c.limiter.Rate()
}

// GetStats returns the raw ISBNdb database statistics payload unmapped.
func (c *Client) GetStats(ctx context.Context) (map[string]interface{}, error) {
	stats, err := c.api.GetStats(ctx)
	if err != nil {
		return nil, wrapError(err)
	}
	return stats, nil
}
