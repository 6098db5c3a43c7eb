package isbndb

import (
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Plan is the ISBNdb subscription tier. It determines the API host and
// the allowed call rate.
type Plan string

const (
	// PlanDefault is the basic subscription (1 request/second).
	PlanDefault Plan = "default"
	// PlanPremium is the premium subscription (3 requests/second).
	PlanPremium Plan = "premium"
	// PlanPro is the pro subscription (5 requests/second).
	PlanPro Plan = "pro"
)

// Immutable plan tables. Unrecognized plans fall back to PlanDefault.
var (
	planBaseURLs = map[Plan]string{
		PlanDefault: "https://api2.isbndb.com",
		PlanPremium: "https://api.premium.isbndb.com",
		PlanPro:     "https://api.pro.isbndb.com",
	}

	planRateLimits = map[Plan]int{
		PlanDefault: 1,
		PlanPremium: 3,
		PlanPro:     5,
	}
)

const (
	defaultTimeout    = 30 * time.Second
	defaultMaxRetries = 3
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	plan              Plan
	baseURL           string
	httpClient        *http.Client
	timeout           time.Duration
	maxRetries        int
	requestsPerSecond int
}

// Option configures the client.
type Option func(*clientConfig)

// WithPlan sets the subscription plan. Unrecognized plans silently
// downgrade to PlanDefault.
func WithPlan(plan Plan) Option {
	return func(c *clientConfig) {
		c.plan = plan
	}
}

// WithBaseURL overrides the plan-derived API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the HTTP client timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of re-issues allowed after 429 responses.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		c.maxRetries = count
	}
}

// WithRequestsPerSecond overrides the plan-derived rate limit.
func WithRequestsPerSecond(rps int) Option {
	return func(c *clientConfig) {
		c.requestsPerSecond = rps
	}
}

// queryConfig collects query parameters for a single call. Named
// parameters and free-form filters are kept apart so that filters never
// clobber parameters set by dedicated options.
type queryConfig struct {
	params  url.Values
	filters url.Values
}

// QueryOption configures the query parameters of an endpoint call.
type QueryOption func(*queryConfig)

// WithPage sets the result page to fetch.
func WithPage(page int) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("page", strconv.Itoa(page))
	}
}

// WithPageSize sets the number of results per page.
func WithPageSize(size int) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("pageSize", strconv.Itoa(size))
	}
}

// WithLanguage restricts results to the given language code.
func WithLanguage(language string) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("language", language)
	}
}

// WithColumn restricts a book search to a single column
// (title, author, date_published, subjects).
func WithColumn(column string) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("column", column)
	}
}

// WithYear restricts a book search to a publication year.
func WithYear(year int) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("year", strconv.Itoa(year))
	}
}

// WithEdition restricts a book search to an edition.
func WithEdition(edition string) QueryOption {
	return func(c *queryConfig) {
		c.params.Set("edition", edition)
	}
}

// WithShouldMatchAll requires all query words to match when true.
// Encoded as 1/0 on the wire.
func WithShouldMatchAll(matchAll bool) QueryOption {
	return func(c *queryConfig) {
		if matchAll {
			c.params.Set("shouldMatchAll", "1")
		} else {
			c.params.Set("shouldMatchAll", "0")
		}
	}
}

// WithPrices includes merchant pricing data in a book lookup.
func WithPrices() QueryOption {
	return func(c *queryConfig) {
		c.params.Set("with_prices", "1")
	}
}

// WithFilter adds an arbitrary query parameter to a general search.
// Filters are merged after the dedicated options and never overwrite a
// parameter those options already set.
func WithFilter(key, value string) QueryOption {
	return func(c *queryConfig) {
		c.filters.Set(key, value)
	}
}

// buildQuery applies the options and merges filters into the parameter
// set, skipping keys already present. Returns nil when nothing is set so
// the gateway omits the query string entirely.
func buildQuery(opts ...QueryOption) url.Values {
	cfg := &queryConfig{
		params:  url.Values{},
		filters: url.Values{},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	for key, values := range cfg.filters {
		if cfg.params.Get(key) != "" {
			continue
		}
		for _, v := range values {
			cfg.params.Add(key, v)
		}
	}

	if len(cfg.params) == 0 {
		return nil
	}
	return cfg.params
}
