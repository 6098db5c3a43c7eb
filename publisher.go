package isbndb

import "context"

// Publisher represents a publisher and their catalog. Unlike the author
// endpoint, the publisher endpoint returns bare ISBN strings rather than
// full book records; resolve them with GetBook or GetBooks as needed.
type Publisher struct {
	Name  string
	Books []string
}

// GetPublisher retrieves a publisher and the ISBNs of their books.
// Optional filters: WithPage, WithPageSize, WithLanguage.
func (c *Client) GetPublisher(ctx context.Context, name string, opts ...QueryOption) (*Publisher, error) {
	result, err := c.api.GetPublisher(ctx, name, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return &Publisher{
		Name:  result.Name,
		Books: result.Books,
	}, nil
}

// SearchPublishers returns publisher names matching the query. Optional
// filters: WithPage, WithPageSize.
func (c *Client) SearchPublishers(ctx context.Context, query string, opts ...QueryOption) ([]string, error) {
	names, err := c.api.SearchPublishers(ctx, query, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return names, nil
}
