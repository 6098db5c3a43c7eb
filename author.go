package isbndb

import "context"

// Author represents an author and their books. The author endpoint
// returns full book records; Total is the overall match count across
// pages.
type Author struct {
	Name  string
	Books []Book
	Total int
}

// GetAuthor retrieves an author and their books. Optional filters:
// WithPage, WithPageSize, WithLanguage.
func (c *Client) GetAuthor(ctx context.Context, name string, opts ...QueryOption) (*Author, error) {
	result, err := c.api.GetAuthor(ctx, name, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return &Author{
		Name:  result.Author,
		Books: booksFromAPI(result.Books),
		Total: result.Total,
	}, nil
}

// SearchAuthors returns author names matching the query. Optional
// filters: WithPage, WithPageSize.
func (c *Client) SearchAuthors(ctx context.Context, query string, opts ...QueryOption) ([]string, error) {
	names, err := c.api.SearchAuthors(ctx, query, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return names, nil
}
