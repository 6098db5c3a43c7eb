package isbndb

import (
	"context"

	"github.com/isbndb/client-go/internal/api"
)

// SearchResults holds the total match count and one page of book results,
// exactly as returned by the server.
type SearchResults struct {
	Total int
	Books []Book
}

// Search performs a general search against the given index ("books",
// "authors", "publishers" or "subjects"). Arbitrary filters added with
// WithFilter are merged into the query parameters without clobbering
// page and pageSize.
func (c *Client) Search(ctx context.Context, index, query string, opts ...QueryOption) (*SearchResults, error) {
	result, err := c.api.Search(ctx, index, query, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return searchResultsFromAPI(result), nil
}

func searchResultsFromAPI(result *api.SearchResult) *SearchResults {
	return &SearchResults{
		Total: result.Total,
		Books: booksFromAPI(result.Books),
	}
}
