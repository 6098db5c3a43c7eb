package api

import (
	"context"
	"net/http"
	"net/url"
)

// GetBook retrieves a book by ISBN. Extra query parameters (with_prices)
// are passed through unchanged.
func (c *Client) GetBook(ctx context.Context, isbn string, params url.Values) (*Book, error) {
	var result bookEnvelope
	path := "/book/" + url.PathEscape(isbn)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	return &result.Book, nil
}

// GetBooks retrieves multiple books in one call. The ISBN list is sent as
// the POST body and the response order is preserved.
func (c *Client) GetBooks(ctx context.Context, isbns []string) ([]Book, error) {
	var result bulkBooksResponse
	req := bulkBooksRequest{ISBNs: isbns}
	if err := c.Do(ctx, http.MethodPost, "/books", nil, req, &result); err != nil {
		return nil, err
	}
	return result.Books, nil
}

// SearchBooks searches books matching the query.
func (c *Client) SearchBooks(ctx context.Context, query string, params url.Values) (int, []Book, error) {
	var result searchBooksResponse
	path := "/books/" + url.PathEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return 0, nil, err
	}
	books := make([]Book, 0, len(result.Books))
	for _, item := range result.Books {
		books = append(books, item.Book)
	}
	return result.Total, books, nil
}

// GetAuthor retrieves an author and their books.
func (c *Client) GetAuthor(ctx context.Context, name string, params url.Values) (*AuthorResult, error) {
	var result authorResponse
	path := "/author/" + url.PathEscape(name)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	books := make([]Book, 0, len(result.Books))
	for _, item := range result.Books {
		books = append(books, item.Book)
	}
	return &AuthorResult{
		Author: result.Author,
		Total:  result.Total,
		Books:  books,
	}, nil
}

// SearchAuthors returns author names matching the query.
func (c *Client) SearchAuthors(ctx context.Context, query string, params url.Values) ([]string, error) {
	var result nameListResponse
	path := "/authors/" + url.PathEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	return result.Authors, nil
}

// GetPublisher retrieves a publisher and the ISBNs of their books.
func (c *Client) GetPublisher(ctx context.Context, name string, params url.Values) (*PublisherResult, error) {
	var result publisherResponse
	path := "/publisher/" + url.PathEscape(name)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	isbns := make([]string, 0, len(result.Books))
	for _, item := range result.Books {
		isbns = append(isbns, item.ISBN)
	}
	return &PublisherResult{
		Name:  result.Name,
		Books: isbns,
	}, nil
}

// SearchPublishers returns publisher names matching the query.
func (c *Client) SearchPublishers(ctx context.Context, query string, params url.Values) ([]string, error) {
	var result nameListResponse
	path := "/publishers/" + url.PathEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	return result.Publishers, nil
}

// GetSubject retrieves a subject and its parent.
func (c *Client) GetSubject(ctx context.Context, name string) (*SubjectResult, error) {
	var result SubjectResult
	path := "/subject/" + url.PathEscape(name)
	if err := c.Do(ctx, http.MethodGet, path, nil, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// SearchSubjects returns subject names matching the query.
func (c *Client) SearchSubjects(ctx context.Context, query string, params url.Values) ([]string, error) {
	var result nameListResponse
	path := "/subjects/" + url.PathEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	return result.Subjects, nil
}

// Search performs a general search against the given index.
func (c *Client) Search(ctx context.Context, index, query string, params url.Values) (*SearchResult, error) {
	var result SearchResult
	path := "/search/" + url.PathEscape(index) + "/" + url.PathEscape(query)
	if err := c.Do(ctx, http.MethodGet, path, params, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetStats returns the raw statistics payload unmapped.
func (c *Client) GetStats(ctx context.Context) (map[string]interface{}, error) {
	var result map[string]interface{}
	if err := c.Do(ctx, http.MethodGet, "/stats", nil, nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}
