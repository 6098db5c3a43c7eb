package isbndb

import "context"

// Subject represents a subject and its parent. The API exposes a single
// hierarchy level; no tree is built client-side.
type Subject struct {
	Subject string
	Parent  string
}

// GetSubject retrieves a subject by name.
func (c *Client) GetSubject(ctx context.Context, name string) (*Subject, error) {
	result, err := c.api.GetSubject(ctx, name)
	if err != nil {
		return nil, wrapError(err)
	}
	return &Subject{
		Subject: result.Subject,
		Parent:  result.Parent,
	}, nil
}

// SearchSubjects returns subject names matching the query. Optional
// filters: WithPage, WithPageSize.
func (c *Client) SearchSubjects(ctx context.Context, query string, opts ...QueryOption) ([]string, error) {
	names, err := c.api.SearchSubjects(ctx, query, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return names, nil
}
