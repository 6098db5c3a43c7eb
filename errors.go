package isbndb

import (
	"errors"
	"fmt"

	"github.com/isbndb/client-go/internal/apierrors"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrNotFound is returned when the requested resource does not exist.
	ErrNotFound = errors.New("Resource not found")

	// ErrRateLimited is returned when the API rate limit is exceeded and
	// the retry budget has been exhausted.
	ErrRateLimited = errors.New("rate limit exceeded")
)

// APIError represents an HTTP error from the ISBNdb API.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.StatusCode {
	case 401, 403:
		return target == ErrUnauthorized
	case 404:
		return target == ErrNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// NetworkError represents a network-level failure: no HTTP response was
// received, so there is no status code to classify. The underlying
// transport error is available via Unwrap.
type NetworkError struct {
	Err error
	URL string
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// wrapError converts internal API errors to public errors so that
// errors.Is() checks work with the package's sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
		}
	}

	var netErr *apierrors.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err: netErr.Err,
			URL: netErr.URL,
		}
	}

	return err
}
