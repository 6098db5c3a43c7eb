// Package api provides HTTP client functionality for communicating with the
// ISBNdb API. It handles authentication, request/response serialization,
// rate-limited admission, and bounded retries on 429 responses honoring the
// server-supplied Retry-After delay.
//
// # Request Pipeline
//
// Every call funnels through [Client.Do]: it composes the full URL from the
// configured base URL, endpoint path and query parameters, attaches the raw
// API key as the Authorization header, waits for the rate limiter to admit
// the call, executes it, and classifies the response.
//
// # Retry Behavior
//
// Only HTTP 429 responses are retried. The Retry-After header determines the
// delay (1 second when absent) and the number of re-issues is bounded by
// [Config.MaxRetries] (default 3). The original upstream behavior retried
// without a cap; the bound avoids unbounded recursion under sustained
// back-pressure. Exhausting the budget surfaces the 429 as an
// [apierrors.APIError]. Network-level failures are never retried and are
// returned as [apierrors.NetworkError].
//
// # Error Handling
//
// HTTP error statuses map to [apierrors.APIError] carrying the status code
// and a best-effort message extracted from the response body (the ISBNdb
// errorMessage or message fields). 404 responses without a server message
// use the literal "Resource not found". Use errors.Is with the apierrors
// sentinels to classify:
//
//	if errors.Is(err, apierrors.ErrNotFound) {
//	    // Handle missing resource
//	}
//
// # Thread Safety
//
// The [Client] type is safe for concurrent use. The rate limiter serializes
// admission only; admitted calls overlap in flight.
package api
