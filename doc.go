// Package isbndb provides a Go client for the ISBNdb book-metadata API.
//
// The client authenticates every request with your API key, throttles
// outbound calls to your subscription plan's rate limit, and maps JSON
// responses onto typed records for books, authors, publishers and
// subjects.
//
// Basic usage:
//
//	client, err := isbndb.New("your-api-key", isbndb.WithPlan(isbndb.PlanPremium))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	book, err := client.GetBook(ctx, "9780547928227")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println(book.Title, book.Authors)
//
// The subscription plan selects both the API host and the per-second call
// cap (default 1/s, premium 3/s, pro 5/s). Unrecognized plans silently
// fall back to the default host and cap. A single client is safe for
// concurrent use; the rate limiter serializes admission, and admitted
// calls proceed independently.
package isbndb
