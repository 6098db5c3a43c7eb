package isbndb

import (
	"context"

	"github.com/isbndb/client-go/internal/api"
)

// Book represents a book record. Books are constructed fresh from each
// response and never mutated afterwards. ISBN13 is a 13-character numeric
// string when present; the remote API is the source of truth and the
// client does not enforce uniqueness.
type Book struct {
	Title                string
	TitleLong            string
	ISBN                 string
	ISBN13               string
	DeweyDecimal         string
	Binding              string
	Authors              []string
	Publisher            string
	DatePublished        string
	Pages                int
	Language             string
	Image                string
	Dimensions           string
	DimensionsStructured *StructuredDimensions
	MSRP                 float64
	Excerpt              string
	Synopsis             string
	Subjects             []string
	Overview             string
	Edition              string
	Prices               []Price
}

// Dimension is a single (unit, value) measurement.
type Dimension struct {
	Unit  string
	Value float64
}

// StructuredDimensions holds the four physical measurements of a book.
type StructuredDimensions struct {
	Length Dimension
	Width  Dimension
	Height Dimension
	Weight Dimension
}

// MerchantLogoOffset positions a merchant logo within its sprite sheet.
type MerchantLogoOffset struct {
	X string
	Y string
}

// Price is a merchant offer for a book. Price and Total are
// currency-formatted strings as returned by the API.
type Price struct {
	Condition          string
	Merchant           string
	MerchantLogo       string
	MerchantLogoOffset *MerchantLogoOffset
	Shipping           string
	Price              string
	Total              string
	Link               string
}

// bookFromAPI maps a wire book object onto the public record. Optional
// fields absent from the response keep their zero values.
func bookFromAPI(b *api.Book) Book {
	book := Book{
		Title:         b.Title,
		TitleLong:     b.TitleLong,
		ISBN:          b.ISBN,
		ISBN13:        b.ISBN13,
		DeweyDecimal:  b.DeweyDecimal,
		Binding:       b.Binding,
		Authors:       b.Authors,
		Publisher:     b.Publisher,
		DatePublished: b.DatePublished,
		Pages:         b.Pages,
		Language:      b.Language,
		Image:         b.Image,
		Dimensions:    b.Dimensions,
		MSRP:          b.MSRP,
		Excerpt:       b.Excerpt,
		Synopsis:      b.Synopsis,
		Subjects:      b.Subjects,
		Overview:      b.Overview,
		Edition:       b.Edition,
	}

	if b.DimensionsStructured != nil {
		book.DimensionsStructured = &StructuredDimensions{
			Length: Dimension(b.DimensionsStructured.Length),
			Width:  Dimension(b.DimensionsStructured.Width),
			Height: Dimension(b.DimensionsStructured.Height),
			Weight: Dimension(b.DimensionsStructured.Weight),
		}
	}

	if len(b.Prices) > 0 {
		book.Prices = make([]Price, 0, len(b.Prices))
		for _, p := range b.Prices {
			price := Price{
				Condition:    p.Condition,
				Merchant:     p.Merchant,
				MerchantLogo: p.MerchantLogo,
				Shipping:     p.Shipping,
				Price:        p.Price,
				Total:        p.Total,
				Link:         p.Link,
			}
			if p.MerchantLogoOffset != nil {
				price.MerchantLogoOffset = &MerchantLogoOffset{
					X: p.MerchantLogoOffset.X,
					Y: p.MerchantLogoOffset.Y,
				}
			}
			book.Prices = append(book.Prices, price)
		}
	}

	return book
}

// booksFromAPI maps a list of wire book objects, preserving order.
func booksFromAPI(apiBooks []api.Book) []Book {
	books := make([]Book, 0, len(apiBooks))
	for i := range apiBooks {
		books = append(books, bookFromAPI(&apiBooks[i]))
	}
	return books
}

// GetBook retrieves a book by ISBN. Use WithPrices to include merchant
// pricing data.
func (c *Client) GetBook(ctx context.Context, isbn string, opts ...QueryOption) (*Book, error) {
	apiBook, err := c.api.GetBook(ctx, isbn, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	book := bookFromAPI(apiBook)
	return &book, nil
}

// GetBooks retrieves multiple books in a single call. The ISBN list is
// sent as the request body and the response order is preserved.
func (c *Client) GetBooks(ctx context.Context, isbns []string) ([]Book, error) {
	apiBooks, err := c.api.GetBooks(ctx, isbns)
	if err != nil {
		return nil, wrapError(err)
	}
	return booksFromAPI(apiBooks), nil
}

// SearchBooks searches books matching the query. Optional filters:
// WithPage, WithPageSize, WithLanguage, WithColumn, WithYear,
// WithEdition, WithShouldMatchAll.
func (c *Client) SearchBooks(ctx context.Context, query string, opts ...QueryOption) ([]Book, error) {
	_, apiBooks, err := c.api.SearchBooks(ctx, query, buildQuery(opts...))
	if err != nil {
		return nil, wrapError(err)
	}
	return booksFromAPI(apiBooks), nil
}
