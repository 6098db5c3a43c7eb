package api

// Book represents a book object as returned by the ISBNdb API.
type Book struct {
	Title                string                `json:"title"`
	TitleLong            string                `json:"title_long,omitempty"`
	ISBN                 string                `json:"isbn"`
	ISBN13               string                `json:"isbn13"`
	DeweyDecimal         string                `json:"dewey_decimal,omitempty"`
	Binding              string                `json:"binding,omitempty"`
	Authors              []string              `json:"authors"`
	Publisher            string                `json:"publisher"`
	DatePublished        string                `json:"date_published"`
	Pages                int                   `json:"pages"`
	Language             string                `json:"language"`
	Image                string                `json:"image"`
	Dimensions           string                `json:"dimensions,omitempty"`
	DimensionsStructured *StructuredDimensions `json:"dimensions_structured,omitempty"`
	MSRP                 float64               `json:"msrp,omitempty"`
	Excerpt              string                `json:"excerpt,omitempty"`
	Synopsis             string                `json:"synopsis,omitempty"`
	Subjects             []string              `json:"subjects,omitempty"`
	Overview             string                `json:"overview,omitempty"`
	Edition              string                `json:"edition,omitempty"`
	Prices               []Price               `json:"prices,omitempty"`
}

// Dimension is a single (unit, value) measurement.
type Dimension struct {
	Unit  string  `json:"unit"`
	Value float64 `json:"value"`
}

// StructuredDimensions holds the four physical measurements of a book.
type StructuredDimensions struct {
	Length Dimension `json:"length"`
	Width  Dimension `json:"width"`
	Height Dimension `json:"height"`
	Weight Dimension `json:"weight"`
}

// MerchantLogoOffset positions a merchant logo within its sprite sheet.
type MerchantLogoOffset struct {
	X string `json:"x"`
	Y string `json:"y"`
}

// Price is a merchant offer for a book.
type Price struct {
	Condition          string              `json:"condition"`
	Merchant           string              `json:"merchant"`
	MerchantLogo       string              `json:"merchant_logo,omitempty"`
	MerchantLogoOffset *MerchantLogoOffset `json:"merchant_logo_offset,omitempty"`
	Shipping           string              `json:"shipping,omitempty"`
	Price              string              `json:"price"`
	Total              string              `json:"total"`
	Link               string              `json:"link"`
}

// bookEnvelope wraps a book object inside a "book" key, the shape used by
// /book/{isbn} and by list items in /books/{query} and /author/{name}.
type bookEnvelope struct {
	Book Book `json:"book"`
}

// bulkBooksRequest is the POST /books request body.
type bulkBooksRequest struct {
	ISBNs []string `json:"isbns"`
}

// bulkBooksResponse is the POST /books response.
type bulkBooksResponse struct {
	Books []Book `json:"books"`
}

// searchBooksResponse is the GET /books/{query} response.
type searchBooksResponse struct {
	Total int            `json:"total"`
	Books []bookEnvelope `json:"books"`
}

// AuthorResult is the GET /author/{name} response.
type AuthorResult struct {
	Author string
	Total  int
	Books  []Book
}

// authorResponse is the wire shape behind AuthorResult.
type authorResponse struct {
	Author string         `json:"author"`
	Total  int            `json:"total"`
	Books  []bookEnvelope `json:"books"`
}

// PublisherResult is the GET /publisher/{name} response. Books holds bare
// ISBN strings, the shape the publisher endpoint returns.
type PublisherResult struct {
	Name  string
	Books []string
}

// publisherResponse is the wire shape behind PublisherResult.
type publisherResponse struct {
	Name  string `json:"name"`
	Books []struct {
		ISBN string `json:"isbn"`
	} `json:"books"`
}

// SubjectResult is the GET /subject/{name} response.
type SubjectResult struct {
	Subject string `json:"subject"`
	Parent  string `json:"parent"`
}

// nameListResponse covers the /authors, /publishers and /subjects search
// endpoints, which return a plain list of names under a resource-specific
// key.
type nameListResponse struct {
	Total      int      `json:"total"`
	Authors    []string `json:"authors"`
	Publishers []string `json:"publishers"`
	Subjects   []string `json:"subjects"`
}

// SearchResult is the GET /search/{index}/{query} response.
type SearchResult struct {
	Total int    `json:"total"`
	Books []Book `json:"results"`
}
