package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return client
}

func TestGetBook(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/book/9781234567897" {
			t.Errorf("path = %s, want /book/9781234567897", r.URL.Path)
		}
		if r.URL.Query().Get("with_prices") != "1" {
			t.Errorf("with_prices = %s, want 1", r.URL.Query().Get("with_prices"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"book": map[string]interface{}{
				"title":  "Test Book",
				"isbn":   "1234567897",
				"isbn13": "9781234567897",
			},
		})
	})

	params := url.Values{}
	params.Set("with_prices", "1")

	book, err := client.GetBook(context.Background(), "9781234567897", params)
	if err != nil {
		t.Fatalf("GetBook() error = %v", err)
	}
	if book.Title != "Test Book" {
		t.Errorf("Title = %q, want %q", book.Title, "Test Book")
	}
	if book.ISBN13 != "9781234567897" {
		t.Errorf("ISBN13 = %q, want %q", book.ISBN13, "9781234567897")
	}
}

func TestGetBooks_SendsISBNListPreservesOrder(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("method = %s, want POST", r.Method)
		}
		if r.URL.Path != "/books" {
			t.Errorf("path = %s, want /books", r.URL.Path)
		}

		var body struct {
			ISBNs []string `json:"isbns"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			t.Errorf("decode body: %v", err)
		}
		want := []string{"111", "222", "333"}
		if !reflect.DeepEqual(body.ISBNs, want) {
			t.Errorf("isbns = %v, want %v", body.ISBNs, want)
		}

		json.NewEncoder(w).Encode(map[string]interface{}{
			"books": []map[string]interface{}{
				{"isbn13": "111"},
				{"isbn13": "222"},
				{"isbn13": "333"},
			},
		})
	})

	books, err := client.GetBooks(context.Background(), []string{"111", "222", "333"})
	if err != nil {
		t.Fatalf("GetBooks() error = %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("len(books) = %d, want 3", len(books))
	}
	for i, want := range []string{"111", "222", "333"} {
		if books[i].ISBN13 != want {
			t.Errorf("books[%d].ISBN13 = %q, want %q", i, books[i].ISBN13, want)
		}
	}
}

func TestSearchBooks_UnwrapsEnvelopes(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/books/golang" {
			t.Errorf("path = %s, want /books/golang", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 2,
			"books": []map[string]interface{}{
				{"book": map[string]interface{}{"title": "First"}},
				{"book": map[string]interface{}{"title": "Second"}},
			},
		})
	})

	total, books, err := client.SearchBooks(context.Background(), "golang", nil)
	if err != nil {
		t.Fatalf("SearchBooks() error = %v", err)
	}
	if total != 2 {
		t.Errorf("total = %d, want 2", total)
	}
	if len(books) != 2 || books[0].Title != "First" || books[1].Title != "Second" {
		t.Errorf("books = %+v, want First then Second", books)
	}
}

func TestGetAuthor(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/author/Ursula K. Le Guin" {
			t.Errorf("path = %s, want /author/Ursula K. Le Guin", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"author": "Ursula K. Le Guin",
			"total":  24,
			"books": []map[string]interface{}{
				{"book": map[string]interface{}{"title": "The Dispossessed"}},
			},
		})
	})

	author, err := client.GetAuthor(context.Background(), "Ursula K. Le Guin", nil)
	if err != nil {
		t.Fatalf("GetAuthor() error = %v", err)
	}
	if author.Author != "Ursula K. Le Guin" {
		t.Errorf("Author = %q", author.Author)
	}
	if author.Total != 24 {
		t.Errorf("Total = %d, want 24", author.Total)
	}
	if len(author.Books) != 1 || author.Books[0].Title != "The Dispossessed" {
		t.Errorf("Books = %+v", author.Books)
	}
}

func TestGetPublisher_ReturnsISBNs(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"name": "Tor Books",
			"books": []map[string]interface{}{
				{"isbn": "111"},
				{"isbn": "222"},
			},
		})
	})

	pub, err := client.GetPublisher(context.Background(), "Tor Books", nil)
	if err != nil {
		t.Fatalf("GetPublisher() error = %v", err)
	}
	if pub.Name != "Tor Books" {
		t.Errorf("Name = %q", pub.Name)
	}
	if !reflect.DeepEqual(pub.Books, []string{"111", "222"}) {
		t.Errorf("Books = %v, want [111 222]", pub.Books)
	}
}

func TestNameSearches(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		call     func(*Client) ([]string, error)
		wantPath string
		payload  map[string]interface{}
		want     []string
	}{
		{
			name: "authors",
			call: func(c *Client) ([]string, error) {
				return c.SearchAuthors(context.Background(), "le guin", nil)
			},
			wantPath: "/authors/le guin",
			payload:  map[string]interface{}{"total": 1, "authors": []string{"Ursula K. Le Guin"}},
			want:     []string{"Ursula K. Le Guin"},
		},
		{
			name: "publishers",
			call: func(c *Client) ([]string, error) {
				return c.SearchPublishers(context.Background(), "tor", nil)
			},
			wantPath: "/publishers/tor",
			payload:  map[string]interface{}{"total": 1, "publishers": []string{"Tor Books"}},
			want:     []string{"Tor Books"},
		},
		{
			name: "subjects",
			call: func(c *Client) ([]string, error) {
				return c.SearchSubjects(context.Background(), "fiction", nil)
			},
			wantPath: "/subjects/fiction",
			payload:  map[string]interface{}{"total": 1, "subjects": []string{"Science Fiction"}},
			want:     []string{"Science Fiction"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != tt.wantPath {
					t.Errorf("path = %s, want %s", r.URL.Path, tt.wantPath)
				}
				json.NewEncoder(w).Encode(tt.payload)
			})

			got, err := tt.call(client)
			if err != nil {
				t.Fatalf("call error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("names = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestGetSubject(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/subject/Science Fiction" {
			t.Errorf("path = %s, want /subject/Science Fiction", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]string{
			"subject": "Science Fiction",
			"parent":  "Fiction",
		})
	})

	subject, err := client.GetSubject(context.Background(), "Science Fiction")
	if err != nil {
		t.Fatalf("GetSubject() error = %v", err)
	}
	if subject.Subject != "Science Fiction" || subject.Parent != "Fiction" {
		t.Errorf("subject = %+v", subject)
	}
}

func TestSearch(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/books/dune" {
			t.Errorf("path = %s, want /search/books/dune", r.URL.Path)
		}
		if r.URL.Query().Get("author") != "herbert" {
			t.Errorf("author = %s, want herbert", r.URL.Query().Get("author"))
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"total": 1,
			"results": []map[string]interface{}{
				{"title": "Dune"},
			},
		})
	})

	params := url.Values{}
	params.Set("author", "herbert")

	result, err := client.Search(context.Background(), "books", "dune", params)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}
	if result.Total != 1 {
		t.Errorf("Total = %d, want 1", result.Total)
	}
	if len(result.Books) != 1 || result.Books[0].Title != "Dune" {
		t.Errorf("Books = %+v", result.Books)
	}
}

func TestGetStats_RawPayload(t *testing.T) {
	t.Parallel()
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/stats" {
			t.Errorf("path = %s, want /stats", r.URL.Path)
		}
		json.NewEncoder(w).Encode(map[string]interface{}{
			"books":   33000000,
			"authors": 11000000,
		})
	})

	stats, err := client.GetStats(context.Background())
	if err != nil {
		t.Fatalf("GetStats() error = %v", err)
	}
	if stats["books"] != float64(33000000) {
		t.Errorf("stats[books] = %v, want 33000000", stats["books"])
	}
}
