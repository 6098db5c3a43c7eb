package isbndb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestSearch_MergesFiltersWithoutClobbering(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/search/books/dune" {
			t.Errorf("path = %s, want /search/books/dune", r.URL.Path)
		}
		q := r.URL.Query()
		if q.Get("page") != "1" {
			t.Errorf("page = %s, want 1 (filter must not clobber)", q.Get("page"))
		}
		if q.Get("pageSize") != "20" {
			t.Errorf("pageSize = %s, want 20", q.Get("pageSize"))
		}
		if q.Get("author") != "herbert" {
			t.Errorf("author = %s, want herbert", q.Get("author"))
		}
		if q.Get("subject") != "fiction" {
			t.Errorf("subject = %s, want fiction", q.Get("subject"))
		}
		w.Write([]byte(`{
			"total": 42,
			"results": [
				{"title": "Dune", "isbn13": "9780441013593"},
				{"title": "Dune Messiah", "isbn13": "9780593098233"}
			]
		}`))
	}))
	defer server.Close()

	client := newLocalClient(t, server.URL)

	results, err := client.Search(context.Background(), "books", "dune",
		WithPage(1),
		WithPageSize(20),
		WithFilter("author", "herbert"),
		WithFilter("subject", "fiction"),
		WithFilter("page", "999"),
	)
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	if results.Total != 42 {
		t.Errorf("Total = %d, want 42 (exactly as given by server)", results.Total)
	}
	if len(results.Books) != 2 {
		t.Fatalf("len(Books) = %d, want 2", len(results.Books))
	}
	if results.Books[0].Title != "Dune" || results.Books[1].Title != "Dune Messiah" {
		t.Errorf("Books = %+v", results.Books)
	}
}
