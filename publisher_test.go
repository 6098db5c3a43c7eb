package isbndb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
)

func TestGetPublisher_BooksAreISBNs(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/publisher/Ace Books" {
			t.Errorf("path = %s, want /publisher/Ace Books", r.URL.Path)
		}
		w.Write([]byte(`{
			"name": "Ace Books",
			"books": [
				{"isbn": "9780441013593"},
				{"isbn": "9780441172719"}
			]
		}`))
	}))
	defer server.Close()

	client := newLocalClient(t, server.URL)

	pub, err := client.GetPublisher(context.Background(), "Ace Books")
	if err != nil {
		t.Fatalf("GetPublisher() error = %v", err)
	}
	if pub.Name != "Ace Books" {
		t.Errorf("Name = %q", pub.Name)
	}
	want := []string{"9780441013593", "9780441172719"}
	if !reflect.DeepEqual(pub.Books, want) {
		t.Errorf("Books = %v, want %v", pub.Books, want)
	}
}

func TestSearchPublishers(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/publishers/books" {
			t.Errorf("path = %s, want /publishers/books", r.URL.Path)
		}
		w.Write([]byte(`{"total": 2, "publishers": ["Ace Books", "Tor Books"]}`))
	}))
	defer server.Close()

	client := newLocalClient(t, server.URL)

	names, err := client.SearchPublishers(context.Background(), "books")
	if err != nil {
		t.Fatalf("SearchPublishers() error = %v", err)
	}
	if !reflect.DeepEqual(names, []string{"Ace Books", "Tor Books"}) {
		t.Errorf("names = %v", names)
	}
}
