// Package server exposes the bookstore search backend over HTTP.
package server

import (
	"context"
	"net"
	"net/http"

	"github.com/honganh1206/booknest/book"
	"github.com/honganh1206/booknest/history"
	"github.com/honganh1206/booknest/search"
	"github.com/honganh1206/booknest/suggest"
)

// RelatedSearcher generates follow-up searches for a single book. Only
// the LLM-backed suggestion service supports this; the server degrades
// to an empty list without one.
type RelatedSearcher interface {
	RelatedSearches(ctx context.Context, b *book.Book, max int) ([]suggest.RelatedSearch, error)
}

type server struct {
	books   *book.Store
	engine  *search.Engine
	history *history.Store
	related RelatedSearcher
}

// Deps carries the collaborators the HTTP layer exposes. History and
// Related may be nil.
type Deps struct {
	Books   *book.Store
	Engine  *search.Engine
	History *history.Store
	Related RelatedSearcher
}

// Serve runs the API on the listener until it fails or is closed.
func Serve(ln net.Listener, deps Deps) error {
	srv := &server{
		books:   deps.Books,
		engine:  deps.Engine,
		history: deps.History,
		related: deps.Related,
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	mux.HandleFunc("/api/search", srv.searchHandler)
	mux.HandleFunc("/api/search/", srv.searchSubHandler)
	mux.HandleFunc("/api/books", srv.booksHandler)
	mux.HandleFunc("/api/books/", srv.bookHandler)

	httpServer := &http.Server{Handler: mux}
	return httpServer.Serve(ln)
}
