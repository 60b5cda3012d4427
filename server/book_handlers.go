package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/honganh1206/booknest/book"
)

// booksHandler serves the collection routes:
//
//	POST /api/books
//	GET  /api/books           (optional ?genre= and ?featured=true)
func (s *server) booksHandler(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		s.createBook(w, r)
	case http.MethodGet:
		s.listBooks(w, r)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

// bookHandler serves /api/books/{id} for GET, PUT, and DELETE.
func (s *server) bookHandler(w http.ResponseWriter, r *http.Request) {
	id := strings.TrimPrefix(r.URL.Path, "/api/books/")
	id = strings.TrimSuffix(id, "/")
	if id == "" || strings.Contains(id, "/") {
		writeError(w, http.StatusNotFound, "Resource not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.getBook(w, r, id)
	case http.MethodPut:
		s.updateBook(w, r, id)
	case http.MethodDelete:
		s.deleteBook(w, r, id)
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *server) createBook(w http.ResponseWriter, r *http.Request) {
	var b book.Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid book format")
		return
	}

	if b.Title == "" || b.Author == "" || b.Genre == "" {
		writeError(w, http.StatusBadRequest, "Book requires title, author, and genre")
		return
	}
	if b.Price <= 0 {
		writeError(w, http.StatusBadRequest, "Book price must be positive")
		return
	}

	if err := s.books.Create(&b); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

func (s *server) listBooks(w http.ResponseWriter, r *http.Request) {
	var (
		books []book.Book
		err   error
	)

	switch {
	case r.URL.Query().Get("genre") != "":
		books, err = s.books.ByGenre(r.URL.Query().Get("genre"), 0)
	case r.URL.Query().Get("featured") == "true":
		books, err = s.books.Featured(0)
	default:
		books, err = s.books.AllBooks(r.Context())
	}
	if err != nil {
		handleError(w, err)
		return
	}

	if books == nil {
		books = []book.Book{}
	}
	writeJSON(w, http.StatusOK, books)
}

func (s *server) getBook(w http.ResponseWriter, r *http.Request, id string) {
	b, err := s.books.Get(id)
	if err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *server) updateBook(w http.ResponseWriter, r *http.Request, id string) {
	var b book.Book
	if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid book format")
		return
	}

	// The URL parameter names the document being replaced.
	if b.ID != "" && b.ID != id {
		writeError(w, http.StatusBadRequest, "Book ID mismatch")
		return
	}
	b.ID = id

	if err := s.books.Update(&b); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, b)
}

func (s *server) deleteBook(w http.ResponseWriter, r *http.Request, id string) {
	if err := s.books.Delete(id); err != nil {
		handleError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Book deleted successfully"})
}
