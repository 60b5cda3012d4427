package server

import (
	"errors"
	"net/http"

	"github.com/honganh1206/booknest/book"
)

type HTTPError struct {
	Code    int
	Message string
	Err     error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func handleError(w http.ResponseWriter, err error) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		writeError(w, httpErr.Code, httpErr.Message)
		return
	}

	if errors.Is(err, book.ErrBookNotFound) {
		writeError(w, http.StatusNotFound, "Book not found")
		return
	}

	writeError(w, http.StatusInternalServerError, "Internal server error")
}
