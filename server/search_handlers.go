package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"github.com/honganh1206/booknest/history"
	"github.com/honganh1206/booknest/search"
	"github.com/honganh1206/booknest/suggest"
)

// POST /api/search
func (s *server) searchHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	var req search.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid search request")
		return
	}

	// The engine returns a structured envelope for every outcome,
	// including failures, so the status is always 200 here.
	resp := s.engine.Search(r.Context(), req)
	writeJSON(w, http.StatusOK, resp)
}

// searchSubHandler routes /api/search/... paths:
//
//	GET    /api/search/history/{userID}
//	DELETE /api/search/history/{userID}
//	GET    /api/search/popular
//	GET    /api/search/suggestions/related/{bookID}
func (s *server) searchSubHandler(w http.ResponseWriter, r *http.Request) {
	rest := strings.TrimPrefix(r.URL.Path, "/api/search/")
	rest = strings.TrimSuffix(rest, "/")

	switch {
	case strings.HasPrefix(rest, "history/"):
		userID := strings.TrimPrefix(rest, "history/")
		if userID == "" || strings.Contains(userID, "/") {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		s.historyHandler(w, r, userID)
	case rest == "popular":
		s.popularHandler(w, r)
	case strings.HasPrefix(rest, "suggestions/related/"):
		bookID := strings.TrimPrefix(rest, "suggestions/related/")
		if bookID == "" || strings.Contains(bookID, "/") {
			writeError(w, http.StatusNotFound, "Resource not found")
			return
		}
		s.relatedHandler(w, r, bookID)
	default:
		writeError(w, http.StatusNotFound, "Resource not found")
	}
}

func (s *server) historyHandler(w http.ResponseWriter, r *http.Request, userID string) {
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "Search history is not enabled")
		return
	}

	switch r.Method {
	case http.MethodGet:
		limit := queryInt(r, "limit", 20)
		items, err := s.history.List(r.Context(), userID, limit)
		if err != nil {
			handleError(w, err)
			return
		}
		if items == nil {
			items = []history.Item{}
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodDelete:
		if err := s.history.Clear(r.Context(), userID); err != nil {
			handleError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"message": "Search history cleared successfully"})
	default:
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
	}
}

func (s *server) popularHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}
	if s.history == nil {
		writeError(w, http.StatusServiceUnavailable, "Search analytics is not enabled")
		return
	}

	limit := queryInt(r, "limit", 10)
	popular, err := s.history.Popular(r.Context(), limit)
	if err != nil {
		handleError(w, err)
		return
	}
	if popular == nil {
		popular = []history.PopularSearch{}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"popularSearches": popular,
		"total":           len(popular),
	})
}

func (s *server) relatedHandler(w http.ResponseWriter, r *http.Request, bookID string) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "Method not allowed")
		return
	}

	b, err := s.books.Get(bookID)
	if err != nil {
		handleError(w, err)
		return
	}

	related := []suggest.RelatedSearch{}
	if s.related != nil {
		related, err = s.related.RelatedSearches(r.Context(), b, 5)
		if err != nil {
			handleError(w, &HTTPError{
				Code:    http.StatusBadGateway,
				Message: "Failed to generate related searches",
				Err:     err,
			})
			return
		}
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"bookId":          bookID,
		"bookTitle":       b.Title,
		"relatedSearches": related,
	})
}

func queryInt(r *http.Request, name string, fallback int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
