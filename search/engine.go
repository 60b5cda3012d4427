package search

import (
	"context"
	"fmt"
	"log"
	"math"
	"sort"
	"strings"
	"time"

	"github.com/honganh1206/booknest/book"
)

// BookSource fetches the corpus snapshot one search call operates on.
// The store behind it is free to change between calls; each call works
// on its own snapshot.
type BookSource interface {
	AllBooks(ctx context.Context) ([]book.Book, error)
}

// Suggester produces keyword suggestions for a query and the page of
// results it returned. Failures never fail a search.
type Suggester interface {
	Suggest(ctx context.Context, query string, results []Result, max int) ([]string, error)
}

// HistoryEntry records one performed search.
type HistoryEntry struct {
	Query       string
	UserID      string
	SearchType  string
	ResultCount int
}

// AnalyticsRecord tracks search statistics for monitoring.
type AnalyticsRecord struct {
	Query            string
	UserID           string
	SearchType       string
	ResultCount      int
	ProcessingTimeMS int64
	HadResults       bool
}

// HistorySink persists search history and analytics. Both writes are
// fire-and-forget: the engine logs failures and moves on.
type HistorySink interface {
	SaveSearch(ctx context.Context, entry HistoryEntry) error
	SaveAnalytics(ctx context.Context, rec AnalyticsRecord) error
}

// Config holds the engine's tuning constants. The featured boost and
// the fuzzy threshold are inherited defaults, not derived values.
type Config struct {
	CharNgramSize  int
	WordNgramSize  int
	FuzzyThreshold float64
	FeaturedBoost  float64
	MaxSuggestions int
	MaxPageSize    int
}

func DefaultConfig() Config {
	return Config{
		CharNgramSize:  DefaultCharNgramSize,
		WordNgramSize:  DefaultWordNgramSize,
		FuzzyThreshold: 0.6,
		FeaturedBoost:  0.1,
		MaxSuggestions: 5,
		MaxPageSize:    100,
	}
}

// Engine ranks books, authors, and categories against free-text
// queries. It holds no per-request state; concurrent searches never
// interfere.
type Engine struct {
	books     BookSource
	suggester Suggester
	history   HistorySink
	cfg       Config
}

// NewEngine wires an engine to its collaborators. suggester and
// history may be nil to disable suggestions and persistence. Zero
// config fields fall back to their defaults individually, so a partial
// Config never zeroes out the rest.
func NewEngine(books BookSource, suggester Suggester, history HistorySink, cfg Config) *Engine {
	def := DefaultConfig()
	if cfg.CharNgramSize == 0 {
		cfg.CharNgramSize = def.CharNgramSize
	}
	if cfg.WordNgramSize == 0 {
		cfg.WordNgramSize = def.WordNgramSize
	}
	if cfg.FuzzyThreshold == 0 {
		cfg.FuzzyThreshold = def.FuzzyThreshold
	}
	if cfg.FeaturedBoost == 0 {
		cfg.FeaturedBoost = def.FeaturedBoost
	}
	if cfg.MaxSuggestions == 0 {
		cfg.MaxSuggestions = def.MaxSuggestions
	}
	if cfg.MaxPageSize == 0 {
		cfg.MaxPageSize = def.MaxPageSize
	}
	return &Engine{
		books:     books,
		suggester: suggester,
		history:   history,
		cfg:       cfg,
	}
}

// fallbackSuggestions is returned when a search found nothing and the
// suggestion collaborator failed or is disabled.
var fallbackSuggestions = []string{
	"Try broader search terms",
	"Search by author",
	"Browse by category",
}

// Search runs one full search: filter, score, rank, paginate, suggest.
// It always returns a structured response; internal panics and
// collaborator failures are converted into Success=false responses
// rather than propagated.
func (e *Engine) Search(ctx context.Context, req Request) (resp Response) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			resp = e.fail(fmt.Sprintf("search error: %v", r), start, req)
		}
	}()

	query := strings.TrimSpace(req.Query)
	if query == "" {
		resp = e.fail("search query cannot be empty", start, req)
		resp.ProcessingTimeMS = 0
		return resp
	}

	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	if pageSize > e.cfg.MaxPageSize {
		pageSize = e.cfg.MaxPageSize
	}

	settings := req.Settings
	threshold := settings.Threshold(e.cfg.FuzzyThreshold)

	searchType := req.Type
	if searchType == "" {
		searchType = TypeAll
	}

	books, err := e.books.AllBooks(ctx)
	if err != nil {
		return e.fail(fmt.Sprintf("failed to fetch books: %v", err), start, req)
	}

	var results []Result
	if searchType == TypeBooks || searchType == TypeAll {
		results = append(results, e.searchBooks(query, books, req.Filters, threshold)...)
	}
	if searchType == TypeAuthors || searchType == TypeAll {
		results = append(results, e.searchAuthors(query, books, threshold)...)
	}
	if searchType == TypeCategories || searchType == TypeAll {
		results = append(results, e.searchCategories(query, books, threshold)...)
	}

	// Stable sort keeps corpus order between equal scores, so repeated
	// searches over the same snapshot are deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	totalCount := len(results)

	startIdx := (page - 1) * pageSize
	endIdx := startIdx + pageSize
	if startIdx > totalCount {
		startIdx = totalCount
	}
	if endIdx > totalCount {
		endIdx = totalCount
	}
	paginated := results[startIdx:endIdx]

	var suggestions []string
	if settings.SuggestionsEnabled() {
		suggestions = e.suggestedKeywords(ctx, query, paginated, totalCount)
	}

	elapsed := time.Since(start).Milliseconds()

	if e.history != nil {
		if settings.HistoryOn() {
			entry := HistoryEntry{
				Query:       query,
				UserID:      req.UserID,
				SearchType:  string(searchType),
				ResultCount: totalCount,
			}
			if err := e.history.SaveSearch(ctx, entry); err != nil {
				log.Printf("Warning: failed to save search history: %v", err)
			}
		}

		rec := AnalyticsRecord{
			Query:            query,
			UserID:           req.UserID,
			SearchType:       string(searchType),
			ResultCount:      totalCount,
			ProcessingTimeMS: elapsed,
			HadResults:       totalCount > 0,
		}
		if err := e.history.SaveAnalytics(ctx, rec); err != nil {
			log.Printf("Warning: failed to save search analytics: %v", err)
		}
	}

	return Response{
		Success:           true,
		Results:           paginated,
		TotalCount:        totalCount,
		SuggestedKeywords: suggestions,
		ProcessingTimeMS:  elapsed,
		Page:              page,
		PageSize:          pageSize,
		HasMore:           page*pageSize < totalCount,
	}
}

// searchBooks scores each filtered book by the better of its title and
// author match, boosts featured books, and keeps scores >= threshold.
func (e *Engine) searchBooks(query string, books []book.Book, filters *Filters, threshold float64) []Result {
	var results []Result

	for i := range books {
		b := &books[i]
		if !matchesFilters(b, filters) {
			continue
		}

		titleScore := Similarity(query, b.Title, CharMode, e.cfg.CharNgramSize)
		authorScore := Similarity(query, b.Author, CharMode, e.cfg.CharNgramSize)

		score := math.Max(titleScore, authorScore)
		if b.IsFeatured {
			score = math.Min(score+e.cfg.FeaturedBoost, 1.0)
		}

		if score < threshold {
			continue
		}

		metadata := map[string]any{
			"author":  b.Author,
			"genre":   b.Genre,
			"price":   b.Price,
			"inStock": b.InStock,
		}
		if b.Rating != nil {
			metadata["rating"] = *b.Rating
		}

		results = append(results, Result{
			ID:          b.ID,
			Title:       b.Title,
			Type:        ResultBook,
			Subtitle:    b.Author,
			Description: b.Description,
			Image:       b.CoverImageURL,
			URL:         "/books/" + b.ID,
			Score:       round3(score),
			Metadata:    metadata,
		})
	}

	return results
}

// searchAuthors scans the corpus for distinct authors matching the
// query, keeping the best score per author name.
func (e *Engine) searchAuthors(query string, books []book.Book, threshold float64) []Result {
	seen := make(map[string]float64)
	var order []string

	for i := range books {
		author := books[i].Author
		score := Similarity(query, author, CharMode, e.cfg.CharNgramSize)
		if score < threshold {
			continue
		}
		if prev, ok := seen[author]; ok {
			if score > prev {
				seen[author] = score
			}
			continue
		}
		seen[author] = score
		order = append(order, author)
	}

	results := make([]Result, 0, len(order))
	for _, author := range order {
		slug := slugify(author)
		results = append(results, Result{
			ID:       "author_" + slug,
			Title:    author,
			Type:     ResultAuthor,
			URL:      "/authors/" + slug,
			Score:    round3(seen[author]),
			Metadata: map[string]any{"authorName": author},
		})
	}
	return results
}

// searchCategories matches distinct genres with word n-grams, since
// genre names are short multi-word phrases rather than typo targets.
func (e *Engine) searchCategories(query string, books []book.Book, threshold float64) []Result {
	seen := make(map[string]float64)
	var order []string

	for i := range books {
		genre := books[i].Genre
		score := Similarity(query, genre, WordMode, e.cfg.WordNgramSize)
		if score < threshold {
			continue
		}
		if prev, ok := seen[genre]; ok {
			if score > prev {
				seen[genre] = score
			}
			continue
		}
		seen[genre] = score
		order = append(order, genre)
	}

	results := make([]Result, 0, len(order))
	for _, genre := range order {
		slug := slugify(genre)
		results = append(results, Result{
			ID:       "category_" + slug,
			Title:    genre,
			Type:     ResultCategory,
			URL:      "/categories/" + slug,
			Score:    round3(seen[genre]),
			Metadata: map[string]any{"categoryName": genre},
		})
	}
	return results
}

func matchesFilters(b *book.Book, filters *Filters) bool {
	if filters == nil {
		return true
	}

	if len(filters.Genres) > 0 {
		found := false
		for _, genre := range filters.Genres {
			if b.Genre == genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if filters.MinPrice != nil && b.Price < *filters.MinPrice {
		return false
	}
	if filters.MaxPrice != nil && b.Price > *filters.MaxPrice {
		return false
	}
	if filters.Rating != nil {
		if b.Rating == nil || *b.Rating < *filters.Rating {
			return false
		}
	}
	if filters.InStockOnly && !b.InStock {
		return false
	}

	return true
}

// suggestedKeywords asks the suggestion collaborator for refinements.
// A suggester outage degrades to a generic fallback on empty searches
// and to nothing otherwise.
func (e *Engine) suggestedKeywords(ctx context.Context, query string, results []Result, totalCount int) []string {
	if e.suggester == nil {
		if totalCount == 0 {
			return fallbackSuggestions
		}
		return nil
	}

	suggestions, err := e.suggester.Suggest(ctx, query, results, e.cfg.MaxSuggestions)
	if err != nil {
		log.Printf("Warning: failed to get search suggestions: %v", err)
		if totalCount == 0 {
			return fallbackSuggestions
		}
		return nil
	}

	if len(suggestions) > e.cfg.MaxSuggestions {
		suggestions = suggestions[:e.cfg.MaxSuggestions]
	}
	return suggestions
}

func (e *Engine) fail(msg string, start time.Time, req Request) Response {
	page := req.Page
	if page < 1 {
		page = 1
	}
	pageSize := req.PageSize
	if pageSize < 1 {
		pageSize = 20
	}
	return Response{
		Success:          false,
		Results:          []Result{},
		Error:            msg,
		ProcessingTimeMS: time.Since(start).Milliseconds(),
		Page:             page,
		PageSize:         pageSize,
	}
}

func round3(score float64) float64 {
	return math.Round(score*1000) / 1000
}

func slugify(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
