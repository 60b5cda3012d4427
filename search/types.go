package search

// Type selects which result subspaces a search covers.
type Type string

const (
	TypeAll        Type = "all"
	TypeBooks      Type = "books"
	TypeAuthors    Type = "authors"
	TypeCategories Type = "categories"
)

// ResultType tags what kind of entity a single result is.
type ResultType string

const (
	ResultBook     ResultType = "book"
	ResultAuthor   ResultType = "author"
	ResultCategory ResultType = "category"
)

// Filters narrows the book subspace before scoring. All set fields are
// AND-combined. Pointer fields distinguish "not set" from zero.
type Filters struct {
	Genres      []string `json:"genres,omitempty"`
	MinPrice    *float64 `json:"minPrice,omitempty"`
	MaxPrice    *float64 `json:"maxPrice,omitempty"`
	Rating      *float64 `json:"rating,omitempty"`
	InStockOnly bool     `json:"inStockOnly,omitempty"`
}

// Settings carries per-request behavior toggles. Each field defaults
// independently, so a request setting only one of them keeps the
// defaults for the rest: the bool pointers default to true when nil,
// and a zero FuzzyThreshold means "use the engine default".
type Settings struct {
	IncludeSuggestions *bool   `json:"includeSuggestions,omitempty"`
	HistoryEnabled     *bool   `json:"historyEnabled,omitempty"`
	FuzzyThreshold     float64 `json:"fuzzyThreshold,omitempty"`
}

// SuggestionsEnabled resolves IncludeSuggestions, defaulting to true.
// Safe on a nil receiver so requests without settings get defaults.
func (s *Settings) SuggestionsEnabled() bool {
	return s == nil || s.IncludeSuggestions == nil || *s.IncludeSuggestions
}

// HistoryOn resolves HistoryEnabled, defaulting to true.
func (s *Settings) HistoryOn() bool {
	return s == nil || s.HistoryEnabled == nil || *s.HistoryEnabled
}

// Threshold resolves FuzzyThreshold, falling back to the engine default
// when unset or non-positive.
func (s *Settings) Threshold(fallback float64) float64 {
	if s == nil || s.FuzzyThreshold <= 0 {
		return fallback
	}
	return s.FuzzyThreshold
}

// Request is one search invocation.
type Request struct {
	Query    string    `json:"query"`
	Type     Type      `json:"searchType,omitempty"`
	Filters  *Filters  `json:"filters,omitempty"`
	Page     int       `json:"page,omitempty"`
	PageSize int       `json:"pageSize,omitempty"`
	UserID   string    `json:"userId,omitempty"`
	Settings *Settings `json:"settings,omitempty"`
}

// Result is one normalized search hit: a book, an author, or a
// category. Results are built fresh per request and never persisted.
type Result struct {
	ID          string         `json:"id"`
	Title       string         `json:"title"`
	Type        ResultType     `json:"type"`
	Subtitle    string         `json:"subtitle,omitempty"`
	Description string         `json:"description,omitempty"`
	Image       string         `json:"image,omitempty"`
	URL         string         `json:"url"`
	Score       float64        `json:"relevanceScore"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// Response is the success/failure envelope for one search. Failures
// still carry the elapsed time and an empty result list, never a bare
// error up the stack.
type Response struct {
	Success           bool     `json:"success"`
	Results           []Result `json:"results"`
	TotalCount        int      `json:"totalCount"`
	SuggestedKeywords []string `json:"suggestedKeywords,omitempty"`
	ProcessingTimeMS  int64    `json:"processingTimeMs"`
	Page              int      `json:"page"`
	PageSize          int      `json:"pageSize"`
	HasMore           bool     `json:"hasMore"`
	Error             string   `json:"error,omitempty"`
}
