package suggest

import (
	"context"
	"strings"
	"unicode"

	snowballeng "github.com/kljensen/snowball/english"

	"github.com/honganh1206/booknest/search"
)

// stopWords are too common to make useful suggestions.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "and": {}, "be": {}, "book": {}, "books": {},
	"by": {}, "for": {}, "have": {}, "i": {}, "in": {}, "of": {},
	"on": {}, "that": {}, "the": {}, "to": {}, "with": {},
}

// Heuristic is a no-network search.Suggester: it mines the returned
// page for author names, category names, and distinctive title words,
// deduplicating morphological variants by their stem so "dragons" is
// not suggested alongside "dragon". Used when no LLM is configured.
type Heuristic struct{}

func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// Suggest implements search.Suggester.
func (h *Heuristic) Suggest(ctx context.Context, query string, results []search.Result, max int) ([]string, error) {
	if len(results) == 0 {
		return []string{
			"Try broader search terms",
			"Search by author",
			"Browse by category",
		}, nil
	}

	queryStems := make(map[string]struct{})
	for _, token := range splitWords(query) {
		queryStems[stem(token)] = struct{}{}
	}

	seen := make(map[string]struct{})
	var suggestions []string

	add := func(candidate string) {
		if candidate == "" || len(suggestions) >= max {
			return
		}
		key := stem(strings.ToLower(candidate))
		if _, dup := seen[key]; dup {
			return
		}
		if _, sameAsQuery := queryStems[key]; sameAsQuery {
			return
		}
		seen[key] = struct{}{}
		suggestions = append(suggestions, candidate)
	}

	// Whole author and category names make the best refinements; title
	// words fill in whatever room is left.
	for _, result := range results {
		switch result.Type {
		case search.ResultBook:
			add(result.Subtitle) // author
			if genre, ok := result.Metadata["genre"].(string); ok {
				add(genre)
			}
		case search.ResultAuthor, search.ResultCategory:
			add(result.Title)
		}
	}

	for _, result := range results {
		for _, token := range splitWords(result.Title) {
			if len(token) <= 3 {
				continue
			}
			if _, stop := stopWords[strings.ToLower(token)]; stop {
				continue
			}
			add(token)
		}
	}

	return suggestions, nil
}

func splitWords(text string) []string {
	return strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsNumber(r)
	})
}

func stem(token string) string {
	return snowballeng.Stem(strings.ToLower(token), false)
}
