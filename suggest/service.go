package suggest

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkoukk/tiktoken-go"

	"github.com/honganh1206/booknest/book"
	"github.com/honganh1206/booknest/search"
)

// promptTokenBudget caps how much result context goes into one prompt.
const promptTokenBudget = 600

const noResultsSystemPrompt = `You are a helpful book search assistant. The user's search query returned no results.

Suggest 5 alternative search keywords or queries that might help them find what they're looking for.
These should be related to their original query but slightly broader or using different terminology.

Return only the suggestions, one per line, without numbering or bullets.`

const withResultsSystemPrompt = `You are a helpful book search assistant. Based on the search results provided,
suggest 5 related search keywords or topics that users might be interested in.

These suggestions should help users explore similar books or refine their search.
Consider genres, authors, themes, and related topics.

Return only the suggestions, one per line, without numbering or bullets.`

const relatedSearchesSystemPrompt = `You are a book recommendation assistant. Given a book's information,
suggest 5 related searches or topics that users might be interested in.

Consider the genre, theme, author style, and similar books.
Format each suggestion as: "keyword: description"

Return only the suggestions without numbering.`

// RelatedSearch is one suggested follow-up search for a book.
type RelatedSearch struct {
	Keyword     string `json:"keyword"`
	Description string `json:"description"`
}

// Service implements search.Suggester on top of an LLM provider, with
// a TTL cache keyed by query so repeated searches skip the model.
type Service struct {
	provider Provider
	cache    *Cache
}

func NewService(provider Provider, cache *Cache) *Service {
	return &Service{
		provider: provider,
		cache:    cache,
	}
}

// Suggest implements search.Suggester.
func (s *Service) Suggest(ctx context.Context, query string, results []search.Result, max int) ([]string, error) {
	if s.cache != nil {
		if cached, ok := s.cache.Get(query); ok {
			return capN(cached, max), nil
		}
	}

	var system, prompt string
	if len(results) == 0 {
		system = noResultsSystemPrompt
		prompt = fmt.Sprintf("Original search query: '%s'", query)
	} else {
		system = withResultsSystemPrompt
		prompt = fmt.Sprintf("Original search: '%s'\n\nSearch results found:\n%s\n\nSuggest related search keywords:",
			query, summarizeResults(results))
	}

	response, err := s.provider.Complete(ctx, system, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate suggestions: %w", err)
	}

	suggestions := parseLines(response)
	suggestions = capN(suggestions, max)

	if s.cache != nil {
		s.cache.Put(query, suggestions)
	}
	return suggestions, nil
}

// RelatedSearches generates follow-up searches for one book, parsed
// from "keyword: description" lines.
func (s *Service) RelatedSearches(ctx context.Context, b *book.Book, max int) ([]RelatedSearch, error) {
	description := b.Description
	if description == "" {
		description = "No description available"
	}

	prompt := fmt.Sprintf("Book: %s\nAuthor: %s\nGenre: %s\nDescription: %s\n\nSuggest related searches:",
		b.Title, b.Author, b.Genre, description)

	response, err := s.provider.Complete(ctx, relatedSearchesSystemPrompt, prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to generate related searches: %w", err)
	}

	var related []RelatedSearch
	for _, line := range strings.Split(response, "\n") {
		keyword, desc, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}
		keyword = strings.TrimSpace(keyword)
		desc = strings.TrimSpace(desc)
		if keyword == "" {
			continue
		}
		related = append(related, RelatedSearch{Keyword: keyword, Description: desc})
		if len(related) == max {
			break
		}
	}
	return related, nil
}

// summarizeResults formats the top results as prompt context, trimmed
// to the token budget so a page of long descriptions cannot blow up
// the request.
func summarizeResults(results []search.Result) string {
	var parts []string
	for _, result := range results {
		if len(parts) == 5 {
			break
		}
		part := fmt.Sprintf("- %s (%s)", result.Title, result.Type)
		if result.Description != "" {
			desc := result.Description
			// Truncate on a rune boundary; a byte slice could split a
			// multi-byte character and feed the model invalid UTF-8.
			if runes := []rune(desc); len(runes) > 100 {
				desc = string(runes[:100]) + "..."
			}
			part += ": " + desc
		}
		parts = append(parts, part)
	}

	summary := strings.Join(parts, "\n")
	for len(parts) > 1 && tokenCount(summary) > promptTokenBudget {
		parts = parts[:len(parts)-1]
		summary = strings.Join(parts, "\n")
	}
	return summary
}

func tokenCount(text string) int {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		// No encoder available; approximate by word count.
		return len(strings.Fields(text))
	}
	return len(enc.Encode(text, nil, nil))
}

func parseLines(response string) []string {
	var lines []string
	for _, line := range strings.Split(response, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

func capN(items []string, n int) []string {
	if n > 0 && len(items) > n {
		return items[:n]
	}
	return items
}
