package suggest

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honganh1206/booknest/book"
	"github.com/honganh1206/booknest/search"
)

type fakeProvider struct {
	response   string
	err        error
	calls      int
	lastSystem string
	lastPrompt string
}

func (f *fakeProvider) Complete(ctx context.Context, system, prompt string) (string, error) {
	f.calls++
	f.lastSystem = system
	f.lastPrompt = prompt
	return f.response, f.err
}

func (f *fakeProvider) Name() string { return "fake" }

func TestSuggestNoResults(t *testing.T) {
	provider := &fakeProvider{response: "jazz age novels\nlost generation\n\n  american classics  \n"}
	svc := NewService(provider, nil)

	got, err := svc.Suggest(context.Background(), "gatsby", nil, 5)
	require.NoError(t, err)

	assert.Equal(t, []string{"jazz age novels", "lost generation", "american classics"}, got)
	assert.Contains(t, provider.lastSystem, "returned no results")
	assert.Contains(t, provider.lastPrompt, "'gatsby'")
}

func TestSuggestWithResults(t *testing.T) {
	provider := &fakeProvider{response: "a\nb\nc\nd\ne\nf\ng"}
	svc := NewService(provider, nil)

	results := []search.Result{
		{Title: "The Great Gatsby", Type: search.ResultBook, Description: "A portrait of the Jazz Age."},
	}

	got, err := svc.Suggest(context.Background(), "gatsby", results, 5)
	require.NoError(t, err)

	// Capped at max.
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
	assert.Contains(t, provider.lastSystem, "search results provided")
	assert.Contains(t, provider.lastPrompt, "The Great Gatsby")
}

func TestSuggestUsesCache(t *testing.T) {
	provider := &fakeProvider{response: "jazz age"}
	svc := NewService(provider, NewCache(time.Minute))

	first, err := svc.Suggest(context.Background(), "gatsby", nil, 5)
	require.NoError(t, err)

	second, err := svc.Suggest(context.Background(), "Gatsby", nil, 5)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, provider.calls)
}

func TestSuggestProviderError(t *testing.T) {
	provider := &fakeProvider{err: errors.New("rate limited")}
	svc := NewService(provider, NewCache(time.Minute))

	_, err := svc.Suggest(context.Background(), "gatsby", nil, 5)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to generate suggestions")

	// Failures are never cached.
	provider.err = nil
	provider.response = "jazz age"
	got, err := svc.Suggest(context.Background(), "gatsby", nil, 5)
	require.NoError(t, err)
	assert.Equal(t, []string{"jazz age"}, got)
}

func TestRelatedSearches(t *testing.T) {
	provider := &fakeProvider{response: strings.Join([]string{
		"jazz age: novels set in the roaring twenties",
		"malformed line without separator",
		"american dream: stories of ambition and excess",
		": missing keyword",
	}, "\n")}
	svc := NewService(provider, nil)

	b := &book.Book{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Fiction"}

	got, err := svc.RelatedSearches(context.Background(), b, 5)
	require.NoError(t, err)

	assert.Equal(t, []RelatedSearch{
		{Keyword: "jazz age", Description: "novels set in the roaring twenties"},
		{Keyword: "american dream", Description: "stories of ambition and excess"},
	}, got)

	// Books without a description still produce a full prompt.
	assert.Contains(t, provider.lastPrompt, "No description available")
}

func TestRelatedSearchesCapped(t *testing.T) {
	provider := &fakeProvider{response: "a: 1\nb: 2\nc: 3"}
	svc := NewService(provider, nil)

	got, err := svc.RelatedSearches(context.Background(), &book.Book{Title: "X"}, 2)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestSummarizeResults(t *testing.T) {
	long := strings.Repeat("x", 150)
	results := []search.Result{
		{Title: "A", Type: search.ResultBook, Description: long},
		{Title: "B", Type: search.ResultAuthor},
	}

	summary := summarizeResults(results)

	assert.Contains(t, summary, "- A (book)")
	assert.Contains(t, summary, "- B (author)")
	// Long descriptions are truncated to 100 characters.
	assert.Contains(t, summary, strings.Repeat("x", 100)+"...")
	assert.NotContains(t, summary, strings.Repeat("x", 101))
}

func TestSummarizeResultsTruncatesOnRuneBoundary(t *testing.T) {
	// 150 multi-byte runes; a byte-index cut would split one in half.
	results := []search.Result{
		{Title: "A", Type: search.ResultBook, Description: strings.Repeat("é", 150)},
	}

	summary := summarizeResults(results)

	assert.True(t, utf8.ValidString(summary))
	assert.Contains(t, summary, strings.Repeat("é", 100)+"...")
	assert.NotContains(t, summary, strings.Repeat("é", 101))
}

func TestSummarizeResultsTopFive(t *testing.T) {
	var results []search.Result
	for _, title := range []string{"A", "B", "C", "D", "E", "F", "G"} {
		results = append(results, search.Result{Title: title, Type: search.ResultBook})
	}

	summary := summarizeResults(results)

	assert.Contains(t, summary, "- E (book)")
	assert.NotContains(t, summary, "- F (book)")
}

func TestParseLines(t *testing.T) {
	got := parseLines("  one  \n\ntwo\n   \nthree\n")
	assert.Equal(t, []string{"one", "two", "three"}, got)

	assert.Empty(t, parseLines(""))
}

func TestCapN(t *testing.T) {
	items := []string{"a", "b", "c"}

	assert.Equal(t, []string{"a", "b"}, capN(items, 2))
	assert.Equal(t, items, capN(items, 3))
	assert.Equal(t, items, capN(items, 10))
	assert.Equal(t, items, capN(items, 0))
}
