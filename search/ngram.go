// Package search implements the fuzzy matching engine behind the
// bookstore search API: n-gram generation, Jaccard similarity scoring,
// an inverted n-gram index for candidate shortlisting, and the ranking
// and pagination engine that ties them together.
package search

import (
	"regexp"
	"strings"
)

// Word characters only; punctuation and whitespace act as separators.
var wordPattern = regexp.MustCompile(`\w+`)

// Normalize lowercases text and strips leading/trailing whitespace.
// Empty input stays empty. Internal whitespace is left alone.
func Normalize(text string) string {
	if text == "" {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(text))
}

// Tokenize splits text into word tokens in order of appearance.
// Punctuation and whitespace are discarded.
func Tokenize(text string, lowercase bool) []string {
	if text == "" {
		return nil
	}
	if lowercase {
		text = strings.ToLower(text)
	}
	return wordPattern.FindAllString(text, -1)
}

// CharacterNgrams returns the set of unique character n-grams of text.
// Text shorter than n degenerates to a singleton set containing the
// whole normalized string, so short titles never produce an empty set.
func CharacterNgrams(text string, n int) map[string]struct{} {
	text = Normalize(text)

	runes := []rune(text)
	if len(runes) < n {
		return map[string]struct{}{text: {}}
	}

	ngrams := make(map[string]struct{}, len(runes)-n+1)
	for i := 0; i+n <= len(runes); i++ {
		ngrams[string(runes[i:i+n])] = struct{}{}
	}
	return ngrams
}

// WordNgrams returns the set of unique n-token windows of text, each
// window joined by single spaces. Fewer than n tokens degenerates to a
// singleton set of all tokens joined; zero tokens yields {""}, which
// never intersects the n-grams of a non-empty query.
func WordNgrams(text string, n int) map[string]struct{} {
	tokens := Tokenize(text, true)

	if len(tokens) < n {
		return map[string]struct{}{strings.Join(tokens, " "): {}}
	}

	ngrams := make(map[string]struct{}, len(tokens)-n+1)
	for i := 0; i+n <= len(tokens); i++ {
		ngrams[strings.Join(tokens[i:i+n], " ")] = struct{}{}
	}
	return ngrams
}
