package search

import "sort"

// Index is an inverted n-gram index: each n-gram maps to the positions
// of the items containing it, in item insertion order. An Index is
// built once per corpus snapshot and never mutated afterwards;
// rebuilding on corpus change is the caller's responsibility.
type Index map[string][]int

// Match pairs an indexed item with its similarity score for a query.
type Match struct {
	Item  string
	Score float64
}

// BuildIndex indexes a corpus of strings for IndexedSearch.
func BuildIndex(items []string, mode string, n int) Index {
	index := make(Index)

	for pos, item := range items {
		var ngrams map[string]struct{}
		if mode == CharMode {
			ngrams = CharacterNgrams(item, n)
		} else {
			ngrams = WordNgrams(item, n)
		}

		for ngram := range ngrams {
			index[ngram] = append(index[ngram], pos)
		}
	}

	return index
}

// IndexedSearch scores a query against an indexed corpus without
// touching items that share no n-gram with the query: the index
// buckets for the query's n-grams are unioned into a candidate set and
// only those positions are scored. Items skipped this way would have
// scored 0 anyway, so for nonzero scores the result is identical to a
// brute-force pass over the whole corpus.
//
// Matches come back sorted by score descending; equal scores keep
// corpus order so results are deterministic.
func IndexedSearch(query string, index Index, items []string, mode string, n int) []Match {
	var queryNgrams map[string]struct{}
	if mode == CharMode {
		queryNgrams = CharacterNgrams(query, n)
	} else {
		queryNgrams = WordNgrams(query, n)
	}

	seen := make(map[int]struct{})
	var candidates []int
	for ngram := range queryNgrams {
		for _, pos := range index[ngram] {
			if _, dup := seen[pos]; dup {
				continue
			}
			seen[pos] = struct{}{}
			candidates = append(candidates, pos)
		}
	}
	sort.Ints(candidates)

	matches := make([]Match, 0, len(candidates))
	for _, pos := range candidates {
		matches = append(matches, Match{
			Item:  items[pos],
			Score: Similarity(query, items[pos], mode, n),
		})
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})

	return matches
}
