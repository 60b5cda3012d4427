package search

import (
	"reflect"
	"sort"
	"testing"
)

func TestBuildIndex(t *testing.T) {
	items := []string{"cat", "car"}
	index := BuildIndex(items, CharMode, 2)

	want := Index{
		"ca": []int{0, 1},
		"at": []int{0},
		"ar": []int{1},
	}
	if !reflect.DeepEqual(index, want) {
		t.Errorf("BuildIndex = %v, want %v", index, want)
	}
}

func TestBuildIndexDeduplicatesPositions(t *testing.T) {
	// "aaaa" contributes the bigram "aa" from three windows but the
	// posting list must hold its position once.
	index := BuildIndex([]string{"aaaa"}, CharMode, 2)
	if got := index["aa"]; !reflect.DeepEqual(got, []int{0}) {
		t.Errorf("posting list = %v, want [0]", got)
	}
}

func TestIndexedSearchRanksDescending(t *testing.T) {
	items := []string{"the great gatsby", "gatsby", "dune", "great expectations"}
	index := BuildIndex(items, CharMode, 3)

	matches := IndexedSearch("gatsby", index, items, CharMode, 3)
	if len(matches) == 0 {
		t.Fatal("expected matches")
	}
	if matches[0].Item != "gatsby" || matches[0].Score != 1.0 {
		t.Errorf("top match = %+v, want exact match scoring 1.0", matches[0])
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score > matches[i-1].Score {
			t.Errorf("scores not descending at %d: %v > %v", i, matches[i].Score, matches[i-1].Score)
		}
	}
	// "dune" shares no trigram with the query and must not be a candidate.
	for _, m := range matches {
		if m.Item == "dune" {
			t.Error("dune should not appear in the shortlist")
		}
	}
}

// The shortlist only skips items sharing no n-gram with the query, and
// those items always score zero. So indexed results must agree with a
// brute-force scan over every item with a nonzero score.
func TestIndexedSearchMatchesBruteForce(t *testing.T) {
	items := []string{
		"the great gatsby",
		"gatsby",
		"pride and prejudice",
		"a brief history of time",
		"foundation",
		"dune",
		"the hobbit",
		"great expectations",
	}
	queries := []string{"gatsby", "history", "the", "pride", "zzz"}

	for _, mode := range []string{CharMode, WordMode} {
		n := DefaultCharNgramSize
		if mode == WordMode {
			n = DefaultWordNgramSize
		}
		index := BuildIndex(items, mode, n)

		for _, query := range queries {
			var brute []Match
			for _, item := range items {
				if score := Similarity(query, item, mode, n); score > 0 {
					brute = append(brute, Match{Item: item, Score: score})
				}
			}
			sort.SliceStable(brute, func(i, j int) bool { return brute[i].Score > brute[j].Score })

			got := IndexedSearch(query, index, items, mode, n)

			var nonzero []Match
			for _, m := range got {
				if m.Score > 0 {
					nonzero = append(nonzero, m)
				}
			}
			if len(nonzero) == 0 && len(brute) == 0 {
				continue
			}
			if !reflect.DeepEqual(nonzero, brute) {
				t.Errorf("mode=%s query=%q: indexed %v != brute force %v", mode, query, nonzero, brute)
			}
		}
	}
}

func TestIndexedSearchDeterministic(t *testing.T) {
	items := []string{"alpha beta", "beta gamma", "gamma alpha", "alpha gamma", "beta alpha"}
	index := BuildIndex(items, CharMode, 3)

	first := IndexedSearch("alpha", index, items, CharMode, 3)
	for i := 0; i < 20; i++ {
		if got := IndexedSearch("alpha", index, items, CharMode, 3); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d differed: %v != %v", i, got, first)
		}
	}
}
