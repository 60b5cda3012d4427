package search

// Ngram modes. Char mode tolerates typos; word mode matches multi-word
// phrases such as genre names.
const (
	CharMode = "char"
	WordMode = "word"
)

// Default n-gram window sizes.
const (
	DefaultCharNgramSize = 3
	DefaultWordNgramSize = 2
)

// Jaccard computes |a ∩ b| / |a ∪ b| for two n-gram sets. Either set
// being empty means there is nothing to compare, which scores 0.
func Jaccard(a, b map[string]struct{}) float64 {
	if len(a) == 0 || len(b) == 0 {
		return 0.0
	}

	intersection := 0
	for ngram := range a {
		if _, ok := b[ngram]; ok {
			intersection++
		}
	}

	union := len(a) + len(b) - intersection
	if union == 0 {
		return 0.0
	}
	return float64(intersection) / float64(union)
}

// Similarity scores two strings by the Jaccard similarity of their
// n-gram sets. Mode selects character or word n-grams; anything other
// than CharMode means word mode. Identical strings score 1.0, disjoint
// strings 0.0, and case never affects the result.
func Similarity(a, b string, mode string, n int) float64 {
	if mode == CharMode {
		return Jaccard(CharacterNgrams(a, n), CharacterNgrams(b, n))
	}
	return Jaccard(WordNgrams(a, n), WordNgrams(b, n))
}
