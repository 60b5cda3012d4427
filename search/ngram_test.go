package search

import (
	"reflect"
	"testing"
)

func TestNormalize(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"", ""},
		{"  Hello World  ", "hello world"},
		{"MIXED Case", "mixed case"},
		{"already lower", "already lower"},
		{"  spaced   inside  ", "spaced   inside"}, // internal whitespace kept
	}

	for _, c := range cases {
		if got := Normalize(c.in); got != c.want {
			t.Errorf("Normalize(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestTokenize(t *testing.T) {
	cases := []struct {
		in        string
		lowercase bool
		want      []string
	}{
		{"", true, nil},
		{"Hello, World!", true, []string{"hello", "world"}},
		{"Hello, World!", false, []string{"Hello", "World"}},
		{"the quick-brown fox", true, []string{"the", "quick", "brown", "fox"}},
		{"...!!!", true, nil},
		{"rock'n'roll", true, []string{"rock", "n", "roll"}},
	}

	for _, c := range cases {
		got := Tokenize(c.in, c.lowercase)
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("Tokenize(%q, %v) = %v, want %v", c.in, c.lowercase, got, c.want)
		}
	}
}

func TestCharacterNgrams(t *testing.T) {
	got := CharacterNgrams("hello", 2)
	want := map[string]struct{}{"he": {}, "el": {}, "ll": {}, "lo": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CharacterNgrams(hello, 2) = %v, want %v", got, want)
	}

	// Case and surrounding whitespace never matter.
	if !reflect.DeepEqual(CharacterNgrams("  HeLLo ", 2), want) {
		t.Error("CharacterNgrams should normalize before windowing")
	}
}

func TestCharacterNgramsShortInput(t *testing.T) {
	// Shorter than the window: singleton of the whole normalized string.
	got := CharacterNgrams("Go", 3)
	want := map[string]struct{}{"go": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CharacterNgrams(Go, 3) = %v, want %v", got, want)
	}

	// Empty input degenerates to {""} rather than an empty set.
	got = CharacterNgrams("", 3)
	want = map[string]struct{}{"": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("CharacterNgrams(\"\", 3) = %v, want %v", got, want)
	}
}

func TestCharacterNgramsDeduplicates(t *testing.T) {
	// "aaaa" has three windows but only one distinct trigram.
	got := CharacterNgrams("aaaa", 3)
	if len(got) != 1 {
		t.Errorf("expected 1 unique trigram, got %d", len(got))
	}
}

func TestWordNgrams(t *testing.T) {
	got := WordNgrams("the quick brown fox", 2)
	want := map[string]struct{}{
		"the quick":   {},
		"quick brown": {},
		"brown fox":   {},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordNgrams = %v, want %v", got, want)
	}
}

func TestWordNgramsDegeneration(t *testing.T) {
	// Fewer tokens than the window: all tokens joined.
	got := WordNgrams("fiction", 2)
	want := map[string]struct{}{"fiction": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordNgrams(fiction, 2) = %v, want %v", got, want)
	}

	// Zero tokens yields {""}: scores 1.0 against another empty-token
	// string and 0 against everything else.
	got = WordNgrams("", 2)
	want = map[string]struct{}{"": {}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordNgrams(\"\", 2) = %v, want %v", got, want)
	}

	got = WordNgrams("...", 2)
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordNgrams(\"...\", 2) = %v, want %v", got, want)
	}
}
