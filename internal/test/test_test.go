package test

import (
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
)

// join is a reference implementation of a word-case convention.
func join(words []string, sep string, first, initial, rest func(rune) rune) string {
	var b strings.Builder
	for i, w := range words {
		if i > 0 {
			b.WriteString(sep)
		}
		r, n := utf8.DecodeRuneInString(w)
		if i == 0 {
			b.WriteRune(first(r))
		} else {
			b.WriteRune(initial(r))
		}
		for _, r := range w[n:] {
			b.WriteRune(rest(r))
		}
	}
	return b.String()
}

// Make sure the test cases are valid using the reference implementation.
func TestConvertTests(t *testing.T) {
	upper, lower := unicode.ToUpper, unicode.ToLower
	tests := []struct {
		name    string
		tests   []convertTest
		sep     string
		first   func(rune) rune
		initial func(rune) rune
		rest    func(rune) rune
	}{
		{"Title", titleTests, " ", upper, upper, lower},
		{"Snake", snakeTests, "_", lower, lower, lower},
		{"Kebab", swapSeparator(snakeTests, "-"), "-", lower, lower, lower},
		{"ShoutySnake", shoutySnakeTests, "_", upper, upper, upper},
		{"ShoutyKebab", swapSeparator(shoutySnakeTests, "-"), "-", upper, upper, upper},
		{"Camel", camelTests, "", lower, upper, lower},
		{"Pascal", pascalTests, "", upper, upper, lower},
		{"Train", trainTests, "-", upper, upper, lower},
		{"Sentence", sentenceTests, " ", upper, lower, lower},
	}
	for _, x := range tests {
		for _, test := range x.tests {
			got := join(WordsReference(test.in), x.sep, x.first, x.initial, x.rest)
			if got != test.out {
				t.Errorf("invalid %s test: %q: got: %q want: %q", x.name, test.in, got, test.out)
			}
		}
	}
}

func TestWordsReference(t *testing.T) {
	Words(t, WordsReference)
}

func TestCasedRunes(t *testing.T) {
	if len(casedRunes) < 100 {
		t.Fatalf("too few cased runes: %d", len(casedRunes))
	}
	for _, r := range casedRunes {
		if !unicode.IsUpper(r) && !unicode.IsLower(r) && !unicode.IsTitle(r) {
			t.Errorf("rune %q (%U) is not cased", r, r)
		}
		if unicode.ToUpper(unicode.ToLower(r)) != unicode.ToUpper(r) {
			t.Errorf("rune %q (%U) does not round-trip", r, r)
		}
	}
	for _, r := range digitRunes {
		if !unicode.IsDigit(r) {
			t.Errorf("rune %q (%U) is not a digit", r, r)
		}
	}
	for _, r := range separatorRunes {
		if unicode.In(r, unicode.Letter, unicode.Mark, unicode.Number) {
			t.Errorf("rune %q (%U) is not a separator", r, r)
		}
	}
	for _, r := range markRunes {
		if !unicode.IsMark(r) || unicode.ToUpper(r) != r || unicode.ToLower(r) != r {
			t.Errorf("rune %q (%U) is not a caseless mark", r, r)
		}
	}
}

// Title case letters are cased and round-trip through their lower case
// form so they are part of the fuzz pool.
func TestCasedRunesTitle(t *testing.T) {
	for _, r := range []rune{'\u1F88', '\u1FAF', '\u1FBC', '\u1FFC'} {
		if !slices.Contains(casedRunes, r) {
			t.Errorf("casedRunes does not contain %q (%U)", r, r)
		}
	}
}

func TestStripSeparators(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"a_b", "ab"},
		{"\u0301a", "a"},
		{"a\u0301 \u0308b", "a\u0301b"},
		{"1\u20DD\xff", "1\u20DD"},
	}
	for _, test := range tests {
		if got := StripSeparators(test.in); got != test.want {
			t.Errorf("StripSeparators(%q) = %q; want: %q", test.in, got, test.want)
		}
		var want strings.Builder
		for _, w := range WordsReference(test.in) {
			want.WriteString(w)
		}
		if want.String() != test.want {
			t.Errorf("WordsReference(%q) joined = %q; want: %q", test.in, want.String(), test.want)
		}
	}
}
