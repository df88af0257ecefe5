// Package test contains the test cases shared by the wordcase and bytcase
// packages.
package test

import (
	"reflect"
	"strings"
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/charlievieth/wordcase/internal/segment"
)

type ConvertFunc func(s string) string

func ByteConvertFunc(fn func(s []byte) []byte) ConvertFunc {
	return func(s string) string {
		return string(fn([]byte(s)))
	}
}

type WordsFunc func(s string) []string

func ByteWordsFunc(fn func(s []byte) [][]byte) WordsFunc {
	return func(s string) []string {
		var a []string
		for _, w := range fn([]byte(s)) {
			a = append(a, string(w))
		}
		return a
	}
}

type convertTest struct {
	in, out string
}

func runConvertTests(t *testing.T, fn ConvertFunc, funcName string, tests []convertTest) {
	t.Helper()
	for _, test := range tests {
		got := fn(test.in)
		if got != test.out {
			t.Errorf("%s(%q) = %q; want: %q", funcName, test.in, got, test.out)
		}
	}
}

var titleTests = []convertTest{
	{"", ""},
	{"CamelCase", "Camel Case"},
	{"This is Human case.", "This Is Human Case"},
	{"MixedUp CamelCase, with some Spaces", "Mixed Up Camel Case With Some Spaces"},
	{"mixed_up snake_case, with some _spaces", "Mixed Up Snake Case With Some Spaces"},
	{"kebab-case", "Kebab Case"},
	{"SHOUTY_SNAKE_CASE", "Shouty Snake Case"},
	{"snake_case", "Snake Case"},
	{"this-contains_ ALLKinds OfWord_Boundaries", "This Contains All Kinds Of Word Boundaries"},
	// The upper case run "ALL" is followed by a lower case letter so the
	// word boundary falls before its last letter.
	{"this-contains_ ALLkinds OfWord_Boundaries", "This Contains Al Lkinds Of Word Boundaries"},
	{"HTTPResponse", "Http Response"},
	{"XMLHttpRequest", "Xml Http Request"},
	{"Word2Vec", "Word 2 Vec"},
	{"abc123def", "Abc 123 Def"},
	{"version1.2.3", "Version 1 2 3"},
	{"A_1B", "A 1 B"},
	{"a", "A"},
	{"ABC", "Abc"},
	{"aB", "A B"},
	{"IDs", "I Ds"},
	{"   ", ""},
	{"__foo__bar__", "Foo Bar"},
	{"Title Case", "Title Case"},
	{"αβγΔέλτα", "Αβγ Δέλτα"},
	{"ПриветМир", "Привет Мир"},
	{"straßeNummer", "Straße Nummer"},
	{"日本語テキスト", "日本語テキスト"},
	{"東京2020Tokyo", "東京2020 Tokyo"},
	{"caf\u00e9Bar", "Caf\u00e9 Bar"},
	{"cafe\u0301Bar", "Cafe\u0301 Bar"},
	{"AB\u0301c", "A B\u0301c"},
	{"HTTP\u0301Response", "Http\u0301 Response"},
	{"\u0301Abc", "Abc"},
	{"foo \u0301bar", "Foo Bar"},
	// Simple case mappings: title case digraphs are upper cased.
	{"\u01C5emal", "\u01C4emal"},
	{"a\xffb", "A B"},
}

func Title(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToTitle", titleTests)
}

var snakeTests = []convertTest{
	{"", ""},
	{"CamelCase", "camel_case"},
	{"This is Human case.", "this_is_human_case"},
	{"MixedUp CamelCase, with some Spaces", "mixed_up_camel_case_with_some_spaces"},
	{"mixed_up_ snake_case with some _spaces", "mixed_up_snake_case_with_some_spaces"},
	{"kebab-case", "kebab_case"},
	{"SHOUTY_SNAKE_CASE", "shouty_snake_case"},
	{"snake_case", "snake_case"},
	{"this-contains_ ALLKinds OfWord_Boundaries", "this_contains_all_kinds_of_word_boundaries"},
	{"XMLHttpRequest", "xml_http_request"},
	{"FieldNamE11", "field_nam_e_11"},
	{"Word2Vec", "word_2_vec"},
	{"___", ""},
	{"ΑδελφοσύνηςΦίλων", "αδελφοσύνης_φίλων"},
}

func Snake(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToSnake", snakeTests)
}

// swapSeparator returns tests with the '_' of each output replaced by sep.
func swapSeparator(tests []convertTest, sep string) []convertTest {
	a := make([]convertTest, len(tests))
	for i, test := range tests {
		a[i] = convertTest{test.in, strings.ReplaceAll(test.out, "_", sep)}
	}
	return a
}

func Kebab(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToKebab", swapSeparator(snakeTests, "-"))
}

var shoutySnakeTests = []convertTest{
	{"", ""},
	{"CamelCase", "CAMEL_CASE"},
	{"This is Human case.", "THIS_IS_HUMAN_CASE"},
	{"MixedUp CamelCase, with some Spaces", "MIXED_UP_CAMEL_CASE_WITH_SOME_SPACES"},
	{"mixed_up_ snake_case with some _spaces", "MIXED_UP_SNAKE_CASE_WITH_SOME_SPACES"},
	{"kebab-case", "KEBAB_CASE"},
	{"SHOUTY_SNAKE_CASE", "SHOUTY_SNAKE_CASE"},
	{"snake_case", "SNAKE_CASE"},
	{"this-contains_ ALLKinds OfWord_Boundaries", "THIS_CONTAINS_ALL_KINDS_OF_WORD_BOUNDARIES"},
	{"XMLHttpRequest", "XML_HTTP_REQUEST"},
	{"Word2Vec", "WORD_2_VEC"},
	{"приветМир", "ПРИВЕТ_МИР"},
}

func ShoutySnake(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToShoutySnake", shoutySnakeTests)
}

func ShoutyKebab(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToShoutyKebab", swapSeparator(shoutySnakeTests, "-"))
}

var camelTests = []convertTest{
	{"", ""},
	{"CamelCase", "camelCase"},
	{"This is Human case.", "thisIsHumanCase"},
	{"MixedUp CamelCase, with some Spaces", "mixedUpCamelCaseWithSomeSpaces"},
	{"mixed_up_ snake_case, with some _spaces", "mixedUpSnakeCaseWithSomeSpaces"},
	{"kebab-case", "kebabCase"},
	{"SHOUTY_SNAKE_CASE", "shoutySnakeCase"},
	{"snake_case", "snakeCase"},
	{"this-contains_ ALLKinds OfWord_Boundaries", "thisContainsAllKindsOfWordBoundaries"},
	{"XMLHttpRequest", "xmlHttpRequest"},
	{"Word2Vec", "word2Vec"},
	{"ПриветМир", "приветМир"},
}

func Camel(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToCamel", camelTests)
}

var pascalTests = []convertTest{
	{"", ""},
	{"CamelCase", "CamelCase"},
	{"This is Human case.", "ThisIsHumanCase"},
	{"MixedUp CamelCase, with some Spaces", "MixedUpCamelCaseWithSomeSpaces"},
	{"mixed_up_ snake_case, with some _spaces", "MixedUpSnakeCaseWithSomeSpaces"},
	{"kebab-case", "KebabCase"},
	{"SHOUTY_SNAKE_CASE", "ShoutySnakeCase"},
	{"snake_case", "SnakeCase"},
	{"this-contains_ ALLKinds OfWord_Boundaries", "ThisContainsAllKindsOfWordBoundaries"},
	{"XMLHttpRequest", "XmlHttpRequest"},
	{"Word2Vec", "Word2Vec"},
	{"привет_мир", "ПриветМир"},
}

func Pascal(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToPascal", pascalTests)
}

var trainTests = []convertTest{
	{"", ""},
	{"CamelCase", "Camel-Case"},
	{"This is Human case.", "This-Is-Human-Case"},
	{"MixedUp CamelCase, with some Spaces", "Mixed-Up-Camel-Case-With-Some-Spaces"},
	{"kebab-case", "Kebab-Case"},
	{"SHOUTY_SNAKE_CASE", "Shouty-Snake-Case"},
	{"XMLHttpRequest", "Xml-Http-Request"},
	{"Word2Vec", "Word-2-Vec"},
}

func Train(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToTrain", trainTests)
}

var sentenceTests = []convertTest{
	{"", ""},
	{"CamelCase", "Camel case"},
	{"This is Human case.", "This is human case"},
	{"MixedUp CamelCase, with some Spaces", "Mixed up camel case with some spaces"},
	{"kebab-case", "Kebab case"},
	{"SHOUTY_SNAKE_CASE", "Shouty snake case"},
	{"XMLHttpRequest", "Xml http request"},
	{"Word2Vec", "Word 2 vec"},
	{"ΑΒΓ_δέλτα", "Αβγ δέλτα"},
}

func Sentence(t *testing.T, fn ConvertFunc) {
	runConvertTests(t, fn, "ToSentence", sentenceTests)
}

type wordsTest struct {
	in  string
	out []string
}

var wordsTests = []wordsTest{
	{"", nil},
	{"---", nil},
	{"CamelCase", []string{"Camel", "Case"}},
	{"This is Human case.", []string{"This", "is", "Human", "case"}},
	{"mixed_up snake_case, with some _spaces", []string{"mixed", "up", "snake", "case", "with", "some", "spaces"}},
	{"HTTPResponse", []string{"HTTP", "Response"}},
	{"Word2Vec", []string{"Word", "2", "Vec"}},
	{"A_1B", []string{"A", "1", "B"}},
	{"12345", []string{"12345"}},
	{"ΑδελφοσύνηςΦίλων", []string{"Αδελφοσύνης", "Φίλων"}},
	{"AB\u0301c", []string{"A", "B\u0301c"}},
	{"\u0301Abc", []string{"Abc"}},
	{"a_\u0301\u0308_b", []string{"a", "b"}},
}

func Words(t *testing.T, fn WordsFunc) {
	for _, test := range wordsTests {
		got := fn(test.in)
		if !reflect.DeepEqual(got, test.out) {
			t.Errorf("Words(%q) = %q; want: %q", test.in, got, test.out)
		}
	}
}

// WordsReference is a slow but simple reference implementation of the word
// segmentation rules that operates on the full rune slice of s.
// Combining marks belong to the rune before them, they are dropped when
// that rune is a separator.
func WordsReference(s string) []string {
	class := func(r rune) int {
		switch {
		case r == utf8.RuneError:
			return 0
		case unicode.IsUpper(r) || unicode.IsTitle(r):
			return 'U'
		case unicode.IsLower(r):
			return 'L'
		case unicode.IsNumber(r):
			return 'D'
		case unicode.IsLetter(r):
			return 'O'
		case unicode.IsMark(r):
			return 'M'
		}
		return 0
	}
	rs := []rune(s)
	var words [][]rune
	inWord := false
	prev := 0
	for i, r := range rs {
		c := class(r)
		if c == 'M' {
			// Marks extend the previous rune.
			if inWord {
				words[len(words)-1] = append(words[len(words)-1], r)
			}
			continue
		}
		if c == 0 {
			inWord = false
			continue
		}
		next := -1
		for _, nr := range rs[i+1:] {
			if nc := class(nr); nc != 'M' {
				next = nc
				break
			}
		}
		split := !inWord ||
			prev == 'L' && c == 'U' ||
			prev == 'U' && c == 'U' && next == 'L' ||
			prev == 'D' && (c == 'U' || c == 'L') ||
			c == 'D' && (prev == 'U' || prev == 'L')
		if split {
			words = append(words, nil)
		}
		words[len(words)-1] = append(words[len(words)-1], r)
		prev = c
		inWord = true
	}
	var a []string
	for _, w := range words {
		a = append(a, string(w))
	}
	return a
}

// StripSeparators returns the runes of s that belong to a word: s without
// separators and without the combining marks that follow a separator.
func StripSeparators(s string) string {
	var b strings.Builder
	prev := segment.Separator
	for _, r := range s {
		c := segment.Of(r)
		if c == segment.Mark {
			c = prev
		}
		if c != segment.Separator {
			b.WriteRune(r)
		}
		prev = c
	}
	return b.String()
}
