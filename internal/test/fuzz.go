package test

import (
	crand "crypto/rand"
	"encoding/binary"
	"flag"
	"fmt"
	"io"
	"math/rand"
	"runtime"
	"strings"
	"testing"
	"time"
	"unicode"
	"unicode/utf8"

	"golang.org/x/exp/slices"
	"golang.org/x/text/unicode/rangetable"

	"github.com/charlievieth/wordcase/internal/segment"
)

var exhaustiveFuzz = flag.Bool("exhaustive", false, "Run exhaustive fuzz tests (slow).")

// Scripts that random strings are drawn from.
var fuzzScripts = rangetable.Merge(
	unicode.Latin,
	unicode.Greek,
	unicode.Cyrillic,
	unicode.Armenian,
)

// Letters with a round-trip simple case mapping and numbers, these are the
// runes for which converting a string is idempotent.
var casedRunes, digitRunes = generateRuneTables(fuzzScripts, unicode.Nd)

// Runes that are treated as separators.
var separatorRunes = []rune{' ', '_', '-', '.', ',', '/', ':', '\t', '\u00A0', '\u2014', '☺'}

// Combining marks without a case mapping.
var markRunes = []rune{'\u0300', '\u0301', '\u0302', '\u0308', '\u0323', '\u0327', '\u20DD'}

func CasedRunes() []rune { return casedRunes }

func generateRuneTables(letters, numbers *unicode.RangeTable) (cased, digits []rune) {
	rangetable.Visit(letters, func(r rune) {
		switch segment.Of(r) {
		case segment.Upper:
			lr := unicode.ToLower(r)
			if lr != r && unicode.ToUpper(lr) == r && segment.Of(lr) == segment.Lower {
				cased = append(cased, r, lr)
			}
		case segment.Lower:
			ur := unicode.ToUpper(r)
			if ur != r && unicode.ToLower(ur) == r && segment.Of(ur) == segment.Upper {
				cased = append(cased, r, ur)
			}
		}
	})
	rangetable.Visit(numbers, func(r rune) {
		if r < 0x1000 {
			digits = append(digits, r)
		}
	})
	if len(cased) == 0 || len(digits) == 0 {
		panic(fmt.Sprintf("failed to generate cased (%d) / digit (%d) runes",
			len(cased), len(digits)))
	}
	return slices.Compact(sorted(cased)), slices.Compact(sorted(digits))
}

func sorted(a []rune) []rune {
	slices.Sort(a)
	return a
}

func cryptoRandInt(t testing.TB) int64 {
	var b [8]byte
	if _, err := io.ReadFull(crand.Reader, b[:]); err != nil {
		if t != nil {
			t.Fatal(err)
		}
		panic(err)
	}
	return int64(binary.LittleEndian.Uint64(b[:]))
}

func randomTestSeeds(t *testing.T) []int64 {
	seeds := []int64{
		1,
		time.Now().UnixNano(),
		cryptoRandInt(t),
	}
	if !testing.Short() {
		for i := len(seeds); i < runtime.NumCPU(); i++ {
			seeds = append(seeds, cryptoRandInt(t))
		}
	}
	return seeds
}

type fuzzTest struct {
	testing.TB
	rr *rand.Rand
	rs []rune // scratch space
}

func runRandomTest(t *testing.T, fn func(t *fuzzTest)) {
	if *exhaustiveFuzz && testing.Short() {
		t.Fatal(`Cannot combine "-short" and "-exhaustive" flags`)
	}
	count := 2_000
	if testing.Short() {
		count /= 4
	}
	if *exhaustiveFuzz {
		count *= 500
	}
	for _, seed := range randomTestSeeds(t) {
		seed := seed
		t.Run(fmt.Sprintf("%d", seed), func(t *testing.T) {
			t.Parallel()
			tt := &fuzzTest{
				TB: t,
				rr: rand.New(rand.NewSource(seed)),
				rs: make([]rune, 0, 64),
			}
			for i := 0; i < count; i++ {
				fn(tt)
				if t.Failed() {
					return
				}
			}
		})
	}
}

func (t *fuzzTest) randRune() rune {
	switch f := t.rr.Float64(); {
	case f <= 0.15:
		return separatorRunes[t.rr.Intn(len(separatorRunes))]
	case f <= 0.20:
		return markRunes[t.rr.Intn(len(markRunes))]
	case f <= 0.25:
		return digitRunes[t.rr.Intn(len(digitRunes))]
	case f <= 0.60:
		return casedRunes[t.rr.Intn(len(casedRunes))]
	default:
		// ASCII letters and digits
		const alnum = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
		return rune(alnum[t.rr.Intn(len(alnum))])
	}
}

// String returns a random string of up to 48 runes.
func (t *fuzzTest) String() string {
	t.rs = t.rs[:0]
	n := t.rr.Intn(48)
	for i := 0; i < n; i++ {
		t.rs = append(t.rs, t.randRune())
	}
	return string(t.rs)
}

// IdempotentFuzz tests that converting the output of fn with fn yields the
// same string.
func IdempotentFuzz(t *testing.T, fn ConvertFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		s1 := fn(s)
		s2 := fn(s1)
		if s1 != s2 {
			t.Errorf("Conversion is not idempotent:\n"+
				"Input:  %q\n"+
				"First:  %q\n"+
				"Second: %q\n"+
				"\n"+
				"ASCII:\n"+
				"Input:  %+q\n"+
				"First:  %+q\n"+
				"Second: %+q\n",
				s, s1, s2, s, s1, s2)
		}
	})
}

// SeparatorFuzz tests that the output of fn only contains the separator sep
// and that sep is never repeated, leading, or trailing.
func SeparatorFuzz(t *testing.T, fn ConvertFunc, sep rune) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		out := fn(s)
		for _, r := range out {
			if r != sep && segment.Of(r) == segment.Separator {
				t.Errorf("Output of %q contains separator %q: %q", s, r, out)
				return
			}
		}
		if !utf8.ValidString(out) {
			t.Errorf("Output of %q is not valid UTF-8: %q", s, out)
		}
		if sep == 0 {
			return
		}
		ss := string(sep)
		switch {
		case strings.HasPrefix(out, ss):
			t.Errorf("Output of %q has a leading separator: %q", s, out)
		case strings.HasSuffix(out, ss):
			t.Errorf("Output of %q has a trailing separator: %q", s, out)
		case strings.Contains(out, ss+ss):
			t.Errorf("Output of %q has a repeated separator: %q", s, out)
		}
	})
}

// WordsFuzz tests that the words returned by fn contain every rune of the
// input that is not a separator, or a mark following one, in order and that
// the number of words matches the number of word boundaries.
func WordsFuzz(t *testing.T, fn WordsFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		words := fn(s)
		if n := segment.Count(s); len(words) != n {
			t.Errorf("Words(%q) returned %d words; want: %d", s, len(words), n)
		}
		if got, want := strings.Join(words, ""), StripSeparators(s); got != want {
			t.Errorf("strings.Join(Words(%q), \"\") = %q; want: %q", s, got, want)
		}
		for _, w := range words {
			if w == "" {
				t.Errorf("Words(%q) returned an empty word: %q", s, words)
			}
		}
	})
}

// ReferenceFuzz tests that fn splits random strings into the same words as
// WordsReference.
func ReferenceFuzz(t *testing.T, fn WordsFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		got := fn(s)
		want := WordsReference(s)
		if !slices.Equal(got, want) {
			t.Errorf("Words(%q)\n"+
				"Got:  %q\n"+
				"Want: %q\n"+
				"\n"+
				"ASCII:\n"+
				"Got:  %+q\n"+
				"Want: %+q\n",
				s, got, want, got, want)
		}
	})
}

// WordCountFuzz tests that the output of fn has the same number of words as
// its input.
func WordCountFuzz(t *testing.T, fn ConvertFunc, words WordsFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		out := fn(s)
		if n, want := len(words(out)), len(words(s)); n != want {
			t.Errorf("Output of %q has %d words; want: %d\n"+
				"Output: %q\n", s, n, want, out)
		}
	})
}

// EqualFuzz tests that got and want produce the same output.
func EqualFuzz(t *testing.T, got, want ConvertFunc) {
	runRandomTest(t, func(t *fuzzTest) {
		s := t.String()
		if g, w := got(s), want(s); g != w {
			t.Errorf("Convert(%q) = %q; want: %q", s, g, w)
		}
	})
}
