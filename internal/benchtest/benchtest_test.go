package benchtest

import (
	"flag"
	"strings"
	"testing"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/charlievieth/wordcase"
)

var benchStdLib = flag.Bool("stdlib", false, "Use the stdlib and x/text/cases in benchmarks (for comparison)")

var benchInputs = []struct {
	name, s string
}{
	{"Short", "fooBar"},
	{"ASCII", "MixedUp CamelCase, with some Spaces and HTTPResponse2Vec"},
	{"Unicode", "ΑδελφοσύνηςΦίλων_ПриветМир-straßeNummer 日本語テキスト"},
	{"Long", strings.Repeat("this-contains_ ALLKinds OfWord_Boundaries ", 64)},
}

func BenchmarkTitle(b *testing.B) {
	caser := cases.Title(language.Und)
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			if *benchStdLib {
				for i := 0; i < b.N; i++ {
					caser.String(in.s)
				}
			} else {
				for i := 0; i < b.N; i++ {
					wordcase.ToTitle(in.s)
				}
			}
		})
	}
}

func BenchmarkLower(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			if *benchStdLib {
				for i := 0; i < b.N; i++ {
					strings.ToLower(in.s)
				}
			} else {
				for i := 0; i < b.N; i++ {
					wordcase.ToSnake(in.s)
				}
			}
		})
	}
}

func BenchmarkUpper(b *testing.B) {
	caser := cases.Upper(language.Und)
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			if *benchStdLib {
				for i := 0; i < b.N; i++ {
					caser.String(in.s)
				}
			} else {
				for i := 0; i < b.N; i++ {
					wordcase.ToShoutySnake(in.s)
				}
			}
		})
	}
}

// Make sure the comparison is between conversions that agree on input that
// has no word boundaries other than spaces.
func TestTitleComparable(t *testing.T) {
	const s = "we have always lived in slums and holes in the wall"
	want := cases.Title(language.Und).String(s)
	if got := wordcase.ToTitle(s); got != want {
		t.Errorf("ToTitle(%q) = %q; cases.Title = %q", s, got, want)
	}
}
