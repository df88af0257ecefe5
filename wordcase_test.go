package wordcase

import (
	"testing"

	"github.com/charlievieth/wordcase/internal/test"
)

func TestToTitle(t *testing.T) {
	test.Title(t, ToTitle)
}

// ToTitle is written with its own policy functions so make sure it is
// identical to the Title Convention.
func TestToTitleConvention(t *testing.T) {
	test.Title(t, Title.Convert)
}

func TestToSnake(t *testing.T) {
	test.Snake(t, ToSnake)
}

func TestToKebab(t *testing.T) {
	test.Kebab(t, ToKebab)
}

func TestToShoutySnake(t *testing.T) {
	test.ShoutySnake(t, ToShoutySnake)
}

func TestToShoutyKebab(t *testing.T) {
	test.ShoutyKebab(t, ToShoutyKebab)
}

func TestToCamel(t *testing.T) {
	test.Camel(t, ToCamel)
}

func TestToPascal(t *testing.T) {
	test.Pascal(t, ToPascal)
}

func TestToTrain(t *testing.T) {
	test.Train(t, ToTrain)
}

func TestToSentence(t *testing.T) {
	test.Sentence(t, ToSentence)
}

func TestWords(t *testing.T) {
	test.Words(t, Words)
}

var benchInputs = []struct {
	name, s string
}{
	{"ASCII", "MixedUp CamelCase, with some Spaces and HTTPResponse2Vec"},
	{"Unicode", "ΑδελφοσύνηςΦίλων_ПриветМир-straßeNummer 日本語テキスト"},
}

func BenchmarkToTitle(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ToTitle(in.s)
			}
		})
	}
}

func BenchmarkToSnake(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				ToSnake(in.s)
			}
		})
	}
}

func BenchmarkWords(b *testing.B) {
	for _, in := range benchInputs {
		b.Run(in.name, func(b *testing.B) {
			b.SetBytes(int64(len(in.s)))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Words(in.s)
			}
		})
	}
}
