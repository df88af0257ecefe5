// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Command gentables generates the rune class tables of the segment package.
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"log"
	"os"
	"unicode"
	"unicode/utf8"

	"github.com/schollz/progressbar/v3"
	"golang.org/x/term"
	"golang.org/x/text/unicode/rangetable"
)

func init() {
	log.SetPrefix("")
	log.SetFlags(log.Lshortfile)
	log.SetOutput(os.Stdout) // use stdout instead of stderr
}

const header = `// Code generated by "gentables"; DO NOT EDIT.

package segment
`

// inWord contains the runes that are not separators.
var inWord = rangetable.Merge(unicode.Letter, unicode.Mark, unicode.Number)

// asciiClass returns the name of the segment.Class of ASCII rune r or an
// empty string if r is a separator.
func asciiClass(r rune) string {
	switch {
	case unicode.IsUpper(r):
		return "Upper"
	case unicode.IsLower(r):
		return "Lower"
	case unicode.IsDigit(r):
		return "Digit"
	}
	return ""
}

func genUnicodeVersion(w *bytes.Buffer) {
	w.WriteString("\n// UnicodeVersion is the Unicode version the tables were generated from.\n")
	fmt.Fprintf(w, "const UnicodeVersion = %q\n", unicode.Version)
}

func genASCIIClass(w *bytes.Buffer) {
	w.WriteString("\n// _asciiClass maps every ASCII rune to its Class. Unlisted runes are Separators.\n")
	fmt.Fprintf(w, "var _asciiClass = [%d]Class{\n", utf8.RuneSelf)
	for r := rune(0); r < utf8.RuneSelf; r++ {
		if c := asciiClass(r); c != "" {
			fmt.Fprintf(w, "\t0x%02X: %s, // %q\n", r, c, r)
		}
	}
	w.WriteString("}\n")
}

func generate() ([]byte, error) {
	var w bytes.Buffer
	w.WriteString(header)
	genUnicodeVersion(&w)
	genASCIIClass(&w)
	src, err := format.Source(w.Bytes())
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, nil
}

func newProgressBar(max int) *progressbar.ProgressBar {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		return progressbar.Default(int64(max))
	}
	return progressbar.DefaultSilent(int64(max))
}

// uncasedSeparators returns, in order, the runes that have a simple case mapping but
// are classified as separators because they are not a letter, mark or
// number (for example: CIRCLED LATIN CAPITAL LETTER A).
func uncasedSeparators() []rune {
	const chunk = 4096
	bar := newProgressBar(unicode.MaxRune + 1)
	defer bar.Finish()

	var seps []rune
	for r := rune(0); r <= unicode.MaxRune; r++ {
		if r%chunk == 0 {
			bar.Add(chunk)
		}
		if unicode.Is(inWord, r) {
			continue
		}
		if unicode.ToUpper(r) != r || unicode.ToLower(r) != r {
			seps = append(seps, r)
		}
	}
	return seps
}

func writeFile(name string, data []byte) error {
	if b, err := os.ReadFile(name); err == nil && bytes.Equal(b, data) {
		log.Printf("%s: unchanged", name)
		return nil
	}
	if err := os.WriteFile(name, data, 0644); err != nil {
		return fmt.Errorf("writing tables: %w", err)
	}
	log.Printf("%s: updated", name)
	return nil
}

func main() {
	out := flag.String("out", "tables.go", "write generated tables to this file")
	dryRun := flag.Bool("dry-run", false, "print the generated tables to stdout")
	verify := flag.Bool("verify", true, "report cased runes that are treated as separators")
	flag.Parse()

	if *verify {
		seps := uncasedSeparators()
		log.Printf("Unicode %s: %d cased runes are separators", unicode.Version, len(seps))
		for _, r := range seps {
			log.Printf("    %U %q", r, r)
		}
	}

	src, err := generate()
	if err != nil {
		log.Fatal(err)
	}
	if *dryRun {
		os.Stdout.Write(src)
		return
	}
	if err := writeFile(*out, src); err != nil {
		log.Fatal(err)
	}
}
