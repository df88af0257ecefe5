// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package wordcase

import "strconv"

// A Case is a per-rune case mapping.
type Case uint8

const (
	Unchanged Case = iota // leave runes as-is
	Lower                 // map runes to lower case
	Upper                 // map runes to upper case
)

func (c Case) String() string {
	switch c {
	case Unchanged:
		return "Unchanged"
	case Lower:
		return "Lower"
	case Upper:
		return "Upper"
	}
	return "Case(" + strconv.Itoa(int(c)) + ")"
}

// Map returns r mapped to Case c.
func (c Case) Map(r rune) rune {
	switch c {
	case Lower:
		return toLower(r)
	case Upper:
		return toUpper(r)
	}
	return r
}

// A Convention describes how words are joined and cased.
type Convention struct {
	// Separator is written between words.
	Separator string
	// First is the Case of the first rune of the first word.
	First Case
	// Initial is the Case of the first rune of every other word.
	Initial Case
	// Rest is the Case of all remaining runes.
	Rest Case
}

// Predefined conventions.
var (
	Snake       = Convention{Separator: "_", First: Lower, Initial: Lower, Rest: Lower} // snake_case
	Kebab       = Convention{Separator: "-", First: Lower, Initial: Lower, Rest: Lower} // kebab-case
	ShoutySnake = Convention{Separator: "_", First: Upper, Initial: Upper, Rest: Upper} // SHOUTY_SNAKE_CASE
	ShoutyKebab = Convention{Separator: "-", First: Upper, Initial: Upper, Rest: Upper} // SHOUTY-KEBAB-CASE
	Camel       = Convention{Separator: "", First: Lower, Initial: Upper, Rest: Lower}  // camelCase
	Pascal      = Convention{Separator: "", First: Upper, Initial: Upper, Rest: Lower}  // PascalCase
	Title       = Convention{Separator: " ", First: Upper, Initial: Upper, Rest: Lower} // Title Case
	Train       = Convention{Separator: "-", First: Upper, Initial: Upper, Rest: Lower} // Train-Case
	Sentence    = Convention{Separator: " ", First: Upper, Initial: Lower, Rest: Lower} // Sentence case
	Flat        = Convention{Separator: "", First: Lower, Initial: Lower, Rest: Lower}  // flatcase
	UpperFlat   = Convention{Separator: "", First: Upper, Initial: Upper, Rest: Upper}  // UPPERFLATCASE
)

// InitialRune returns r, the first rune of a word, mapped according to c.
// The first argument reports if the word is the first word of the output.
func (c Convention) InitialRune(r rune, first bool) rune {
	if first {
		return c.First.Map(r)
	}
	return c.Initial.Map(r)
}

// RestRune returns r, a rune that does not start a word, mapped according
// to c.
func (c Convention) RestRune(r rune) rune {
	return c.Rest.Map(r)
}

// Boundary is the BoundaryFunc of c.
func (c Convention) Boundary(r rune, b *Buffer) {
	first := b.FirstWord()
	if !first && c.Separator != "" {
		b.WriteString(c.Separator)
	}
	b.WriteRune(c.InitialRune(r, first))
}

// Rune is the RuneFunc of c.
func (c Convention) Rune(r rune, b *Buffer) {
	b.WriteRune(c.Rest.Map(r))
}

// Convert returns s converted to Convention c.
func (c Convention) Convert(s string) string {
	return Transform(s, c.Boundary, c.Rune)
}
