// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package segment splits text into words regardless of the word-case
// convention it was written in.
//
// A word boundary falls before a rune when any of the following hold:
//
//   - the previous rune was a Separator (runs of Separators collapse)
//   - the previous rune is Lower and the rune is Upper ("fooBar")
//   - the previous rune and the rune are Upper and the next rune is Lower
//     ("HTTPResponse" splits into "HTTP" and "Response")
//   - the rune moves between Digit and a cased letter in either direction
//     ("Word2Vec" splits into "Word", "2" and "Vec")
//
// Combining marks take the Class of the rune they follow: they never start
// a word and are skipped when looking ahead for the rule above. A Mark that
// follows a Separator is part of that Separator.
//
// Separators are consumed and never reported.
package segment

//go:generate go run ../gentables -out tables.go

import (
	"strconv"
	"unicode"
	"unicode/utf8"
)

// A Class is the segmentation class of a rune.
type Class uint8

const (
	// Separator is any rune that is neither a letter, mark, nor number.
	Separator Class = iota
	// Upper is an upper or title case letter.
	Upper
	// Lower is a lower case letter.
	Lower
	// Digit is any Unicode number.
	Digit
	// Other is a letter without case. It never starts or ends a word on
	// its own.
	Other
	// Mark is a combining mark. Marks belong to the word of the rune they
	// follow and are transparent to the case and digit rules.
	Mark
	// None is the Class of the rune following the last rune of the input.
	None
)

var classNames = [...]string{
	Separator: "Separator",
	Upper:     "Upper",
	Lower:     "Lower",
	Digit:     "Digit",
	Other:     "Other",
	Mark:      "Mark",
	None:      "None",
}

func (c Class) String() string {
	if int(c) < len(classNames) {
		return classNames[c]
	}
	return "Class(" + strconv.Itoa(int(c)) + ")"
}

// cased reports if c is Upper or Lower.
func (c Class) cased() bool { return c == Upper || c == Lower }

// Of returns the Class of r.
func Of(r rune) Class {
	if uint32(r) < utf8.RuneSelf {
		return _asciiClass[r]
	}
	return unicodeClass(r)
}

func unicodeClass(r rune) Class {
	switch {
	case r == utf8.RuneError:
		return Separator
	case unicode.IsUpper(r) || unicode.IsTitle(r):
		return Upper
	case unicode.IsLower(r):
		return Lower
	case unicode.IsNumber(r):
		return Digit
	case unicode.IsLetter(r):
		return Other
	case unicode.IsMark(r):
		return Mark
	}
	return Separator
}

// Split reports whether a word boundary falls before a rune of Class cur
// that follows a rune of Class prev and precedes a rune of Class next.
// The first rune of the input should be given a prev of Separator and
// the last a next of None.
//
// Split is only meaningful for a cur that is not a Separator. Marks should
// never be given as prev or next: callers use the Class of the nearest rune
// that is not a Mark.
func Split(prev, cur, next Class) bool {
	switch {
	case prev == Separator:
		return true
	case cur == Mark:
		return false
	case prev == Lower && cur == Upper:
		return true
	case prev == Upper && cur == Upper:
		return next == Lower
	case prev == Digit:
		return cur.cased()
	case cur == Digit:
		return prev.cased()
	}
	return false
}

// String calls yield for every non-Separator rune of s in order. The
// boundary argument reports whether the rune is the first rune of a word.
// Invalid UTF-8 is treated as a Separator, as is a Mark that follows a
// Separator or starts s.
func String(s string, yield func(r rune, boundary bool)) {
	prev := Separator
	for len(s) > 0 {
		r, n := decodeString(s)
		s = s[n:]
		switch c := Of(r); c {
		case Separator:
			prev = Separator
		case Mark:
			if prev != Separator {
				yield(r, false)
			}
		default:
			next := None
			if prev == Upper && c == Upper {
				next = peekString(s)
			}
			yield(r, Split(prev, c, next))
			prev = c
		}
	}
}

// Bytes is the []byte equivalent of String.
func Bytes(b []byte, yield func(r rune, boundary bool)) {
	prev := Separator
	for len(b) > 0 {
		r, n := decode(b)
		b = b[n:]
		switch c := Of(r); c {
		case Separator:
			prev = Separator
		case Mark:
			if prev != Separator {
				yield(r, false)
			}
		default:
			next := None
			if prev == Upper && c == Upper {
				next = peek(b)
			}
			yield(r, Split(prev, c, next))
			prev = c
		}
	}
}

// peekString returns the Class of the first rune of s that is not a Mark
// or None if there is no such rune.
func peekString(s string) Class {
	for len(s) > 0 {
		r, n := decodeString(s)
		if c := Of(r); c != Mark {
			return c
		}
		s = s[n:]
	}
	return None
}

func peek(b []byte) Class {
	for len(b) > 0 {
		r, n := decode(b)
		if c := Of(r); c != Mark {
			return c
		}
		b = b[n:]
	}
	return None
}

func decodeString(s string) (rune, int) {
	if s[0] < utf8.RuneSelf {
		return rune(s[0]), 1
	}
	return utf8.DecodeRuneInString(s)
}

func decode(b []byte) (rune, int) {
	if b[0] < utf8.RuneSelf {
		return rune(b[0]), 1
	}
	return utf8.DecodeRune(b)
}

// Count returns the number of words in s.
func Count(s string) int {
	n := 0
	String(s, func(_ rune, boundary bool) {
		if boundary {
			n++
		}
	})
	return n
}
