// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package wordcase

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/charlievieth/wordcase/internal/segment"
)

// WARN: DEV ONLY
const debug = false

var logger = newLogger()

func newLogger() *log.Logger {
	w := io.Discard
	if debug {
		w = os.Stderr
	}
	return log.New(w, "wordcase: ", log.Lshortfile)
}

// A Buffer is the output of a Transform. It is written to only by the
// BoundaryFunc and RuneFunc given to Transform.
type Buffer struct {
	sb    strings.Builder
	words int
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int { return b.sb.Len() }

// Grow grows the buffer's capacity, if necessary, to guarantee space for
// another n bytes.
func (b *Buffer) Grow(n int) { b.sb.Grow(n) }

// WriteByte appends the byte c to b.
func (b *Buffer) WriteByte(c byte) error { return b.sb.WriteByte(c) }

// WriteRune appends the UTF-8 encoding of Unicode code point r to b.
func (b *Buffer) WriteRune(r rune) (int, error) { return b.sb.WriteRune(r) }

// WriteString appends the contents of s to b.
func (b *Buffer) WriteString(s string) (int, error) { return b.sb.WriteString(s) }

// String returns the accumulated string.
func (b *Buffer) String() string { return b.sb.String() }

// FirstWord reports if the word currently being written is the first word
// of the output.
func (b *Buffer) FirstWord() bool { return b.words == 1 }

// Words returns the number of words started so far.
func (b *Buffer) Words() int { return b.words }

// A BoundaryFunc is called with the first rune of every word. It is
// responsible for writing any separator and the (cased) rune itself.
type BoundaryFunc func(r rune, b *Buffer)

// A RuneFunc is called with every rune of a word except the first.
type RuneFunc func(r rune, b *Buffer)

// Transform splits s into words and returns the result of calling boundary
// with the first rune of each word and char with every other rune of the
// word. Separators, and combining marks that follow a separator, are never
// passed to either function. Every other rune of s is delivered exactly once
// and in order.
//
// The boundary and char functions must not be nil.
func Transform(s string, boundary BoundaryFunc, char RuneFunc) string {
	var b Buffer
	b.Grow(len(s))
	segment.String(s, func(r rune, start bool) {
		if start {
			b.words++
			if debug {
				logger.Printf("word %d starts with %q", b.words, r)
			}
			boundary(r, &b)
		} else {
			char(r, &b)
		}
	})
	return b.String()
}

// Words returns the words of s.
func Words(s string) []string {
	var words []string
	var w strings.Builder
	segment.String(s, func(r rune, start bool) {
		if start && w.Len() > 0 {
			words = append(words, w.String())
			w.Reset()
		}
		w.WriteRune(r)
	})
	if w.Len() > 0 {
		words = append(words, w.String())
	}
	return words
}
