// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

package bytcase

import (
	"unicode/utf8"

	"github.com/charlievieth/wordcase"
	"github.com/charlievieth/wordcase/internal/segment"
)

// A Buffer is the output of a Transform. It is written to only by the
// BoundaryFunc and RuneFunc given to Transform.
type Buffer struct {
	buf   []byte
	words int
}

// Len returns the number of accumulated bytes.
func (b *Buffer) Len() int { return len(b.buf) }

// Grow grows the buffer's capacity, if necessary, to guarantee space for
// another n bytes.
func (b *Buffer) Grow(n int) {
	if n < 0 {
		panic("bytcase.Buffer.Grow: negative count")
	}
	if cap(b.buf)-len(b.buf) < n {
		buf := make([]byte, len(b.buf), 2*cap(b.buf)+n)
		copy(buf, b.buf)
		b.buf = buf
	}
}

// WriteByte appends the byte c to b.
func (b *Buffer) WriteByte(c byte) error {
	b.buf = append(b.buf, c)
	return nil
}

// WriteRune appends the UTF-8 encoding of Unicode code point r to b.
func (b *Buffer) WriteRune(r rune) (int, error) {
	n := len(b.buf)
	if uint32(r) < utf8.RuneSelf {
		b.buf = append(b.buf, byte(r))
	} else {
		b.buf = utf8.AppendRune(b.buf, r)
	}
	return len(b.buf) - n, nil
}

// WriteString appends the contents of s to b.
func (b *Buffer) WriteString(s string) (int, error) {
	b.buf = append(b.buf, s...)
	return len(s), nil
}

// Bytes returns the accumulated bytes.
func (b *Buffer) Bytes() []byte { return b.buf }

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

func transform(b *Buffer, s []byte, boundary BoundaryFunc, char RuneFunc) []byte {
	b.Grow(len(s))
	segment.Bytes(s, func(r rune, start bool) {
		if start {
			b.words++
			boundary(r, b)
		} else {
			char(r, b)
		}
	})
	return b.buf
}

// Transform splits s into words and returns the result of calling boundary
// with the first rune of each word and char with every other rune of the
// word. Separators, and combining marks that follow a separator, are never
// passed to either function.
//
// The boundary and char functions must not be nil.
func Transform(s []byte, boundary BoundaryFunc, char RuneFunc) []byte {
	return transform(new(Buffer), s, boundary, char)
}

func policy(c wordcase.Convention) (BoundaryFunc, RuneFunc) {
	boundary := func(r rune, b *Buffer) {
		first := b.FirstWord()
		if !first && c.Separator != "" {
			b.WriteString(c.Separator)
		}
		b.WriteRune(c.InitialRune(r, first))
	}
	char := func(r rune, b *Buffer) {
		b.WriteRune(c.RestRune(r))
	}
	return boundary, char
}

// Append appends s converted to Convention c to dst and returns the
// extended buffer.
func Append(dst, s []byte, c wordcase.Convention) []byte {
	boundary, char := policy(c)
	return transform(&Buffer{buf: dst}, s, boundary, char)
}

// Convert returns s converted to Convention c.
func Convert(c wordcase.Convention, s []byte) []byte {
	return Append(make([]byte, 0, len(s)), s, c)
}

// Words returns the words of s. The returned slices do not alias s.
func Words(s []byte) [][]byte {
	var words [][]byte
	var w []byte
	segment.Bytes(s, func(r rune, start bool) {
		if start && len(w) > 0 {
			words = append(words, w)
			w = nil
		}
		w = utf8.AppendRune(w, r)
	})
	if len(w) > 0 {
		words = append(words, w)
	}
	return words
}
