// Copyright 2023 Charlie Vieth. All rights reserved.
// Use of this source code is governed by the MIT license.

// Package wordcase converts text between word-case conventions such as
// camelCase, snake_case, kebab-case, SHOUTY_SNAKE_CASE and Title Case.
//
// Words are detected regardless of the convention the input was written in:
// separators (any rune that is not a letter, mark, or number), lower to
// upper case transitions, the end of an upper case run followed by a lower
// case letter, and transitions between numbers and letters all start a new
// word. The words are then joined according to the rules of the target
// [Convention].
//
// All functions are total: any input, including invalid UTF-8, produces a
// result. Invalid UTF-8 sequences are treated as separators.
//
// The [bytcase] sub-package provides the same API for []byte.
//
// [bytcase]: https://pkg.go.dev/github.com/charlievieth/wordcase/bytcase
package wordcase

// BUG(cvieth): Only simple per-rune case mappings are used. Special casing
// (e.g. 'ß' to "SS") and locale specific rules are not supported.
