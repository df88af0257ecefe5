package wordcase

import (
	"unicode"
	"unicode/utf8"
)

func isLower(r rune) bool { return 'a' <= r && r <= 'z' }
func isUpper(r rune) bool { return 'A' <= r && r <= 'Z' }

// toUpper is unicode.ToUpper with a fast path for ASCII.
func toUpper(r rune) rune {
	if r < utf8.RuneSelf {
		if isLower(r) {
			r -= 'a' - 'A'
		}
		return r
	}
	return unicode.ToUpper(r)
}

// toLower is unicode.ToLower with a fast path for ASCII.
func toLower(r rune) rune {
	if r < utf8.RuneSelf {
		if isUpper(r) {
			r += 'a' - 'A'
		}
		return r
	}
	return unicode.ToLower(r)
}
