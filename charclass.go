package markup

import (
	"unicode"
	"unicode/utf8"
)

const (
	symbolStrong        = '*'
	symbolEmphasis      = '_'
	symbolStrikethrough = '~'
)

// isDelimiter reports whether the character c is exactly one of the
// delimiter symbols. A delimiter followed by combining marks is text.
func isDelimiter(c string) bool {
	return c == "*" || c == "_" || c == "~"
}

func firstRune(c string) rune {
	r, _ := utf8.DecodeRuneInString(c)
	return r
}

// isSpace reports whether c starts with whitespace or a line break.
func isSpace(c string) bool {
	return unicode.IsSpace(firstRune(c))
}

// isBoundary reports whether c may sit next to a delimiter that opens
// (before it) or closes (after it) a span. '~' counts even though it is a
// math symbol rather than punctuation.
func isBoundary(c string) bool {
	r := firstRune(c)
	return unicode.IsSpace(r) || unicode.IsPunct(r) || r == symbolStrikethrough
}
