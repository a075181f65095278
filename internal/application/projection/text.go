package projection

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// DefaultTruncateLength is the description length shown on cards.
const DefaultTruncateLength = 100

// Initial returns the first character of text upper-cased, or "?" for empty text.
func Initial(text string) string {
	r, size := utf8.DecodeRuneInString(strings.TrimSpace(text))
	if size == 0 || r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

// Truncate shortens text to max runes and appends "..." when it was cut.
func Truncate(text string, max int) string {
	if utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "..."
}
