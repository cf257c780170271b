package common

import (
	"unicode"
	"unicode/utf8"
)

// UnknownStr is the String() result for out-of-range enum values.
const UnknownStr = "unknown"

// LowerFirst lowercases the first rune of an identifier.
func LowerFirst(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToLower(r)) + s[size:]
}

// UpperFirst uppercases the first rune of an identifier.
func UpperFirst(s string) string {
	if s == "" {
		return ""
	}

	r, size := utf8.DecodeRuneInString(s)

	return string(unicode.ToUpper(r)) + s[size:]
}
