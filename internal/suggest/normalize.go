package suggest

import (
	"strings"
	"unicode"
)

// NormalizeIdent normalizes an identifier for fuzzy matching: CamelCase is
// tokenized, case is folded and separators are dropped, so "ColorConst",
// "color_const" and "colorConst" compare equal.
func NormalizeIdent(s string) string {
	return strings.ToLower(strings.Join(tokenizeCamelCase(s), ""))
}

// tokenizeCamelCase splits a CamelCase or camelCase string into tokens.
// Examples:
//   - "ColorConst" -> ["Color", "Const"]
//   - "colorConstTag0" -> ["color", "Const", "Tag0"]
//   - "HTTPStatus" -> ["HTTP", "Status"]
func tokenizeCamelCase(s string) []string {
	if s == "" {
		return nil
	}

	var (
		tokens  []string
		current strings.Builder
	)

	flush := func() {
		if current.Len() > 0 {
			tokens = append(tokens, current.String())
			current.Reset()
		}
	}

	runes := []rune(s)
	for i, r := range runes {
		if isSeparator(r) {
			flush()
			continue
		}

		if i > 0 && startsToken(runes, i) {
			flush()
		}

		current.WriteRune(r)
	}

	flush()

	return tokens
}

func isSeparator(r rune) bool {
	return r == '_' || r == '-' || r == ' '
}

// startsToken reports whether a new token begins at position i.
func startsToken(runes []rune, i int) bool {
	r, prev := runes[i], runes[i-1]

	if !unicode.IsUpper(r) || isSeparator(prev) {
		return false
	}

	// "colorConst": lower to upper.
	if !unicode.IsUpper(prev) {
		return true
	}

	// "HTTPStatus": the last capital of an acronym starts the next word.
	return i+1 < len(runes) && unicode.IsLower(runes[i+1])
}
