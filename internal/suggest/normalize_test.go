package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected string
	}{
		{"ColorConst", "colorconst"},
		{"color_const", "colorconst"},
		{"color-const", "colorconst"},
		{"COLOR_CONST", "colorconst"},
		{"HTTPStatus", "httpstatus"},
		{"", ""},
		{"A", "a"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokenizeCamelCase(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected []string
	}{
		{"ColorConst", []string{"Color", "Const"}},
		{"colorConstTag0", []string{"color", "Const", "Tag0"}},
		{"HTTPStatus", []string{"HTTP", "Status"}},
		{"parseURL", []string{"parse", "URL"}},
		{"level_const", []string{"level", "const"}},
		{"ALLCAPS", []string{"ALLCAPS"}},
		{"AbC", []string{"Ab", "C"}},
		{"ABcD", []string{"A", "Bc", "D"}},
		{"a", []string{"a"}},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tt.expected, tokenizeCamelCase(tt.input))
		})
	}
}
