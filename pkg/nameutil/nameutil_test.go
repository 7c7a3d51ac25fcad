package nameutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEscapeForFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"plain_name_42", "plain_name_42"},
		{"a.b", "a%2Eb"},
		{"with space", "with%20space"},
		{"quote'", "quote%27"},
		{"", ""},
		{"%", "%25"},
		{"привет", "%D0%BF%D1%80%D0%B8%D0%B2%D0%B5%D1%82"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, EscapeForFileName(tt.in), "escape %q", tt.in)
	}
}

func TestUnescapeRoundTrip(t *testing.T) {
	for _, s := range []string{"plain", "a.b", "with space", "%", "привет", "a%b.c"} {
		assert.Equal(t, s, UnescapeForFileName(EscapeForFileName(s)))
	}

	// Malformed sequences survive verbatim
	assert.Equal(t, "%2", UnescapeForFileName("%2"))
	assert.Equal(t, "%zz", UnescapeForFileName("%zz"))
}

func TestEscapeInjective(t *testing.T) {
	// The dot encoding cannot collide with a literal percent sign
	assert.NotEqual(t, EscapeForFileName("a.b"), EscapeForFileName("a%2Eb"))
}

func TestSplitName(t *testing.T) {
	tests := []struct {
		in      string
		table   string
		element string
	}{
		{"a.b", "a", "b"},
		{"a.b.c", "a", "b.c"},
		{"plain", "plain", ""},
		{".b", ".b", ""},
		{"a.", "a.", ""},
		{"", "", ""},
	}

	for _, tt := range tests {
		table, element := SplitName(tt.in)
		assert.Equal(t, tt.table, table, "table of %q", tt.in)
		assert.Equal(t, tt.element, element, "element of %q", tt.in)
	}
}

func TestExtractAndConcat(t *testing.T) {
	assert.Equal(t, "a", ExtractTableName("a.b"))
	assert.Equal(t, "x", ExtractTableName("x"))
	assert.Equal(t, "b", ExtractElementName("a.b"))
	assert.Equal(t, "", ExtractElementName("x"))

	assert.True(t, IsNested("a.b"))
	assert.False(t, IsNested("x"))

	assert.Equal(t, "a.b", ConcatNames("a", "b"))
	assert.Equal(t, "a", ConcatNames("a", ""))
}
