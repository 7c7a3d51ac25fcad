package textio

import (
	"bufio"
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func reader(s string) *bufio.Reader {
	return bufio.NewReader(strings.NewReader(s))
}

func TestEscapedString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteEscapedString(&buf, "a\tb\nc\\d"))
	assert.Equal(t, `a\tb\nc\\d`, buf.String())

	got, err := ReadEscapedString(reader(buf.String() + "\tnext"))
	require.NoError(t, err)
	assert.Equal(t, "a\tb\nc\\d", got)
}

func TestEscapedStringStopsAtDelimiter(t *testing.T) {
	br := reader("one\ttwo")
	got, err := ReadEscapedString(br)
	require.NoError(t, err)
	assert.Equal(t, "one", got)

	// The tab stays in the stream for the row parser
	c, err := br.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('\t'), c)
}

func TestQuotedString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteQuotedString(&buf, "it's\ta 'test'"))
	assert.Equal(t, `'it\'s\ta \'test\''`, buf.String())

	got, err := ReadQuotedString(reader(buf.String()))
	require.NoError(t, err)
	assert.Equal(t, "it's\ta 'test'", got)
}

func TestQuotedStringErrors(t *testing.T) {
	_, err := ReadQuotedString(reader("no quotes"))
	assert.Error(t, err)

	_, err = ReadQuotedString(reader("'unterminated"))
	assert.Error(t, err)
}

func TestCSVString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCSVString(&buf, `say "hi"`))
	assert.Equal(t, `"say ""hi"""`, buf.String())

	got, err := ReadCSVString(reader(buf.String()+",rest"), ',')
	require.NoError(t, err)
	assert.Equal(t, `say "hi"`, got)
}

func TestCSVStringUnquoted(t *testing.T) {
	br := reader("plain,next")
	got, err := ReadCSVString(br, ',')
	require.NoError(t, err)
	assert.Equal(t, "plain", got)

	c, err := br.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte(','), c)
}

func TestCSVStringCustomDelimiter(t *testing.T) {
	got, err := ReadCSVString(reader("a,b;next"), ';')
	require.NoError(t, err)
	assert.Equal(t, "a,b", got)
}

func TestJSONString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONString(&buf, "line\n\"quoted\""))

	got, err := ReadJSONString(reader(buf.String() + ", 42"))
	require.NoError(t, err)
	assert.Equal(t, "line\n\"quoted\"", got)
}

func TestJSONStringUnicodeEscape(t *testing.T) {
	got, err := ReadJSONString(reader(`"snow ☃"`))
	require.NoError(t, err)
	assert.Equal(t, "snow ☃", got)
}

func TestXMLString(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteXMLString(&buf, `a < b & "c"`))
	assert.Equal(t, "a &lt; b &amp; &quot;c&quot;", buf.String())

	got, err := ReadXMLString(reader(buf.String() + "</field>"))
	require.NoError(t, err)
	assert.Equal(t, `a < b & "c"`, got)
}

func TestReadToken(t *testing.T) {
	br := reader("12345,rest")
	got, err := ReadToken(br, ",")
	require.NoError(t, err)
	assert.Equal(t, "12345", got)

	got, err = ReadToken(reader("42\tnext"), "")
	require.NoError(t, err)
	assert.Equal(t, "42", got)

	got, err = ReadToken(reader("tail"), "")
	require.NoError(t, err)
	assert.Equal(t, "tail", got)
}

func TestAsBuffered(t *testing.T) {
	br := reader("x")
	assert.Same(t, br, AsBuffered(br))

	plain := strings.NewReader("y")
	wrapped := AsBuffered(plain)
	c, err := wrapped.ReadByte()
	require.NoError(t, err)
	assert.Equal(t, byte('y'), c)
}
