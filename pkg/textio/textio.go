// Package textio provides the low-level value encodings shared by text
// formats: escaped (tab-separated), quoted, CSV, JSON and XML string
// conventions, plus token readers for parsing them back.
package textio

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	gojson "github.com/goccy/go-json"
)

// AsBuffered returns r as a *bufio.Reader, reusing it when it already is one.
// Text deserializers need lookahead of a single byte, so all parsing goes
// through a buffered reader.
func AsBuffered(r io.Reader) *bufio.Reader {
	if br, ok := r.(*bufio.Reader); ok {
		return br
	}
	return bufio.NewReader(r)
}

// WriteEscapedString writes s with tab-separated escaping: control
// characters and backslashes become backslash sequences.
func WriteEscapedString(w io.Writer, s string) error {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\b':
			sb.WriteString(`\b`)
		case '\f':
			sb.WriteString(`\f`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadEscapedString reads an escaped string until an unescaped tab, newline
// or EOF. The stopping byte is not consumed.
func ReadEscapedString(br *bufio.Reader) (string, error) {
	var sb strings.Builder

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}

		switch c {
		case '\t', '\n':
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			return sb.String(), nil
		case '\\':
			esc, err := br.ReadByte()
			if err == io.EOF {
				sb.WriteByte('\\')
				return sb.String(), nil
			}
			if err != nil {
				return "", err
			}
			sb.WriteByte(unescapeByte(esc))
		default:
			sb.WriteByte(c)
		}
	}
}

func unescapeByte(c byte) byte {
	switch c {
	case 't':
		return '\t'
	case 'n':
		return '\n'
	case 'r':
		return '\r'
	case 'b':
		return '\b'
	case 'f':
		return '\f'
	case '0':
		return 0
	default:
		return c
	}
}

// WriteQuotedString writes s in single quotes with backslash escaping.
func WriteQuotedString(w io.Writer, s string) error {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('\'')

	for i := 0; i < len(s); i++ {
		switch c := s[i]; c {
		case '\'':
			sb.WriteString(`\'`)
		case '\\':
			sb.WriteString(`\\`)
		case '\t':
			sb.WriteString(`\t`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case 0:
			sb.WriteString(`\0`)
		default:
			sb.WriteByte(c)
		}
	}

	sb.WriteByte('\'')
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadQuotedString reads a single-quoted string with backslash escaping.
func ReadQuotedString(br *bufio.Reader) (string, error) {
	c, err := br.ReadByte()
	if err != nil {
		return "", err
	}
	if c != '\'' {
		return "", fmt.Errorf("expected opening single quote, got %q", c)
	}

	var sb strings.Builder
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("unterminated quoted string: %w", err)
		}

		switch c {
		case '\'':
			return sb.String(), nil
		case '\\':
			esc, err := br.ReadByte()
			if err != nil {
				return "", fmt.Errorf("unterminated quoted string: %w", err)
			}
			if esc == '\'' {
				sb.WriteByte('\'')
			} else {
				sb.WriteByte(unescapeByte(esc))
			}
		default:
			sb.WriteByte(c)
		}
	}
}

// WriteCSVString writes s double-quoted, doubling embedded quotes.
func WriteCSVString(w io.Writer, s string) error {
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	sb.WriteByte('"')

	for i := 0; i < len(s); i++ {
		if s[i] == '"' {
			sb.WriteString(`""`)
		} else {
			sb.WriteByte(s[i])
		}
	}

	sb.WriteByte('"')
	_, err := io.WriteString(w, sb.String())
	return err
}

// ReadCSVString reads a CSV field. Quoted fields use doubled quotes;
// unquoted fields end at the delimiter, newline or EOF without consuming
// the stopping byte.
func ReadCSVString(br *bufio.Reader, delimiter byte) (string, error) {
	c, err := br.ReadByte()
	if err == io.EOF {
		return "", nil
	}
	if err != nil {
		return "", err
	}

	var sb strings.Builder

	if c == '"' {
		for {
			c, err := br.ReadByte()
			if err != nil {
				return "", fmt.Errorf("unterminated CSV field: %w", err)
			}
			if c != '"' {
				sb.WriteByte(c)
				continue
			}
			next, err := br.ReadByte()
			if err == io.EOF {
				return sb.String(), nil
			}
			if err != nil {
				return "", err
			}
			if next == '"' {
				sb.WriteByte('"')
				continue
			}
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
	}

	for {
		if c == delimiter || c == '\n' || c == '\r' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteByte(c)

		c, err = br.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
	}
}

// WriteJSONString writes s as a JSON string literal.
func WriteJSONString(w io.Writer, s string) error {
	data, err := gojson.Marshal(s)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}

// ReadJSONString reads a JSON string literal and decodes its escapes.
func ReadJSONString(br *bufio.Reader) (string, error) {
	c, err := br.ReadByte()
	if err != nil {
		return "", err
	}
	if c != '"' {
		return "", fmt.Errorf("expected opening double quote, got %q", c)
	}

	raw := []byte{'"'}
	escaped := false
	for {
		c, err := br.ReadByte()
		if err != nil {
			return "", fmt.Errorf("unterminated JSON string: %w", err)
		}
		raw = append(raw, c)

		if escaped {
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '"' {
			break
		}
	}

	var s string
	if err := gojson.Unmarshal(raw, &s); err != nil {
		return "", fmt.Errorf("invalid JSON string: %w", err)
	}
	return s, nil
}

// WriteXMLString writes s with XML character entity escaping.
func WriteXMLString(w io.Writer, s string) error {
	replacer := strings.NewReplacer(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
		"'", "&apos;",
		`"`, "&quot;",
	)
	_, err := io.WriteString(w, replacer.Replace(s))
	return err
}

// ReadXMLString reads XML character data until a tag opens, decoding the
// standard entities.
func ReadXMLString(br *bufio.Reader) (string, error) {
	var sb strings.Builder

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", err
		}
		if c == '<' {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			break
		}
		sb.WriteByte(c)
	}

	replacer := strings.NewReplacer(
		"&lt;", "<",
		"&gt;", ">",
		"&apos;", "'",
		"&quot;", `"`,
		"&amp;", "&",
	)
	return replacer.Replace(sb.String()), nil
}

// ReadToken reads characters until one of the stop bytes, a control
// delimiter (tab, newline, carriage return) or EOF. The stopping byte is
// not consumed. Numeric parsers use it to capture one value from a row.
func ReadToken(br *bufio.Reader, stops string) (string, error) {
	var sb strings.Builder

	for {
		c, err := br.ReadByte()
		if err == io.EOF {
			return sb.String(), nil
		}
		if err != nil {
			return "", err
		}
		if c == '\t' || c == '\n' || c == '\r' || strings.IndexByte(stops, c) >= 0 {
			if err := br.UnreadByte(); err != nil {
				return "", err
			}
			return sb.String(), nil
		}
		sb.WriteByte(c)
	}
}
