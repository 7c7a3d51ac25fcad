// Package nameutil provides the identifier encodings used for persisted
// stream names: file-name escaping and the dotted naming convention for
// nested structures.
package nameutil

import "strings"

const hexDigits = "0123456789ABCDEF"

// EscapeForFileName encodes an identifier so it is safe to use as a file
// name. Bytes outside [A-Za-z0-9_] become %XX with uppercase hex. The
// encoding is injective, which the stream naming contract relies on.
func EscapeForFileName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '_' ||
			(c >= 'a' && c <= 'z') ||
			(c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('%')
			sb.WriteByte(hexDigits[c>>4])
			sb.WriteByte(hexDigits[c&0x0F])
		}
	}

	return sb.String()
}

// UnescapeForFileName reverses EscapeForFileName. Malformed %-sequences are
// kept verbatim.
func UnescapeForFileName(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if c == '%' && i+2 < len(s) {
			hi := hexValue(s[i+1])
			lo := hexValue(s[i+2])
			if hi >= 0 && lo >= 0 {
				sb.WriteByte(byte(hi<<4 | lo))
				i += 2
				continue
			}
		}
		sb.WriteByte(c)
	}

	return sb.String()
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	default:
		return -1
	}
}

// SplitName splits a column name of the form "table.element" at the first
// dot. Names without a dot, or where either side would be empty, are
// returned whole with an empty element part.
func SplitName(name string) (table, element string) {
	idx := strings.IndexByte(name, '.')
	if idx <= 0 || idx+1 >= len(name) {
		return name, ""
	}
	return name[:idx], name[idx+1:]
}

// ExtractTableName returns the nested table part of a column name: "a.b"
// yields "a", a plain name yields itself.
func ExtractTableName(name string) string {
	table, _ := SplitName(name)
	return table
}

// ExtractElementName returns the field part of a nested column name: "a.b"
// yields "b", a plain name yields the empty string.
func ExtractElementName(name string) string {
	_, element := SplitName(name)
	return element
}

// IsNested reports whether the column name belongs to a nested structure.
func IsNested(name string) bool {
	return ExtractTableName(name) != name
}

// ConcatNames joins a nested table name and an element name back into the
// dotted form.
func ConcatNames(table, element string) string {
	if element == "" {
		return table
	}
	return table + "." + element
}
