package datatype

import (
	"bufio"
	"io"

	"github.com/meridiandb/meridian/pkg/column"
)

// TextFormat identifies one of the supported text wire formats.
type TextFormat int

const (
	// FormatEscaped is the tab-separated format with backslash escaping
	FormatEscaped TextFormat = iota
	// FormatQuoted is the SQL-literal format with single-quoted strings
	FormatQuoted
	// FormatCSV is RFC-style CSV with doubled double quotes
	FormatCSV
	// FormatPlain is the raw human-readable rendering without escaping
	FormatPlain
	// FormatJSON renders values as JSON literals
	FormatJSON
	// FormatXML renders values as XML character data
	FormatXML
)

// TextFormats lists every supported format, in declaration order.
var TextFormats = []TextFormat{
	FormatEscaped, FormatQuoted, FormatCSV, FormatPlain, FormatJSON, FormatXML,
}

func (f TextFormat) String() string {
	switch f {
	case FormatEscaped:
		return "escaped"
	case FormatQuoted:
		return "quoted"
	case FormatCSV:
		return "csv"
	case FormatPlain:
		return "plain"
	case FormatJSON:
		return "json"
	case FormatXML:
		return "xml"
	default:
		return "unknown"
	}
}

// TextSerializer writes the value at row of col to w in one text format.
// Settings are read-only; a nil settings means defaults.
type TextSerializer func(col column.Column, row int, w io.Writer, settings *FormatSettings) error

// TextDeserializer reads one value from r and appends it to col.
type TextDeserializer func(col column.Column, r *bufio.Reader, settings *FormatSettings) error
