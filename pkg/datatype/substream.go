package datatype

import (
	"strconv"
	"strings"

	"github.com/meridiandb/meridian/pkg/nameutil"
)

// SubstreamType identifies one step in the decomposition of a composite
// logical column into physical streams.
type SubstreamType int

const (
	// SubstreamNullMap is the null indicator stream of a Nullable layout
	SubstreamNullMap SubstreamType = iota
	// SubstreamArraySizes is the shared array-length stream
	SubstreamArraySizes
	// SubstreamArrayElements descends into the array element layout
	SubstreamArrayElements
	// SubstreamTupleElement descends into one named tuple field
	SubstreamTupleElement
	// SubstreamDictionaryKeys is the key stream of a dictionary-encoded layout
	SubstreamDictionaryKeys
)

// Substream is one element of a SubstreamPath. TupleElementName is set only
// for SubstreamTupleElement.
type Substream struct {
	Type             SubstreamType
	TupleElementName string
}

// SubstreamPath describes how a composite logical column decomposes into
// one physical stream: the ordered steps from the column's root type down
// to the stream being named.
type SubstreamPath []Substream

// TupleElement builds a tuple field path element
func TupleElement(name string) Substream {
	return Substream{Type: SubstreamTupleElement, TupleElementName: name}
}

// FileNameForStream produces the persisted stream identifier for a column
// and decomposition path. The naming is byte-exact stable: existing data is
// only readable as long as the same (name, path) pair keeps mapping to the
// same stream name. Distinct pairs never collide: tuple fields use the
// %2E dot encoding, which EscapeForFileName can never emit for a literal
// column name character.
func FileNameForStream(columnName string, path SubstreamPath) string {
	// Sizes of arrays of one nested structure are shared: all sibling
	// columns read their lengths from a single stream named after the
	// nested table. Sharing applies only at the first level.
	nestedTableName := nameutil.ExtractTableName(columnName)
	sizesOfNested := len(path) == 1 &&
		path[0].Type == SubstreamArraySizes &&
		nestedTableName != columnName

	name := columnName
	if sizesOfNested {
		name = nestedTableName
	}

	var sb strings.Builder
	sb.WriteString(nameutil.EscapeForFileName(name))

	arrayLevel := 0
	for _, elem := range path {
		switch elem.Type {
		case SubstreamNullMap:
			sb.WriteString(".null")
		case SubstreamArraySizes:
			sb.WriteString(".size")
			sb.WriteString(strconv.Itoa(arrayLevel))
		case SubstreamArrayElements:
			arrayLevel++
		case SubstreamTupleElement:
			// %2E instead of a dot: nested data may be stored not as an
			// array of tuples but as sibling array columns named a.b, and
			// that dotted name is escaped as a whole.
			sb.WriteString("%2E")
			sb.WriteString(nameutil.EscapeForFileName(elem.TupleElementName))
		case SubstreamDictionaryKeys:
			sb.WriteString(".dict")
		}
	}

	return sb.String()
}
