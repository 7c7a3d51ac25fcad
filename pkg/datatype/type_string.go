package datatype

import (
	"bufio"
	"encoding/binary"
	"io"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/textio"
)

// StringType is the variable-width string type. Values have no fixed
// in-memory size and do not promote.
type StringType struct {
	BaseType
}

// NewStringType creates the String descriptor
func NewStringType() *StringType {
	return &StringType{NewBaseType("String")}
}

func (t *StringType) CreateColumn() column.Column { return column.NewStringColumn() }

func (t *StringType) Default() interface{} { return "" }

// SerializeBinaryBulk writes values as uvarint length followed by raw bytes
func (t *StringType) SerializeBinaryBulk(col column.Column, w io.Writer, offset, limit int) error {
	end := bulkEnd(col.Len(), offset, limit)
	var lenBuf [binary.MaxVarintLen64]byte

	for i := offset; i < end; i++ {
		s, err := stringAt(col, i)
		if err != nil {
			return err
		}
		n := binary.PutUvarint(lenBuf[:], uint64(len(s)))
		if _, err := w.Write(lenBuf[:n]); err != nil {
			return err
		}
		if _, err := io.WriteString(w, s); err != nil {
			return err
		}
	}
	return nil
}

// DeserializeBinaryBulk reads up to limit length-prefixed values. A clean
// EOF on a value boundary ends the read early; the size hint pre-sizes the
// scratch buffer.
func (t *StringType) DeserializeBinaryBulk(col column.Column, r io.Reader, limit int, avgValueSizeHint float64) error {
	br := textio.AsBuffered(r)

	scratch := make([]byte, 0, int(avgValueSizeHint))
	for i := 0; i < limit; i++ {
		n, err := binary.ReadUvarint(br)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "corrupt string stream")
		}

		if uint64(cap(scratch)) < n {
			scratch = make([]byte, n)
		}
		scratch = scratch[:n]
		if _, err := io.ReadFull(br, scratch); err != nil {
			return errors.Wrap(err, errors.ErrorTypeData, "truncated string stream")
		}
		if err := col.Append(string(scratch)); err != nil {
			return err
		}
	}
	return nil
}

func (t *StringType) SerializerFor(f TextFormat) (TextSerializer, bool) {
	switch f {
	case FormatEscaped:
		return serializeStringWith(textio.WriteEscapedString), true
	case FormatQuoted:
		return serializeStringWith(textio.WriteQuotedString), true
	case FormatCSV:
		return serializeStringWith(textio.WriteCSVString), true
	case FormatPlain:
		return serializeStringWith(func(w io.Writer, s string) error {
			_, err := io.WriteString(w, s)
			return err
		}), true
	case FormatJSON:
		return serializeStringWith(textio.WriteJSONString), true
	case FormatXML:
		return serializeStringWith(textio.WriteXMLString), true
	default:
		return nil, false
	}
}

func (t *StringType) DeserializerFor(f TextFormat) (TextDeserializer, bool) {
	switch f {
	case FormatEscaped:
		return deserializeStringWith(textio.ReadEscapedString), true
	case FormatQuoted:
		return deserializeStringWith(textio.ReadQuotedString), true
	case FormatCSV:
		return func(col column.Column, br *bufio.Reader, settings *FormatSettings) error {
			s, err := textio.ReadCSVString(br, settings.csvDelimiter())
			if err != nil {
				return err
			}
			return col.Append(s)
		}, true
	case FormatPlain:
		// Plain text has no delimiters, so the whole remaining input is the value
		return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
			data, err := io.ReadAll(br)
			if err != nil {
				return err
			}
			return col.Append(string(data))
		}, true
	case FormatJSON:
		return deserializeStringWith(textio.ReadJSONString), true
	case FormatXML:
		return deserializeStringWith(textio.ReadXMLString), true
	default:
		return nil, false
	}
}

func serializeStringWith(write func(io.Writer, string) error) TextSerializer {
	return func(col column.Column, row int, w io.Writer, _ *FormatSettings) error {
		s, err := stringAt(col, row)
		if err != nil {
			return err
		}
		return write(w, s)
	}
}

func deserializeStringWith(read func(*bufio.Reader) (string, error)) TextDeserializer {
	return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
		s, err := read(br)
		if err != nil {
			return err
		}
		return col.Append(s)
	}
}

func stringAt(col column.Column, row int) (string, error) {
	s, ok := col.Get(row).(string)
	if !ok {
		return "", errors.Newf(errors.ErrorTypeLogical,
			"expected string value at row %d, got %T", row, col.Get(row))
	}
	return s, nil
}

// bulkEnd clamps an (offset, limit) window to the column length; a zero
// limit means everything from offset on.
func bulkEnd(length, offset, limit int) int {
	if limit == 0 || offset+limit > length {
		return length
	}
	return offset + limit
}
