package datatype

import (
	"bufio"
	"io"
	"strconv"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/textio"
)

// BoolType is the boolean type, stored bit-packed in memory and as one byte
// per value on the wire.
type BoolType struct {
	BaseType
}

// NewBoolType creates the Bool descriptor
func NewBoolType() *BoolType {
	return &BoolType{NewBaseType("Bool")}
}

func (t *BoolType) CreateColumn() column.Column { return column.NewBoolColumn() }

func (t *BoolType) Default() interface{} { return false }

func (t *BoolType) SizeOfValueInMemory() (int, error) { return 1, nil }

func (t *BoolType) SerializeBinaryBulk(col column.Column, w io.Writer, offset, limit int) error {
	end := bulkEnd(col.Len(), offset, limit)
	buf := []byte{0}

	for i := offset; i < end; i++ {
		v, err := boolAt(col, i)
		if err != nil {
			return err
		}
		if v {
			buf[0] = 1
		} else {
			buf[0] = 0
		}
		if _, err := w.Write(buf); err != nil {
			return err
		}
	}
	return nil
}

func (t *BoolType) DeserializeBinaryBulk(col column.Column, r io.Reader, limit int, _ float64) error {
	buf := []byte{0}

	for i := 0; i < limit; i++ {
		if _, err := io.ReadFull(r, buf); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, errors.ErrorTypeData, "truncated Bool stream")
		}
		if err := col.Append(buf[0] != 0); err != nil {
			return err
		}
	}
	return nil
}

func (t *BoolType) SerializerFor(f TextFormat) (TextSerializer, bool) {
	switch f {
	case FormatEscaped, FormatQuoted, FormatCSV, FormatPlain, FormatJSON, FormatXML:
		return serializeBoolPlain, true
	default:
		return nil, false
	}
}

func (t *BoolType) DeserializerFor(f TextFormat) (TextDeserializer, bool) {
	switch f {
	case FormatEscaped, FormatPlain:
		return deserializeBoolToken(""), true
	case FormatQuoted:
		return deserializeBoolToken(",)"), true
	case FormatCSV:
		return deserializeBoolCSV, true
	case FormatJSON:
		return deserializeBoolToken(",}] "), true
	case FormatXML:
		return deserializeBoolToken("<"), true
	default:
		return nil, false
	}
}

func serializeBoolPlain(col column.Column, row int, w io.Writer, _ *FormatSettings) error {
	v, err := boolAt(col, row)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strconv.FormatBool(v))
	return err
}

func deserializeBoolToken(stops string) TextDeserializer {
	return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
		tok, err := textio.ReadToken(br, stops)
		if err != nil {
			return err
		}
		return appendBool(col, tok)
	}
}

func deserializeBoolCSV(col column.Column, br *bufio.Reader, settings *FormatSettings) error {
	tok, err := textio.ReadCSVString(br, settings.csvDelimiter())
	if err != nil {
		return err
	}
	return appendBool(col, tok)
}

func appendBool(col column.Column, tok string) error {
	v, err := strconv.ParseBool(tok)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "cannot parse Bool value")
	}
	return col.Append(v)
}

func boolAt(col column.Column, row int) (bool, error) {
	v, ok := col.Get(row).(bool)
	if !ok {
		return false, errors.Newf(errors.ErrorTypeLogical,
			"expected bool value at row %d, got %T", row, col.Get(row))
	}
	return v, nil
}
