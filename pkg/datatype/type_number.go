package datatype

import (
	"bufio"
	"encoding/binary"
	"io"
	"math"
	"strconv"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/textio"
)

// Int64Type is the 64-bit signed integer type.
type Int64Type struct {
	BaseType
}

// NewInt64Type creates the Int64 descriptor
func NewInt64Type() *Int64Type {
	return &Int64Type{NewBaseType("Int64")}
}

func (t *Int64Type) CreateColumn() column.Column { return column.NewInt64Column() }

func (t *Int64Type) Default() interface{} { return int64(0) }

func (t *Int64Type) SizeOfValueInMemory() (int, error) { return 8, nil }

// PromoteNumericType returns the widest integer type, which Int64 already is
func (t *Int64Type) PromoteNumericType() (DataType, error) {
	return t, nil
}

func (t *Int64Type) SerializeBinaryBulk(col column.Column, w io.Writer, offset, limit int) error {
	end := bulkEnd(col.Len(), offset, limit)
	var buf [8]byte

	for i := offset; i < end; i++ {
		v, err := int64At(col, i)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(buf[:], uint64(v))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Int64Type) DeserializeBinaryBulk(col column.Column, r io.Reader, limit int, _ float64) error {
	var buf [8]byte

	for i := 0; i < limit; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, errors.ErrorTypeData, "truncated Int64 stream")
		}
		if err := col.Append(int64(binary.LittleEndian.Uint64(buf[:]))); err != nil {
			return err
		}
	}
	return nil
}

func (t *Int64Type) SerializerFor(f TextFormat) (TextSerializer, bool) {
	switch f {
	case FormatEscaped, FormatQuoted, FormatCSV, FormatPlain, FormatXML:
		return serializeInt64Plain, true
	case FormatJSON:
		return serializeInt64JSON, true
	default:
		return nil, false
	}
}

func (t *Int64Type) DeserializerFor(f TextFormat) (TextDeserializer, bool) {
	switch f {
	case FormatEscaped, FormatPlain:
		return deserializeInt64Token(""), true
	case FormatQuoted:
		return deserializeInt64Token(",)"), true
	case FormatCSV:
		return deserializeInt64CSV, true
	case FormatJSON:
		return deserializeInt64JSON, true
	case FormatXML:
		return deserializeInt64Token("<"), true
	default:
		return nil, false
	}
}

func serializeInt64Plain(col column.Column, row int, w io.Writer, _ *FormatSettings) error {
	v, err := int64At(col, row)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strconv.FormatInt(v, 10))
	return err
}

// serializeInt64JSON quotes the value by default so JSON consumers without
// 64-bit integers do not silently lose precision
func serializeInt64JSON(col column.Column, row int, w io.Writer, settings *FormatSettings) error {
	v, err := int64At(col, row)
	if err != nil {
		return err
	}
	s := strconv.FormatInt(v, 10)
	if settings.quote64BitIntegers() {
		s = `"` + s + `"`
	}
	_, err = io.WriteString(w, s)
	return err
}

func deserializeInt64Token(stops string) TextDeserializer {
	return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
		tok, err := textio.ReadToken(br, stops)
		if err != nil {
			return err
		}
		return appendInt64(col, tok)
	}
}

func deserializeInt64CSV(col column.Column, br *bufio.Reader, settings *FormatSettings) error {
	tok, err := textio.ReadCSVString(br, settings.csvDelimiter())
	if err != nil {
		return err
	}
	return appendInt64(col, tok)
}

func deserializeInt64JSON(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
	tok, err := jsonScalarToken(br)
	if err != nil {
		return err
	}
	return appendInt64(col, tok)
}

func appendInt64(col column.Column, tok string) error {
	v, err := strconv.ParseInt(tok, 10, 64)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "cannot parse Int64 value")
	}
	return col.Append(v)
}

func int64At(col column.Column, row int) (int64, error) {
	v, ok := col.Get(row).(int64)
	if !ok {
		return 0, errors.Newf(errors.ErrorTypeLogical,
			"expected int64 value at row %d, got %T", row, col.Get(row))
	}
	return v, nil
}

// Float64Type is the 64-bit floating point type.
type Float64Type struct {
	BaseType
}

// NewFloat64Type creates the Float64 descriptor
func NewFloat64Type() *Float64Type {
	return &Float64Type{NewBaseType("Float64")}
}

func (t *Float64Type) CreateColumn() column.Column { return column.NewFloat64Column() }

func (t *Float64Type) Default() interface{} { return float64(0) }

func (t *Float64Type) SizeOfValueInMemory() (int, error) { return 8, nil }

// PromoteNumericType returns the widest float type, which Float64 already is
func (t *Float64Type) PromoteNumericType() (DataType, error) {
	return t, nil
}

func (t *Float64Type) SerializeBinaryBulk(col column.Column, w io.Writer, offset, limit int) error {
	end := bulkEnd(col.Len(), offset, limit)
	var buf [8]byte

	for i := offset; i < end; i++ {
		v, err := float64At(col, i)
		if err != nil {
			return err
		}
		binary.LittleEndian.PutUint64(buf[:], math.Float64bits(v))
		if _, err := w.Write(buf[:]); err != nil {
			return err
		}
	}
	return nil
}

func (t *Float64Type) DeserializeBinaryBulk(col column.Column, r io.Reader, limit int, _ float64) error {
	var buf [8]byte

	for i := 0; i < limit; i++ {
		if _, err := io.ReadFull(r, buf[:]); err != nil {
			if err == io.EOF {
				return nil
			}
			return errors.Wrap(err, errors.ErrorTypeData, "truncated Float64 stream")
		}
		if err := col.Append(math.Float64frombits(binary.LittleEndian.Uint64(buf[:]))); err != nil {
			return err
		}
	}
	return nil
}

func (t *Float64Type) SerializerFor(f TextFormat) (TextSerializer, bool) {
	switch f {
	case FormatEscaped, FormatQuoted, FormatCSV, FormatPlain, FormatJSON, FormatXML:
		return serializeFloat64Plain, true
	default:
		return nil, false
	}
}

func (t *Float64Type) DeserializerFor(f TextFormat) (TextDeserializer, bool) {
	switch f {
	case FormatEscaped, FormatPlain:
		return deserializeFloat64Token(""), true
	case FormatQuoted:
		return deserializeFloat64Token(",)"), true
	case FormatCSV:
		return deserializeFloat64CSV, true
	case FormatJSON:
		return deserializeFloat64JSON, true
	case FormatXML:
		return deserializeFloat64Token("<"), true
	default:
		return nil, false
	}
}

func serializeFloat64Plain(col column.Column, row int, w io.Writer, _ *FormatSettings) error {
	v, err := float64At(col, row)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, strconv.FormatFloat(v, 'g', -1, 64))
	return err
}

func deserializeFloat64Token(stops string) TextDeserializer {
	return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
		tok, err := textio.ReadToken(br, stops)
		if err != nil {
			return err
		}
		return appendFloat64(col, tok)
	}
}

func deserializeFloat64CSV(col column.Column, br *bufio.Reader, settings *FormatSettings) error {
	tok, err := textio.ReadCSVString(br, settings.csvDelimiter())
	if err != nil {
		return err
	}
	return appendFloat64(col, tok)
}

func deserializeFloat64JSON(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
	tok, err := jsonScalarToken(br)
	if err != nil {
		return err
	}
	return appendFloat64(col, tok)
}

func appendFloat64(col column.Column, tok string) error {
	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "cannot parse Float64 value")
	}
	return col.Append(v)
}

func float64At(col column.Column, row int) (float64, error) {
	v, ok := col.Get(row).(float64)
	if !ok {
		return 0, errors.Newf(errors.ErrorTypeLogical,
			"expected float64 value at row %d, got %T", row, col.Get(row))
	}
	return v, nil
}

// jsonScalarToken reads one JSON scalar: a quoted string is decoded, an
// unquoted number/literal is read up to the surrounding JSON punctuation.
func jsonScalarToken(br *bufio.Reader) (string, error) {
	peek, err := br.Peek(1)
	if err != nil {
		return "", err
	}
	if peek[0] == '"' {
		return textio.ReadJSONString(br)
	}
	return textio.ReadToken(br, ",}] ")
}
