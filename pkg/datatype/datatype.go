// Package datatype defines the type-descriptor contract of the Meridian
// engine: per-type identity, defaults, column construction, substream
// naming for decomposed layouts, and pluggable serialization across binary
// and text formats.
//
// A DataType is built once, optionally decorated with domains, and then
// shared read-only across the process. Nothing in this package mutates a
// descriptor after construction; decoration produces a new descriptor.
package datatype

import (
	"io"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
)

// DataType describes one logical data type: its canonical name, its default
// value, how to build in-memory columns for it, and how its values are
// encoded on each supported wire format.
//
// SerializerFor and DeserializerFor expose the type's own per-format
// capability table; absence of a format is an (nil, false) answer, not an
// error. Callers should serialize through SerializeText/DeserializeText,
// which also consult the attached domains.
type DataType interface {
	// FamilyName returns the type family identifier, e.g. "Int64"
	FamilyName() string
	// Name returns the display name: the outermost domain's name when the
	// descriptor is decorated, the family-derived name otherwise. It is
	// stable for the process lifetime and usable as a persisted schema
	// identifier.
	Name() string
	// Domains returns the attached decoration chain, outermost first. It is
	// nil for an undecorated descriptor.
	Domains() []Domain

	// CreateColumn builds an empty column for this type
	CreateColumn() column.Column
	// Default returns the type's canonical default value
	Default() interface{}
	// InsertDefaultInto appends the default value to the column
	InsertDefaultInto(col column.Column)

	// PromoteNumericType returns a descriptor of the wider numeric type for
	// overflow-safe aggregation. Types with no wider representation fail
	// with a cannot_promote error.
	PromoteNumericType() (DataType, error)

	// SerializeBinaryBulk writes limit values starting at offset to w.
	// Types whose physical layout spans several substreams fail with a
	// multiple_streams_required error and must be written stream by stream.
	SerializeBinaryBulk(col column.Column, w io.Writer, offset, limit int) error
	// DeserializeBinaryBulk reads up to limit values from r into col. The
	// avgValueSizeHint lets variable-width readers pre-size their buffers.
	DeserializeBinaryBulk(col column.Column, r io.Reader, limit int, avgValueSizeHint float64) error

	// SizeOfValueInMemory returns the fixed per-value size in bytes.
	// Variable-width types fail with a logical error.
	SizeOfValueInMemory() (int, error)

	// SerializerFor returns the type's own serializer for the format
	SerializerFor(f TextFormat) (TextSerializer, bool)
	// DeserializerFor returns the type's own deserializer for the format
	DeserializerFor(f TextFormat) (TextDeserializer, bool)
}

// BaseType carries the behaviors every descriptor starts from: name
// resolution from the family, no domains, no text capabilities, and the
// failing defaults for the optional operations. Leaf types embed it and
// override what they support; CreateColumn and Default stay theirs to
// provide.
type BaseType struct {
	family string
}

// NewBaseType creates the embeddable base for a type family
func NewBaseType(family string) BaseType {
	return BaseType{family: family}
}

func (t BaseType) FamilyName() string { return t.family }

func (t BaseType) Name() string { return t.family }

func (t BaseType) Domains() []Domain { return nil }

// InsertDefaultInto appends the column's own default value. Types whose
// default needs special construction override this.
func (t BaseType) InsertDefaultInto(col column.Column) {
	col.AppendDefault()
}

func (t BaseType) PromoteNumericType() (DataType, error) {
	return nil, errors.Newf(errors.ErrorTypeCannotPromote,
		"data type %s cannot be promoted", t.family)
}

func (t BaseType) SerializeBinaryBulk(column.Column, io.Writer, int, int) error {
	return errors.Newf(errors.ErrorTypeMultipleStreams,
		"data type %s must be serialized with multiple streams", t.family)
}

func (t BaseType) DeserializeBinaryBulk(column.Column, io.Reader, int, float64) error {
	return errors.Newf(errors.ErrorTypeMultipleStreams,
		"data type %s must be deserialized with multiple streams", t.family)
}

func (t BaseType) SizeOfValueInMemory() (int, error) {
	return 0, errors.Newf(errors.ErrorTypeLogical,
		"value of type %s in memory is not of fixed size", t.family)
}

func (t BaseType) SerializerFor(TextFormat) (TextSerializer, bool) {
	return nil, false
}

func (t BaseType) DeserializerFor(TextFormat) (TextDeserializer, bool) {
	return nil, false
}

// CreateColumnConst builds a constant-run column of logical length size
// whose every row reads as value. The value is materialized once; the run
// shares it.
func CreateColumnConst(dt DataType, size int, value interface{}) (column.Column, error) {
	data := dt.CreateColumn()
	if err := data.Append(value); err != nil {
		return nil, errors.Wrap(err, errors.ErrorTypeData,
			"cannot build const column for type "+dt.Name())
	}
	cc, err := column.NewConst(data, size)
	if err != nil {
		return nil, err
	}
	return cc, nil
}

// CreateColumnConstWithDefaultValue builds a constant-run column of the
// type's default value.
func CreateColumnConstWithDefaultValue(dt DataType, size int) (column.Column, error) {
	data := dt.CreateColumn()
	dt.InsertDefaultInto(data)
	cc, err := column.NewConst(data, size)
	if err != nil {
		return nil, err
	}
	return cc, nil
}
