package datatype

import (
	"bufio"
	"io"
	"net/netip"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/textio"
)

// NewIPv4Type builds the IPv4 type: an Int64 storage layout decorated with
// dotted-quad text rendering. Binary bulk serialization and the fixed value
// size stay those of the base integer type; only the text formats change.
func NewIPv4Type() DataType {
	return AppendDomain(NewInt64Type(), NewIPv4Domain())
}

// NewIPv4Domain creates the domain decorating an integer type with IPv4
// text rendering in every format and direction.
func NewIPv4Domain() Domain {
	d := NewSerializationDomain("IPv4")

	d.WithSerializer(FormatEscaped, serializeIPv4With(writeRawString)).
		WithSerializer(FormatPlain, serializeIPv4With(writeRawString)).
		WithSerializer(FormatQuoted, serializeIPv4With(textio.WriteQuotedString)).
		WithSerializer(FormatCSV, serializeIPv4With(textio.WriteCSVString)).
		WithSerializer(FormatJSON, serializeIPv4With(textio.WriteJSONString)).
		WithSerializer(FormatXML, serializeIPv4With(textio.WriteXMLString))

	d.WithDeserializer(FormatEscaped, deserializeIPv4With(textio.ReadEscapedString)).
		WithDeserializer(FormatPlain, deserializeIPv4With(func(br *bufio.Reader) (string, error) {
			return textio.ReadToken(br, "")
		})).
		WithDeserializer(FormatQuoted, deserializeIPv4With(textio.ReadQuotedString)).
		WithDeserializer(FormatCSV, deserializeIPv4CSV).
		WithDeserializer(FormatJSON, deserializeIPv4With(textio.ReadJSONString)).
		WithDeserializer(FormatXML, deserializeIPv4With(textio.ReadXMLString))

	return d
}

func writeRawString(w io.Writer, s string) error {
	_, err := io.WriteString(w, s)
	return err
}

func serializeIPv4With(write func(io.Writer, string) error) TextSerializer {
	return func(col column.Column, row int, w io.Writer, _ *FormatSettings) error {
		v, err := int64At(col, row)
		if err != nil {
			return err
		}
		addr := netip.AddrFrom4([4]byte{
			byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v),
		})
		return write(w, addr.String())
	}
}

func deserializeIPv4With(read func(*bufio.Reader) (string, error)) TextDeserializer {
	return func(col column.Column, br *bufio.Reader, _ *FormatSettings) error {
		s, err := read(br)
		if err != nil {
			return err
		}
		return appendIPv4(col, s)
	}
}

func deserializeIPv4CSV(col column.Column, br *bufio.Reader, settings *FormatSettings) error {
	s, err := textio.ReadCSVString(br, settings.csvDelimiter())
	if err != nil {
		return err
	}
	return appendIPv4(col, s)
}

func appendIPv4(col column.Column, s string) error {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return errors.Wrap(err, errors.ErrorTypeData, "cannot parse IPv4 value")
	}
	if !addr.Is4() {
		return errors.Newf(errors.ErrorTypeData, "value %q is not an IPv4 address", s)
	}

	b := addr.As4()
	v := int64(b[0])<<24 | int64(b[1])<<16 | int64(b[2])<<8 | int64(b[3])
	return col.Append(v)
}
