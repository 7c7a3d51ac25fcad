package datatype

import (
	"io"

	"github.com/meridiandb/meridian/pkg/column"
	"github.com/meridiandb/meridian/pkg/errors"
	"github.com/meridiandb/meridian/pkg/metrics"
	"github.com/meridiandb/meridian/pkg/textio"
)

// SerializeText writes the value at row of col to w in the given format.
// The attached domains are consulted in order; the first one implementing
// the exact format and direction performs the operation exclusively,
// otherwise the descriptor's own capability table is used. There is no
// further fallback: a format the type does not implement is a
// not_supported error.
func SerializeText(dt DataType, f TextFormat, col column.Column, row int, w io.Writer, settings *FormatSettings) error {
	for _, d := range dt.Domains() {
		if fn, ok := d.SerializerFor(f); ok {
			return countText(f, "serialize", "domain", fn(col, row, w, settings))
		}
	}
	if fn, ok := dt.SerializerFor(f); ok {
		return countText(f, "serialize", "type", fn(col, row, w, settings))
	}

	metrics.SerializationErrors.WithLabelValues(f.String(), "serialize").Inc()
	return errors.Newf(errors.ErrorTypeNotSupported,
		"data type %s does not support %s serialization", dt.Name(), f)
}

// DeserializeText reads one value in the given format from r and appends it
// to col, with the same domain-first resolution as SerializeText.
func DeserializeText(dt DataType, f TextFormat, col column.Column, r io.Reader, settings *FormatSettings) error {
	br := textio.AsBuffered(r)

	for _, d := range dt.Domains() {
		if fn, ok := d.DeserializerFor(f); ok {
			return countText(f, "deserialize", "domain", fn(col, br, settings))
		}
	}
	if fn, ok := dt.DeserializerFor(f); ok {
		return countText(f, "deserialize", "type", fn(col, br, settings))
	}

	metrics.SerializationErrors.WithLabelValues(f.String(), "deserialize").Inc()
	return errors.Newf(errors.ErrorTypeNotSupported,
		"data type %s does not support %s deserialization", dt.Name(), f)
}

func countText(f TextFormat, direction, origin string, err error) error {
	metrics.SerializationOps.WithLabelValues(f.String(), direction, origin).Inc()
	if err != nil {
		metrics.SerializationErrors.WithLabelValues(f.String(), direction).Inc()
	}
	return err
}
