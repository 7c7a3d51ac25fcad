package datatype

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridiandb/meridian/pkg/errors"
)

const localhostV4 = int64(0x7F000001) // 127.0.0.1

func TestIPv4TypeName(t *testing.T) {
	dt := NewIPv4Type()
	assert.Equal(t, "IPv4", dt.Name())
	assert.Equal(t, "Int64", dt.FamilyName())
}

func TestIPv4TextFormats(t *testing.T) {
	dt := NewIPv4Type()
	col := dt.CreateColumn()
	require.NoError(t, col.Append(localhostV4))

	tests := []struct {
		format TextFormat
		want   string
	}{
		{FormatEscaped, "127.0.0.1"},
		{FormatPlain, "127.0.0.1"},
		{FormatQuoted, "'127.0.0.1'"},
		{FormatCSV, `"127.0.0.1"`},
		{FormatJSON, `"127.0.0.1"`},
		{FormatXML, "127.0.0.1"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, serializeToString(t, dt, tt.format, col, 0, nil),
			"format %s", tt.format)
	}
}

func TestIPv4RoundTrips(t *testing.T) {
	dt := NewIPv4Type()

	for _, f := range TextFormats {
		src := dt.CreateColumn()
		require.NoError(t, src.Append(int64(0xC0A80001))) // 192.168.0.1

		var buf bytes.Buffer
		require.NoError(t, SerializeText(dt, f, src, 0, &buf, nil))

		dst := dt.CreateColumn()
		require.NoError(t, DeserializeText(dt, f, dst, &buf, nil), "format %s", f)
		assert.Equal(t, int64(0xC0A80001), dst.Get(0), "format %s", f)
	}
}

func TestIPv4RejectsBadInput(t *testing.T) {
	dt := NewIPv4Type()
	col := dt.CreateColumn()

	err := DeserializeText(dt, FormatEscaped, col, strings.NewReader("not-an-ip"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))

	err = DeserializeText(dt, FormatEscaped, col, strings.NewReader("::1"), nil)
	require.Error(t, err)
	assert.True(t, errors.IsType(err, errors.ErrorTypeData))
}

func TestIPv4KeepsBaseBinaryAndSizing(t *testing.T) {
	dt := NewIPv4Type()

	// The domain only decorates text rendering; the storage contract stays
	// the base integer type's
	size, err := dt.SizeOfValueInMemory()
	require.NoError(t, err)
	assert.Equal(t, 8, size)

	src := dt.CreateColumn()
	require.NoError(t, src.Append(localhostV4))

	var buf bytes.Buffer
	require.NoError(t, dt.SerializeBinaryBulk(src, &buf, 0, 0))
	assert.Equal(t, 8, buf.Len())

	dst := dt.CreateColumn()
	require.NoError(t, dt.DeserializeBinaryBulk(dst, &buf, 1, 0))
	assert.Equal(t, localhostV4, dst.Get(0))
}
