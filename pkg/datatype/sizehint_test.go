package datatype

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridiandb/meridian/pkg/column"
)

// stringColumnOf builds a column with rows values of valueSize bytes each
func stringColumnOf(t *testing.T, rows, valueSize int) column.Column {
	t.Helper()
	col := column.NewStringColumn()
	for i := 0; i < rows; i++ {
		require.NoError(t, col.Append(strings.Repeat("x", valueSize)))
	}
	return col
}

func TestSizeHintIgnoresSmallColumns(t *testing.T) {
	hint := 42.0
	UpdateAvgValueSizeHint(stringColumnOf(t, 10, 500), &hint)
	assert.Equal(t, 42.0, hint)

	UpdateAvgValueSizeHint(stringColumnOf(t, 1, 500), &hint)
	assert.Equal(t, 42.0, hint)
}

func TestSizeHintJumpsUp(t *testing.T) {
	// 20 rows, 100 bytes/row average (84 payload + 16 header overhead)
	col := stringColumnOf(t, 20, 84)
	require.Equal(t, int64(2000), col.ByteSize())

	hint := 0.0
	UpdateAvgValueSizeHint(col, &hint)
	assert.Equal(t, 100.0, hint)
}

func TestSizeHintJumpClampedAt1024(t *testing.T) {
	col := stringColumnOf(t, 20, 5000)

	hint := 10.0
	UpdateAvgValueSizeHint(col, &hint)
	assert.Equal(t, 1024.0, hint)
}

func TestSizeHintDecaysSlowly(t *testing.T) {
	hint := 100.0
	// 20 rows averaging 20 bytes: below half the hint, so one decay step
	col := stringColumnOf(t, 20, 4)
	require.Equal(t, int64(400), col.ByteSize())

	UpdateAvgValueSizeHint(col, &hint)
	assert.Equal(t, 80.0, hint) // (20 + 3*100) / 4
}

func TestSizeHintStableInDeadBand(t *testing.T) {
	// Between half the hint and the hint itself nothing changes
	hint := 100.0
	col := stringColumnOf(t, 20, 44) // 60 bytes/row average
	UpdateAvgValueSizeHint(col, &hint)
	assert.Equal(t, 100.0, hint)

	// Equal average is not a growth either
	col = stringColumnOf(t, 20, 84) // exactly 100 bytes/row
	UpdateAvgValueSizeHint(col, &hint)
	assert.Equal(t, 100.0, hint)
}

func TestSizeHintSequence(t *testing.T) {
	hint := 0.0

	UpdateAvgValueSizeHint(stringColumnOf(t, 20, 84), &hint) // 100 bytes/row
	assert.Equal(t, 100.0, hint)

	UpdateAvgValueSizeHint(stringColumnOf(t, 20, 4), &hint) // 20 bytes/row
	assert.Equal(t, 80.0, hint)

	assert.GreaterOrEqual(t, hint, 0.0)
	assert.LessOrEqual(t, hint, 1024.0)
}
