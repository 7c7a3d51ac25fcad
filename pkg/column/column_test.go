package column

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringColumn(t *testing.T) {
	col := NewStringColumn()

	require.NoError(t, col.Append("hello"))
	require.NoError(t, col.Append("world"))
	col.AppendDefault()

	assert.Equal(t, 3, col.Len())
	assert.Equal(t, "hello", col.Get(0))
	assert.Equal(t, "world", col.Get(1))
	assert.Equal(t, "", col.Get(2))
	assert.Greater(t, col.ByteSize(), int64(0))

	assert.Error(t, col.Append(42))

	col.Clear()
	assert.Equal(t, 0, col.Len())
}

func TestStringColumnDictionaryMode(t *testing.T) {
	col := NewStringColumn()

	// Highly repetitive values trigger the dictionary switch past 100 rows
	for i := 0; i < 200; i++ {
		require.NoError(t, col.Append(fmt.Sprintf("v%d", i%3)))
	}

	assert.True(t, col.dictMode)
	assert.Equal(t, 200, col.Len())
	for i := 0; i < 200; i++ {
		assert.Equal(t, fmt.Sprintf("v%d", i%3), col.Get(i))
	}

	// Appending in dictionary mode keeps working for old and new values
	require.NoError(t, col.Append("v0"))
	require.NoError(t, col.Append("fresh"))
	assert.Equal(t, "fresh", col.Get(201))
}

func TestInt64Column(t *testing.T) {
	col := NewInt64Column()

	require.NoError(t, col.Append(int64(5)))
	require.NoError(t, col.Append(3))
	require.NoError(t, col.Append("7"))
	col.AppendDefault()

	assert.Equal(t, 4, col.Len())
	assert.Equal(t, int64(5), col.Get(0))
	assert.Equal(t, int64(3), col.Get(1))
	assert.Equal(t, int64(7), col.Get(2))
	assert.Equal(t, int64(0), col.Get(3))
	assert.Equal(t, int64(0), col.Min())
	assert.Equal(t, int64(7), col.Max())
	assert.Equal(t, int64(32), col.ByteSize())

	assert.Error(t, col.Append("not a number"))
	assert.Error(t, col.Append(3.14))
}

func TestFloat64Column(t *testing.T) {
	col := NewFloat64Column()

	require.NoError(t, col.Append(1.5))
	require.NoError(t, col.Append(float32(0.5)))
	col.AppendDefault()

	assert.Equal(t, 3, col.Len())
	assert.Equal(t, 1.5, col.Get(0))
	assert.Equal(t, 0.5, col.Get(1))
	assert.Equal(t, float64(0), col.Get(2))
	assert.Equal(t, int64(24), col.ByteSize())
}

func TestBoolColumn(t *testing.T) {
	col := NewBoolColumn()

	for i := 0; i < 100; i++ {
		require.NoError(t, col.Append(i%2 == 0))
	}
	col.AppendDefault()

	assert.Equal(t, 101, col.Len())
	assert.Equal(t, true, col.Get(0))
	assert.Equal(t, false, col.Get(1))
	assert.Equal(t, false, col.Get(100))
	// 101 bools fit in two bit-packed words
	assert.Equal(t, int64(16), col.ByteSize())
}

func TestConstColumn(t *testing.T) {
	data := NewStringColumn()
	require.NoError(t, data.Append("answer"))

	col, err := NewConst(data, 1000)
	require.NoError(t, err)

	assert.Equal(t, 1000, col.Len())
	assert.Equal(t, "answer", col.Get(0))
	assert.Equal(t, "answer", col.Get(999))
	assert.Equal(t, "answer", col.Value())

	// One physical value regardless of logical length
	assert.Equal(t, data.ByteSize(), col.ByteSize())

	// The run only grows with matching values
	require.NoError(t, col.Append("answer"))
	assert.Equal(t, 1001, col.Len())
	assert.Error(t, col.Append("question"))

	assert.Panics(t, func() { col.Get(1001) })
}

func TestConstColumnRejectsBadData(t *testing.T) {
	empty := NewStringColumn()
	_, err := NewConst(empty, 5)
	assert.Error(t, err)

	two := NewStringColumn()
	require.NoError(t, two.Append("a"))
	require.NoError(t, two.Append("b"))
	_, err = NewConst(two, 5)
	assert.Error(t, err)

	one := NewStringColumn()
	require.NoError(t, one.Append("a"))
	_, err = NewConst(one, -1)
	assert.Error(t, err)
}
