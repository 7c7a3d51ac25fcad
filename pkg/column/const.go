package column

import "fmt"

// ConstColumn presents a single physical value as a column of logical length
// n. The value is stored once in the wrapped data column; reads of any row
// return it, so a constant of a million rows costs one value's worth of
// memory.
type ConstColumn struct {
	data Column
	size int
}

// NewConst wraps a column holding exactly one value into a constant-run
// column of the given logical length.
func NewConst(data Column, size int) (*ConstColumn, error) {
	if data.Len() != 1 {
		return nil, fmt.Errorf("const column requires exactly one wrapped value, got %d", data.Len())
	}
	if size < 0 {
		return nil, fmt.Errorf("const column size must be non-negative, got %d", size)
	}
	return &ConstColumn{data: data, size: size}, nil
}

func (c *ConstColumn) Len() int { return c.size }

func (c *ConstColumn) Get(i int) interface{} {
	if i < 0 || i >= c.size {
		panic(fmt.Sprintf("const column index %d out of range [0, %d)", i, c.size))
	}
	return c.data.Get(0)
}

// Value returns the shared value without bounds checking
func (c *ConstColumn) Value() interface{} {
	return c.data.Get(0)
}

// Data returns the wrapped single-value column
func (c *ConstColumn) Data() Column {
	return c.data
}

// Append extends the run by one row when the value matches the stored
// constant, and fails otherwise.
func (c *ConstColumn) Append(value interface{}) error {
	if value != c.data.Get(0) {
		return fmt.Errorf("cannot append %v to a const column of %v", value, c.data.Get(0))
	}
	c.size++
	return nil
}

// AppendDefault extends the run by one row.
func (c *ConstColumn) AppendDefault() {
	c.size++
}

func (c *ConstColumn) Clear() {
	c.size = 0
}

func (c *ConstColumn) ByteSize() int64 {
	return c.data.ByteSize()
}
