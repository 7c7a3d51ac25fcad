// Package column provides growable in-memory columns holding one logical
// attribute's values for a batch of rows.
package column

// Column is the base interface for all column types. A column is owned by the
// batch that holds it and is mutated only by that single owner while the
// batch is being built.
type Column interface {
	// Len returns the number of rows
	Len() int
	// ByteSize returns the total memory held by the values, in bytes
	ByteSize() int64
	// Get returns the value at row i
	Get(i int) interface{}
	// Append adds a value to the end of the column
	Append(value interface{}) error
	// AppendDefault adds the column's default value
	AppendDefault()
	// Clear removes all values
	Clear()
}
