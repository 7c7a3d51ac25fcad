package column

import (
	"fmt"
	"strconv"
)

// StringColumn stores string values, switching to dictionary encoding when
// the value set is repetitive enough
type StringColumn struct {
	values []string
	// Dictionary encoding for repeated values
	dict      map[string]uint32
	reverse   []string
	codes     []uint32
	dictMode  bool
	threshold float64 // Switch to dictionary when repetition > threshold
}

// NewStringColumn creates a new string column
func NewStringColumn() *StringColumn {
	return &StringColumn{
		values:    make([]string, 0, 1024),
		dict:      make(map[string]uint32),
		codes:     make([]uint32, 0, 1024),
		threshold: 0.5, // Use dict if >50% values are repeated
	}
}

func (c *StringColumn) Len() int {
	if c.dictMode {
		return len(c.codes)
	}
	return len(c.values)
}

func (c *StringColumn) Get(i int) interface{} {
	if c.dictMode {
		return c.reverse[c.codes[i]]
	}
	return c.values[i]
}

func (c *StringColumn) Append(value interface{}) error {
	str, ok := value.(string)
	if !ok {
		return fmt.Errorf("expected string, got %T", value)
	}

	if c.dictMode {
		if code, exists := c.dict[str]; exists {
			c.codes = append(c.codes, code)
		} else {
			newCode := uint32(len(c.dict))
			c.dict[str] = newCode
			c.reverse = append(c.reverse, str)
			c.codes = append(c.codes, newCode)
		}
	} else {
		c.values = append(c.values, str)

		if len(c.values) > 100 && c.shouldUseDictionary() {
			c.convertToDictionary()
		}
	}

	return nil
}

func (c *StringColumn) AppendDefault() {
	_ = c.Append("")
}

func (c *StringColumn) shouldUseDictionary() bool {
	unique := make(map[string]struct{})
	for _, v := range c.values {
		unique[v] = struct{}{}
	}
	ratio := float64(len(unique)) / float64(len(c.values))
	return ratio < c.threshold
}

func (c *StringColumn) convertToDictionary() {
	c.dictMode = true
	c.dict = make(map[string]uint32)
	c.reverse = c.reverse[:0]
	c.codes = make([]uint32, 0, len(c.values))

	for _, v := range c.values {
		if code, exists := c.dict[v]; exists {
			c.codes = append(c.codes, code)
		} else {
			newCode := uint32(len(c.dict))
			c.dict[v] = newCode
			c.reverse = append(c.reverse, v)
			c.codes = append(c.codes, newCode)
		}
	}

	// Clear values to free memory
	c.values = nil
}

func (c *StringColumn) Clear() {
	c.values = c.values[:0]
	c.codes = c.codes[:0]
	c.reverse = c.reverse[:0]
	c.dict = make(map[string]uint32)
	c.dictMode = false
}

func (c *StringColumn) ByteSize() int64 {
	var total int64

	if c.dictMode {
		for _, k := range c.reverse {
			total += int64(len(k)) // String bytes
			total += 4             // uint32 code
		}
		total += int64(len(c.codes) * 4) // codes array
	} else {
		for _, v := range c.values {
			total += int64(len(v))
			total += 16 // string header overhead
		}
	}

	return total
}

// Int64Column stores 64-bit integer values
type Int64Column struct {
	values   []int64
	min, max int64
}

// NewInt64Column creates a new integer column
func NewInt64Column() *Int64Column {
	return &Int64Column{
		values: make([]int64, 0, 1024),
	}
}

func (c *Int64Column) Len() int { return len(c.values) }

func (c *Int64Column) Get(i int) interface{} {
	return c.values[i]
}

func (c *Int64Column) Append(value interface{}) error {
	var intVal int64
	switch v := value.(type) {
	case int:
		intVal = int64(v)
	case int64:
		intVal = v
	case int32:
		intVal = int64(v)
	case uint32:
		intVal = int64(v)
	case string:
		parsed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as int: %w", v, err)
		}
		intVal = parsed
	default:
		return fmt.Errorf("expected int, got %T", value)
	}

	if len(c.values) == 0 {
		c.min = intVal
		c.max = intVal
	} else {
		if intVal < c.min {
			c.min = intVal
		}
		if intVal > c.max {
			c.max = intVal
		}
	}

	c.values = append(c.values, intVal)
	return nil
}

func (c *Int64Column) AppendDefault() {
	_ = c.Append(int64(0))
}

// Min returns the smallest value appended so far
func (c *Int64Column) Min() int64 { return c.min }

// Max returns the largest value appended so far
func (c *Int64Column) Max() int64 { return c.max }

func (c *Int64Column) Clear() {
	c.values = c.values[:0]
	c.min = 0
	c.max = 0
}

func (c *Int64Column) ByteSize() int64 {
	return int64(len(c.values) * 8) // 8 bytes per int64
}

// Float64Column stores floating point values
type Float64Column struct {
	values []float64
}

// NewFloat64Column creates a new float column
func NewFloat64Column() *Float64Column {
	return &Float64Column{
		values: make([]float64, 0, 1024),
	}
}

func (c *Float64Column) Len() int { return len(c.values) }

func (c *Float64Column) Get(i int) interface{} {
	return c.values[i]
}

func (c *Float64Column) Append(value interface{}) error {
	var floatVal float64
	switch v := value.(type) {
	case float64:
		floatVal = v
	case float32:
		floatVal = float64(v)
	case int:
		floatVal = float64(v)
	case int64:
		floatVal = float64(v)
	case string:
		parsed, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("cannot parse %q as float: %w", v, err)
		}
		floatVal = parsed
	default:
		return fmt.Errorf("expected float, got %T", value)
	}

	c.values = append(c.values, floatVal)
	return nil
}

func (c *Float64Column) AppendDefault() {
	_ = c.Append(float64(0))
}

func (c *Float64Column) Clear() {
	c.values = c.values[:0]
}

func (c *Float64Column) ByteSize() int64 {
	return int64(len(c.values) * 8) // 8 bytes per float64
}

// BoolColumn stores boolean values bit-packed, 64 per word
type BoolColumn struct {
	values []uint64
	count  int
}

// NewBoolColumn creates a new boolean column
func NewBoolColumn() *BoolColumn {
	return &BoolColumn{
		values: make([]uint64, 0, 16),
	}
}

func (c *BoolColumn) Len() int { return c.count }

func (c *BoolColumn) Get(i int) interface{} {
	wordIndex := i / 64
	bitIndex := i % 64
	return (c.values[wordIndex] & (1 << bitIndex)) != 0
}

func (c *BoolColumn) Append(value interface{}) error {
	var boolVal bool
	switch v := value.(type) {
	case bool:
		boolVal = v
	case string:
		boolVal = v == "true" || v == "1" || v == "yes"
	default:
		return fmt.Errorf("expected bool, got %T", value)
	}

	wordIndex := c.count / 64
	bitIndex := c.count % 64

	// Grow if needed
	if wordIndex >= len(c.values) {
		c.values = append(c.values, 0)
	}

	if boolVal {
		c.values[wordIndex] |= (1 << bitIndex)
	}

	c.count++
	return nil
}

func (c *BoolColumn) AppendDefault() {
	_ = c.Append(false)
}

func (c *BoolColumn) Clear() {
	c.values = c.values[:0]
	c.count = 0
}

func (c *BoolColumn) ByteSize() int64 {
	return int64(len(c.values) * 8) // 8 bytes per uint64
}
