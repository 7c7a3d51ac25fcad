package datatype

import (
	"math"

	"github.com/meridiandb/meridian/pkg/column"
)

// UpdateAvgValueSizeHint folds one column into a running average-value-size
// hint used to pre-size buffers on subsequent reads. Columns of 10 rows or
// fewer are too noisy and are ignored. The heuristic grows the hint
// immediately (clamped to 1024 so one outlier column cannot dominate future
// allocations) and shrinks it slowly, so bursty small-value columns do not
// thrash it.
//
// The hint is owned by a single (de)serialization pass and must not be
// shared across concurrent passes.
func UpdateAvgValueSizeHint(col column.Column, avgValueSizeHint *float64) {
	size := col.Len()
	if size <= 10 {
		return
	}

	current := float64(col.ByteSize()) / float64(size)
	switch {
	case current > *avgValueSizeHint:
		*avgValueSizeHint = math.Min(1024, current)
	case current*2 < *avgValueSizeHint:
		*avgValueSizeHint = (current + *avgValueSizeHint*3) / 4
	}
}
