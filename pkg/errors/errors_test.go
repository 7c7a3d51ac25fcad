package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	err := New(ErrorTypeLogical, "invariant violated")

	assert.Equal(t, ErrorTypeLogical, err.Type)
	assert.Equal(t, "logical: invariant violated", err.Error())
	assert.NotEmpty(t, err.Stack)
}

func TestNewf(t *testing.T) {
	err := Newf(ErrorTypeCannotPromote, "data type %s cannot be promoted", "String")
	assert.Equal(t, "cannot_promote: data type String cannot be promoted", err.Error())
}

func TestWrap(t *testing.T) {
	cause := fmt.Errorf("disk full")
	err := Wrap(cause, ErrorTypeData, "flush failed")

	require.NotNil(t, err)
	assert.Equal(t, "data: flush failed: disk full", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestWrapNil(t *testing.T) {
	if err := Wrap(nil, ErrorTypeData, "nothing"); err != nil {
		t.Errorf("expected nil, got %v", err)
	}
}

func TestWrapPreservesStack(t *testing.T) {
	inner := New(ErrorTypeMultipleStreams, "needs substreams")
	outer := Wrap(inner, ErrorTypeData, "bulk write")

	assert.Equal(t, inner.Stack, outer.Stack)
}

func TestIsType(t *testing.T) {
	err := New(ErrorTypeMultipleStreams, "needs substreams")

	assert.True(t, IsType(err, ErrorTypeMultipleStreams))
	assert.False(t, IsType(err, ErrorTypeLogical))
	assert.False(t, IsType(fmt.Errorf("plain"), ErrorTypeLogical))

	// Wrapped errors still match on the outermost type
	wrapped := Wrap(err, ErrorTypeData, "while writing")
	assert.True(t, IsType(wrapped, ErrorTypeData))
}

func TestWithDetail(t *testing.T) {
	err := New(ErrorTypeConflict, "already registered").
		WithDetail("type_name", "Int64")

	assert.Equal(t, "Int64", err.Details["type_name"])
}
