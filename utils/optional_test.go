package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptional_ZeroValueIsAbsent(t *testing.T) {
	var o Optional[float64]

	assert.False(t, o.IsSome())

	v, ok := o.Get()
	assert.False(t, ok)
	assert.Zero(t, v)
	assert.Equal(t, 0.25, o.Or(0.25))
}

func TestOptional_Some(t *testing.T) {
	o := Some(0.5)

	assert.True(t, o.IsSome())

	v, ok := o.Get()
	assert.True(t, ok)
	assert.Equal(t, 0.5, v)
	assert.Equal(t, 0.5, o.Or(0.25))
}

func TestOptional_None(t *testing.T) {
	o := None[bool]()

	assert.False(t, o.IsSome())
	assert.True(t, o.Or(true))
}
