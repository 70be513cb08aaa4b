package globe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"globesync/geo"
)

func newTestLayer(t *testing.T) *ImageryLayer {
	t.Helper()

	p, err := NewProvider("https://t/{z}/{x}/{y}.png", geo.WebMercator, 256)
	require.NoError(t, err)

	return NewImageryLayer(p, LayerOptions{})
}

func TestImageryLayer_Defaults(t *testing.T) {
	l := newTestLayer(t)

	assert.Equal(t, 1.0, l.Alpha)
	assert.True(t, l.Show)
	assert.Equal(t, 1.0, l.Contrast)
	assert.Equal(t, 1.0, l.Saturation)
	assert.Equal(t, 1.0, l.Brightness)
	assert.Equal(t, 0.0, l.Hue)

	_, ok := l.Rectangle()
	assert.False(t, ok)
}

func TestLayerCollection_AddRemove(t *testing.T) {
	c := NewLayerCollection()
	a := newTestLayer(t)
	b := newTestLayer(t)

	c.Add(a)
	c.Add(b)
	require.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(a))

	// Detach without destroy keeps the handle usable.
	require.True(t, c.Remove(a, false))
	assert.False(t, a.Destroyed())
	assert.False(t, c.Contains(a))

	// Removing an unattached layer destroys nothing.
	assert.False(t, c.Remove(a, true))
	assert.False(t, a.Destroyed())

	require.True(t, c.Remove(b, true))
	assert.True(t, b.Destroyed())
}

func TestLayerCollection_RemoveAll(t *testing.T) {
	c := NewLayerCollection()
	a := newTestLayer(t)
	b := newTestLayer(t)
	c.Add(a)
	c.Add(b)

	c.RemoveAll(false)
	assert.Equal(t, 0, c.Len())
	assert.False(t, a.Destroyed())

	c.Add(a)
	c.RemoveAll(true)
	assert.True(t, a.Destroyed())
	assert.False(t, b.Destroyed())
}

func TestImageryLayer_DestroyTwicePanics(t *testing.T) {
	l := newTestLayer(t)
	l.Destroy()

	assert.Panics(t, func() { l.Destroy() })
}

func TestLayerCollection_AddDestroyedPanics(t *testing.T) {
	c := NewLayerCollection()
	l := newTestLayer(t)
	l.Destroy()

	assert.Panics(t, func() { c.Add(l) })
}
