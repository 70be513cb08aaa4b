package stack

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	f, err := Parse([]byte(`
layers:
  - name: base
    type: xyz
    url: https://t/{z}/{x}/{y}.png
`))
	require.NoError(t, err)

	assert.Equal(t, "1", f.Version)
	assert.Equal(t, "EPSG:3857", f.Projection)
	require.Len(t, f.Layers, 1)
	assert.Equal(t, 256, f.Layers[0].TileSize)
}

func TestParse_NestedGroups(t *testing.T) {
	f, err := Parse([]byte(`
version: "1"
projection: EPSG:4326
layers:
  - name: base
    type: xyz
    url: https://t/{z}/{x}/{y}.png
    opacity: 0.8
  - name: overlays
    type: group
    layers:
      - name: labels
        type: xyz
        url: https://l/{z}/{x}/{y}.png
        extent: [-20, -20, 20, 20]
`))
	require.NoError(t, err)

	require.Len(t, f.Layers, 2)

	base := f.Layers[0]
	require.NotNil(t, base.Opacity)
	assert.Equal(t, 0.8, *base.Opacity)
	assert.Nil(t, base.Visible)

	group := f.Layers[1]
	assert.Equal(t, TypeGroup, group.Type)
	require.Len(t, group.Layers, 1)
	assert.Equal(t, []float64{-20, -20, 20, 20}, group.Layers[0].Extent)
	assert.Equal(t, 256, group.Layers[0].TileSize)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("layers: [}"))
	assert.Error(t, err)
}

func TestLoadFile_RoundTrip(t *testing.T) {
	f := &File{
		Version:    "1",
		Projection: "EPSG:3857",
		Layers: []LayerDef{
			{Name: "base", Type: TypeXYZ, URL: "https://t/{z}/{x}/{y}.png", TileSize: 256},
		},
	}

	data, err := Marshal(f)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "stack.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, f, loaded)
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
