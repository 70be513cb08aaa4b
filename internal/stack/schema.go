package stack

// File is the root of a YAML stack definition.
type File struct {
	Version    string     `yaml:"version"`
	Projection string     `yaml:"projection"`
	Layers     []LayerDef `yaml:"layers"`
}

// LayerDef describes one layer. Group layers nest further defs under
// Layers; the other types are leaves.
type LayerDef struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`

	// Leaf source parameters.
	URL        string `yaml:"url,omitempty"`
	MatrixSet  string `yaml:"matrix_set,omitempty"`
	TileSize   int    `yaml:"tile_size,omitempty"`
	Projection string `yaml:"projection,omitempty"`

	// Style attributes; nil means undefined.
	Opacity    *float64 `yaml:"opacity,omitempty"`
	Visible    *bool    `yaml:"visible,omitempty"`
	Contrast   *float64 `yaml:"contrast,omitempty"`
	Saturation *float64 `yaml:"saturation,omitempty"`
	Brightness *float64 `yaml:"brightness,omitempty"`
	Hue        *float64 `yaml:"hue,omitempty"`

	// Extent is [minX, minY, maxX, maxY] in the stack's projection.
	Extent []float64 `yaml:"extent,omitempty"`

	// Layers holds the children of a group.
	Layers []LayerDef `yaml:"layers,omitempty"`
}

// Layer types accepted in stack files.
const (
	TypeXYZ    = "xyz"
	TypeWMTS   = "wmts"
	TypeVector = "vector"
	TypeGroup  = "group"
)

// KnownType returns true for a recognized layer type.
func KnownType(t string) bool {
	switch t {
	case TypeXYZ, TypeWMTS, TypeVector, TypeGroup:
		return true
	default:
		return false
	}
}
