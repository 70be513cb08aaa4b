package carto

import (
	"globesync/geo"
	"globesync/utils"
)

// SourceKind discriminates the data origins a layer can draw from.
type SourceKind int

const (
	SourceUnknown SourceKind = iota
	// SourceXYZ is a tile-image source addressed by a {z}/{x}/{y}
	// URL template.
	SourceXYZ
	// SourceWMTS is a tile service with its own matrix-set addressing.
	SourceWMTS
	// SourceVector is a non-tile source (features, not imagery).
	SourceVector
)

// String returns a human-readable kind name.
func (k SourceKind) String() string {
	switch k {
	case SourceXYZ:
		return "xyz"
	case SourceWMTS:
		return "wmts"
	case SourceVector:
		return "vector"
	default:
		return "unknown"
	}
}

// Source describes a layer's data origin.
type Source interface {
	Kind() SourceKind
	// Projection returns the source's declared reference system, if any.
	// Sources without a declared projection inherit the view's.
	Projection() (geo.Projection, bool)
}

// XYZSource is a tile-image source addressed by a URL template with
// {z}, {x} and {y} placeholders.
type XYZSource struct {
	URLTemplate string
	TileSize    int
	Proj        utils.Optional[geo.Projection]
}

// NewXYZSource returns a tile-image source with the default 256px tiles
// and no declared projection.
func NewXYZSource(urlTemplate string) *XYZSource {
	return &XYZSource{URLTemplate: urlTemplate, TileSize: 256}
}

func (s *XYZSource) Kind() SourceKind { return SourceXYZ }

func (s *XYZSource) Projection() (geo.Projection, bool) { return s.Proj.Get() }

// WMTSSource is a tile service whose matrix-set addressing the renderer
// cannot express.
type WMTSSource struct {
	Endpoint  string
	MatrixSet string
}

func (s *WMTSSource) Kind() SourceKind { return SourceWMTS }

func (s *WMTSSource) Projection() (geo.Projection, bool) { return geo.Projection{}, false }

// VectorSource is a feature source; it produces no imagery.
type VectorSource struct {
	Name string
}

func (s *VectorSource) Kind() SourceKind { return SourceVector }

func (s *VectorSource) Projection() (geo.Projection, bool) { return geo.Projection{}, false }
