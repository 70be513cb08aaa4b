package geo

// Projection identifies a coordinate reference system by EPSG code.
type Projection struct {
	code string
}

// The two reference systems the renderer's tiling can address.
var (
	WebMercator = Projection{code: "EPSG:3857"}
	WGS84       = Projection{code: "EPSG:4326"}
)

// NewProjection returns a projection for an arbitrary EPSG code.
// The code is not validated; Supported reports whether the renderer
// can address it.
func NewProjection(code string) Projection {
	return Projection{code: code}
}

// Code returns the EPSG code, e.g. "EPSG:3857".
func (p Projection) Code() string {
	return p.code
}

// Equal reports whether two projections name the same reference system.
func (p Projection) Equal(other Projection) bool {
	return p.code == other.code
}

// Supported reports whether the projection is one of the two reference
// systems the renderer's tiling can address.
func (p Projection) Supported() bool {
	return p.Equal(WebMercator) || p.Equal(WGS84)
}

// IsZero reports whether the projection is the zero value (no code).
func (p Projection) IsZero() bool {
	return p.code == ""
}

// String returns the EPSG code.
func (p Projection) String() string {
	if p.code == "" {
		return "unknown"
	}

	return p.code
}
