package globe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb/maptile"

	"globesync/geo"
)

// TilingScheme is how a provider addresses the globe's surface.
type TilingScheme int

const (
	// SchemeWebMercator is the square single-root tiling of EPSG:3857.
	SchemeWebMercator TilingScheme = iota
	// SchemeGeographic is the two-root equirectangular tiling of
	// EPSG:4326.
	SchemeGeographic
)

// String returns a human-readable scheme name.
func (s TilingScheme) String() string {
	switch s {
	case SchemeWebMercator:
		return "web-mercator"
	case SchemeGeographic:
		return "geographic"
	default:
		return "unknown"
	}
}

// Provider is an addressable tile source the renderer fetches imagery
// through. It wraps a URL template and the projection the tiles are
// served in.
type Provider struct {
	urlTemplate string
	tileSize    int
	projection  geo.Projection
}

// NewProvider builds a provider over a {z}/{x}/{y} URL template. The
// projection must be one of the two reference systems the renderer's
// tiling can address.
func NewProvider(urlTemplate string, projection geo.Projection, tileSize int) (*Provider, error) {
	if urlTemplate == "" {
		return nil, errors.New("provider needs a url template")
	}

	if !projection.Supported() {
		return nil, fmt.Errorf("provider cannot address tiles in %s", projection)
	}

	if tileSize <= 0 {
		tileSize = 256
	}

	return &Provider{
		urlTemplate: urlTemplate,
		tileSize:    tileSize,
		projection:  projection,
	}, nil
}

// Projection returns the reference system tiles are served in.
func (p *Provider) Projection() geo.Projection { return p.projection }

// TileSize returns the tile edge length in pixels.
func (p *Provider) TileSize() int { return p.tileSize }

// TilingScheme returns the addressing scheme implied by the projection.
func (p *Provider) TilingScheme() TilingScheme {
	if p.projection.Equal(geo.WGS84) {
		return SchemeGeographic
	}

	return SchemeWebMercator
}

// TileURL expands the template for one tile address.
func (p *Provider) TileURL(t maptile.Tile) string {
	r := strings.NewReplacer(
		"{z}", fmt.Sprintf("%d", t.Z),
		"{x}", fmt.Sprintf("%d", t.X),
		"{y}", fmt.Sprintf("%d", t.Y),
	)

	return r.Replace(p.urlTemplate)
}
