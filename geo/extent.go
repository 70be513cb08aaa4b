package geo

import (
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/project"
)

// Extent is a rectangular bound tagged with the projection its
// coordinates are expressed in.
type Extent struct {
	Bound      orb.Bound
	Projection Projection
}

// NewExtent builds an extent from min/max coordinates in the given
// projection.
func NewExtent(minX, minY, maxX, maxY float64, p Projection) Extent {
	return Extent{
		Bound: orb.Bound{
			Min: orb.Point{minX, minY},
			Max: orb.Point{maxX, maxY},
		},
		Projection: p,
	}
}

// ToGeographic transforms the extent to geographic WGS84 degrees.
// An extent already in WGS84 is returned unchanged.
func (e Extent) ToGeographic() (orb.Bound, error) {
	switch {
	case e.Projection.Equal(WGS84):
		return e.Bound, nil
	case e.Projection.Equal(WebMercator):
		return project.Bound(e.Bound, project.Mercator.ToWGS84), nil
	default:
		return orb.Bound{}, fmt.Errorf("cannot transform extent from %s to %s", e.Projection, WGS84)
	}
}
