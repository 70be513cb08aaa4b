// Package geo provides the projection and extent types shared by the 2D
// map model and the globe renderer model.
//
// Only two reference systems are supported end to end:
//
//   - EPSG:3857 (spherical web mercator)
//   - EPSG:4326 (geographic WGS84)
//
// A Projection can hold any EPSG code so that source layers may declare
// systems the renderer cannot address; Supported reports whether the
// renderer can. Extents are orb.Bound values tagged with the projection
// their coordinates are expressed in, and transform to geographic
// degrees via orb/project.
package geo
