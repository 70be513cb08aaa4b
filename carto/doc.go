// Package carto models the 2D map side of the adapter: raster layers,
// their sources, and the ordered observable collection a map view draws.
//
// # Key capabilities
//
//   - Tile layers over an addressable source (XYZ, WMTS, vector)
//   - Group layers nesting further layers, recursively
//   - Optional style attributes (opacity, visibility, contrast,
//     saturation, brightness, hue) — only attributes that were set are
//     considered defined
//   - Optional bounding extent per layer
//   - Per-property change notifications and structural collection
//     notifications, delivered synchronously on the mutating call
//
// Every layer carries a stable LayerID assigned at construction; the
// synchronizer keys its bookkeeping on it, never on pointer identity.
//
// The package has no notion of the globe renderer; the flow of
// information is strictly carto -> globe, through the synchronizer.
package carto
