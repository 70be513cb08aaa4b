// Package rastersync keeps a globe renderer's imagery layer stack in
// line with a 2D map's raster layer stack. The flow is one-directional:
// edits on the map side are mirrored onto the globe side, never the
// reverse.
//
// # Reconciliation
//
// The Synchronizer listens to the map collection's structural changes
// and runs a full pass on each one: detach everything, walk the source
// layers depth-first (groups inline their children in place), attach
// the translatable layers back in traversal order, then destroy
// whatever no longer corresponds to a live source layer.
//
// Per mirrored layer, narrower listeners keep style attributes in sync
// without a full pass, and an extent change forces recreation because
// the renderer cannot change a layer's rectangle in place.
//
// # Translation policy
//
// Only tile-image layers in the two reference systems the renderer's
// tiling can address (EPSG:3857, EPSG:4326) translate; everything else
// is recorded as unsupported and never retried. Unsupported layers are
// a normal outcome, not an error.
package rastersync
