// Package globe models the renderer side of the adapter: imagery
// providers addressed in the XYZ tiling scheme, imagery layers with
// mutable visual fields, and the ordered layer collection the renderer
// draws.
//
// The collection is the only mutation entry point the synchronizer may
// use; imagery layers themselves are renderer-owned resources that must
// be destroyed exactly once. Providers compute tile addresses via
// orb/maptile but perform no I/O.
package globe
