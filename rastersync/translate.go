package rastersync

import (
	"globesync/carto"
	"globesync/geo"
	"globesync/globe"
)

// createCorrespondingLayer translates one source layer into an imagery
// layer for the given view. It is a pure decision policy; the verdict
// for a layer never changes unless its extent does.
//
// Policy, in order:
//   - only tile layers are eligible
//   - WMTS matrix-set addressing cannot be expressed by the renderer
//   - an XYZ source without a declared projection inherits the view's;
//     a declared projection different from the view's is not
//     reprojected
//   - the resulting projection must be EPSG:3857 or EPSG:4326
func createCorrespondingLayer(view *geo.View, layer carto.Layer) (*globe.ImageryLayer, Outcome) {
	tile, ok := layer.(*carto.TileLayer)
	if !ok {
		return nil, OutcomeUnsupported
	}

	source := tile.Source()
	if source == nil {
		return nil, OutcomeUnsupported
	}

	xyz, ok := source.(*carto.XYZSource)
	if !ok || source.Kind() != carto.SourceXYZ {
		return nil, OutcomeUnsupported
	}

	projection, declared := source.Projection()
	if !declared {
		projection = view.Projection()
	} else if !projection.Equal(view.Projection()) {
		return nil, OutcomeUnsupported
	}

	if !projection.Supported() {
		return nil, OutcomeUnsupported
	}

	provider, err := globe.NewProvider(xyz.URLTemplate, projection, xyz.TileSize)
	if err != nil {
		return nil, OutcomeUnsupported
	}

	var opts globe.LayerOptions

	if extent, ok := layer.Extent(); ok {
		rect, err := extent.ToGeographic()
		if err != nil {
			return nil, OutcomeUnsupported
		}

		opts.Rectangle = &rect
	}

	return globe.NewImageryLayer(provider, opts), OutcomeResolved
}
