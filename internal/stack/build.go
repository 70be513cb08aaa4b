package stack

import (
	"fmt"

	"globesync/carto"
	"globesync/geo"
	"globesync/utils"
)

// Build validates the definition and constructs the carto collection it
// describes, in order. A definition with error findings is refused.
func Build(f *File) (*carto.Collection, error) {
	if diags := Validate(f); diags.HasErrors() {
		return nil, fmt.Errorf("invalid stack: %w", diags.Err())
	}

	projection := geo.NewProjection(f.Projection)

	layers := make([]carto.Layer, 0, len(f.Layers))
	for i := range f.Layers {
		layers = append(layers, buildLayer(&f.Layers[i], projection))
	}

	return carto.NewCollection(layers...), nil
}

// styleSetter is the setter surface shared by tile and group layers.
type styleSetter interface {
	SetOpacity(float64)
	SetVisible(bool)
	SetContrast(float64)
	SetSaturation(float64)
	SetBrightness(float64)
	SetHue(float64)
}

func buildLayer(d *LayerDef, stackProjection geo.Projection) carto.Layer {
	if d.Type == TypeGroup {
		children := make([]carto.Layer, 0, len(d.Layers))
		for i := range d.Layers {
			children = append(children, buildLayer(&d.Layers[i], stackProjection))
		}

		group := carto.NewGroupLayer(d.Name, children...)
		applyStyle(d, group)

		return group
	}

	layer := carto.NewTileLayer(d.Name, buildSource(d))
	applyStyle(d, layer)

	if len(d.Extent) == 4 {
		layer.SetExtent(geo.NewExtent(d.Extent[0], d.Extent[1], d.Extent[2], d.Extent[3], stackProjection))
	}

	return layer
}

func applyStyle(d *LayerDef, layer styleSetter) {
	if d.Opacity != nil {
		layer.SetOpacity(*d.Opacity)
	}

	if d.Visible != nil {
		layer.SetVisible(*d.Visible)
	}

	if d.Contrast != nil {
		layer.SetContrast(*d.Contrast)
	}

	if d.Saturation != nil {
		layer.SetSaturation(*d.Saturation)
	}

	if d.Brightness != nil {
		layer.SetBrightness(*d.Brightness)
	}

	if d.Hue != nil {
		layer.SetHue(*d.Hue)
	}
}

func buildSource(d *LayerDef) carto.Source {
	switch d.Type {
	case TypeXYZ:
		src := &carto.XYZSource{
			URLTemplate: d.URL,
			TileSize:    d.TileSize,
		}
		if d.Projection != "" {
			src.Proj = utils.Some(geo.NewProjection(d.Projection))
		}

		return src
	case TypeWMTS:
		return &carto.WMTSSource{Endpoint: d.URL, MatrixSet: d.MatrixSet}
	default:
		return &carto.VectorSource{Name: d.Name}
	}
}
