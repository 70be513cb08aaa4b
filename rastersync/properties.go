package rastersync

import (
	"globesync/carto"
	"globesync/globe"
)

// styleProperties are the attributes the narrow per-layer listener
// covers. Hue is intentionally absent: the renderer adjusts hue in YIQ
// color space and no safe approximation from the map model exists.
var styleProperties = []carto.Property{
	carto.PropOpacity,
	carto.PropVisible,
	carto.PropContrast,
	carto.PropSaturation,
	carto.PropBrightness,
}

// syncLayerProperties applies the source layer's defined style
// attributes onto the imagery layer. Attributes that were never set on
// the source leave the renderer defaults untouched.
func syncLayerProperties(src carto.Layer, dst *globe.ImageryLayer) {
	if v, ok := src.Opacity(); ok {
		dst.Alpha = v
	}

	if v, ok := src.Visible(); ok {
		dst.Show = v
	}

	if v, ok := src.Saturation(); ok {
		dst.Saturation = v
	}

	if v, ok := src.Contrast(); ok {
		dst.Contrast = v
	}

	if v, ok := src.Brightness(); ok {
		// The map model is additive around 0, the renderer is
		// multiplicative-quadratic around 1. Rough approximation, kept
		// for behavioral parity.
		dst.Brightness = (1 + v) * (1 + v)
	}
}
