package globe

import (
	"github.com/paulmach/orb"
)

// LayerOptions carries the optional construction parameters of an
// imagery layer. Rectangle bounds the layer in geographic degrees.
type LayerOptions struct {
	Rectangle *orb.Bound
}

// ImageryLayer is one renderable imagery layer. The visual fields are
// mutable in place; the rectangle and provider are fixed at
// construction. A layer must be destroyed exactly once, and a destroyed
// layer must not be used again.
type ImageryLayer struct {
	provider  *Provider
	rectangle *orb.Bound
	destroyed bool

	Alpha      float64
	Show       bool
	Contrast   float64
	Saturation float64
	Brightness float64
	Hue        float64
}

// NewImageryLayer builds a layer over the provider with the renderer's
// default visual values.
func NewImageryLayer(p *Provider, opts LayerOptions) *ImageryLayer {
	var rect *orb.Bound
	if opts.Rectangle != nil {
		r := *opts.Rectangle
		rect = &r
	}

	return &ImageryLayer{
		provider:   p,
		rectangle:  rect,
		Alpha:      1,
		Show:       true,
		Contrast:   1,
		Saturation: 1,
		Brightness: 1,
		Hue:        0,
	}
}

// Provider returns the layer's tile source.
func (l *ImageryLayer) Provider() *Provider { return l.provider }

// Rectangle returns the bounding rectangle in geographic degrees, if
// the layer was constructed with one.
func (l *ImageryLayer) Rectangle() (orb.Bound, bool) {
	if l.rectangle == nil {
		return orb.Bound{}, false
	}

	return *l.rectangle, true
}

// Destroy releases the renderer resource. Destroying twice panics.
func (l *ImageryLayer) Destroy() {
	if l.destroyed {
		panic("globe: imagery layer destroyed twice")
	}

	l.destroyed = true
}

// Destroyed reports whether the layer has been destroyed.
func (l *ImageryLayer) Destroyed() bool { return l.destroyed }
