package globe

// LayerCollection is the ordered imagery layer list the renderer draws,
// bottom first. The renderer owns it; everything else mutates it only
// through these methods.
type LayerCollection struct {
	layers []*ImageryLayer
}

// NewLayerCollection returns an empty collection.
func NewLayerCollection() *LayerCollection {
	return &LayerCollection{}
}

// Len returns the number of attached layers.
func (c *LayerCollection) Len() int { return len(c.layers) }

// Get returns the layer at index i.
func (c *LayerCollection) Get(i int) *ImageryLayer { return c.layers[i] }

// Layers returns a copy of the ordered layer slice.
func (c *LayerCollection) Layers() []*ImageryLayer {
	out := make([]*ImageryLayer, len(c.layers))
	copy(out, c.layers)

	return out
}

// Contains reports whether the layer is attached.
func (c *LayerCollection) Contains(l *ImageryLayer) bool {
	for _, have := range c.layers {
		if have == l {
			return true
		}
	}

	return false
}

// Add attaches a layer on top of the stack.
func (c *LayerCollection) Add(l *ImageryLayer) {
	if l == nil {
		panic("globe: adding nil imagery layer")
	}

	if l.Destroyed() {
		panic("globe: adding destroyed imagery layer")
	}

	c.layers = append(c.layers, l)
}

// Remove detaches the layer, destroying it when destroy is true. It
// returns false if the layer is not attached; nothing is destroyed in
// that case.
func (c *LayerCollection) Remove(l *ImageryLayer, destroy bool) bool {
	for i, have := range c.layers {
		if have != l {
			continue
		}

		c.layers = append(c.layers[:i], c.layers[i+1:]...)
		if destroy {
			l.Destroy()
		}

		return true
	}

	return false
}

// RemoveAll detaches every layer, destroying them when destroy is true.
func (c *LayerCollection) RemoveAll(destroy bool) {
	if destroy {
		for _, l := range c.layers {
			l.Destroy()
		}
	}

	c.layers = nil
}
