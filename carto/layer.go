package carto

import (
	"github.com/google/uuid"

	"globesync/geo"
	"globesync/utils"
)

// LayerID is a stable, process-lifetime identity for a layer. It is
// assigned at construction and never changes.
type LayerID string

func newLayerID() LayerID {
	return LayerID(uuid.NewString())
}

// Property names a mutable layer attribute for change notifications.
type Property string

const (
	PropOpacity    Property = "opacity"
	PropVisible    Property = "visible"
	PropContrast   Property = "contrast"
	PropSaturation Property = "saturation"
	PropBrightness Property = "brightness"
	PropHue        Property = "hue"
	PropExtent     Property = "extent"
)

// Layer is the common surface of tile and group layers.
type Layer interface {
	ID() LayerID
	Name() string

	Opacity() (float64, bool)
	Visible() (bool, bool)
	Contrast() (float64, bool)
	Saturation() (float64, bool)
	Brightness() (float64, bool)
	Hue() (float64, bool)
	Extent() (geo.Extent, bool)

	// OnPropertyChange registers fn for changes of the given properties
	// (all properties when none are given). The returned func cancels
	// the registration. Callbacks run synchronously on the setter call.
	OnPropertyChange(fn func(Property), props ...Property) (cancel func())
}

type propertyListener struct {
	props map[Property]struct{} // nil means all properties
	fn    func(Property)
}

// baseLayer carries identity, style attributes, extent, and the
// property-change listener registry shared by all layer kinds.
type baseLayer struct {
	id   LayerID
	name string

	opacity    utils.Optional[float64]
	visible    utils.Optional[bool]
	contrast   utils.Optional[float64]
	saturation utils.Optional[float64]
	brightness utils.Optional[float64]
	hue        utils.Optional[float64]
	extent     utils.Optional[geo.Extent]

	nextListener int
	listeners    map[int]*propertyListener
}

func newBaseLayer(name string) baseLayer {
	return baseLayer{
		id:        newLayerID(),
		name:      name,
		listeners: make(map[int]*propertyListener),
	}
}

func (l *baseLayer) ID() LayerID { return l.id }

func (l *baseLayer) Name() string { return l.name }

func (l *baseLayer) Opacity() (float64, bool)    { return l.opacity.Get() }
func (l *baseLayer) Visible() (bool, bool)       { return l.visible.Get() }
func (l *baseLayer) Contrast() (float64, bool)   { return l.contrast.Get() }
func (l *baseLayer) Saturation() (float64, bool) { return l.saturation.Get() }
func (l *baseLayer) Brightness() (float64, bool) { return l.brightness.Get() }
func (l *baseLayer) Hue() (float64, bool)        { return l.hue.Get() }
func (l *baseLayer) Extent() (geo.Extent, bool)  { return l.extent.Get() }

func (l *baseLayer) SetOpacity(v float64) {
	l.opacity = utils.Some(v)
	l.notify(PropOpacity)
}

func (l *baseLayer) SetVisible(v bool) {
	l.visible = utils.Some(v)
	l.notify(PropVisible)
}

func (l *baseLayer) SetContrast(v float64) {
	l.contrast = utils.Some(v)
	l.notify(PropContrast)
}

func (l *baseLayer) SetSaturation(v float64) {
	l.saturation = utils.Some(v)
	l.notify(PropSaturation)
}

func (l *baseLayer) SetBrightness(v float64) {
	l.brightness = utils.Some(v)
	l.notify(PropBrightness)
}

func (l *baseLayer) SetHue(v float64) {
	l.hue = utils.Some(v)
	l.notify(PropHue)
}

func (l *baseLayer) SetExtent(e geo.Extent) {
	l.extent = utils.Some(e)
	l.notify(PropExtent)
}

func (l *baseLayer) OnPropertyChange(fn func(Property), props ...Property) (cancel func()) {
	lst := &propertyListener{fn: fn}
	if len(props) > 0 {
		lst.props = make(map[Property]struct{}, len(props))
		for _, p := range props {
			lst.props[p] = struct{}{}
		}
	}

	id := l.nextListener
	l.nextListener++
	l.listeners[id] = lst

	return func() {
		delete(l.listeners, id)
	}
}

func (l *baseLayer) notify(p Property) {
	// Callbacks may cancel or register listeners on this layer while we
	// deliver (the synchronizer recreates its registrations on extent
	// changes), so iterate a snapshot and skip anything cancelled
	// mid-delivery. Listeners registered during delivery see only later
	// notifications.
	ids := make([]int, 0, len(l.listeners))
	for id := range l.listeners {
		ids = append(ids, id)
	}

	for _, id := range ids {
		lst, ok := l.listeners[id]
		if !ok {
			continue
		}

		if lst.props != nil {
			if _, ok := lst.props[p]; !ok {
				continue
			}
		}

		lst.fn(p)
	}
}

// TileLayer is a leaf raster layer drawing from a Source.
type TileLayer struct {
	baseLayer
	source Source
}

// NewTileLayer returns a tile layer over the given source.
func NewTileLayer(name string, source Source) *TileLayer {
	return &TileLayer{
		baseLayer: newBaseLayer(name),
		source:    source,
	}
}

// Source returns the layer's data origin.
func (l *TileLayer) Source() Source { return l.source }

// GroupLayer holds an ordered slice of child layers. Children are fixed
// at construction; structural edits happen on the map's Collection.
type GroupLayer struct {
	baseLayer
	children []Layer
}

// NewGroupLayer returns a group over the given children, in order.
func NewGroupLayer(name string, children ...Layer) *GroupLayer {
	return &GroupLayer{
		baseLayer: newBaseLayer(name),
		children:  children,
	}
}

// Layers returns the group's children in order.
func (g *GroupLayer) Layers() []Layer {
	out := make([]Layer, len(g.children))
	copy(out, g.children)

	return out
}
