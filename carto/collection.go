package carto

// EventType discriminates structural changes to a Collection.
type EventType int

const (
	EventAdded EventType = iota
	EventRemoved
	EventReset
)

// String returns a human-readable event name.
func (t EventType) String() string {
	switch t {
	case EventAdded:
		return "added"
	case EventRemoved:
		return "removed"
	case EventReset:
		return "reset"
	default:
		return "unknown"
	}
}

// Event describes one structural change. Layer is nil for EventReset.
type Event struct {
	Type  EventType
	Layer Layer
}

// Collection is the map's ordered, observable layer list. All methods
// are single-threaded; change callbacks run synchronously on the
// mutating call, and their relative order is unspecified.
type Collection struct {
	layers []Layer

	nextListener int
	listeners    map[int]func(Event)
}

// NewCollection returns a collection holding the given layers in order.
func NewCollection(layers ...Layer) *Collection {
	return &Collection{
		layers:    append([]Layer(nil), layers...),
		listeners: make(map[int]func(Event)),
	}
}

// Len returns the number of top-level layers.
func (c *Collection) Len() int { return len(c.layers) }

// At returns the layer at index i.
func (c *Collection) At(i int) Layer { return c.layers[i] }

// Layers returns a copy of the ordered layer slice.
func (c *Collection) Layers() []Layer {
	out := make([]Layer, len(c.layers))
	copy(out, c.layers)

	return out
}

// Append adds a layer at the end.
func (c *Collection) Append(l Layer) {
	c.layers = append(c.layers, l)
	c.notify(Event{Type: EventAdded, Layer: l})
}

// Insert adds a layer at index i, shifting later layers up.
func (c *Collection) Insert(i int, l Layer) {
	c.layers = append(c.layers, nil)
	copy(c.layers[i+1:], c.layers[i:])
	c.layers[i] = l
	c.notify(Event{Type: EventAdded, Layer: l})
}

// RemoveAt removes and returns the layer at index i.
func (c *Collection) RemoveAt(i int) Layer {
	l := c.layers[i]
	c.layers = append(c.layers[:i], c.layers[i+1:]...)
	c.notify(Event{Type: EventRemoved, Layer: l})

	return l
}

// Remove removes the given layer, matching by identity. It returns
// false if the layer is not a top-level member.
func (c *Collection) Remove(l Layer) bool {
	for i, have := range c.layers {
		if have.ID() == l.ID() {
			c.RemoveAt(i)
			return true
		}
	}

	return false
}

// Reset replaces the whole layer list and fires a single event.
func (c *Collection) Reset(layers []Layer) {
	c.layers = append([]Layer(nil), layers...)
	c.notify(Event{Type: EventReset})
}

// OnChange registers fn for structural changes. The returned func
// cancels the registration.
func (c *Collection) OnChange(fn func(Event)) (cancel func()) {
	id := c.nextListener
	c.nextListener++
	c.listeners[id] = fn

	return func() {
		delete(c.listeners, id)
	}
}

func (c *Collection) notify(e Event) {
	// Same snapshot discipline as layer notifications: callbacks may
	// cancel registrations while we deliver.
	ids := make([]int, 0, len(c.listeners))
	for id := range c.listeners {
		ids = append(ids, id)
	}

	for _, id := range ids {
		if fn, ok := c.listeners[id]; ok {
			fn(e)
		}
	}
}
