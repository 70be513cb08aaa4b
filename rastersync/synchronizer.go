package rastersync

import (
	"github.com/go-logr/logr"

	"globesync/carto"
	"globesync/geo"
	"globesync/globe"
)

// entry is one identity-map slot: the tri-state translation result for
// a source layer. Absence of the map key is the third, "unresolved"
// state. For resolved entries it also records the listener
// cancellations that must run when the entry is invalidated.
type entry struct {
	outcome Outcome
	layer   *globe.ImageryLayer
	cancels []func()
}

// Synchronizer mirrors a carto.Collection onto a globe.LayerCollection.
// It is single-threaded: all work happens synchronously inside the
// source model's change callbacks or an explicit Synchronize call.
type Synchronizer struct {
	log    logr.Logger
	view   *geo.View
	source *carto.Collection
	target *globe.LayerCollection

	entries      map[carto.LayerID]*entry
	cancelSource func()
}

// Option configures a Synchronizer.
type Option func(*Synchronizer)

// WithLogger routes the synchronizer's decision log somewhere. The
// default discards everything.
func WithLogger(log logr.Logger) Option {
	return func(s *Synchronizer) {
		s.log = log
	}
}

// New builds a synchronizer and registers it on the source collection's
// structural changes. It does not run an initial pass; call Synchronize
// once the collections are in place.
func New(view *geo.View, source *carto.Collection, target *globe.LayerCollection, opts ...Option) *Synchronizer {
	s := &Synchronizer{
		log:     logr.Discard(),
		view:    view,
		source:  source,
		target:  target,
		entries: make(map[carto.LayerID]*entry),
	}

	for _, opt := range opts {
		opt(s)
	}

	s.cancelSource = source.OnChange(func(carto.Event) {
		s.Synchronize()
	})

	return s
}

// Synchronize runs one full reconciliation: after it returns, the
// target collection holds exactly the imagery layers of the current,
// translatable source layers, in depth-first pre-order. Cached handles
// are reused, so a pass with no source changes reattaches the same
// layers in the same order.
func (s *Synchronizer) Synchronize() {
	unreachable := make(map[carto.LayerID]*entry, len(s.entries))
	for id, e := range s.entries {
		unreachable[id] = e
	}

	// Detach only; handles stay alive through the identity map and are
	// reattached below in traversal order.
	s.target.RemoveAll(false)

	s.walk(s.source.Layers(), unreachable)

	// Whatever the walk did not visit has no living source layer
	// anymore; cached unsupported verdicts go too.
	for id, e := range unreachable {
		if e.layer != nil {
			s.log.Info("destroying stale imagery layer", "id", id)
		}

		s.dropEntry(id, e)
	}
}

// Close cancels every registration the synchronizer holds on the source
// model. The target collection is left as the last pass produced it.
func (s *Synchronizer) Close() {
	s.cancelSource()

	for _, e := range s.entries {
		for _, cancel := range e.cancels {
			cancel()
		}
	}
}

func (s *Synchronizer) walk(layers []carto.Layer, unreachable map[carto.LayerID]*entry) {
	for _, layer := range layers {
		if group, ok := layer.(*carto.GroupLayer); ok {
			s.walk(group.Layers(), unreachable)
			continue
		}

		e := s.ensureEntry(layer)
		delete(unreachable, layer.ID())

		if e.outcome != OutcomeResolved {
			continue
		}

		s.target.Add(e.layer)
	}
}

// ensureEntry looks a leaf layer up in the identity map, translating it
// on first encounter. The verdict is stored either way so unsupported
// layers are not re-attempted every pass.
func (s *Synchronizer) ensureEntry(layer carto.Layer) *entry {
	if e, ok := s.entries[layer.ID()]; ok {
		return e
	}

	imagery, outcome := createCorrespondingLayer(s.view, layer)
	e := &entry{outcome: outcome, layer: imagery}
	s.entries[layer.ID()] = e

	if outcome != OutcomeResolved {
		s.log.V(1).Info("layer has no renderer equivalent",
			"layer", layer.Name(), "verdict", outcome.String())

		return e
	}

	syncLayerProperties(layer, imagery)

	cancelStyle := layer.OnPropertyChange(func(carto.Property) {
		syncLayerProperties(layer, imagery)
	}, styleProperties...)

	cancelExtent := layer.OnPropertyChange(func(carto.Property) {
		s.invalidate(layer)
	}, carto.PropExtent)

	e.cancels = []func(){cancelStyle, cancelExtent}

	return e
}

// invalidate throws away a layer's cached translation after its extent
// changed and reconciles from scratch. The stale handle is destroyed
// before the new pass so nothing dangles.
func (s *Synchronizer) invalidate(layer carto.Layer) {
	e, ok := s.entries[layer.ID()]
	if !ok {
		return
	}

	s.dropEntry(layer.ID(), e)
	s.Synchronize()
}

// dropEntry cancels the entry's listeners, removes it from the identity
// map, and destroys the imagery layer whether or not it is currently
// attached.
func (s *Synchronizer) dropEntry(id carto.LayerID, e *entry) {
	for _, cancel := range e.cancels {
		cancel()
	}

	delete(s.entries, id)

	if e.layer == nil {
		return
	}

	if !s.target.Remove(e.layer, true) {
		e.layer.Destroy()
	}
}
