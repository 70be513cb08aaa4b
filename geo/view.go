package geo

// View is the projection context layers are interpreted in. Source
// layers that declare no projection of their own inherit the view's.
type View struct {
	projection Projection
}

// NewView returns a view in the given projection.
func NewView(p Projection) *View {
	return &View{projection: p}
}

// Projection returns the view's reference system.
func (v *View) Projection() Projection {
	return v.projection
}
