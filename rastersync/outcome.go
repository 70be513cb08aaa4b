package rastersync

// Outcome is the result of translating one source layer. The zero
// value means the layer has not been looked at yet; it never appears in
// a stored identity-map entry.
type Outcome int

const (
	outcomeUnknown Outcome = iota
	// OutcomeResolved means an imagery layer was produced.
	OutcomeResolved
	// OutcomeUnsupported means no equivalent can be produced; the
	// verdict is cached so the layer is not re-attempted every pass.
	OutcomeUnsupported
)

const (
	verdictResolved    = "resolved"
	verdictUnsupported = "unsupported"
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case OutcomeResolved:
		return verdictResolved
	case OutcomeUnsupported:
		return verdictUnsupported
	default:
		return "unknown"
	}
}
