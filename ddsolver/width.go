package ddsolver

// Width bounds how many children of a single expanded node the solver
// keeps at a decision-diagram layer before it drops (restricted pass) or
// merges (relaxed pass) the excess. The bound applies per parent node;
// the total number of states in a layer is not capped.
type Width interface {
	// Limit returns the maximum number of children of one node kept at
	// the given layer (0 at the root).
	Limit(layer int) int
}

// FixedWidth is the only width strategy the CLI surface exposes: every
// layer uses the same per-node cap, mirroring a single positional
// <width> argument rather than a pluggable per-layer strategy.
type FixedWidth int

// NewFixedWidth validates w and returns a FixedWidth strategy.
func NewFixedWidth(w int) (FixedWidth, error) {
	if w <= 0 {
		return 0, ErrNonPositiveWidth
	}
	return FixedWidth(w), nil
}

// Limit returns w for every layer.
func (w FixedWidth) Limit(layer int) int { return int(w) }
