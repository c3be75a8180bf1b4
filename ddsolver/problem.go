package ddsolver

// Problem is the dynamic-program contract a decision diagram is built
// over. Implementations must be pure and safe to call from many
// goroutines concurrently: Solve invokes Domain and Transition from a
// worker pool. Relaxation, Dominance, and Ranking methods are called from
// the goroutine running Solve.
//
// Decisions are carried as plain int64 words; a concrete Problem is free
// to pack whatever fields it needs into that word (see fjsp.Decision for
// one such packing) — ddsolver never interprets the bits itself.
type Problem[S any] interface {
	// NumVariables returns the number of decisions a complete path commits,
	// i.e. the layer index of every leaf.
	NumVariables() int

	// InitialState returns the root state (layer 0).
	InitialState() S

	// Domain enumerates every decision legal from state, calling emit once
	// per decision. Iteration order must be deterministic given the same
	// state.
	Domain(state S, emit func(int64))

	// Transition applies decision to state and returns the successor state
	// together with the incremental cost of that edge. The solver
	// maximizes the sum of costs along a path.
	Transition(state S, decision int64) (S, int64)
}

// Relaxation merges a non-empty slice of same-layer states into one state
// that over-approximates the union of their feasible completions. Merge
// must be safe to call concurrently with itself and with Problem methods.
type Relaxation[S any] interface {
	Merge(states []S) S
}

// Dominance declares when one state provably subsumes another so the
// weaker one can be discarded without losing the optimum. Key groups
// states that are comparable; Dominates is evaluated only within a group.
type Dominance[S any] interface {
	Key(state S) string
	Dominates(a, b S) bool
}

// Ranking orders states for fringe priority and for choosing which
// children survive a width cutoff. Less(a, b) reports whether a is worse
// than b; the fringe is a binary heap that pops the least-worse (best)
// state first. Value exposes the same admissible bound as a scalar so the
// solver can report running upper bounds without inspecting S itself.
type Ranking[S any] interface {
	Less(a, b S) bool
	Value(state S) int64
}
