package ddsolver

import "math"

// Completion summarizes the outcome of a Solve call.
type Completion struct {
	// Exact reports whether BestValue is provably optimal: the search
	// either exhausted the fringe or proved no open node could beat the
	// incumbent, and no cutoff interrupted it first.
	Exact bool

	// BestValue is the best path value found (maximize convention: the
	// negated makespan). Undefined (math.MinInt64) if no leaf was ever
	// reached.
	BestValue int64
}

// noIncumbent marks BestValue as "no feasible solution found yet".
const noIncumbent = math.MinInt64
