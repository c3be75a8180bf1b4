package schedule

import "github.com/katalvlaran/fjspdd/fjsp"

// Merge combines a non-empty multiset of same-layer states into one state
// that over-approximates the union of their feasible completions.
// Componentwise:
//
//	F[m] = min_i states[i].F[m]       (optimistic machine-free time)
//	T[j] = min_i states[i].T[j]
//	V[j] = min_i states[i].V[j]       (intersection of committed prefixes)
//	U[j] = max_i states[i].U[j]       (union of committed prefixes)
//	P[m] = states[0].P[m] if every state agrees, else noTask
//
// P is not well-defined across paths once they disagree; forgetting it
// (noTask) under-counts setup on the merged node's first future decision,
// which keeps the relaxation valid.
//
// Merge is idempotent on singletons and commutative/associative up to
// state equality: the componentwise min/max/agree reduction does not
// depend on argument order.
func Merge(inst *fjsp.Instance, states []State) State {
	merged := Clone(states[0])

	for _, s := range states[1:] {
		for m := range merged.F {
			if s.F[m] < merged.F[m] {
				merged.F[m] = s.F[m]
			}
			if merged.P[m] != s.P[m] {
				merged.P[m] = noTask
			}
		}
		for j := range merged.T {
			if s.T[j] < merged.T[j] {
				merged.T[j] = s.T[j]
			}
		}
		for j := range merged.V {
			if s.V[j] < merged.V[j] {
				merged.V[j] = s.V[j]
			}
			if s.U[j] > merged.U[j] {
				merged.U[j] = s.U[j]
			}
		}
	}

	merged.Est = Estimate(inst, merged)
	return merged
}
