// Package ddsolver implements a generic branch-and-bound-over-decision-diagrams
// engine. It is parameterized over a minimal Problem/Relaxation/Dominance/
// Ranking contract (Go generics) so a concrete dynamic program — state,
// transition, cost — plugs in without this package importing it.
//
// At each decision-diagram layer the solver asks Problem for the domain of
// legal decisions from the current state, applies chosen decisions via
// Problem.Transition to build successor states, ranks them with Ranking,
// deduplicates dominated states via Dominance, and, when one node's
// children exceed the configured width, collapses selected children with
// Relaxation.Merge (the width is applied per expanded node, not to the
// layer as a whole). Two diagram shapes are built per root: a restricted
// diagram (drops over-width states, used to find a feasible incumbent
// quickly) and a relaxed diagram (merges over-width states, used to prove
// an upper bound). Exhausting both without closing the gap degrades
// gracefully to a best-effort (non-exact) result.
package ddsolver
