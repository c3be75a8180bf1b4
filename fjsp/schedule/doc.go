// Package schedule implements the FJSP-SDST dynamic-program hooks that a
// decision-diagram branch-and-bound solver consumes: the DP state, the
// domain enumerator, the transition function, the relaxation (merge)
// operator, the dominance relation, and the list-schedule completion
// estimator used for ranking and bounding.
//
// Every function here is pure: no shared mutable state is touched, and
// anything allocated is either returned or local to the call, so the
// package is safe to call from
// many goroutines at once, exactly as required of a ddsolver.Problem /
// ddsolver.Relaxation implementation (see package ddsolver).
//
// State carries only per-node scheduling scalars and small fixed-size
// slices (job- or machine-sized); the shared, read-only *fjsp.Instance is
// passed into every call instead of being embedded in State, so cloning a
// state during search never copies problem data.
package schedule
