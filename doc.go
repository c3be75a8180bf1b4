// Command fjspdd and its supporting packages solve the Flexible Job-Shop
// Scheduling Problem with Sequence-Dependent Setup Times (FJSP-SDST) by
// encoding it as a layered dynamic program and searching it with a
// decision-diagram branch-and-bound solver.
//
// Package fjsp owns the problem data (Instance), the decision codec, and
// the instance file parser/writer. Package fjsp/schedule implements the
// dynamic-program hooks — state, domain enumerator, transition,
// relaxation, dominance, and the list-schedule estimator — against a
// generic solver in package ddsolver. Command fjspdd wires the two
// together behind a small positional CLI.
package fjspdd
