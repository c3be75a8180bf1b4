// Package fjsp defines the immutable Flexible Job-Shop Scheduling Problem
// with Sequence-Dependent Setup Times (FJSP-SDST) instance, the bijective
// decision codec used to thread (job, task, machine, duration) tuples
// through a decision-diagram solver as plain integers, and the flat/matrix
// instance parser of the external file format.
//
// This package owns no search logic: it is immutable, read-only data plus
// pure encode/decode helpers. The scheduling DP itself (state, transition,
// relaxation, dominance, estimator) lives in fjsp/schedule.
package fjsp

import "errors"

// Sentinel errors for instance construction and validation. Each is
// self-contained (no fmt.Errorf wrapping) so callers can match with
// errors.Is; I/O-boundary errors from the parser wrap an underlying
// *os.PathError or scan failure with fmt.Errorf("%w", ...) instead.
var (
	// ErrNonPositiveDim indicates a non-positive job or machine count.
	ErrNonPositiveDim = errors.New("fjsp: job and machine counts must be positive")

	// ErrNoAlternatives indicates a task with zero admissible (machine, time) pairs.
	ErrNoAlternatives = errors.New("fjsp: task has no admissible alternatives")

	// ErrDuplicateMachine indicates two alternatives of the same task name the same machine.
	ErrDuplicateMachine = errors.New("fjsp: duplicate machine within one task's alternatives")

	// ErrMachineOutOfRange indicates a machine index outside [0, M).
	ErrMachineOutOfRange = errors.New("fjsp: machine index out of range")

	// ErrNonPositiveProc indicates a processing time that is not strictly positive.
	ErrNonPositiveProc = errors.New("fjsp: processing time must be positive")

	// ErrNegativeSetup indicates a negative setup-time entry.
	ErrNegativeSetup = errors.New("fjsp: setup time must be non-negative")

	// ErrFieldOverflow indicates a (job, task, machine, or duration) value exceeds
	// the packed decision word's field width (see codec.go).
	ErrFieldOverflow = errors.New("fjsp: value exceeds packed decision field width")

	// ErrFormat indicates malformed instance-file input: unexpected EOF, a
	// non-integer token, a row-width mismatch, or an empty header.
	ErrFormat = errors.New("fjsp: malformed instance file")
)
