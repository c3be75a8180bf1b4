package ddsolver

import "errors"

// Configuration / governance errors.
var (
	// ErrNonPositiveWidth indicates a FixedWidth strategy was built with width <= 0.
	ErrNonPositiveWidth = errors.New("ddsolver: width must be positive")

	// ErrNoInitialState indicates Problem.InitialState was never reachable (NumVariables <= 0).
	ErrNoInitialState = errors.New("ddsolver: problem reports no variables")

	// ErrNoIncumbent is returned by BestSolution when the search has not yet
	// produced a single feasible leaf (the restricted diagram found nothing).
	ErrNoIncumbent = errors.New("ddsolver: no feasible solution found")
)
