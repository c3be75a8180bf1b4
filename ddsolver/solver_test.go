package ddsolver_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/fjspdd/ddsolver"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// sumState is a minimal synthetic problem: commit N binary decisions,
// maximizing their sum. Used to exercise ddsolver in isolation from any
// scheduling domain.
type sumState struct {
	layer int
	sum   int
}

type sumProblem struct{ n int }

func (p sumProblem) NumVariables() int        { return p.n }
func (p sumProblem) InitialState() sumState   { return sumState{} }
func (p sumProblem) Domain(s sumState, emit func(int64)) {
	emit(0)
	emit(1)
}
func (p sumProblem) Transition(s sumState, d int64) (sumState, int64) {
	return sumState{layer: s.layer + 1, sum: s.sum + int(d)}, d
}

type sumRelax struct{}

func (sumRelax) Merge(states []sumState) sumState {
	best := states[0]
	for _, s := range states[1:] {
		if s.sum > best.sum {
			best = s
		}
	}
	return best
}

type sumDom struct{}

func (sumDom) Key(s sumState) string        { return string(rune(s.layer)) }
func (sumDom) Dominates(a, b sumState) bool { return a.sum >= b.sum }

type sumRank struct{}

func (sumRank) Less(a, b sumState) bool { return a.sum < b.sum }
func (sumRank) Value(s sumState) int64  { return int64(s.sum) }

func TestSolverFindsOptimalSumWithFullWidth(t *testing.T) {
	fw, err := ddsolver.NewFixedWidth(8)
	require.NoError(t, err)

	solver, err := ddsolver.NewSolver[sumState](sumProblem{n: 3}, sumRelax{}, sumDom{}, sumRank{}, fw, ddsolver.NoCutoff, 2)
	require.NoError(t, err)

	completion := solver.Solve(context.Background())
	assert.True(t, completion.Exact)
	assert.EqualValues(t, 3, completion.BestValue)

	path, err := solver.BestSolution()
	require.NoError(t, err)
	assert.Len(t, path, 3)

	lb, ok := solver.BestLowerBound()
	assert.True(t, ok)
	assert.EqualValues(t, 3, lb)
	assert.EqualValues(t, 3, solver.BestUpperBound())
	assert.Zero(t, solver.Gap())
}

func TestSolverNarrowWidthStillFindsFeasibleIncumbent(t *testing.T) {
	fw, err := ddsolver.NewFixedWidth(1)
	require.NoError(t, err)

	solver, err := ddsolver.NewSolver[sumState](sumProblem{n: 3}, sumRelax{}, sumDom{}, sumRank{}, fw, ddsolver.NoCutoff, 2)
	require.NoError(t, err)

	completion := solver.Solve(context.Background())
	assert.EqualValues(t, 3, completion.BestValue, "width 1 restricted pass always keeps the higher-ranked child")

	_, err = solver.BestSolution()
	assert.NoError(t, err)
}

func TestSolverRejectsZeroVariableProblem(t *testing.T) {
	fw, err := ddsolver.NewFixedWidth(4)
	require.NoError(t, err)

	_, err = ddsolver.NewSolver[sumState](sumProblem{n: 0}, sumRelax{}, sumDom{}, sumRank{}, fw, ddsolver.NoCutoff, 2)
	assert.ErrorIs(t, err, ddsolver.ErrNoInitialState)
}

func TestSolverBestSolutionErrorsWithoutIncumbent(t *testing.T) {
	fw, err := ddsolver.NewFixedWidth(4)
	require.NoError(t, err)

	solver, err := ddsolver.NewSolver[sumState](sumProblem{n: 1}, sumRelax{}, sumDom{}, sumRank{}, fw, ddsolver.NoCutoff, 1)
	require.NoError(t, err)

	_, err = solver.BestSolution()
	assert.ErrorIs(t, err, ddsolver.ErrNoIncumbent)
}
