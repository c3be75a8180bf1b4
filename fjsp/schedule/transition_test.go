package schedule_test

import (
	"testing"

	"github.com/katalvlaran/fjspdd/fjsp"
	"github.com/katalvlaran/fjspdd/fjsp/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionAccumulatesMachineAndJobTime(t *testing.T) {
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{
		{{alt(0, 2)}, {alt(0, 3)}},
	}, nil)
	require.NoError(t, err)

	s := schedule.InitialState(inst)
	d0, err := fjsp.Pack(0, 0, 0, 2)
	require.NoError(t, err)
	s1, cost1 := schedule.Transition(inst, s, d0)
	assert.EqualValues(t, 2, s1.F[0])
	assert.EqualValues(t, -2, cost1)

	d1, err := fjsp.Pack(0, 1, 0, 3)
	require.NoError(t, err)
	s2, cost2 := schedule.Transition(inst, s1, d1)
	assert.EqualValues(t, 5, s2.F[0])
	assert.EqualValues(t, -3, cost2)
	assert.True(t, s2.IsLeaf(inst))
}

func TestTransitionAppliesSetupOnRepeatMachine(t *testing.T) {
	setup := make([]int32, 2*1*2)
	setup[0*2+1] = 7 // prev gt0 on m0, cur gt1
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{
		{{alt(0, 1)}},
		{{alt(0, 1)}},
	}, setup)
	require.NoError(t, err)

	s := schedule.InitialState(inst)
	d0, err := fjsp.Pack(0, 0, 0, 1)
	require.NoError(t, err)
	s1, _ := schedule.Transition(inst, s, d0)

	d1, err := fjsp.Pack(1, 0, 0, 1)
	require.NoError(t, err)
	s2, _ := schedule.Transition(inst, s1, d1)

	// machine free at 1, + setup 7, + proc 1 = 9.
	assert.EqualValues(t, 9, s2.F[0])
}

func TestTransitionDebugAssertionsCatchOutOfRangeSetupLookup(t *testing.T) {
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{{{alt(0, 1)}}}, nil)
	require.NoError(t, err)

	schedule.DebugAssertions = true
	defer func() { schedule.DebugAssertions = false }()

	s := schedule.InitialState(inst)
	d0, err := fjsp.Pack(0, 0, 0, 1)
	require.NoError(t, err)
	s1, _ := schedule.Transition(inst, s, d0)
	_ = s1 // first commit never triggers the assertion (P[m] == noTask)

	// Task 1 of job 0 does not exist in inst (gt 1 >= TotalTasks 1), so the
	// setup lookup after s1's commit on machine 0 is out of range.
	bad, err := fjsp.Pack(0, 1, 0, 1)
	require.NoError(t, err)
	assert.PanicsWithValue(t, schedule.ErrSetupIndexOutOfRange, func() {
		schedule.Transition(inst, s1, bad)
	})
}
