package schedule_test

import (
	"testing"

	"github.com/katalvlaran/fjspdd/fjsp"
	"github.com/katalvlaran/fjspdd/fjsp/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGroupKeyDistinguishesByIntersectionVector(t *testing.T) {
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{{{alt(0, 1)}, {alt(0, 1)}}}, nil)
	require.NoError(t, err)

	root := schedule.InitialState(inst)
	d0, err := fjsp.Pack(0, 0, 0, 1)
	require.NoError(t, err)
	committed, _ := schedule.Transition(inst, root, d0)

	assert.NotEqual(t, schedule.GroupKey(root), schedule.GroupKey(committed))
}

func TestDominatesComparesMachineFreeTimes(t *testing.T) {
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{{{alt(0, 1)}}}, nil)
	require.NoError(t, err)

	a := schedule.InitialState(inst)
	b := schedule.Clone(a)
	b.F[0] = 5

	assert.True(t, schedule.Dominates(a, b))
	assert.False(t, schedule.Dominates(b, a))
	assert.True(t, schedule.Dominates(a, a), "dominance is reflexive")
}
