package schedule_test

import (
	"testing"

	"github.com/katalvlaran/fjspdd/fjsp"
	"github.com/katalvlaran/fjspdd/fjsp/schedule"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func twoTaskInstance(t *testing.T) *fjsp.Instance {
	t.Helper()
	inst, err := fjsp.NewInstance(2, [][][]fjsp.Alternative{
		{{alt(0, 2)}, {alt(0, 3), alt(1, 1)}},
	}, nil)
	require.NoError(t, err)
	return inst
}

func TestDomainAtRootOnlyFirstTask(t *testing.T) {
	inst := twoTaskInstance(t)
	s := schedule.InitialState(inst)

	var decisions []fjsp.Decision
	schedule.Domain(inst, s, func(d fjsp.Decision) { decisions = append(decisions, d) })

	require.Len(t, decisions, 1)
	job, task, machine, proc := decisions[0].Unpack()
	assert.Equal(t, 0, job)
	assert.Equal(t, 0, task)
	assert.Equal(t, 0, machine)
	assert.Equal(t, 2, proc)
}

func TestDomainAfterFirstTaskOffersSecondTaskAlternatives(t *testing.T) {
	inst := twoTaskInstance(t)
	s := schedule.InitialState(inst)

	d0, err := fjsp.Pack(0, 0, 0, 2)
	require.NoError(t, err)
	next, _ := schedule.Transition(inst, s, d0)

	var decisions []fjsp.Decision
	schedule.Domain(inst, next, func(d fjsp.Decision) { decisions = append(decisions, d) })

	require.Len(t, decisions, 2)
	for _, d := range decisions {
		job, task, _, _ := d.Unpack()
		assert.Equal(t, 0, job)
		assert.Equal(t, 1, task)
	}
}

func TestDomainIsEmptyAtLeaf(t *testing.T) {
	inst, err := fjsp.NewInstance(1, [][][]fjsp.Alternative{{{alt(0, 5)}}}, nil)
	require.NoError(t, err)
	s := schedule.InitialState(inst)

	d, err := fjsp.Pack(0, 0, 0, 5)
	require.NoError(t, err)
	leaf, _ := schedule.Transition(inst, s, d)
	assert.True(t, leaf.IsLeaf(inst))

	var count int
	schedule.Domain(inst, leaf, func(fjsp.Decision) { count++ })
	assert.Zero(t, count)
}
