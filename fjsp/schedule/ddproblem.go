package schedule

import (
	"github.com/katalvlaran/fjspdd/ddsolver"
	"github.com/katalvlaran/fjspdd/fjsp"
)

// Problem adapts an *fjsp.Instance to ddsolver.Problem[State], the only
// place FJSP-SDST types meet the generic solver. ddsolver never imports
// fjsp or schedule; this file is the seam.
type Problem struct {
	Inst *fjsp.Instance
}

var _ ddsolver.Problem[State] = Problem{}

func (p Problem) NumVariables() int   { return p.Inst.TotalTasks() }
func (p Problem) InitialState() State { return InitialState(p.Inst) }

func (p Problem) Domain(s State, emit func(int64)) {
	Domain(p.Inst, s, func(d fjsp.Decision) { emit(int64(d)) })
}

func (p Problem) Transition(s State, decision int64) (State, int64) {
	return Transition(p.Inst, s, fjsp.Decision(decision))
}

// Relax adapts Merge to ddsolver.Relaxation[State].
type Relax struct {
	Inst *fjsp.Instance
}

var _ ddsolver.Relaxation[State] = Relax{}

func (r Relax) Merge(states []State) State { return Merge(r.Inst, states) }

// Dom adapts GroupKey/Dominates to ddsolver.Dominance[State]. It carries
// no state of its own.
type Dom struct{}

var _ ddsolver.Dominance[State] = Dom{}

func (Dom) Key(s State) string        { return GroupKey(s) }
func (Dom) Dominates(a, b State) bool { return Dominates(a, b) }

// Rank adapts State.Est to ddsolver.Ranking[State]: a state is worse than
// another iff its cached completion estimate is smaller.
type Rank struct{}

var _ ddsolver.Ranking[State] = Rank{}

func (Rank) Less(a, b State) bool { return a.Est < b.Est }
func (Rank) Value(s State) int64  { return s.Est }
