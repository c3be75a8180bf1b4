package schedule

import "github.com/katalvlaran/fjspdd/fjsp"

// noTask marks "no task committed yet" in State.V, State.U, and State.P:
// v[j]=-1 and p[m]=-1 at the root.
const noTask = -1

// State is the DP state carried through one decision-diagram layer. All
// slices are job- or machine-sized and allocated once per Clone;
// the owning *fjsp.Instance is never embedded here (see doc.go).
type State struct {
	Layer int // decisions committed so far; T at any complete leaf

	V []int32 // per job: highest task index committed on every path ("intersection")
	U []int32 // per job: highest task index committed on some path ("union")

	F []int64 // per machine: earliest time the machine can become free (optimistic)
	T []int64 // per job: earliest time the job can resume

	P []int32 // per machine: most recently scheduled global-task, or noTask

	Est int64 // cached optimistic completion value (negative makespan) for ranking
}

// InitialState returns the root state: layer 0, every job's prefix empty,
// every machine free at time 0, no machine history.
func InitialState(inst *fjsp.Instance) State {
	jobs, machines := inst.Jobs(), inst.Machines()
	s := State{
		Layer: 0,
		V:     make([]int32, jobs),
		U:     make([]int32, jobs),
		F:     make([]int64, machines),
		T:     make([]int64, jobs),
		P:     make([]int32, machines),
	}
	for j := 0; j < jobs; j++ {
		s.V[j] = noTask
		s.U[j] = noTask
	}
	for m := 0; m < machines; m++ {
		s.P[m] = noTask
	}
	s.Est = Estimate(inst, s)
	return s
}

// Clone returns a deep, independent copy of s: every slice is freshly
// allocated, giving State value semantics so concurrent search branches
// never alias each other's slices.
func Clone(s State) State {
	out := State{
		Layer: s.Layer,
		Est:   s.Est,
		V:     make([]int32, len(s.V)),
		U:     make([]int32, len(s.U)),
		F:     make([]int64, len(s.F)),
		T:     make([]int64, len(s.T)),
		P:     make([]int32, len(s.P)),
	}
	copy(out.V, s.V)
	copy(out.U, s.U)
	copy(out.F, s.F)
	copy(out.T, s.T)
	copy(out.P, s.P)
	return out
}

// Makespan returns max_m F[m], the current optimistic completion time —
// the leaf-level makespan once Layer equals inst.TotalTasks().
func (s State) Makespan() int64 {
	var mk int64
	for _, f := range s.F {
		if f > mk {
			mk = f
		}
	}
	return mk
}

// IsLeaf reports whether s has committed every task of every job.
func (s State) IsLeaf(inst *fjsp.Instance) bool {
	return s.Layer == inst.TotalTasks()
}
