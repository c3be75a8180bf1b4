package schedule

import "github.com/katalvlaran/fjspdd/fjsp"

// Domain enumerates every decision legal from s: for each job j, for each
// raw task index in [V[j]+1, U[j]+1] that is still within the job, emit
// one decision per admissible (machine, proc) alternative. The bracket
// admits exactly the next task after the guaranteed (intersection) prefix
// or the task immediately following the optimistic (union) prefix — the
// set of tasks some path is ready to commit next.
//
// Iteration order is deterministic: jobs ascending, raw task ascending,
// alternatives in stored order. emit is called once per legal decision;
// Domain itself never allocates a decision slice so callers control
// batching.
func Domain(inst *fjsp.Instance, s State, emit func(fjsp.Decision)) {
	for j := 0; j < inst.Jobs(); j++ {
		lo, hi := int(s.V[j])+1, int(s.U[j])+1
		for raw := lo; raw <= hi; raw++ {
			if raw >= inst.TasksPerJob(j) {
				continue
			}
			for _, alt := range inst.Alternatives(j, raw) {
				d, err := fjsp.Pack(j, raw, alt.Machine, alt.Proc)
				if err != nil {
					// Instance construction already bounds-checked every
					// field (see fjsp.NewInstance); reaching here means a
					// caller bypassed validation.
					panic(err)
				}
				emit(d)
			}
		}
	}
}
