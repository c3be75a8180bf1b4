package schedule

import "github.com/katalvlaran/fjspdd/fjsp"

// Transition applies decision d to parent state s and returns the
// successor state together with its incremental cost.
//
// Steps:
//  1. new.Layer = s.Layer + 1.
//  2. gt = global-task(job, task).
//  3. Earliest start on m accounts for setup only if the machine has
//     scheduled something before (P[m] != noTask).
//  4. Earliest start for the job is T[job] (its own resume time).
//  5. finish = max(m_ready, j_ready) + proc.
//  6. F[m], T[job], V[job], U[job], P[m] are updated to reflect the commit.
//  7. Est is refreshed via the C8 estimator.
//
// Sibling-machine repair: this implementation keeps only the optimistic
// F and does not relax a previous machine's F[n] when job continuity
// moves to a different machine n != m. This is a documented, conformant
// choice that affects only tightness of the bound, not correctness; see
// DESIGN.md for the recorded decision.
func Transition(inst *fjsp.Instance, s State, d fjsp.Decision) (State, int64) {
	job, task, m, proc := d.Unpack()

	next := Clone(s)
	next.Layer++

	gt := inst.GlobalTask(job, task)

	mReady := next.F[m]
	if next.P[m] != noTask {
		if DebugAssertions {
			assertSetupIndex(inst, int(next.P[m]), m, gt)
		}
		mReady += int64(inst.Setup(int(next.P[m]), m, gt))
	}
	jReady := next.T[job]

	finish := mReady
	if jReady > finish {
		finish = jReady
	}
	finish += int64(proc)

	next.F[m] = finish
	next.T[job] = finish
	next.V[job] = int32(task)
	next.U[job] = int32(task)
	next.P[m] = int32(gt)

	oldMk := s.Makespan()
	newMk := next.Makespan()
	cost := -(newMk - oldMk)

	next.Est = Estimate(inst, next)

	return next, cost
}
