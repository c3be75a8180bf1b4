package schedule

import "github.com/katalvlaran/fjspdd/fjsp"

// Estimate computes the list-schedule completion estimate est(s): clone
// F and T, then repeatedly advance every job's next task,
// tentatively scheduling *every* admissible alternative of that task
// (not just one), and report the negated worst-case machine-free time.
//
// This deliberately over-counts: a task with k alternatives adds its
// processing time to all k machines' running totals rather than picking
// one, so the bound is loose but cheap, deterministic, and monotone. It
// is used both to rank states (larger Est is better) and as a fast,
// admissible upper bound on remaining work.
func Estimate(inst *fjsp.Instance, s State) int64 {
	f := make([]int64, len(s.F))
	copy(f, s.F)
	t := make([]int64, len(s.T))
	copy(t, s.T)

	next := make([]int, inst.Jobs())
	for j := range next {
		next[j] = int(s.V[j]) + 1
	}

	for {
		progressed := false
		for j := 0; j < inst.Jobs(); j++ {
			k := next[j]
			if k >= inst.TasksPerJob(j) {
				continue
			}
			progressed = true

			var latest int64
			for _, alt := range inst.Alternatives(j, k) {
				cand := f[alt.Machine]
				if t[j] > cand {
					cand = t[j]
				}
				cand += int64(alt.Proc)
				f[alt.Machine] = cand
				if cand > latest {
					latest = cand
				}
			}
			t[j] = latest
			next[j]++
		}
		if !progressed {
			break
		}
	}

	var mk int64
	for _, v := range f {
		if v > mk {
			mk = v
		}
	}
	return -mk
}
