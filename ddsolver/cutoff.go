package ddsolver

import (
	"sync/atomic"
	"time"
)

// Cutoff decides when the search must stop early with a best-effort
// (non-exact) result. Poll is called once per batch of nodes popped off
// the fringe; implementations that measure wall-clock time should use a
// sparse check (see TimeBudget) since time.Now() in a hot loop is not
// free.
type Cutoff interface {
	Poll() bool
}

// noCutoff never stops the search early.
type noCutoff struct{}

func (noCutoff) Poll() bool { return false }

// NoCutoff runs the search to exhaustion (or until the problem itself is
// solved), never triggering early termination.
var NoCutoff Cutoff = noCutoff{}

// pollMask bounds deadline checks to once every 4096 polls, the same
// sparse-check cadence used elsewhere for soft time budgets.
const pollMask = 1<<12 - 1

// timeBudget is a soft wall-clock deadline, checked rarely to keep the
// hot loop allocation- and syscall-free.
type timeBudget struct {
	deadline time.Time
	steps    atomic.Uint32
}

// TimeBudget returns a Cutoff that expires d after it is constructed.
// Workers may call Poll concurrently; the step counter is atomic.
func TimeBudget(d time.Duration) Cutoff {
	return &timeBudget{deadline: time.Now().Add(d)}
}

func (t *timeBudget) Poll() bool {
	n := t.steps.Add(1)
	if n&pollMask != 0 {
		return false
	}
	return time.Now().After(t.deadline)
}
