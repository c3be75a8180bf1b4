package schedule

import (
	"errors"

	"github.com/katalvlaran/fjspdd/fjsp"
)

// DebugAssertions gates expensive bounds assertions meant only for tests
// and development. It defaults to false; tests that want the stricter
// checks flip it for the duration of the test.
var DebugAssertions = false

// ErrSetupIndexOutOfRange is the debug-mode assertion failure raised when
// a setup-matrix lookup would read outside Instance bounds. It only ever
// fires when DebugAssertions is true; release builds rely on Instance
// having been validated once at construction.
var ErrSetupIndexOutOfRange = errors.New("schedule: setup index out of range (debug assertion)")

// assertSetupIndex panics with ErrSetupIndexOutOfRange if prevGT, m, or
// curGT falls outside inst's bounds. Only called when DebugAssertions is
// true; a violation here means a caller built a decision from a
// different instance than the state it is being applied to.
func assertSetupIndex(inst *fjsp.Instance, prevGT, m, curGT int) {
	if prevGT < 0 || prevGT >= inst.TotalTasks() ||
		m < 0 || m >= inst.Machines() ||
		curGT < 0 || curGT >= inst.TotalTasks() {
		panic(ErrSetupIndexOutOfRange)
	}
}
