package fjsp

// Alternative is one admissible (machine, processing-time) choice for a task.
type Alternative struct {
	Machine int // 0-based machine index
	Proc    int // processing time, always > 0
}

// Instance is the immutable FJSP-SDST problem data. It is constructed
// once via NewInstance or the
// parser and shared read-only across an entire search: every accessor is
// a cheap, side-effect-free lookup so schedule.State transitions never
// need to copy or lock it.
type Instance struct {
	machines int
	jobs     int

	tasksPerJob []int // length jobs
	gtOffset    []int // length jobs; gtOffset[j] = sum(tasksPerJob[:j])
	totalTasks  int

	// alternatives is indexed by global-task index (see GlobalTask).
	alternatives [][]Alternative

	// setup is a flat (totalTasks*machines) x totalTasks row-major buffer.
	// Row prevGT + m*totalTasks, column curGT, gives the setup time incurred
	// scheduling curGT on machine m immediately after prevGT on machine m.
	// Absent setup data is zero-filled.
	setup []int32
}

// Machines returns M, the machine count.
func (inst *Instance) Machines() int { return inst.machines }

// Jobs returns J, the job count.
func (inst *Instance) Jobs() int { return inst.jobs }

// TasksPerJob returns the number of tasks in job j.
func (inst *Instance) TasksPerJob(j int) int { return inst.tasksPerJob[j] }

// TotalTasks returns T, the sum of TasksPerJob over all jobs.
func (inst *Instance) TotalTasks() int { return inst.totalTasks }

// GlobalTask returns gt(j,k): the canonical index of task k of job j among
// all T tasks, counting jobs in ascending order.
func (inst *Instance) GlobalTask(j, k int) int { return inst.gtOffset[j] + k }

// Alternatives returns the ordered (machine, proc-time) pairs admissible
// for task k of job j, in the order they were supplied at construction.
// The returned slice must not be mutated by callers.
func (inst *Instance) Alternatives(j, k int) []Alternative {
	return inst.alternatives[inst.GlobalTask(j, k)]
}

// Setup returns the setup time incurred scheduling curGT on machine m
// immediately after prevGT finished on machine m. prevGT and curGT are
// global-task indices; m is a 0-based machine index.
func (inst *Instance) Setup(prevGT, m, curGT int) int32 {
	return inst.setup[(prevGT+m*inst.totalTasks)*inst.totalTasks+curGT]
}

// NewInstance validates raw problem data and returns an immutable Instance.
// alternatives[j][k] lists the admissible (machine, proc) pairs for task k
// of job j, already 0-based. setup may be nil (zero-filled) or a flat
// (totalTasks*machines) x totalTasks row-major slice as described on
// Instance.setup; its length is checked exactly.
//
// Validation:
//   - machines > 0, len(alternatives) > 0 (jobs > 0).
//   - every task has at least one alternative.
//   - machines within one task's alternatives are distinct.
//   - every machine index is in [0, machines).
//   - every processing time is > 0.
//   - every (job, task, machine, proc) fits the packed Decision fields
//     (ErrFieldOverflow).
//   - every setup entry is >= 0.
func NewInstance(machines int, alternatives [][][]Alternative, setup []int32) (*Instance, error) {
	if machines <= 0 || len(alternatives) == 0 {
		return nil, ErrNonPositiveDim
	}

	jobs := len(alternatives)
	tasksPerJob := make([]int, jobs)
	gtOffset := make([]int, jobs)
	total := 0
	for j := 0; j < jobs; j++ {
		tasksPerJob[j] = len(alternatives[j])
		gtOffset[j] = total
		total += tasksPerJob[j]
	}

	flatAlts := make([][]Alternative, total)
	for j := 0; j < jobs; j++ {
		for k := 0; k < tasksPerJob[j]; k++ {
			alts := alternatives[j][k]
			if len(alts) == 0 {
				return nil, ErrNoAlternatives
			}
			seen := make(map[int]struct{}, len(alts))
			for _, a := range alts {
				if a.Machine < 0 || a.Machine >= machines {
					return nil, ErrMachineOutOfRange
				}
				if a.Proc <= 0 {
					return nil, ErrNonPositiveProc
				}
				if _, dup := seen[a.Machine]; dup {
					return nil, ErrDuplicateMachine
				}
				if err := assertFieldWidth(j, k, a.Machine, a.Proc); err != nil {
					return nil, err
				}
				seen[a.Machine] = struct{}{}
			}
			flatAlts[gtOffset[j]+k] = alts
		}
	}

	flatSetup := make([]int32, total*machines*total)
	if setup != nil {
		if len(setup) != len(flatSetup) {
			return nil, ErrFormat
		}
		for _, v := range setup {
			if v < 0 {
				return nil, ErrNegativeSetup
			}
		}
		copy(flatSetup, setup)
	}

	return &Instance{
		machines:     machines,
		jobs:         jobs,
		tasksPerJob:  tasksPerJob,
		gtOffset:     gtOffset,
		totalTasks:   total,
		alternatives: flatAlts,
		setup:        flatSetup,
	}, nil
}
