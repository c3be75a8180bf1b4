package fjsp

import "math/bits"

// Decision packs a (job, task, machine, processing-time) tuple into a
// single signed 64-bit word: least-significant byte is machine, then
// task, then job, and the remaining (highest) bytes hold the processing
// time. This lets a decision diagram solver carry decisions as plain
// integers without a separate payload type.
type Decision int64

const (
	machineBits = 8
	taskBits    = 8
	jobBits     = 8

	machineShift = 0
	taskShift    = machineShift + machineBits
	jobShift     = taskShift + taskBits
	procShift    = jobShift + jobBits

	fieldMask = 0xFF
)

// MaxFieldValue is the largest job, task, or machine index the codec can
// pack: machine, task, and job each get one byte.
const MaxFieldValue = 1<<8 - 1

// assertFieldWidth reports whether the three 8-bit fields and the
// remaining-width processing-time field can all hold the given values.
func assertFieldWidth(job, task, machine, proc int) error {
	if job < 0 || job > MaxFieldValue ||
		task < 0 || task > MaxFieldValue ||
		machine < 0 || machine > MaxFieldValue {
		return ErrFieldOverflow
	}
	if proc < 0 || bits.Len(uint(proc)) > 64-procShift {
		return ErrFieldOverflow
	}
	return nil
}

// Pack encodes (job, task, machine, proc) into a Decision. It returns
// ErrFieldOverflow if any field exceeds its packed width; callers should
// validate instance size once at load time (see Instance construction)
// rather than on every Pack call in a hot loop.
func Pack(job, task, machine, proc int) (Decision, error) {
	if err := assertFieldWidth(job, task, machine, proc); err != nil {
		return 0, err
	}
	word := uint64(machine&fieldMask)<<machineShift |
		uint64(task&fieldMask)<<taskShift |
		uint64(job&fieldMask)<<jobShift |
		uint64(proc)<<procShift
	return Decision(word), nil
}

// Unpack reverses Pack, recovering (job, task, machine, proc). It is the
// exact inverse: Unpack(Pack(x)) == x for every legal x.
func (d Decision) Unpack() (job, task, machine, proc int) {
	word := uint64(d)
	machine = int(word>>machineShift) & fieldMask
	task = int(word>>taskShift) & fieldMask
	job = int(word>>jobShift) & fieldMask
	proc = int(word >> procShift)
	return job, task, machine, proc
}
