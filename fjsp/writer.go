package fjsp

import (
	"bufio"
	"fmt"
	"io"
)

// WriteInstance emits inst in the requested textual format, the inverse
// of ParseInstance: parsing a file and re-emitting it in the same format
// should yield identical content, so a writer is needed to exercise that
// property.
//
// The setup block is omitted entirely when every entry is zero (mirroring
// the "missing setup block implies zeros" parse rule), so a zero-setup
// instance round-trips byte-for-byte through parse -> write -> parse.
func WriteInstance(w io.Writer, inst *Instance, format Format) error {
	bw := bufio.NewWriter(w)
	var err error
	switch format {
	case FormatFlat:
		err = writeFlat(bw, inst)
	case FormatMatrix:
		err = writeMatrix(bw, inst)
	default:
		return ErrFormat
	}
	if err != nil {
		return err
	}
	if hasNonZeroSetup(inst) {
		if err := writeSetupBlock(bw, inst); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func writeFlat(w *bufio.Writer, inst *Instance) error {
	if _, err := fmt.Fprintf(w, "%d %d\n", inst.Jobs(), inst.Machines()); err != nil {
		return err
	}
	for j := 0; j < inst.Jobs(); j++ {
		t := inst.TasksPerJob(j)
		if _, err := fmt.Fprintf(w, "%d", t); err != nil {
			return err
		}
		for k := 0; k < t; k++ {
			alts := inst.Alternatives(j, k)
			if _, err := fmt.Fprintf(w, " %d", len(alts)); err != nil {
				return err
			}
			for _, a := range alts {
				if _, err := fmt.Fprintf(w, " %d %d", a.Machine+1, a.Proc); err != nil {
					return err
				}
			}
		}
		if _, err := w.WriteString("\n"); err != nil {
			return err
		}
	}
	return nil
}

func writeMatrix(w *bufio.Writer, inst *Instance) error {
	if _, err := fmt.Fprintf(w, "%d\n%d\n", inst.Jobs(), inst.Machines()); err != nil {
		return err
	}
	for j := 0; j < inst.Jobs(); j++ {
		sep := ""
		if j > 0 {
			sep = " "
		}
		if _, err := fmt.Fprintf(w, "%s%d", sep, inst.TasksPerJob(j)); err != nil {
			return err
		}
	}
	if _, err := w.WriteString("\n"); err != nil {
		return err
	}

	row := make([]int, inst.Machines())
	for j := 0; j < inst.Jobs(); j++ {
		for k := 0; k < inst.TasksPerJob(j); k++ {
			for i := range row {
				row[i] = 0
			}
			for _, a := range inst.Alternatives(j, k) {
				row[a.Machine] = a.Proc
			}
			for i, v := range row {
				sep := ""
				if i > 0 {
					sep = " "
				}
				if _, err := fmt.Fprintf(w, "%s%d", sep, v); err != nil {
					return err
				}
			}
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

func writeSetupBlock(w *bufio.Writer, inst *Instance) error {
	total := inst.TotalTasks()
	for m := 0; m < inst.Machines(); m++ {
		for prevGT := 0; prevGT < total; prevGT++ {
			for curGT := 0; curGT < total; curGT++ {
				sep := ""
				if curGT > 0 {
					sep = " "
				}
				if _, err := fmt.Fprintf(w, "%s%d", sep, inst.Setup(prevGT, m, curGT)); err != nil {
					return err
				}
			}
			if _, err := w.WriteString("\n"); err != nil {
				return err
			}
		}
	}
	return nil
}

// hasNonZeroSetup reports whether any setup-time entry is non-zero.
func hasNonZeroSetup(inst *Instance) bool {
	for _, v := range inst.setup {
		if v != 0 {
			return true
		}
	}
	return false
}
