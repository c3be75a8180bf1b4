package fjsp

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Format identifies which of the two textual instance-file layouts
// was detected on read, or should be used on write.
type Format int

const (
	// FormatFlat is the job-line layout: "J M", then one line per job
	// listing task/alternative counts and (machine, proc) pairs inline.
	FormatFlat Format = iota
	// FormatMatrix is the dense layout: J, M, per-job task counts, then
	// one row of M processing times (0 = inadmissible) per global task.
	FormatMatrix
)

// ParseFile opens path and parses it as an FJSP-SDST instance file.
func ParseFile(path string) (*Instance, Format, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("fjsp: open instance file: %w", err)
	}
	defer f.Close()

	return ParseInstance(f)
}

// ParseInstance reads r and parses it as either the flat or matrix format,
// auto-detected by the token count of the first non-blank line: a
// first line with >=2 tokens is flat, exactly 1 token is matrix. A
// trailing setup block is consumed if present; a malformed token in the
// header, job lines or matrix rows is ErrFormat, while a setup block that
// does not match exactly is ignored (see parseSetupBlock).
func ParseInstance(r io.Reader) (*Instance, Format, error) {
	lines, err := nonBlankLines(r)
	if err != nil {
		return nil, 0, err
	}
	if len(lines) == 0 {
		return nil, 0, ErrFormat
	}

	p := &lineParser{lines: lines}
	first := strings.Fields(p.lines[0])
	if len(first) == 0 {
		return nil, 0, ErrFormat
	}

	if len(first) == 1 {
		inst, err := parseMatrix(p)
		return inst, FormatMatrix, err
	}
	inst, err := parseFlat(p)
	return inst, FormatFlat, err
}

// lineParser walks a pre-trimmed, pre-filtered slice of non-blank lines.
type lineParser struct {
	lines []string
	pos   int
}

// next returns the next line or ErrFormat on exhaustion (unexpected EOF).
func (p *lineParser) next() (string, error) {
	if p.pos >= len(p.lines) {
		return "", ErrFormat
	}
	l := p.lines[p.pos]
	p.pos++
	return l, nil
}

// remaining returns the count of lines not yet consumed.
func (p *lineParser) remaining() int { return len(p.lines) - p.pos }

// nonBlankLines reads all of r, trims each line, and drops blank ones,
// matching the original parser's "read to string, split, trim, filter" pass.
func nonBlankLines(r io.Reader) ([]string, error) {
	var out []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for sc.Scan() {
		l := strings.TrimSpace(sc.Text())
		if l == "" {
			continue
		}
		out = append(out, l)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("fjsp: read instance file: %w", err)
	}
	return out, nil
}

// parseInts splits s on whitespace and parses every token as an int;
// any non-integer token is ErrFormat.
func parseInts(s string) ([]int, error) {
	fields := strings.Fields(s)
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, ErrFormat
		}
		out[i] = v
	}
	return out, nil
}

// parseFlat implements the flat-format job lines: "t a1 m11 p11 ... a2 ...".
func parseFlat(p *lineParser) (*Instance, error) {
	header, err := parseInts(p.lines[0])
	if err != nil || len(header) < 2 {
		return nil, ErrFormat
	}
	p.pos = 1
	jobs, machines := header[0], header[1]
	if jobs <= 0 || machines <= 0 {
		return nil, ErrNonPositiveDim
	}

	alternatives := make([][][]Alternative, jobs)
	for j := 0; j < jobs; j++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		toks, err := parseInts(line)
		if err != nil {
			return nil, err
		}
		idx := 0
		readTok := func() (int, bool) {
			if idx >= len(toks) {
				return 0, false
			}
			v := toks[idx]
			idx++
			return v, true
		}

		t, ok := readTok()
		if !ok || t < 0 {
			return nil, ErrFormat
		}
		tasks := make([][]Alternative, t)
		for k := 0; k < t; k++ {
			a, ok := readTok()
			if !ok || a <= 0 {
				return nil, ErrFormat
			}
			alts := make([]Alternative, a)
			for i := 0; i < a; i++ {
				m, ok1 := readTok()
				pt, ok2 := readTok()
				if !ok1 || !ok2 {
					return nil, ErrFormat
				}
				alts[i] = Alternative{Machine: m - 1, Proc: pt} // 1-based -> 0-based
			}
			tasks[k] = alts
		}
		alternatives[j] = tasks
	}

	setup, err := parseSetupBlock(p, totalOf(alternatives), machines)
	if err != nil {
		return nil, err
	}
	return NewInstance(machines, alternatives, setup)
}

// parseMatrix implements the dense matrix format: J / M / task-counts / rows.
func parseMatrix(p *lineParser) (*Instance, error) {
	p.pos = 0
	jline, err := p.next()
	if err != nil {
		return nil, err
	}
	jv, err := parseInts(jline)
	if err != nil || len(jv) != 1 {
		return nil, ErrFormat
	}
	jobs := jv[0]

	mline, err := p.next()
	if err != nil {
		return nil, err
	}
	mv, err := parseInts(mline)
	if err != nil || len(mv) != 1 {
		return nil, ErrFormat
	}
	machines := mv[0]
	if jobs <= 0 || machines <= 0 {
		return nil, ErrNonPositiveDim
	}

	tline, err := p.next()
	if err != nil {
		return nil, err
	}
	tasksPerJob, err := parseInts(tline)
	if err != nil || len(tasksPerJob) != jobs {
		return nil, ErrFormat
	}

	totalTasks := 0
	for _, t := range tasksPerJob {
		if t <= 0 {
			return nil, ErrFormat
		}
		totalTasks += t
	}

	rows := make([][]int, totalTasks)
	for i := 0; i < totalTasks; i++ {
		line, err := p.next()
		if err != nil {
			return nil, err
		}
		row, err := parseInts(line)
		if err != nil || len(row) != machines {
			return nil, ErrFormat
		}
		rows[i] = row
	}

	alternatives := make([][][]Alternative, jobs)
	ridx := 0
	for j := 0; j < jobs; j++ {
		tasks := make([][]Alternative, tasksPerJob[j])
		for k := 0; k < tasksPerJob[j]; k++ {
			var alts []Alternative
			for m, proc := range rows[ridx] {
				if proc > 0 {
					alts = append(alts, Alternative{Machine: m, Proc: proc})
				}
			}
			ridx++
			tasks[k] = alts
		}
		alternatives[j] = tasks
	}

	setup, err := parseSetupBlock(p, totalTasks, machines)
	if err != nil {
		return nil, err
	}
	return NewInstance(machines, alternatives, setup)
}

// totalOf sums task counts across jobs.
func totalOf(alternatives [][][]Alternative) int {
	n := 0
	for _, job := range alternatives {
		n += len(job)
	}
	return n
}

// parseSetupBlock reads the optional trailing setup block: exactly
// machines*totalTasks lines, each with exactly totalTasks non-negative
// integers. It is accepted only if both the line count and every row's
// token count match; otherwise it is silently skipped (not consumed from
// p) and the caller's instance gets zero-filled setups.
func parseSetupBlock(p *lineParser, totalTasks, machines int) ([]int32, error) {
	need := machines * totalTasks
	if p.remaining() != need {
		return nil, nil
	}

	rows := make([][]int, need)
	start := p.pos
	ok := true
	for i := 0; i < need; i++ {
		toks, err := parseInts(p.lines[start+i])
		if err != nil || len(toks) != totalTasks {
			ok = false
			break
		}
		rows[i] = toks
	}
	if !ok {
		return nil, nil
	}

	flat := make([]int32, need*totalTasks)
	for i, row := range rows {
		for c, v := range row {
			if v < 0 {
				return nil, ErrNegativeSetup
			}
			flat[i*totalTasks+c] = int32(v)
		}
	}
	p.pos = start + need
	return flat, nil
}
