// Command fjspdd solves a flexible job-shop instance with sequence-
// dependent setup times by branch-and-bound search over a decision
// diagram, and reports the best schedule found within a time budget.
package main

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/katalvlaran/fjspdd/ddsolver"
	"github.com/katalvlaran/fjspdd/fjsp"
	"github.com/katalvlaran/fjspdd/fjsp/schedule"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	if len(args) != 3 {
		return fmt.Errorf("usage: fjspdd <instance_path> <width> <timeout_seconds>")
	}

	width, err := strconv.Atoi(args[1])
	if err != nil || width <= 0 {
		return fmt.Errorf("fjspdd: invalid width %q: must be a positive integer", args[1])
	}
	timeoutSecs, err := strconv.ParseFloat(args[2], 64)
	if err != nil || timeoutSecs <= 0 {
		return fmt.Errorf("fjspdd: invalid timeout %q: must be a positive number of seconds", args[2])
	}

	inst, _, err := fjsp.ParseFile(args[0])
	if err != nil {
		return fmt.Errorf("fjspdd: %w", err)
	}

	fw, err := ddsolver.NewFixedWidth(width)
	if err != nil {
		return fmt.Errorf("fjspdd: %w", err)
	}
	cutoff := ddsolver.TimeBudget(time.Duration(timeoutSecs * float64(time.Second)))

	problem := schedule.Problem{Inst: inst}
	solver, err := ddsolver.NewSolver[schedule.State](
		problem,
		schedule.Relax{Inst: inst},
		schedule.Dom{},
		schedule.Rank{},
		fw,
		cutoff,
		8,
	)
	if err != nil {
		return fmt.Errorf("fjspdd: %w", err)
	}

	start := time.Now()
	completion := solver.Solve(context.Background())
	duration := time.Since(start)

	upperBound := -solver.BestUpperBound()
	lowerBound, hasIncumbent := solver.BestLowerBound()
	lowerBound = -lowerBound
	gap := float64(solver.Gap())

	var solutionTuples []decisionTuple
	if path, err := solver.BestSolution(); err == nil {
		solutionTuples = unpackPath(path)
	}

	fmt.Printf("Exact:      %v\n", completion.Exact)
	fmt.Printf("Duration:   %.3f seconds\n", duration.Seconds())
	fmt.Printf("Upper Bnd:  %d\n", upperBound)
	if hasIncumbent {
		fmt.Printf("Lower Bnd:  %d\n", lowerBound)
	} else {
		fmt.Printf("Lower Bnd:  %d\n", upperBound)
	}
	fmt.Printf("Gap:        %.3f\n", gap)
	fmt.Printf("Solution:   %v\n", solutionTuples)

	return nil
}

// decisionTuple is one (proc_time, job, task, machine) entry of the
// printed solution, ordered by variable (the order decisions were
// committed along the best path).
type decisionTuple struct {
	Proc    int
	Job     int
	Task    int
	Machine int
}

func (t decisionTuple) String() string {
	return fmt.Sprintf("(%d, %d, %d, %d)", t.Proc, t.Job, t.Task, t.Machine)
}

func unpackPath(path []int64) []decisionTuple {
	tuples := make([]decisionTuple, len(path))
	for i, raw := range path {
		job, task, machine, proc := fjsp.Decision(raw).Unpack()
		tuples[i] = decisionTuple{Proc: proc, Job: job, Task: task, Machine: machine}
	}
	return tuples
}
