package ddsolver

import (
	"container/heap"
	"context"
	"sort"
	"sync"
)

// Solver holds the collaborators that give a concrete meaning to "state"
// (see Problem) and runs two decision-diagram passes per Solve call: a
// restricted diagram, which drops over-width states and so only ever
// produces genuinely reconstructable (and therefore trustworthy) leaves,
// and a relaxed diagram, which merges over-width states and so can only
// be trusted for its bound, never for a leaf's reconstructed path.
//
// A Solver is not safe for concurrent use by multiple callers of Solve;
// Solve itself fans node expansion out to a worker pool internally.
type Solver[S any] struct {
	problem Problem[S]
	relax   Relaxation[S]
	dom     Dominance[S]
	rank    Ranking[S]
	width   Width
	cutoff  Cutoff
	workers int

	bestValue int64
	bestPath  []int64
	upperB    int64
	exact     bool
}

// NewSolver constructs a Solver. workers <= 0 defaults to 8, the same
// default worker count the reference host uses. It returns
// ErrNoInitialState if problem declares no variables to decide.
func NewSolver[S any](problem Problem[S], relax Relaxation[S], dom Dominance[S], rank Ranking[S], width Width, cutoff Cutoff, workers int) (*Solver[S], error) {
	if problem.NumVariables() <= 0 {
		return nil, ErrNoInitialState
	}
	if workers <= 0 {
		workers = 8
	}
	if cutoff == nil {
		cutoff = NoCutoff
	}
	return &Solver[S]{
		problem:   problem,
		relax:     relax,
		dom:       dom,
		rank:      rank,
		width:     width,
		cutoff:    cutoff,
		workers:   workers,
		bestValue: noIncumbent,
	}, nil
}

// node is one open decision-diagram state, the path of real decisions
// that built it, and the accumulated cost along that path.
type node[S any] struct {
	state S
	path  []int64
	value int64
}

// seenCache is a dominance cache keyed by Dominance.Key: a lazy,
// insert-only filter against states already admitted into a diagram,
// mirroring the "push duplicates, ignore stale entries" lazy idiom used
// for priority queues elsewhere rather than eagerly evicting dominated
// fringe entries.
type seenCache[S any] struct {
	dom  Dominance[S]
	seen map[string][]S
}

func newSeenCache[S any](dom Dominance[S]) *seenCache[S] {
	return &seenCache[S]{dom: dom, seen: make(map[string][]S)}
}

func (c *seenCache[S]) admit(s S) bool {
	key := c.dom.Key(s)
	group := c.seen[key]
	for _, existing := range group {
		if c.dom.Dominates(existing, s) {
			return false
		}
	}
	c.seen[key] = append(group, s)
	return true
}

// Solve runs the restricted pass to find a feasible incumbent, then the
// relaxed pass to prove (or bound) its optimality, stopping early if ctx
// is done or the configured Cutoff fires. Solve may be called at most
// once per Solver.
func (sv *Solver[S]) Solve(ctx context.Context) Completion {
	restrictedExact := sv.run(ctx, false)
	relaxedExact := sv.run(ctx, true)

	sv.exact = restrictedExact && relaxedExact && sv.bestPath != nil
	if sv.bestPath != nil && sv.upperB < sv.bestValue {
		sv.upperB = sv.bestValue
	}
	return Completion{Exact: sv.exact, BestValue: sv.bestValue}
}

// run performs one decision-diagram construction. merging selects
// between the restricted (drop excess) and relaxed (merge excess)
// width-enforcement policy. It returns whether this pass ran to
// exhaustion without being interrupted by ctx or the Cutoff.
func (sv *Solver[S]) run(ctx context.Context, merging bool) bool {
	root := &node[S]{state: sv.problem.InitialState()}
	if !merging {
		sv.upperB = sv.rank.Value(root.state)
	}

	fr := newFringe(sv.rank)
	heap.Init(fr)
	heap.Push(fr, root)

	cache := newSeenCache(sv.dom)
	leafLayer := sv.problem.NumVariables()

	for fr.Len() > 0 {
		select {
		case <-ctx.Done():
			return false
		default:
		}
		if sv.cutoff.Poll() {
			return false
		}

		batch := sv.popBatch(fr)

		best := sv.rank.Value(batch[0].state)
		if merging {
			sv.upperB = best
		}
		if sv.bestPath != nil && best <= sv.bestValue {
			return true // no remaining node can beat the incumbent: proven
		}

		results := sv.expandBatch(batch)

		for i, n := range batch {
			if len(n.path) == leafLayer {
				if !merging && (sv.bestPath == nil || n.value > sv.bestValue) {
					sv.bestValue = n.value
					sv.bestPath = n.path
				}
				continue
			}

			survivors := results[i][:0]
			for _, c := range results[i] {
				if cache.admit(c.state) {
					survivors = append(survivors, c)
				}
			}
			survivors = sv.enforceWidth(survivors, len(n.path)+1, merging)
			for _, c := range survivors {
				heap.Push(fr, c)
			}
		}
	}
	return true
}

// expand runs Domain+Transition for one node; it touches no shared state
// so many calls can run concurrently.
func (sv *Solver[S]) expand(n *node[S]) []*node[S] {
	var decisions []int64
	sv.problem.Domain(n.state, func(d int64) { decisions = append(decisions, d) })

	children := make([]*node[S], 0, len(decisions))
	for _, d := range decisions {
		child, cost := sv.problem.Transition(n.state, d)
		path := make([]int64, len(n.path)+1)
		copy(path, n.path)
		path[len(n.path)] = d
		children = append(children, &node[S]{state: child, path: path, value: n.value + cost})
	}
	return children
}

// enforceWidth applies the width bound to the children of one expanded
// node at the given layer; children of different parents are bounded
// separately, so the layer as a whole is not capped. merging selects the
// relaxed policy (merge the weakest excess into one node, preserving an
// over-approximation of every dropped completion); otherwise the excess
// is simply dropped, keeping every surviving node an exact continuation
// of a real decision sequence.
func (sv *Solver[S]) enforceWidth(children []*node[S], layer int, merging bool) []*node[S] {
	limit := sv.width.Limit(layer)
	if limit <= 0 || len(children) <= limit {
		return children
	}

	sort.Slice(children, func(i, j int) bool {
		return sv.rank.Less(children[j].state, children[i].state) // best first
	})

	if !merging {
		return children[:limit]
	}

	kept := children[:limit-1]
	dropped := children[limit-1:]

	states := make([]S, len(dropped))
	for i, c := range dropped {
		states[i] = c.state
	}
	merged := sv.relax.Merge(states)

	out := make([]*node[S], 0, limit)
	out = append(out, kept...)
	out = append(out, &node[S]{state: merged, path: dropped[0].path, value: dropped[0].value})
	return out
}

// popBatch pops up to sv.workers nodes off the fringe for concurrent
// expansion. fr is non-empty on entry.
func (sv *Solver[S]) popBatch(fr *fringe[S]) []*node[S] {
	batch := make([]*node[S], 0, sv.workers)
	for len(batch) < sv.workers && fr.Len() > 0 {
		batch = append(batch, heap.Pop(fr).(*node[S]))
	}
	return batch
}

// expandBatch runs expand for every node in batch concurrently across a
// bounded worker pool; Problem's Domain and Transition must tolerate this.
func (sv *Solver[S]) expandBatch(batch []*node[S]) [][]*node[S] {
	out := make([][]*node[S], len(batch))
	if len(batch) == 1 {
		out[0] = sv.expand(batch[0])
		return out
	}

	var wg sync.WaitGroup
	sem := make(chan struct{}, sv.workers)
	for i, n := range batch {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, n *node[S]) {
			defer wg.Done()
			defer func() { <-sem }()
			out[i] = sv.expand(n)
		}(i, n)
	}
	wg.Wait()
	return out
}

// BestUpperBound returns the tightest proven upper bound on the optimal
// value found so far.
func (sv *Solver[S]) BestUpperBound() int64 { return sv.upperB }

// BestLowerBound returns the best feasible value found so far, and
// whether any feasible leaf has been reached at all.
func (sv *Solver[S]) BestLowerBound() (int64, bool) {
	return sv.bestValue, sv.bestPath != nil
}

// Gap returns BestUpperBound - BestLowerBound, or 0 if no incumbent
// exists yet.
func (sv *Solver[S]) Gap() int64 {
	if sv.bestPath == nil {
		return 0
	}
	return sv.upperB - sv.bestValue
}

// BestSolution returns the decision sequence of the best feasible leaf
// found, in variable order. Returns ErrNoIncumbent if Solve never
// reached a leaf.
func (sv *Solver[S]) BestSolution() ([]int64, error) {
	if sv.bestPath == nil {
		return nil, ErrNoIncumbent
	}
	return sv.bestPath, nil
}
