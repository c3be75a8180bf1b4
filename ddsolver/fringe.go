package ddsolver

// fringe is a binary max-heap (by Ranking) of open nodes (node is
// defined in solver.go), the same "lazy" priority-queue shape used
// elsewhere: entries are never decrease-keyed in place, only pushed and
// popped.
type fringe[S any] struct {
	items []*node[S]
	rank  Ranking[S]
}

func newFringe[S any](rank Ranking[S]) *fringe[S] {
	return &fringe[S]{rank: rank}
}

func (f *fringe[S]) Len() int { return len(f.items) }

// Less reports heap order: item i pops before item j iff j is worse than
// i, i.e. i is the strictly better candidate.
func (f *fringe[S]) Less(i, j int) bool {
	return f.rank.Less(f.items[j].state, f.items[i].state)
}

func (f *fringe[S]) Swap(i, j int) { f.items[i], f.items[j] = f.items[j], f.items[i] }

func (f *fringe[S]) Push(x any) { f.items = append(f.items, x.(*node[S])) }

func (f *fringe[S]) Pop() any {
	old := f.items
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	f.items = old[:n-1]
	return item
}
