package dijkstra

// entry is one frontier candidate: a node reached at cost along path.
// path is nil in the cost-only search.
type entry struct {
	cost int64
	node string
	seq  uint64 // insertion order, last tie-break
	path []string
}

// frontier is a binary min-heap of *entry driven by container/heap.
//
// Ordering is strict and total: cost ascending, then node ID ascending
// (byte-wise), then insertion order. Two searches over the same graph
// therefore pop entries in the same order.
//
// No decrease-key: a cheaper route to a queued node pushes a new entry and
// the older one is discarded when popped after the node was finalized.
type frontier []*entry

func (f frontier) Len() int { return len(f) }

func (f frontier) Less(i, j int) bool {
	a, b := f[i], f[j]
	if a.cost != b.cost {
		return a.cost < b.cost
	}
	if a.node != b.node {
		return a.node < b.node
	}

	return a.seq < b.seq
}

func (f frontier) Swap(i, j int) { f[i], f[j] = f[j], f[i] }

// Push is called by heap.Push; x must be *entry.
func (f *frontier) Push(x interface{}) { *f = append(*f, x.(*entry)) }

// Pop is called by heap.Pop and returns the last element.
func (f *frontier) Pop() interface{} {
	old := *f
	n := len(old)
	item := old[n-1]
	old[n-1] = nil // drop reference for GC
	*f = old[:n-1]

	return item
}
