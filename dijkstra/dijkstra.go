// Package dijkstra implements a single-pair uniform-cost search on directed
// graphs with non-negative integer weights.
//
// The search expands frontier entries in increasing cumulative cost and
// stops as soon as the target is popped. It never relaxes queued entries in
// place: a cheaper route pushes a second entry and the stale one is skipped
// when it surfaces after its node was finalized.
//
// Complexity:
//
//   - Time:  O(E log E) frontier operations, plus O(V log V + E) for the
//     negative-weight pre-scan unless WithTrustedWeights is set or the
//     graph enforces core.WithNonNegativeWeights.
//   - Space: O(E) frontier entries; the path variant also keeps one path
//     slice per entry.
package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/pathfind/core"
)

// ShortestCost returns the minimum total weight of a path start→target.
//
// Returns:
//
//   - cost: the shortest-path cost; 0 when start == target.
//   - err:  nil on success. ErrNoPath (with cost == NotFound) if the target
//     is unreachable, absent from the graph, or beyond WithMaxDistance.
//     Otherwise one of the validation sentinels, an OnVisit error or
//     Ctx.Err(), all with cost == NotFound.
//
// Preconditions and validation (in order):
//  1. start and target must be non-empty (ErrEmptyVertexID).
//  2. g must be non-nil (ErrNilGraph).
//  3. g must contain start (ErrStartNotFound).
//  4. No edge in g may have a negative weight (ErrNegativeWeight),
//     unless WithTrustedWeights is given or g.NonNegativeWeights() holds.
//
// The frontier carries no path history in this variant.
func ShortestCost(g *core.Graph, start, target string, opts ...Option) (int64, error) {
	r, err := newRunner(g, start, target, false, opts)
	if err != nil {
		return NotFound, err
	}
	found, err := r.run()
	if err != nil {
		return NotFound, err
	}

	return found.cost, nil
}

// ShortestPath is ShortestCost that also returns the node sequence.
//
// On success Nodes[0] == start, Nodes[len(Nodes)-1] == target, and each
// consecutive pair is joined by an edge of g; the weights of the cheapest
// such edges sum to Cost. On failure it returns Path{Cost: NotFound} and
// the same errors as ShortestCost.
func ShortestPath(g *core.Graph, start, target string, opts ...Option) (Path, error) {
	missing := Path{Cost: NotFound}

	r, err := newRunner(g, start, target, true, opts)
	if err != nil {
		return missing, err
	}
	found, err := r.run()
	if err != nil {
		return missing, err
	}

	return Path{Cost: found.cost, Nodes: found.path}, nil
}

// runner holds the mutable state for a single search.
type runner struct {
	g         *core.Graph
	options   Options
	start     string
	target    string
	trackPath bool
	visited   map[string]struct{}
	pq        frontier
	seq       uint64
	stats     Stats
}

// newRunner applies options and validates inputs.
func newRunner(g *core.Graph, start, target string, trackPath bool, opts []Option) (*runner, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if start == "" || target == "" {
		return nil, ErrEmptyVertexID
	}
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return nil, fmt.Errorf("%w: %q", ErrStartNotFound, start)
	}
	if needsWeightScan(g, cfg) {
		for _, e := range g.Edges() {
			if e.Weight < 0 {
				return nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
			}
		}
	}

	return &runner{
		g:         g,
		options:   cfg,
		start:     start,
		target:    target,
		trackPath: trackPath,
		visited:   make(map[string]struct{}),
	}, nil
}

// needsWeightScan reports whether g must be checked for negative weights
// before searching. Graphs enforcing the policy on insert never are.
func needsWeightScan(g *core.Graph, cfg Options) bool {
	return !cfg.TrustWeights && !g.NonNegativeWeights()
}

// run drives the frontier until the target is popped or the frontier is
// empty. It returns the target's entry.
func (r *runner) run() (*entry, error) {
	defer r.publishStats()

	// A target that is not a vertex can never be popped.
	if !r.g.HasVertex(r.target) {
		return nil, fmt.Errorf("%w: %q is not in the graph", ErrNoPath, r.target)
	}

	first := &entry{cost: 0, node: r.start}
	if r.trackPath {
		first.path = []string{r.start}
	}
	r.push(first)

	for r.pq.Len() > 0 {
		if err := r.options.Ctx.Err(); err != nil {
			return nil, err
		}

		cur := heap.Pop(&r.pq).(*entry)
		r.stats.Pops++

		// Stale entry: a cheaper one for this node was popped already.
		if _, done := r.visited[cur.node]; done {
			r.stats.StalePops++
			continue
		}
		r.visited[cur.node] = struct{}{}

		if err := r.options.OnVisit(cur.node, cur.cost); err != nil {
			return nil, err
		}
		if cur.node == r.target {
			return cur, nil
		}
		if err := r.expand(cur); err != nil {
			return nil, err
		}
	}

	return nil, fmt.Errorf("%w: %s→%s", ErrNoPath, r.start, r.target)
}

// expand queues one entry per out-edge of cur towards a node that is not
// finalized yet.
func (r *runner) expand(cur *entry) error {
	edges, err := r.g.Neighbors(cur.node)
	if err != nil {
		return fmt.Errorf("%w: %q: %w", ErrVertexNotFound, cur.node, err)
	}

	for _, e := range edges {
		r.stats.Relaxed++
		if _, done := r.visited[e.To]; done {
			continue
		}
		if th := r.options.InfEdgeThreshold; th > 0 && e.Weight >= th {
			continue
		}
		// Saturated sums cannot be represented; such a node is unreachable.
		if e.Weight > math.MaxInt64-cur.cost {
			continue
		}
		next := cur.cost + e.Weight
		if next > r.options.MaxDistance {
			continue
		}

		item := &entry{cost: next, node: e.To}
		if r.trackPath {
			item.path = make([]string, len(cur.path)+1)
			copy(item.path, cur.path)
			item.path[len(cur.path)] = e.To
		}
		r.push(item)
	}

	return nil
}

// push stamps the insertion sequence and inserts item into the frontier.
func (r *runner) push(item *entry) {
	item.seq = r.seq
	r.seq++
	heap.Push(&r.pq, item)
	r.stats.Pushes++
	if n := r.pq.Len(); n > r.stats.MaxFrontier {
		r.stats.MaxFrontier = n
	}
}

// publishStats copies the counters to the caller's Stats, if any.
func (r *runner) publishStats() {
	if r.options.Stats != nil {
		*r.options.Stats = r.stats
	}
}
