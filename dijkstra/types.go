// Package dijkstra defines the result types, sentinel errors and
// configuration options for the single-pair shortest-path search.
//
// Options:
//
//	– WithMaxDistance:      entries costlier than the cap are never queued.
//	– WithInfEdgeThreshold: edges with weight >= threshold are impassable.
//	– WithTrustedWeights:   skip the O(E) negative-weight pre-scan.
//	– WithOnVisit:          observe every finalized node; an error aborts.
//	– WithContext:          cancel a long search between pops.
//	– WithStats:            collect frontier counters.
//
// Errors (sentinel):
//
//	– ErrEmptyVertexID   if start or target is "".
//	– ErrNilGraph        if the graph pointer is nil.
//	– ErrStartNotFound   if start is not a vertex of the graph.
//	– ErrNegativeWeight  if the pre-scan finds a negative edge weight.
//	– ErrVertexNotFound  if a node vanished from the graph mid-search.
//	– ErrNoPath          if the target cannot be reached.
//	– ErrBadMaxDistance  (panic) if MaxDistance < 0.
//	– ErrBadInfThreshold (panic) if InfEdgeThreshold <= 0.
package dijkstra

import (
	"context"
	"errors"
	"math"
)

// NotFound is the cost reported together with ErrNoPath.
const NotFound int64 = -1

// Sentinel errors returned by ShortestCost and ShortestPath.
var (
	// ErrEmptyVertexID indicates that start or target is the empty string.
	ErrEmptyVertexID = errors.New("dijkstra: vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrStartNotFound indicates that the start vertex is absent from the graph.
	ErrStartNotFound = errors.New("dijkstra: start vertex not found in graph")

	// ErrVertexNotFound indicates that a node popped from the frontier has no
	// adjacency entry, which only happens if the graph is mutated while a
	// search runs.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found during expansion")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrNoPath indicates that the frontier emptied before the target was
	// finalized. The accompanying cost is NotFound.
	ErrNoPath = errors.New("dijkstra: no path found")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")

	// ErrBadInfThreshold indicates that InfEdgeThreshold was set to zero or
	// a negative value, which would make every edge impassable.
	ErrBadInfThreshold = errors.New("dijkstra: InfEdgeThreshold must be positive")
)

// Path is the result of ShortestPath.
type Path struct {
	// Cost is the sum of edge weights along Nodes, or NotFound.
	Cost int64

	// Nodes lists the vertices from start to target inclusive.
	// Nodes is nil when no path exists.
	Nodes []string
}

// Found reports whether p holds an actual path.
func (p Path) Found() bool { return p.Cost != NotFound && len(p.Nodes) > 0 }

// Stats counts frontier work done by one search.
type Stats struct {
	Pops        int // entries removed from the frontier
	StalePops   int // pops of already finalized nodes (lazy deletion)
	Pushes      int // entries inserted, including the start entry
	Relaxed     int // edges examined from finalized nodes
	MaxFrontier int // largest frontier size observed
}

// Options configures a search.
//
// Ctx              – checked before every pop; a done context aborts with Ctx.Err().
// MaxDistance      – entries whose cost exceeds this cap are not queued. Default math.MaxInt64.
// InfEdgeThreshold – edges with weight >= this threshold are skipped. 0 (default) disables the check.
// TrustWeights     – if true, the negative-weight pre-scan is skipped. Graphs built
//                    with core.WithNonNegativeWeights are never scanned.
// OnVisit          – called once per finalized node in pop order.
// Stats            – if non-nil, receives the search counters.
type Options struct {
	Ctx              context.Context
	MaxDistance      int64
	InfEdgeThreshold int64
	TrustWeights     bool
	OnVisit          func(node string, cost int64) error
	Stats            *Stats
}

// Option represents a functional option for configuring a search.
type Option func(*Options)

// DefaultOptions returns Options initialized with:
//   - Ctx:              context.Background()
//   - MaxDistance:      math.MaxInt64 (no cap)
//   - InfEdgeThreshold: 0 (no impassable edges)
//   - TrustWeights:     false (pre-scan enabled)
//   - OnVisit:          no-op
//   - Stats:            nil
func DefaultOptions() Options {
	return Options{
		Ctx:              context.Background(),
		MaxDistance:      math.MaxInt64,
		InfEdgeThreshold: 0,
		TrustWeights:     false,
		OnVisit:          func(string, int64) error { return nil },
	}
}

// WithContext sets a context for cancellation. A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDistance caps the explored cost. A target farther than max is
// reported as ErrNoPath. Panics with ErrBadMaxDistance if max < 0.
func WithMaxDistance(max int64) Option {
	if max < 0 {
		panic(ErrBadMaxDistance.Error())
	}
	return func(o *Options) {
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold treats every edge with weight >= threshold as
// impassable. Panics with ErrBadInfThreshold if threshold <= 0.
func WithInfEdgeThreshold(threshold int64) Option {
	if threshold <= 0 {
		panic(ErrBadInfThreshold.Error())
	}
	return func(o *Options) {
		o.InfEdgeThreshold = threshold
	}
}

// WithTrustedWeights skips the negative-weight pre-scan. The caller then
// guarantees non-negative weights; results on graphs violating that are
// undefined. Not needed for graphs built with core.WithNonNegativeWeights,
// which are never scanned.
func WithTrustedWeights() Option {
	return func(o *Options) {
		o.TrustWeights = true
	}
}

// WithOnVisit registers fn to run when a node is finalized, before the
// target check. A non-nil error aborts the search and is returned as is.
// A nil fn is ignored.
func WithOnVisit(fn func(node string, cost int64) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithStats makes the search write its counters into s when it returns,
// overwriting previous contents. Validation failures leave s untouched.
func WithStats(s *Stats) Option {
	return func(o *Options) {
		o.Stats = s
	}
}
