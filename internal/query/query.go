// Package query answers bounded-depth caller/callee traversals over a built
// call-graph index.
//
// The default policy places no guard on revisits: on a cyclic graph the same
// edge reappears once per depth level that re-enters the cycle, and the
// depth bound is the only safety valve. Worst-case edge count is exponential
// in depth for high out-degree graphs. This matches the original tool and is
// deliberately kept; VisitedDedup is the opt-in alternative.
//
// Both operations are pure functions of (index, name, depth) and may run
// concurrently for independent queries.
package query

import "github.com/phobologic/scopegraph/internal/index"

// Edge is one directed call edge in a traversal result.
type Edge struct {
	From string
	To   string
}

// Policy selects the revisit behavior of a traversal.
type Policy int

const (
	// BoundedRepeat expands every reachable edge at every depth level
	// with no cycle or revisit guard. Default.
	BoundedRepeat Policy = iota
	// VisitedDedup emits each distinct edge at most once and does not
	// re-expand through an already-emitted edge.
	VisitedDedup
)

// Callees returns the edges reached by expanding name's callees up to depth
// hops. Depth 0 or a name absent from the index yields no edges.
func Callees(ix *index.Index, name string, depth int, policy Policy) []Edge {
	t := traversal{ix: ix, policy: policy}
	t.callees(name, depth)
	return t.edges
}

// Callers returns the edges reached by expanding name's callers up to depth
// hops. Each step scans every index entry for a direct caller of the current
// name, so cost grows with index size per level.
func Callers(ix *index.Index, name string, depth int, policy Policy) []Edge {
	t := traversal{ix: ix, policy: policy}
	t.callers(name, depth)
	return t.edges
}

type traversal struct {
	ix     *index.Index
	policy Policy
	seen   map[Edge]struct{}
	edges  []Edge
}

// emit appends e unless the policy suppresses it. It reports whether the
// traversal should recurse through e.
func (t *traversal) emit(e Edge) bool {
	if t.policy == VisitedDedup {
		if t.seen == nil {
			t.seen = make(map[Edge]struct{})
		}
		if _, dup := t.seen[e]; dup {
			return false
		}
		t.seen[e] = struct{}{}
	}
	t.edges = append(t.edges, e)
	return true
}

func (t *traversal) callees(name string, depth int) {
	if depth <= 0 {
		return
	}
	callees, _ := t.ix.Callees(name)
	for _, c := range callees {
		if t.emit(Edge{From: name, To: c}) {
			t.callees(c, depth-1)
		}
	}
}

func (t *traversal) callers(name string, depth int) {
	if depth <= 0 {
		return
	}
	for _, item := range t.ix.Names() {
		if !callsDirectly(t.ix, item, name) {
			continue
		}
		if t.emit(Edge{From: item, To: name}) {
			t.callers(item, depth-1)
		}
	}
}

// callsDirectly reports whether caller lists name among its direct callees.
func callsDirectly(ix *index.Index, caller, name string) bool {
	callees, _ := ix.Callees(caller)
	for _, c := range callees {
		if c == name {
			return true
		}
	}
	return false
}
