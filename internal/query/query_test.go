package query

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/phobologic/scopegraph/internal/index"
	"github.com/phobologic/scopegraph/internal/model"
)

// buildIndex creates an index from name → callees pairs, preserving the
// given order for deterministic caller scans.
func buildIndex(order []string, callees map[string][]string) *index.Index {
	rec := model.NewFileRecord("test.c")
	for _, name := range order {
		rec.AddDefinition(model.Symbol{Name: name, Kind: model.Definition, File: "test.c"})
		for _, c := range callees[name] {
			rec.AddCall(model.Symbol{Name: c, Kind: model.Call, File: "test.c"})
		}
	}
	return index.Build([]*model.FileRecord{rec}, index.Options{})
}

func TestDepthZeroYieldsNothing(t *testing.T) {
	ix := buildIndex([]string{"a"}, map[string][]string{"a": {"b"}})
	assert.Empty(t, Callees(ix, "a", 0, BoundedRepeat))
	assert.Empty(t, Callers(ix, "b", 0, BoundedRepeat))
}

func TestUnknownNameYieldsNothing(t *testing.T) {
	ix := buildIndex([]string{"a"}, map[string][]string{"a": {"b"}})
	assert.Empty(t, Callees(ix, "nope", 3, BoundedRepeat))
	assert.Empty(t, Callers(ix, "nope", 3, BoundedRepeat))
}

func TestCalleesAcyclic(t *testing.T) {
	// main → {f, g}; f → {h}
	ix := buildIndex(
		[]string{"main", "f", "g", "h"},
		map[string][]string{"main": {"f", "g"}, "f": {"h"}},
	)

	edges := Callees(ix, "main", 10, BoundedRepeat)
	assert.Equal(t, []Edge{
		{"main", "f"},
		{"f", "h"},
		{"main", "g"},
	}, edges, "deep enough traversal of an acyclic graph has no duplicates")
}

func TestCallersAcyclic(t *testing.T) {
	ix := buildIndex(
		[]string{"main", "f", "g", "h"},
		map[string][]string{"main": {"f", "g"}, "f": {"h"}},
	)

	edges := Callers(ix, "h", 10, BoundedRepeat)
	assert.Equal(t, []Edge{
		{"f", "h"},
		{"main", "f"},
	}, edges)
}

func cycleIndex() *index.Index {
	return buildIndex(
		[]string{"A", "B", "C"},
		map[string][]string{"A": {"B"}, "B": {"C"}, "C": {"A"}},
	)
}

func TestCalleesCycleRepeatsPerDepth(t *testing.T) {
	// One edge per depth level, re-entering the cycle, no dedup.
	edges := Callees(cycleIndex(), "A", 5, BoundedRepeat)
	assert.Equal(t, []Edge{
		{"A", "B"},
		{"B", "C"},
		{"C", "A"},
		{"A", "B"},
		{"B", "C"},
	}, edges)
}

func TestCallersCycleRepeatsPerDepth(t *testing.T) {
	edges := Callers(cycleIndex(), "A", 5, BoundedRepeat)
	assert.Equal(t, []Edge{
		{"C", "A"},
		{"B", "C"},
		{"A", "B"},
		{"C", "A"},
		{"B", "C"},
	}, edges)
}

func TestCalleesCycleDedup(t *testing.T) {
	edges := Callees(cycleIndex(), "A", 5, VisitedDedup)
	assert.Equal(t, []Edge{
		{"A", "B"},
		{"B", "C"},
		{"C", "A"},
	}, edges)
}

func TestCallersCycleDedup(t *testing.T) {
	edges := Callers(cycleIndex(), "A", 5, VisitedDedup)
	assert.Equal(t, []Edge{
		{"C", "A"},
		{"B", "C"},
		{"A", "B"},
	}, edges)
}

func TestSelfRecursion(t *testing.T) {
	ix := buildIndex([]string{"f"}, map[string][]string{"f": {"f"}})

	edges := Callees(ix, "f", 3, BoundedRepeat)
	assert.Equal(t, []Edge{
		{"f", "f"},
		{"f", "f"},
		{"f", "f"},
	}, edges)

	edges = Callees(ix, "f", 3, VisitedDedup)
	assert.Equal(t, []Edge{{"f", "f"}}, edges)
}
