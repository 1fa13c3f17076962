// Package dot serializes traversal edge sequences as Graphviz digraph text.
package dot

import (
	"fmt"
	"strings"

	"github.com/phobologic/scopegraph/internal/query"
)

// Direction labels for the digraph title, matching the original output.
const (
	Callers = "Callers to"
	Callees = "Callees of"
)

// Render produces one digraph block titled "<direction> <name>" with one
// edge line per traversal edge. An empty edge sequence renders nothing at
// all: an unknown function or a direction with no edges produces no block.
func Render(direction, name string, edges []query.Edge) string {
	if len(edges) == 0 {
		return ""
	}
	var b strings.Builder
	fmt.Fprintf(&b, "digraph %q {\n", direction+" "+name)
	for _, e := range edges {
		fmt.Fprintf(&b, "    %s -> %s\n", e.From, e.To)
	}
	b.WriteString("}\n")
	return b.String()
}
