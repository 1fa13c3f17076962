package scan

import (
	"context"
	"sort"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/scopegraph/internal/lang"
	"github.com/phobologic/scopegraph/internal/model"
)

// occurrence is one symbol hit in a source file, ordered by byte offset.
type occurrence struct {
	name string
	kind model.SymKind
	line int
	byteOff uint32
}

var captureKinds = map[string]model.SymKind{
	"definition.function": model.Definition,
	"reference.call":      model.Call,
}

// extractRecord parses one source file and replays its definitions and call
// sites, in source order, through a FileRecord. Association follows the
// same cursor rule as the database reader: a call site attaches to the most
// recently seen definition, and call sites before any definition are
// dropped.
func extractRecord(parser *sitter.Parser, query *sitter.Query, source []byte, filePath string) *model.FileRecord {
	rec := model.NewFileRecord(filePath)
	if len(source) == 0 {
		return rec
	}

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return rec
	}
	defer tree.Close()

	qc := sitter.NewQueryCursor()
	defer qc.Close()
	qc.Exec(query, tree.RootNode())

	var occs []occurrence

	for {
		match, ok := qc.NextMatch()
		if !ok {
			break
		}
		match = qc.FilterPredicates(match, source)

		// Find the @name capture and the pattern capture.
		var nameNode *sitter.Node
		var kind model.SymKind
		var haveKind bool

		for _, c := range match.Captures {
			cname := query.CaptureNameForId(c.Index)
			if cname == "name" {
				nameNode = c.Node
			} else if k, ok := captureKinds[cname]; ok {
				kind = k
				haveKind = true
			}
		}

		if nameNode == nil || !haveKind {
			continue
		}

		occs = append(occs, occurrence{
			name:    lang.NodeText(nameNode, source),
			kind:    kind,
			line:    int(nameNode.StartPoint().Row) + 1,
			byteOff: nameNode.StartByte(),
		})
	}

	// Query matches arrive per pattern, not strictly in document order.
	sort.Slice(occs, func(i, j int) bool {
		return occs[i].byteOff < occs[j].byteOff
	})

	for _, o := range occs {
		sym := model.Symbol{Name: o.name, Kind: o.kind, Line: o.line, File: filePath}
		switch o.kind {
		case model.Definition:
			rec.AddDefinition(sym)
		case model.Call:
			rec.AddCall(sym)
		}
	}

	return rec
}
