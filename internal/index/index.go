// Package index builds the global call-graph index from parsed file records.
package index

import (
	"github.com/phobologic/scopegraph/internal/model"
)

// Options configures index construction.
type Options struct {
	// StrictKeys keys entries by "path:name" instead of the bare function
	// name, so same-named definitions in different files keep separate
	// entries instead of overwriting each other. Callee names remain bare
	// names in either mode, since call sites carry no file information.
	StrictKeys bool
}

// Index maps a function name to its distinct direct callees, in first-seen
// order. It is built once after parsing and read-only afterwards, so
// concurrent queries need no locking.
//
// In the default mode the key space is the bare function name: when two
// files define the same name, the later-processed file's definition silently
// replaces the earlier entry. Callees are not merged across files. This
// mirrors the original tool and is relied on by its output; use StrictKeys
// to opt out.
type Index struct {
	names   []string
	callees map[string][]string
	strict  bool
}

// Build derives the index from every definition in every file record.
// Definitions with no callees still get an entry with an empty callee list.
func Build(files []*model.FileRecord, opts Options) *Index {
	ix := &Index{
		callees: make(map[string][]string),
		strict:  opts.StrictKeys,
	}
	for _, rec := range files {
		for _, name := range rec.DefinitionNames() {
			def, ok := rec.Definition(name)
			if !ok {
				continue
			}
			key := name
			if opts.StrictKeys {
				key = rec.Path + ":" + name
			}
			if _, seen := ix.callees[key]; !seen {
				ix.names = append(ix.names, key)
			}
			ix.callees[key] = def.Callees()
		}
	}
	return ix
}

// Callees returns the distinct direct callees of name, and whether name is
// defined at all. An undefined name yields an empty list.
func (ix *Index) Callees(name string) ([]string, bool) {
	c, ok := ix.callees[name]
	return c, ok
}

// Names returns every indexed function name in deterministic insertion
// order. Caller scans iterate this, so query output is reproducible.
func (ix *Index) Names() []string {
	return ix.names
}

// Len returns the number of indexed functions.
func (ix *Index) Len() int {
	return len(ix.names)
}

// Strict reports whether the index was built with file-qualified keys.
func (ix *Index) Strict() bool {
	return ix.strict
}
