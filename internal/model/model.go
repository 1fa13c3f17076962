// Package model defines core data structures for scopegraph.
package model

// SymKind indicates whether a symbol is a function definition or a call site.
type SymKind string

const (
	Definition SymKind = "def"
	Call       SymKind = "call"
)

// Symbol represents a single function definition or call site extracted from
// the cross-reference database (or a source scan). Immutable once created.
type Symbol struct {
	Name string
	Kind SymKind
	Line int
	File string
}

// FuncDef is a function definition together with the distinct callees
// recorded inside its body. Callee names de-duplicate on first occurrence:
// the Call symbol kept for a name is the first one seen, and later calls to
// the same name are dropped along with their line information.
type FuncDef struct {
	Sym Symbol

	callees     map[string]Symbol
	calleeOrder []string
}

// NewFuncDef creates a definition with no recorded callees.
func NewFuncDef(sym Symbol) *FuncDef {
	return &FuncDef{
		Sym:     sym,
		callees: make(map[string]Symbol),
	}
}

// AddCallee records a call made inside this definition's body.
// Re-adding an already-recorded callee name is a no-op.
func (d *FuncDef) AddCallee(call Symbol) {
	if _, ok := d.callees[call.Name]; ok {
		return
	}
	d.callees[call.Name] = call
	d.calleeOrder = append(d.calleeOrder, call.Name)
}

// Callees returns the distinct callee names in first-seen order.
func (d *FuncDef) Callees() []string {
	return d.calleeOrder
}

// Callee returns the first Call symbol recorded for name.
func (d *FuncDef) Callee(name string) (Symbol, bool) {
	s, ok := d.callees[name]
	return s, ok
}

// FileRecord holds the function definitions parsed from one file block.
//
// The current-definition cursor is parse-time state: it starts absent at the
// beginning of each file block, moves to every Definition symbol as it is
// parsed, and is the attachment point for Call symbols. It persists across
// symbol groups within the same file block.
type FileRecord struct {
	Path string

	defs     map[string]*FuncDef
	defOrder []string
	current  *FuncDef
}

// NewFileRecord creates an empty record for path with an absent cursor.
func NewFileRecord(path string) *FileRecord {
	return &FileRecord{
		Path: path,
		defs: make(map[string]*FuncDef),
	}
}

// AddDefinition creates (or replaces) the definition entry for sym.Name and
// makes it the current cursor.
func (r *FileRecord) AddDefinition(sym Symbol) *FuncDef {
	def := NewFuncDef(sym)
	if _, ok := r.defs[sym.Name]; !ok {
		r.defOrder = append(r.defOrder, sym.Name)
	}
	r.defs[sym.Name] = def
	r.current = def
	return def
}

// AddCall attaches a call site to the current definition. Calls seen before
// any definition in the file block (macro expansions, typically) are
// discarded; the return value reports whether the call was kept.
func (r *FileRecord) AddCall(sym Symbol) bool {
	if r.current == nil {
		return false
	}
	r.current.AddCallee(sym)
	return true
}

// Definition returns the definition entry for name, if present.
func (r *FileRecord) Definition(name string) (*FuncDef, bool) {
	d, ok := r.defs[name]
	return d, ok
}

// DefinitionNames returns defined function names in first-definition order.
func (r *FileRecord) DefinitionNames() []string {
	return r.defOrder
}

// DefinitionCount returns the number of distinct definitions in the record.
func (r *FileRecord) DefinitionCount() int {
	return len(r.defs)
}
