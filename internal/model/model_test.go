package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileRecordCursor(t *testing.T) {
	rec := NewFileRecord("a.c")

	// Call before any definition is discarded.
	kept := rec.AddCall(Symbol{Name: "early", Kind: Call, Line: 1, File: "a.c"})
	assert.False(t, kept)

	rec.AddDefinition(Symbol{Name: "f", Kind: Definition, Line: 3, File: "a.c"})
	assert.True(t, rec.AddCall(Symbol{Name: "g", Kind: Call, Line: 4, File: "a.c"}))

	rec.AddDefinition(Symbol{Name: "h", Kind: Definition, Line: 9, File: "a.c"})
	assert.True(t, rec.AddCall(Symbol{Name: "g", Kind: Call, Line: 10, File: "a.c"}))

	assert.Equal(t, 2, rec.DefinitionCount())
	assert.Equal(t, []string{"f", "h"}, rec.DefinitionNames())

	f, ok := rec.Definition("f")
	require.True(t, ok)
	assert.Equal(t, []string{"g"}, f.Callees())

	h, ok := rec.Definition("h")
	require.True(t, ok)
	assert.Equal(t, []string{"g"}, h.Callees())

	_, ok = rec.Definition("early")
	assert.False(t, ok, "discarded call creates no definition entry")
}

func TestCalleeDeduplicationFirstWins(t *testing.T) {
	rec := NewFileRecord("a.c")
	rec.AddDefinition(Symbol{Name: "f", Kind: Definition, Line: 1, File: "a.c"})

	rec.AddCall(Symbol{Name: "x", Kind: Call, Line: 5, File: "a.c"})
	rec.AddCall(Symbol{Name: "y", Kind: Call, Line: 6, File: "a.c"})
	rec.AddCall(Symbol{Name: "x", Kind: Call, Line: 7, File: "a.c"})

	f, _ := rec.Definition("f")
	assert.Equal(t, []string{"x", "y"}, f.Callees())

	first, ok := f.Callee("x")
	require.True(t, ok)
	assert.Equal(t, 5, first.Line, "line of the duplicate call is lost")
}

func TestRedefinitionReplacesEntry(t *testing.T) {
	rec := NewFileRecord("a.c")
	rec.AddDefinition(Symbol{Name: "f", Kind: Definition, Line: 1, File: "a.c"})
	rec.AddCall(Symbol{Name: "old", Kind: Call, Line: 2, File: "a.c"})

	rec.AddDefinition(Symbol{Name: "f", Kind: Definition, Line: 20, File: "a.c"})
	rec.AddCall(Symbol{Name: "new", Kind: Call, Line: 21, File: "a.c"})

	assert.Equal(t, 1, rec.DefinitionCount())
	f, _ := rec.Definition("f")
	assert.Equal(t, 20, f.Sym.Line)
	assert.Equal(t, []string{"new"}, f.Callees())
}
