package scan

import (
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRootBuildsRecords(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeFile(t, root, "a.c", `
int shared(void) { return 1; }

int caller_a(void) {
	return shared();
}
`)
	writeFile(t, root, "b.c", `
int caller_b(void) {
	return shared();
}
`)

	records, err := Root(root, nil, discardLogger())
	if err != nil {
		t.Fatalf("Root: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}

	// Records come back in discovery order (sorted by path).
	if records[0].Path != "a.c" || records[1].Path != "b.c" {
		t.Fatalf("record order: %q, %q", records[0].Path, records[1].Path)
	}

	callerA, ok := records[0].Definition("caller_a")
	if !ok {
		t.Fatal("caller_a not found")
	}
	if got := callerA.Callees(); len(got) != 1 || got[0] != "shared" {
		t.Errorf("caller_a callees = %v", got)
	}

	callerB, ok := records[1].Definition("caller_b")
	if !ok {
		t.Fatal("caller_b not found")
	}
	if got := callerB.Callees(); len(got) != 1 || got[0] != "shared" {
		t.Errorf("caller_b callees = %v", got)
	}
}

func TestRootUnsupportedLanguage(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	writeFile(t, root, "main.c", "int main(void) { return 0; }\n")

	_, err := Root(root, []string{"fortran"}, discardLogger())
	if err == nil {
		t.Fatal("expected error for unsupported language")
	}
}

func TestRootEmptyTree(t *testing.T) {
	t.Parallel()

	_, err := Root(t.TempDir(), nil, discardLogger())
	if err == nil {
		t.Fatal("expected error when no parseable files exist")
	}
}
