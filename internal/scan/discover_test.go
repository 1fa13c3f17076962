package scan

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, root, rel, content string) {
	t.Helper()
	path := filepath.Join(root, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func pathsOf(entries []fileEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.path
	}
	return out
}

func TestDiscoverFilesFindsSupportedLanguages(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeFile(t, root, "main.c", "int main(void) { return 0; }\n")
	writeFile(t, root, "util.go", "package util\n")
	writeFile(t, root, "tool.py", "pass\n")
	writeFile(t, root, "README.md", "# readme\n")
	writeFile(t, root, "data.bin", "\x00\x01")

	entries, err := discoverFiles(root, nil)
	if err != nil {
		t.Fatalf("discoverFiles: %v", err)
	}

	got := pathsOf(entries)
	want := []string{"main.c", "tool.py", "util.go"}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("got %v, want %v", got, want)
		}
	}

	for _, e := range entries {
		switch e.path {
		case "main.c":
			if e.language != "c" {
				t.Errorf("main.c language = %q", e.language)
			}
		case "util.go":
			if e.language != "go" {
				t.Errorf("util.go language = %q", e.language)
			}
		case "tool.py":
			if e.language != "python" {
				t.Errorf("tool.py language = %q", e.language)
			}
		}
	}
}

func TestDiscoverFilesLanguageFilter(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeFile(t, root, "main.c", "int main(void) { return 0; }\n")
	writeFile(t, root, "util.go", "package util\n")

	entries, err := discoverFiles(root, []string{"c"})
	if err != nil {
		t.Fatalf("discoverFiles: %v", err)
	}
	if len(entries) != 1 || entries[0].path != "main.c" {
		t.Errorf("got %v, want only main.c", pathsOf(entries))
	}
}

func TestDiscoverFilesSkipsDirs(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeFile(t, root, "src/app.c", "int f(void) { return 0; }\n")
	writeFile(t, root, "node_modules/dep/index.go", "package dep\n")
	writeFile(t, root, "vendor/lib/lib.go", "package lib\n")
	writeFile(t, root, ".hidden/secret.c", "int s;\n")
	writeFile(t, root, ".dotfile.c", "int d;\n")

	entries, err := discoverFiles(root, nil)
	if err != nil {
		t.Fatalf("discoverFiles: %v", err)
	}
	got := pathsOf(entries)
	if len(got) != 1 || got[0] != filepath.Join("src", "app.c") {
		t.Errorf("got %v, want only src/app.c", got)
	}
}

func TestDiscoverFilesHonorsGitignore(t *testing.T) {
	t.Parallel()
	root := t.TempDir()

	writeFile(t, root, ".gitignore", "generated/\n*.gen.c\n")
	writeFile(t, root, "main.c", "int main(void) { return 0; }\n")
	writeFile(t, root, "parser.gen.c", "int gen;\n")
	writeFile(t, root, "generated/out.c", "int out;\n")

	entries, err := discoverFiles(root, nil)
	if err != nil {
		t.Fatalf("discoverFiles: %v", err)
	}
	got := pathsOf(entries)
	if len(got) != 1 || got[0] != "main.c" {
		t.Errorf("got %v, want only main.c", got)
	}
}
