package cscope

import (
	"fmt"
	"strconv"
	"strings"
)

// Trailer holds the three path lists at the end of the database. They are
// parsed for completeness; the call graph does not use them.
type Trailer struct {
	ViewPaths   []string
	Sources     []string
	IncludeDirs []string
}

// parseTrailer reads the trailer lists starting at the recorded offset.
// A trailer offset at or past the end of the buffer yields an empty trailer.
func parseTrailer(data []byte, off int, legacy bool) (Trailer, error) {
	var tr Trailer
	cur := &cursor{data: data, off: off, legacyLimit: legacy}
	if cur.eof() {
		return tr, nil
	}

	var err error
	if tr.ViewPaths, err = countedList(cur, "view path"); err != nil {
		return tr, err
	}
	if tr.Sources, err = countedList(cur, "source file"); err != nil {
		return tr, err
	}

	// The include list carries one placeholder line between the count and
	// the entries.
	n, err := listCount(cur, "include directory")
	if err != nil {
		return tr, err
	}
	cur.line()
	tr.IncludeDirs = readLines(cur, n)
	return tr, nil
}

// countedList reads a decimal count line followed by that many entry lines.
func countedList(cur *cursor, what string) ([]string, error) {
	n, err := listCount(cur, what)
	if err != nil {
		return nil, err
	}
	return readLines(cur, n), nil
}

func listCount(cur *cursor, what string) (int, error) {
	line := strings.TrimSpace(cur.line())
	n, err := strconv.Atoi(line)
	if err != nil {
		return 0, fmt.Errorf("trailer %s count %q: %w", what, line, err)
	}
	return n, nil
}

func readLines(cur *cursor, n int) []string {
	var out []string
	for i := 0; i < n && cur.valid(); i++ {
		out = append(out, cur.line())
	}
	return out
}
