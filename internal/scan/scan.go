// Package scan builds file symbol records directly from a source tree,
// using tree-sitter, as an alternative to reading a pre-built cscope
// database. Both paths produce the same FileRecord values and share the
// whole downstream pipeline.
package scan

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/phobologic/scopegraph/internal/lang"
	"github.com/phobologic/scopegraph/internal/model"
)

// Root scans the source tree at root and returns one FileRecord per
// parseable file, in discovery order. languages optionally restricts the
// scan; unknown language names are rejected.
func Root(root string, languages []string, logger *slog.Logger) ([]*model.FileRecord, error) {
	if logger == nil {
		logger = slog.Default()
	}

	for _, name := range languages {
		if _, ok := lang.Languages[name]; !ok {
			return nil, fmt.Errorf("unsupported language %q", name)
		}
	}

	files, err := discoverFiles(root, languages)
	if err != nil {
		return nil, fmt.Errorf("discovering files: %w", err)
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no parseable files found under %s", root)
	}

	return parseConcurrent(root, files, logger), nil
}

type parserPair struct {
	lang   *lang.Language
	parser *sitter.Parser
	query  *sitter.Query
}

// parseConcurrent extracts records with one worker per CPU. Each worker
// owns its parsers; compiled queries are shared.
func parseConcurrent(root string, files []fileEntry, logger *slog.Logger) []*model.FileRecord {
	numWorkers := runtime.GOMAXPROCS(0)
	if numWorkers > len(files) {
		numWorkers = len(files)
	}

	work := make(chan int, len(files))
	records := make([]*model.FileRecord, len(files))

	var wg sync.WaitGroup
	for i := 0; i < numWorkers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			parsers := make(map[string]*parserPair)

			for idx := range work {
				f := files[idx]
				pp, ok := parsers[f.language]
				if !ok {
					l := lang.Languages[f.language]
					q, err := l.GetTagQuery()
					if err != nil {
						logger.Warn("skipping language", "language", f.language, "error", err)
						continue
					}
					pp = &parserPair{lang: l, parser: l.NewParser(), query: q}
					parsers[f.language] = pp
				}

				source, err := os.ReadFile(filepath.Join(root, f.path))
				if err != nil {
					logger.Warn("skipping file", "path", f.path, "error", err)
					continue
				}

				records[idx] = extractRecord(pp.parser, pp.query, source, f.path)
			}
		}()
	}

	for i := range files {
		work <- i
	}
	close(work)
	wg.Wait()

	var out []*model.FileRecord
	for _, rec := range records {
		if rec != nil {
			out = append(out, rec)
		}
	}
	return out
}
