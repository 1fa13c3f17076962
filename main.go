// scopegraph renders bounded-depth caller/callee graphs for a function as
// Graphviz digraph text, from a cscope cross-reference database or a direct
// tree-sitter source scan.
package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/phobologic/scopegraph/internal/config"
	"github.com/phobologic/scopegraph/internal/cscope"
	"github.com/phobologic/scopegraph/internal/dbfile"
	"github.com/phobologic/scopegraph/internal/dot"
	"github.com/phobologic/scopegraph/internal/index"
	"github.com/phobologic/scopegraph/internal/model"
	"github.com/phobologic/scopegraph/internal/progress"
	"github.com/phobologic/scopegraph/internal/query"
	"github.com/phobologic/scopegraph/internal/scan"
)

var version = "dev"

const defaultDepth = 5

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) > 0 && args[0] == "init" {
		return runInit(args[1:], stdout, stderr)
	}

	fs := flag.NewFlagSet("scopegraph", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		dbPath      string
		fnName      string
		depth       int
		outPath     string
		noCallers   bool
		noCallees   bool
		scanRoot    string
		langs       string
		cfgPath     string
		legacyLines bool
		dedup       bool
		strictKeys  bool
		quiet       bool
		verbose     bool
		showVersion bool
	)

	fs.StringVar(&dbPath, "c", "", "cscope.out database file")
	fs.StringVar(&dbPath, "db", "", "cscope.out database file")
	fs.StringVar(&fnName, "f", "", "function name to plot callers/callees of")
	fs.IntVar(&depth, "d", 0, "depth of traversal")
	fs.IntVar(&depth, "depth", 0, "depth of traversal")
	fs.StringVar(&outPath, "o", "", "write results to this file instead of stdout")
	fs.BoolVar(&noCallers, "x", false, "do not print callers of the function")
	fs.BoolVar(&noCallees, "y", false, "do not print callees of the function")
	fs.StringVar(&scanRoot, "s", "", "scan a source tree instead of reading a database")
	fs.StringVar(&scanRoot, "scan", "", "scan a source tree instead of reading a database")
	fs.StringVar(&langs, "l", "", "comma-separated languages for scan mode")
	fs.StringVar(&langs, "langs", "", "comma-separated languages for scan mode")
	fs.StringVar(&cfgPath, "config", "", "config file path (default scopegraph.yaml if present)")
	fs.BoolVar(&legacyLines, "legacy-lines", false, "reproduce the original fixed 1024-byte line buffer")
	fs.BoolVar(&dedup, "dedup", false, "emit each edge at most once instead of once per depth level")
	fs.BoolVar(&strictKeys, "strict-keys", false, "index by file:name instead of bare function name")
	fs.BoolVar(&quiet, "q", false, "suppress the progress indicator")
	fs.BoolVar(&quiet, "quiet", false, "suppress the progress indicator")
	fs.BoolVar(&verbose, "v", false, "enable debug diagnostics")
	fs.BoolVar(&verbose, "verbose", false, "enable debug diagnostics")
	fs.BoolVar(&showVersion, "V", false, "show version and exit")
	fs.BoolVar(&showVersion, "version", false, "show version and exit")

	if err := fs.Parse(reorderArgs(args)); err != nil {
		return err
	}

	if showVersion {
		_, _ = fmt.Fprintf(stdout, "scopegraph %s\n", version)
		return nil
	}

	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := config.Load(cfgPath, logger)
	if err != nil {
		return err
	}

	// Flags win over config; config wins over built-in defaults.
	if depth == 0 {
		depth = cfg.Depth
	}
	if depth == 0 {
		depth = defaultDepth
	}
	if depth < 0 {
		return fmt.Errorf("depth must be positive, got %d", depth)
	}
	legacyLines = legacyLines || cfg.LegacyLines
	dedup = dedup || cfg.Dedup
	strictKeys = strictKeys || cfg.StrictKeys

	if fnName == "" {
		return fmt.Errorf("a function name is required (-f), see -h")
	}
	if dbPath == "" && scanRoot == "" {
		return fmt.Errorf("either a database (-c) or a scan root (-s) is required, see -h")
	}
	if dbPath != "" && scanRoot != "" {
		return fmt.Errorf("-c and -s are mutually exclusive")
	}

	var langFilter []string
	if langs == "" && len(cfg.Languages) > 0 {
		langFilter = cfg.Languages
	} else if langs != "" {
		for _, name := range strings.Split(langs, ",") {
			langFilter = append(langFilter, strings.TrimSpace(name))
		}
	}

	var reporter progress.Reporter = &progress.Spinner{W: stderr}
	if quiet {
		reporter = progress.Nop{}
	}

	files, err := loadRecords(dbPath, scanRoot, langFilter, legacyLines, logger, reporter)
	if err != nil {
		return err
	}

	reporter.Start("Building internal database")
	ix := index.Build(files, index.Options{StrictKeys: strictKeys})
	reporter.Stop()

	out := stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return fmt.Errorf("opening output file %s: %w", outPath, err)
		}
		defer f.Close()
		out = f
	}

	policy := query.BoundedRepeat
	if dedup {
		policy = query.VisitedDedup
	}

	if !noCallers {
		reporter.Start("Building callers")
		edges := query.Callers(ix, fnName, depth, policy)
		reporter.Stop()
		if block := dot.Render(dot.Callers, fnName, edges); block != "" {
			if _, err := io.WriteString(out, block); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}
	if !noCallees {
		reporter.Start("Building callees")
		edges := query.Callees(ix, fnName, depth, policy)
		reporter.Stop()
		if block := dot.Render(dot.Callees, fnName, edges); block != "" {
			if _, err := io.WriteString(out, block); err != nil {
				return fmt.Errorf("writing output: %w", err)
			}
		}
	}

	return nil
}

// loadRecords produces file records from whichever input mode was selected.
// For the database path, the buffer is acquired for the duration of the
// parse only and released on every exit path.
func loadRecords(dbPath, scanRoot string, langFilter []string, legacyLines bool, logger *slog.Logger, reporter progress.Reporter) ([]*model.FileRecord, error) {
	if scanRoot != "" {
		reporter.Start("Scanning sources")
		files, err := scan.Root(scanRoot, langFilter, logger)
		reporter.Stop()
		return files, err
	}

	buf, err := dbfile.Open(dbPath)
	if err != nil {
		return nil, err
	}
	defer buf.Close()

	reporter.Start("Loading cscope database")
	db, err := cscope.Parse(buf.Bytes(), cscope.Options{LegacyLineLimit: legacyLines}, logger)
	reporter.Stop()
	if err != nil {
		return nil, fmt.Errorf("loading cscope database: %w", err)
	}
	return db.Files, nil
}

// flagsWithValue lists flags that take a value argument.
var flagsWithValue = map[string]bool{
	"-c": true, "--c": true,
	"-db": true, "--db": true,
	"-f": true, "--f": true,
	"-d": true, "--d": true,
	"-depth": true, "--depth": true,
	"-o": true, "--o": true,
	"-s": true, "--s": true,
	"-scan": true, "--scan": true,
	"-l": true, "--l": true,
	"-langs": true, "--langs": true,
	"-config": true, "--config": true,
}

// reorderArgs moves positional arguments after all flags so Go's flag package
// can parse them correctly (it stops at the first non-flag arg).
func reorderArgs(args []string) []string {
	var flags, positional []string
	for i := 0; i < len(args); i++ {
		if args[i] == "--" {
			positional = append(positional, args[i+1:]...)
			break
		}
		if len(args[i]) > 0 && args[i][0] == '-' {
			flags = append(flags, args[i])
			if flagsWithValue[args[i]] && i+1 < len(args) {
				i++
				flags = append(flags, args[i])
			}
		} else {
			positional = append(positional, args[i])
		}
	}
	return append(flags, positional...)
}
