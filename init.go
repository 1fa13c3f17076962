package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/phobologic/scopegraph/internal/config"
)

// runInit implements the `scopegraph init` subcommand, which writes a
// commented scaffold config file for editing.
func runInit(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("scopegraph init", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var force bool
	fs.BoolVar(&force, "force", false, "overwrite an existing config file")

	fs.Usage = func() {
		fmt.Fprintf(stderr, `Usage: scopegraph init [flags] [path]

Write a scaffold %s config file with the default settings commented
out. path defaults to ./%s.

Flags:
`, config.DefaultFile, config.DefaultFile)
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	path := config.DefaultFile
	if fs.NArg() > 0 {
		path = fs.Arg(0)
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use -force to overwrite)", path)
		}
	}

	if err := os.WriteFile(path, []byte(scaffold), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}

	_, _ = fmt.Fprintf(stderr, "wrote %s\n", path)
	return nil
}

const scaffold = `# scopegraph configuration. Command-line flags override these values.

# Default traversal depth for caller/callee expansion.
#depth: 5

# Emit each edge at most once instead of once per depth level that
# re-enters a cycle.
#dedup: false

# Index functions by file:name instead of bare name. With bare names,
# same-named functions in different files overwrite each other.
#strict_keys: false

# Reproduce the original reader's fixed 1024-byte line buffer, which
# silently drops over-long lines.
#legacy_lines: false

# Restrict scan mode (-s) to these languages.
#languages:
#  - c
#  - go
#  - python
`
