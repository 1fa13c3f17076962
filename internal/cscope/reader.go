// Package cscope parses the cscope.out cross-reference database format into
// per-file symbol records.
//
// The format is line-oriented text inside a binary container: a header line
// with the trailer offset, a symbol section of file blocks, and a trailer of
// path lists. Within a file block, symbol groups start with a source line
// number and contain tab-marked symbol lines interleaved with free text.
// Only the function-definition ('$') and function-call ('`') marks feed the
// call graph; other recognized marks are skipped.
package cscope

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/phobologic/scopegraph/internal/model"
)

const (
	markFile    = '@'
	markFnDef   = '$'
	markFnCall  = '`'
	markFnEnd   = '}'
	markInclude = '~'
)

// marks is the set of characters cscope uses to tag a line's role.
var marks = map[byte]struct{}{
	markFile: {}, markFnDef: {}, markFnCall: {},
	markFnEnd: {}, '#': {}, ')': {},
	markInclude: {}, '=': {}, ';': {},
	'c': {}, 'e': {}, 'g': {},
	'l': {}, 'm': {}, 'p': {},
	's': {}, 't': {}, 'u': {},
}

func isMark(c byte) bool {
	_, ok := marks[c]
	return ok
}

// Options configures format-compatibility behavior.
type Options struct {
	// LegacyLineLimit reproduces the original reader's fixed 1024-byte
	// line buffer: over-long lines are silently dropped instead of read
	// in full.
	LegacyLineLimit bool
}

// Database is the parsed content of a cscope.out buffer.
type Database struct {
	Header  Header
	Trailer Trailer
	Files   []*model.FileRecord
}

// Parse reads a complete cscope database from data. The buffer is treated as
// immutable; all returned records reference copies, never the buffer itself.
//
// A missing or unparsable magic token fails the whole parse: continuing with
// a partially initialized header would misplace the trailer offset and parse
// garbage as symbols.
func Parse(data []byte, opts Options, logger *slog.Logger) (*Database, error) {
	if logger == nil {
		logger = slog.Default()
	}

	cur := &cursor{data: data, legacyLimit: opts.LegacyLineLimit}
	hdr, err := parseHeader(cur)
	if err != nil {
		return nil, err
	}

	trailer, err := parseTrailer(data, hdr.TrailerOff, opts.LegacyLineLimit)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed trailer",
		"viewpaths", len(trailer.ViewPaths),
		"sources", len(trailer.Sources),
		"includes", len(trailer.IncludeDirs))

	db := &Database{Header: hdr, Trailer: trailer}
	p := &parser{cur: cur, trailerOff: hdr.TrailerOff, log: logger}
	p.cur.off = hdr.SymsStart
	db.Files = p.fileRecords()

	if p.cur.dropped > 0 {
		logger.Debug("legacy line limit dropped lines", "count", p.cur.dropped)
	}
	return db, nil
}

type parser struct {
	cur        *cursor
	trailerOff int
	log        *slog.Logger
}

// fileRecords parses the symbol section into an ordered list of file
// records. Records whose path parsed empty are discarded.
func (p *parser) fileRecords() []*model.FileRecord {
	var files []*model.FileRecord
	for p.cur.valid() && p.cur.off < p.trailerOff {
		rec := p.newRecord(p.cur.line())
		p.fileBlock(rec)
		if rec.Path == "" {
			continue
		}
		files = append(files, rec)
	}
	return files
}

// newRecord parses a "<mark><path>" file line. Leading whitespace is
// skipped; the first remaining character is the mark, the rest is the path.
func (p *parser) newRecord(line string) *model.FileRecord {
	s := strings.TrimLeft(line, " \t")
	if len(s) < 2 || s[0] != markFile {
		return model.NewFileRecord("")
	}
	return model.NewFileRecord(s[1:])
}

// fileBlock consumes the body of one file block: the blank separator line,
// then symbol groups until the next file line or the trailer offset. The
// next file line is not consumed; the cursor rewinds to its start so the
// outer loop can begin a new block.
func (p *parser) fileBlock(rec *model.FileRecord) {
	p.cur.line() // blank separator after the file line

	for p.cur.valid() && p.cur.off < p.trailerOff {
		start := p.cur.peekLineStart()
		line := p.cur.line()

		s := strings.TrimLeft(line, " \t")
		if len(s) > 0 && s[0] == markFile {
			p.cur.rewind(start)
			return
		}

		lineno := leadingInt(s)
		p.symbolGroup(rec, lineno)
	}
}

// symbolGroup consumes one symbol group: symbol-line / trailing-text-line
// pairs until a blank line. lineno is the source line the group's symbols
// occur on.
func (p *parser) symbolGroup(rec *model.FileRecord, lineno int) {
	for p.cur.valid() {
		line := p.cur.line()
		if len(line) == 0 {
			return
		}

		s := strings.TrimLeft(line, " ")

		var mark byte
		if len(s) >= 2 && s[0] == '\t' && isMark(s[1]) {
			mark = s[1]
			s = s[2:]
		}

		if mark != markFnDef && mark != markFnCall {
			continue
		}

		// A lone mark character is a continuation marker, not a symbol.
		if s == "" || (isMark(s[0]) && len(s) == 1) {
			p.log.Debug("skipping continuation mark line", "file", rec.Path, "line", lineno)
			continue
		}

		sym := model.Symbol{
			Name: s,
			Line: lineno,
			File: rec.Path,
		}
		switch mark {
		case markFnCall:
			sym.Kind = model.Call
			if !rec.AddCall(sym) {
				// Call outside any tracked function body, most
				// likely a macro expansion.
				p.log.Debug("dropping call with no current definition",
					"file", rec.Path, "callee", s, "line", lineno)
			}
		case markFnDef:
			sym.Kind = model.Definition
			rec.AddDefinition(sym)
		}

		p.cur.line() // trailing non-symbol text
	}
}

// leadingInt parses the decimal prefix of s; free text after the number is
// ignored, and a missing number yields 0.
func leadingInt(s string) int {
	i := 0
	for i < len(s) && s[i] >= '0' && s[i] <= '9' {
		i++
	}
	n, _ := strconv.Atoi(s[:i])
	return n
}
