package cscope

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformedHeader reports that the buffer does not begin with the cscope
// magic token. Nothing useful can be parsed past this point, so the whole
// parse fails.
var ErrMalformedHeader = errors.New("not a cscope database")

// Header is the first line of the database:
//
//	cscope <version> <dir> [-c] [-q] [-T] <trailer offset>
//
// The -q option is recorded but its inverted-index argument is not consumed;
// the original reader treats the next numeric token as the trailer offset,
// and that behavior is kept.
type Header struct {
	Version       int
	Dir           string
	Compression   bool // -c
	InvertedIndex bool // -q
	PrefixMatch   bool // -T

	// SymsStart is the byte offset of the first symbol section line.
	SymsStart int
	// TrailerOff is the byte offset of the trailer, from the buffer start.
	TrailerOff int
}

// parseHeader reads the header line from the start of the cursor.
func parseHeader(cur *cursor) (Header, error) {
	line := cur.line()
	hdr := Header{SymsStart: cur.peekLineStart()}

	toks := strings.Split(line, " ")
	if len(toks) == 0 || !strings.HasPrefix(toks[0], "cscope") {
		return hdr, ErrMalformedHeader
	}
	if len(toks) < 4 {
		return hdr, fmt.Errorf("%w: short header line", ErrMalformedHeader)
	}

	version, err := strconv.Atoi(toks[1])
	if err != nil {
		return hdr, fmt.Errorf("header version %q: %w", toks[1], err)
	}
	hdr.Version = version
	hdr.Dir = toks[2]

	for _, tok := range toks[3:] {
		if len(tok) == 2 && tok[0] == '-' {
			switch tok[1] {
			case 'c':
				hdr.Compression = true
			case 'T':
				hdr.PrefixMatch = true
			case 'q':
				hdr.InvertedIndex = true
			default:
				return hdr, fmt.Errorf("unrecognized header option %q", tok)
			}
			continue
		}
		off, err := strconv.Atoi(tok)
		if err != nil {
			return hdr, fmt.Errorf("header trailer offset %q: %w", tok, err)
		}
		hdr.TrailerOff = off
		return hdr, nil
	}

	return hdr, fmt.Errorf("header missing trailer offset")
}
