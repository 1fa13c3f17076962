package cscope

import "bytes"

// legacyLineMax is the fixed line-buffer capacity of the original C reader.
// In legacy mode, lines longer than this are dropped rather than returned.
const legacyLineMax = 1024

// cursor is a read position over the immutable database buffer. Lines are
// separated by '\n'; the cursor never writes and never copies the buffer.
type cursor struct {
	data []byte
	off  int

	// legacyLimit reproduces the original tool's fixed-capacity line
	// buffer: an over-long line is consumed but its content discarded.
	legacyLimit bool

	// dropped counts lines discarded by the legacy limit.
	dropped int
}

func (c *cursor) valid() bool {
	return c.off <= len(c.data)
}

func (c *cursor) eof() bool {
	return c.off >= len(c.data)
}

// line consumes the next line and returns its content without the trailing
// newline. At end of buffer it returns "". In legacy mode an over-long line
// is consumed but returned as empty, matching the original truncation.
func (c *cursor) line() string {
	if c.eof() {
		c.off++
		return ""
	}
	start := c.off
	end := bytes.IndexByte(c.data[start:], '\n')
	if end < 0 {
		c.off = len(c.data) + 1
		end = len(c.data)
	} else {
		end += start
		c.off = end + 1
	}
	if c.legacyLimit && end-start > legacyLineMax {
		c.dropped++
		return ""
	}
	return string(c.data[start:end])
}

// peekLineStart returns the offset of the next unread line, so a caller can
// rewind to it after reading ahead.
func (c *cursor) peekLineStart() int {
	return c.off
}

// rewind moves the cursor back to a previously recorded line start.
func (c *cursor) rewind(off int) {
	c.off = off
}
