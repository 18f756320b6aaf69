// Package scanner provides the low-level byte cursor the parser drives:
// position-tracked peek/advance over a UTF-8 buffer, line/column
// bookkeeping, and the character classifications (break, blank) the
// upstream scanner hard-codes as IS_BREAK/IS_BLANK
// macros over its raw buffer. It has no notion of YAML grammar — the
// parser owns indentation, block/flow structure, and node construction.
package scanner

import "github.com/willabides/ndyaml/internal/rawh"

// Scanner is a cursor over a byte buffer that tracks the line/column the
// cursor is positioned at, the way the upstream reader tracked Line/Column
// alongside its raw offset so every token could be stamped with a
// Position cheaply.
type Scanner struct {
	buf    []byte
	offset int
	line   int
	column int
}

// New returns a Scanner positioned at the start of buf.
func New(buf []byte) *Scanner {
	return &Scanner{buf: buf, line: 1}
}

// Offset returns the current byte offset.
func (s *Scanner) Offset() int { return s.offset }

// Pos returns the current position for error reporting.
func (s *Scanner) Pos() rawh.Position {
	return rawh.Position{Offset: s.offset, Line: s.line, Column: s.column}
}

// Eof reports whether the cursor is at the end of the buffer.
func (s *Scanner) Eof() bool { return s.offset >= len(s.buf) }

// Peek returns the byte at the cursor without advancing, or 0 at EOF.
func (s *Scanner) Peek() byte {
	if s.Eof() {
		return 0
	}
	return s.buf[s.offset]
}

// PeekAt returns the byte n positions ahead of the cursor, or 0 past EOF.
func (s *Scanner) PeekAt(n int) byte {
	if s.offset+n >= len(s.buf) || s.offset+n < 0 {
		return 0
	}
	return s.buf[s.offset+n]
}

// Advance consumes one byte, updating line/column. It must not be called
// at EOF.
func (s *Scanner) Advance() byte {
	c := s.buf[s.offset]
	s.offset++
	if c == '\n' {
		s.line++
		s.column = 0
	} else {
		s.column++
	}
	return c
}

// IsBreak reports whether c is a line-break byte.
func IsBreak(c byte) bool { return c == '\n' || c == '\r' }

// IsBlank reports whether c is a space or tab.
func IsBlank(c byte) bool { return c == ' ' || c == '\t' }

// SkipLineBreak consumes a single line break (CR, LF, or CRLF) at the
// cursor, reporting whether one was found.
func (s *Scanner) SkipLineBreak() bool {
	switch {
	case s.Peek() == '\r' && s.PeekAt(1) == '\n':
		s.Advance()
		s.Advance()
		return true
	case s.Peek() == '\r' || s.Peek() == '\n':
		s.Advance()
		return true
	}
	return false
}

// Column returns the current 0-based column (bytes since last newline).
func (s *Scanner) Column() int { return s.column }

// Mark captures the cursor's current position so the parser can try a
// lookahead (e.g. "is this a mapping key?") and Reset back to it if the
// lookahead doesn't pan out, the way the upstream parser used
// yaml_parser_fetch_more_tokens' staged simple-key buffering to decide
// block-mapping-vs-scalar without truly backtracking the byte stream.
type Mark struct {
	offset, line, column int
}

// Mark returns a Mark for the cursor's current position.
func (s *Scanner) Mark() Mark {
	return Mark{offset: s.offset, line: s.line, column: s.column}
}

// Reset rewinds the cursor to a previously captured Mark.
func (s *Scanner) Reset(m Mark) {
	s.offset, s.line, s.column = m.offset, m.line, m.column
}

// RewindTo moves the cursor back to offset, which the caller guarantees
// lies on the current line (no line break between offset and the current
// position) — used after scanning ahead to find where trailing
// whitespace starts, so that whitespace can be re-scanned by whatever
// attributes it (a separator, a trailing comment span).
func (s *Scanner) RewindTo(offset int) {
	delta := s.offset - offset
	s.offset = offset
	s.column -= delta
}
