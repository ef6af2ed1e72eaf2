// Package scanner implements the low-level byte-cursor scanner shared by
// every docscribe parser: position tracking, peek/check/advance
// primitives, and line-oriented scanning helpers. Parsers backtrack by
// snapshotting and restoring (pos, line, column) rather than reparsing.
package scanner

import "bytes"

// Scanner is a byte-level cursor over a source string with line/column
// tracking.
type Scanner struct {
	input  string
	bytes  []byte
	pos    int
	line   int
	column int
}

// New creates a scanner positioned at the start of input.
func New(input string) *Scanner {
	return &Scanner{
		input:  input,
		bytes:  []byte(input),
		pos:    0,
		line:   1,
		column: 1,
	}
}

// Reset returns the scanner to the beginning of input.
func (s *Scanner) Reset() {
	s.pos = 0
	s.line = 1
	s.column = 1
}

// Pos returns the current byte offset.
func (s *Scanner) Pos() int { return s.pos }

// SetPos jumps the cursor to an arbitrary byte offset without touching
// line/column bookkeeping; callers that jump must also fix up line/column
// themselves (used by parsers to backtrack after a failed attempt).
func (s *Scanner) SetPos(pos int) { s.pos = pos }

// Line returns the current 1-indexed line number.
func (s *Scanner) Line() int { return s.line }

// Column returns the current 1-indexed column number.
func (s *Scanner) Column() int { return s.column }

// SetLineColumn overrides line/column bookkeeping, used after SetPos.
func (s *Scanner) SetLineColumn(line, column int) {
	s.line = line
	s.column = column
}

// IsEOF reports whether the cursor has consumed all input.
func (s *Scanner) IsEOF() bool { return s.pos >= len(s.bytes) }

// Len returns the total byte length of the input.
func (s *Scanner) Len() int { return len(s.bytes) }

// Snapshot captures (pos, line, column) for later restoration.
type Snapshot struct {
	Pos    int
	Line   int
	Column int
}

// Snap takes a snapshot of the current cursor state.
func (s *Scanner) Snap() Snapshot {
	return Snapshot{Pos: s.pos, Line: s.line, Column: s.column}
}

// Restore rewinds the cursor to a previously captured snapshot.
func (s *Scanner) Restore(snap Snapshot) {
	s.pos = snap.Pos
	s.line = snap.Line
	s.column = snap.Column
}

// Peek returns the current byte, or ok=false at EOF.
func (s *Scanner) Peek() (byte, bool) {
	if s.pos >= len(s.bytes) {
		return 0, false
	}
	return s.bytes[s.pos], true
}

// PeekAt returns the byte at an offset from the current position.
func (s *Scanner) PeekAt(offset int) (byte, bool) {
	i := s.pos + offset
	if i < 0 || i >= len(s.bytes) {
		return 0, false
	}
	return s.bytes[i], true
}

// Check reports whether the current byte equals expected.
func (s *Scanner) Check(expected byte) bool {
	b, ok := s.Peek()
	return ok && b == expected
}

// CheckStr reports whether the remaining input starts with expected.
func (s *Scanner) CheckStr(expected string) bool {
	return bytes.HasPrefix(s.bytes[s.pos:], []byte(expected))
}

// Advance consumes one byte, updating line/column.
func (s *Scanner) Advance() {
	if s.pos >= len(s.bytes) {
		return
	}
	if s.bytes[s.pos] == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	s.pos++
}

// AdvanceN consumes n bytes.
func (s *Scanner) AdvanceN(n int) {
	for range n {
		s.Advance()
	}
}

// Consume consumes the current byte if it matches expected, reporting
// whether it did.
func (s *Scanner) Consume(expected byte) bool {
	if s.Check(expected) {
		s.Advance()
		return true
	}
	return false
}

// SkipWhitespaceInline skips contiguous spaces and tabs.
func (s *Scanner) SkipWhitespaceInline() {
	for s.pos < len(s.bytes) {
		switch s.bytes[s.pos] {
		case ' ', '\t':
			s.column++
			s.pos++
		default:
			return
		}
	}
}

// SkipLine advances past the rest of the current line, consuming the
// trailing newline if present.
func (s *Scanner) SkipLine() {
	rel := bytes.IndexByte(s.bytes[s.pos:], '\n')
	if rel >= 0 {
		s.pos += rel
		s.column += rel
		s.pos++
		s.line++
		s.column = 1
		return
	}
	remaining := len(s.bytes) - s.pos
	s.column += remaining
	s.pos = len(s.bytes)
}

// SkipBlankLines consumes consecutive lines containing only inline
// whitespace, leaving the cursor at the start of the first non-blank line.
func (s *Scanner) SkipBlankLines() {
	for {
		start := s.Snap()
		s.SkipWhitespaceInline()
		if !s.Consume('\n') {
			s.Restore(start)
			return
		}
	}
}

// ScanUntil scans up to (not including) delim on the current line,
// returning (content, true). If a newline is hit first, returns ("", false)
// with the cursor left on that newline; the bytes scanned before it are
// consumed, and the caller decides how to recover (for example by
// restoring a saved position).
func (s *Scanner) ScanUntil(delim byte) (string, bool) {
	start := s.pos
	for s.pos < len(s.bytes) {
		b := s.bytes[s.pos]
		if b == delim {
			return s.input[start:s.pos], true
		}
		if b == '\n' {
			return "", false
		}
		s.column++
		s.pos++
	}
	return "", false
}

// ScanNonWhitespace consumes and returns a run of non-whitespace bytes.
func (s *Scanner) ScanNonWhitespace() string {
	start := s.pos
	for s.pos < len(s.bytes) && !isASCIIWhitespace(s.bytes[s.pos]) {
		s.column++
		s.pos++
	}
	return s.input[start:s.pos]
}

// Slice returns input[start:end], clamped to the input length.
func (s *Scanner) Slice(start, end int) string {
	if end > len(s.input) {
		end = len(s.input)
	}
	if start < 0 {
		start = 0
	}
	if start > end {
		return ""
	}
	return s.input[start:end]
}

// Remaining returns the unconsumed tail of the input.
func (s *Scanner) Remaining() string {
	return s.input[s.pos:]
}

// ScanLine consumes and returns the current line's content (excluding
// the newline), advancing past the newline.
func (s *Scanner) ScanLine() string {
	start := s.pos
	rel := bytes.IndexByte(s.bytes[s.pos:], '\n')
	if rel >= 0 {
		end := s.pos + rel
		s.pos = end + 1
		s.line++
		s.column = 1
		return s.input[start:end]
	}
	end := len(s.bytes)
	s.pos = end
	return s.input[start:end]
}

func isASCIIWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	default:
		return false
	}
}
