package source

import (
	"bytes"
	"fmt"

	"fortio.org/safecast"
)

// CaseMode selects how Take and PeekLiteral compare literals.
type CaseMode uint8

const (
	CaseSensitive CaseMode = iota
	CaseInsensitive
)

// Stream is a forward-only cursor over a file's content. Every Take*
// method either consumes the matched bytes or consumes nothing; no
// method ever partially consumes and backs out. The only ways to move
// backwards are ResetToStart and an explicit Mark/Reset pair, both used
// for bounded lookahead pre-passes.
type Stream struct {
	File *File
	Off  uint32
}

// NewStream creates a stream positioned at the start of f.
func NewStream(f *File) *Stream {
	if _, err := safecast.Conv[uint32](len(f.Content)); err != nil {
		panic(fmt.Errorf("file content overflow: %w", err))
	}
	return &Stream{File: f}
}

func (s *Stream) limit() uint32 {
	return uint32(len(s.File.Content))
}

// IsEmpty reports whether the cursor is at or past the end of content.
func (s *Stream) IsEmpty() bool {
	return s.Off >= s.limit()
}

// Offset returns the current byte offset.
func (s *Stream) Offset() uint32 {
	return s.Off
}

// Remaining returns the number of unconsumed bytes.
func (s *Stream) Remaining() uint32 {
	if s.IsEmpty() {
		return 0
	}
	return s.limit() - s.Off
}

// ResetToStart rewinds the stream to offset zero. Used for at most one
// lookahead pre-pass per top-level parse call.
func (s *Stream) ResetToStart() {
	s.Off = 0
}

// Mark is a saved cursor position.
type Mark uint32

// Mark saves the current position.
func (s *Stream) Mark() Mark {
	return Mark(s.Off)
}

// Reset rewinds to a previously saved mark.
func (s *Stream) Reset(m Mark) {
	s.Off = uint32(m)
}

// SpanFrom builds the span from a mark to the current position.
func (s *Stream) SpanFrom(m Mark) Span {
	return Span{File: s.File.ID, Start: uint32(m), End: s.Off}
}

// EmptySpan returns the zero-length span at the current position.
func (s *Stream) EmptySpan() Span {
	return Span{File: s.File.ID, Start: s.Off, End: s.Off}
}

// PeekByte returns the current byte without consuming, or 0 at EOF.
func (s *Stream) PeekByte() byte {
	if s.IsEmpty() {
		return 0
	}
	return s.File.Content[s.Off]
}

// PeekByteAt returns the byte n positions ahead without consuming.
func (s *Stream) PeekByteAt(n uint32) (byte, bool) {
	if s.Off+n >= s.limit() {
		return 0, false
	}
	return s.File.Content[s.Off+n], true
}

// Peek returns the next n bytes without consuming, or false if fewer
// than n bytes remain.
func (s *Stream) Peek(n uint32) ([]byte, bool) {
	if s.Off+n > s.limit() {
		return nil, false
	}
	return s.File.Content[s.Off : s.Off+n], true
}

// PeekLiteral reports whether the stream starts with lit under the
// given case mode, without consuming.
func (s *Stream) PeekLiteral(lit string, mode CaseMode) bool {
	got, ok := s.Peek(uint32(len(lit)))
	if !ok {
		return false
	}
	if mode == CaseSensitive {
		return string(got) == lit
	}
	return bytes.EqualFold(got, []byte(lit))
}

// Take consumes lit if the stream starts with it under the given case
// mode. On failure nothing is consumed.
func (s *Stream) Take(lit string, mode CaseMode) (Span, bool) {
	if !s.PeekLiteral(lit, mode) {
		return s.EmptySpan(), false
	}
	m := s.Mark()
	s.Off += uint32(len(lit))
	return s.SpanFrom(m), true
}

// TakeWhile consumes the maximal run of bytes satisfying pred. Returns
// false (and consumes nothing) when the run is empty.
func (s *Stream) TakeWhile(pred func(byte) bool) (Span, bool) {
	m := s.Mark()
	for !s.IsEmpty() && pred(s.File.Content[s.Off]) {
		s.Off++
	}
	sp := s.SpanFrom(m)
	return sp, !sp.Empty()
}

// TakeDigits consumes a maximal run of ASCII digits.
func (s *Stream) TakeDigits() (Span, bool) {
	return s.TakeWhile(IsDigit)
}

// TakeIdentChars consumes a maximal run of ASCII letters, digits and
// underscores.
func (s *Stream) TakeIdentChars() (Span, bool) {
	return s.TakeWhile(IsIdentChar)
}

// TakeSpaces consumes a maximal run of spaces and tabs. CR and LF are
// newline territory, never whitespace.
func (s *Stream) TakeSpaces() (Span, bool) {
	return s.TakeWhile(func(b byte) bool { return b == ' ' || b == '\t' })
}

// PeekNewline reports whether a newline sequence starts at the cursor.
func (s *Stream) PeekNewline() bool {
	b := s.PeekByte()
	return b == '\r' || b == '\n'
}

// TakeNewline consumes one newline sequence: "\r\n", "\n" or a lone "\r".
func (s *Stream) TakeNewline() (Span, bool) {
	if sp, ok := s.Take("\r\n", CaseSensitive); ok {
		return sp, true
	}
	if sp, ok := s.Take("\n", CaseSensitive); ok {
		return sp, true
	}
	return s.Take("\r", CaseSensitive)
}

// TakeUntilNewline consumes up to (and including) the next newline
// sequence. It returns the content span before the newline and the
// newline span itself; hasNL is false when the stream ended without a
// trailing newline, in which case nl is empty. Returns ok=false only
// when the stream is already empty.
func (s *Stream) TakeUntilNewline() (content, nl Span, hasNL, ok bool) {
	if s.IsEmpty() {
		return s.EmptySpan(), s.EmptySpan(), false, false
	}
	m := s.Mark()
	for !s.IsEmpty() && !s.PeekNewline() {
		s.Off++
	}
	content = s.SpanFrom(m)
	nl, hasNL = s.TakeNewline()
	return content, nl, hasNL, true
}

// TakeCount unconditionally consumes up to n bytes. Used only for error
// recovery, where skipping exactly one unit guarantees progress.
func (s *Stream) TakeCount(n uint32) (Span, bool) {
	if s.IsEmpty() {
		return s.EmptySpan(), false
	}
	m := s.Mark()
	if s.Off+n > s.limit() {
		s.Off = s.limit()
	} else {
		s.Off += n
	}
	return s.SpanFrom(m), true
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool { return b >= '0' && b <= '9' }

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

// IsIdentChar reports whether b can continue an identifier.
func IsIdentChar(b byte) bool {
	return IsLetter(b) || IsDigit(b) || b == '_'
}
