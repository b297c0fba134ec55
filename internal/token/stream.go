package token

import (
	"strings"

	"vb6cst/internal/source"
)

// Stream is a read-only ordered token sequence bound to one file.
// Derived views (Filter, WithoutWhitespace) share the backing file and
// token values; nothing is re-lexed or mutated.
type Stream struct {
	file *source.File
	toks []Token
}

// NewStream binds a token slice to its file. The slice is owned by the
// stream afterwards.
func NewStream(f *source.File, toks []Token) *Stream {
	return &Stream{file: f, toks: toks}
}

// File returns the file the tokens point into.
func (s *Stream) File() *source.File {
	return s.file
}

func (s *Stream) Len() int {
	return len(s.toks)
}

// At returns the i-th token.
func (s *Stream) At(i int) Token {
	return s.toks[i]
}

// Tokens returns the backing slice. Callers must not modify it.
func (s *Stream) Tokens() []Token {
	return s.toks
}

// Text returns the text of a token from this stream's file.
func (s *Stream) Text(t Token) string {
	return t.Text(s.file)
}

// Concat joins every token span in order. For a freshly lexed stream
// the result is byte-for-byte the original source.
func (s *Stream) Concat() string {
	var b strings.Builder
	for _, t := range s.toks {
		b.Write(t.Bytes(s.file))
	}
	return b.String()
}

// Filter returns a derived stream keeping only tokens for which keep
// returns true, preserving relative order. Filtering is idempotent for
// any pure predicate.
func (s *Stream) Filter(keep func(Token) bool) *Stream {
	out := make([]Token, 0, len(s.toks))
	for _, t := range s.toks {
		if keep(t) {
			out = append(out, t)
		}
	}
	return &Stream{file: s.file, toks: out}
}

// WithoutWhitespace returns a derived stream with Whitespace tokens
// removed. Newlines and comments stay: they are statement separators
// and attachment points for the tree builder.
func (s *Stream) WithoutWhitespace() *Stream {
	return s.Filter(func(t Token) bool { return t.Kind != Whitespace })
}

// WithoutTrivia returns a derived stream with all trivia removed.
func (s *Stream) WithoutTrivia() *Stream {
	return s.Filter(func(t Token) bool { return !t.IsTrivia() })
}
