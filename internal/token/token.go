package token

import (
	"vb6cst/internal/source"
)

// Token is an immutable view into the source buffer: a kind plus the
// byte span it covers. Tokens never copy text; the owning buffer must
// outlive them.
type Token struct {
	Kind Kind
	Span source.Span
}

// Bytes returns the token's raw bytes from the owning file.
func (t Token) Bytes(f *source.File) []byte {
	return f.Content[t.Span.Start:t.Span.End]
}

// Text materializes the token's text. Use Bytes where a copy is not
// needed.
func (t Token) Text(f *source.File) string {
	return string(t.Bytes(f))
}

// IsTrivia reports whether the token is whitespace, a newline or a comment.
func (t Token) IsTrivia() bool { return t.Kind.IsTrivia() }

// IsKeyword reports whether the token is a keyword.
func (t Token) IsKeyword() bool { return t.Kind.IsKeyword() }
