package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

type tokenOutput struct {
	Kind string      `json:"kind"`
	Text string      `json:"text"`
	Span source.Span `json:"span"`
}

// FormatTokensPretty prints one token per line with position info.
func FormatTokensPretty(w io.Writer, ts *token.Stream, fs *source.FileSet) error {
	for i, tok := range ts.Tokens() {
		start, end := fs.Resolve(tok.Span)
		fmt.Fprintf(w, "%4d: %-18s %q at %d:%d-%d:%d\n",
			i+1, tok.Kind.String(), ts.Text(tok),
			start.Line, start.Col, end.Line, end.Col)
	}
	return nil
}

// FormatTokensJSON prints the stream as an indented JSON array.
func FormatTokensJSON(w io.Writer, ts *token.Stream) error {
	out := make([]tokenOutput, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		out = append(out, tokenOutput{
			Kind: tok.Kind.String(),
			Text: ts.Text(tok),
			Span: tok.Span,
		})
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
