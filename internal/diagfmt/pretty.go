package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"vb6cst/internal/diag"
	"vb6cst/internal/source"
)

// Pretty renders diagnostics human-readably. Callers are expected to
// Sort the bag first. Each diagnostic prints as
//
//	<path>:<line>:<col>: <SEV> <CODE>: <message>
//
// followed by the offending source line with a ^~~~ underline, then
// notes in the same shape.
func Pretty(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, d, fs, opts)
	}
}

func writeDiagnostic(w io.Writer, d diag.Diagnostic, fs *source.FileSet, opts PrettyOpts) {
	start, _ := fs.Resolve(d.Primary)
	path := fs.Get(d.Primary.File).Path
	fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
		path, start.Line, start.Col,
		severityLabel(d.Severity, opts.Color), d.Code.ID(), d.Message)
	writeContext(w, d.Primary, fs, opts)
	if opts.ShowNotes {
		for _, n := range d.Notes {
			nStart, _ := fs.Resolve(n.Span)
			fmt.Fprintf(w, "  %s:%d:%d: note: %s\n", path, nStart.Line, nStart.Col, n.Msg)
		}
	}
}

func severityLabel(sev diag.Severity, colored bool) string {
	label := sev.String()
	if !colored {
		return label
	}
	switch sev {
	case diag.SevError:
		return color.New(color.FgRed, color.Bold).Sprint(label)
	case diag.SevWarning:
		return color.New(color.FgYellow, color.Bold).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}

// writeContext prints the primary line and a caret underline aligned
// under the span. Wide runes in the prefix are measured with
// runewidth so the caret lands under the right column even for
// non-ASCII legacy text.
func writeContext(w io.Writer, sp source.Span, fs *source.FileSet, opts PrettyOpts) {
	f := fs.Get(sp.File)
	if sp.Empty() && sp.Start >= uint32(len(f.Content)) {
		return
	}
	start, end := fs.Resolve(sp)
	lineText, lineStart := lineAt(f, start.Line)
	if lineText == "" && sp.Empty() {
		return
	}
	fmt.Fprintf(w, "  %4d | %s\n", start.Line, strings.TrimRight(lineText, "\r\n"))

	prefix := lineText
	if rel := int(sp.Start - lineStart); rel >= 0 && rel <= len(lineText) {
		prefix = lineText[:rel]
	}
	pad := runewidth.StringWidth(strings.ReplaceAll(prefix, "\t", "    "))
	width := 1
	if end.Line == start.Line && sp.End > sp.Start {
		width = int(sp.End - sp.Start)
	}
	underline := "^"
	if width > 1 {
		underline += strings.Repeat("~", width-1)
	}
	marker := strings.Repeat(" ", pad) + underline
	if opts.Color {
		marker = color.New(color.FgRed).Sprint(marker)
	}
	fmt.Fprintf(w, "       | %s\n", marker)
}

// lineAt returns the 1-based line's text and its byte offset.
func lineAt(f *source.File, line uint32) (string, uint32) {
	start := uint32(0)
	if line > 1 {
		idx := int(line) - 2
		if idx >= len(f.LineIdx) {
			return "", uint32(len(f.Content))
		}
		start = f.LineIdx[idx] + 1
	}
	end := uint32(len(f.Content))
	if idx := int(line) - 1; idx < len(f.LineIdx) {
		end = f.LineIdx[idx]
	}
	if start > end {
		return "", start
	}
	return string(f.Content[start:end]), start
}
