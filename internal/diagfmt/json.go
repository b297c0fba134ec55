package diagfmt

import (
	"encoding/json"
	"io"

	"vb6cst/internal/diag"
	"vb6cst/internal/source"
)

type jsonPosition struct {
	Line uint32 `json:"line"`
	Col  uint32 `json:"col"`
}

type jsonNote struct {
	Span    source.Span   `json:"span"`
	Start   *jsonPosition `json:"start,omitempty"`
	Message string        `json:"message"`
}

type jsonDiagnostic struct {
	Severity string        `json:"severity"`
	Code     string        `json:"code"`
	Message  string        `json:"message"`
	Path     string        `json:"path,omitempty"`
	Span     source.Span   `json:"span"`
	Start    *jsonPosition `json:"start,omitempty"`
	End      *jsonPosition `json:"end,omitempty"`
	Notes    []jsonNote    `json:"notes,omitempty"`
}

// severityName is the lowercase wire spelling, matching the golden
// diagnostic format rather than Severity.String's display form.
func severityName(sev diag.Severity) string {
	switch sev {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "info"
	}
}

// JSON renders the bag as an indented JSON array, one object per
// diagnostic.
func JSON(w io.Writer, bag *diag.Bag, fs *source.FileSet, opts JSONOpts) error {
	items := bag.Items()
	if opts.Max > 0 && len(items) > opts.Max {
		items = items[:opts.Max]
	}
	out := make([]jsonDiagnostic, 0, len(items))
	for _, d := range items {
		jd := jsonDiagnostic{
			Severity: severityName(d.Severity),
			Code:     d.Code.ID(),
			Message:  d.Message,
			Span:     d.Primary,
		}
		jd.Path = fs.Get(d.Primary.File).Path
		if opts.IncludePositions {
			start, end := fs.Resolve(d.Primary)
			jd.Start = &jsonPosition{Line: start.Line, Col: start.Col}
			jd.End = &jsonPosition{Line: end.Line, Col: end.Col}
		}
		if opts.IncludeNotes {
			for _, n := range d.Notes {
				jn := jsonNote{Span: n.Span, Message: n.Msg}
				if opts.IncludePositions {
					start, _ := fs.Resolve(n.Span)
					jn.Start = &jsonPosition{Line: start.Line, Col: start.Col}
				}
				jd.Notes = append(jd.Notes, jn)
			}
		}
		out = append(out, jd)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
