package diagfmt_test

import (
	"strings"
	"testing"

	"vb6cst/internal/diag"
	"vb6cst/internal/diagfmt"
	"vb6cst/internal/source"
)

func TestPrettyPointsAtOffendingBytes(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("mod.bas", []byte("Dim x\n@@\nDim y\n")))

	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevError, diag.SynLineTypeUnknown,
		source.Span{File: f.ID, Start: 6, End: 8},
		"cannot classify statement"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{})
	out := sb.String()

	if !strings.Contains(out, "mod.bas:2:1") {
		t.Errorf("missing path:line:col in output:\n%s", out)
	}
	if !strings.Contains(out, diag.SynLineTypeUnknown.ID()) {
		t.Errorf("missing code in output:\n%s", out)
	}
	if !strings.Contains(out, "@@") {
		t.Errorf("missing source context in output:\n%s", out)
	}
	if !strings.Contains(out, "^~") {
		t.Errorf("missing caret underline in output:\n%s", out)
	}
}

func TestPrettyWithoutColorHasNoEscapes(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("mod.bas", []byte("x\n")))
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevWarning, diag.LexUnknownToken,
		source.Span{File: f.ID, Start: 0, End: 1}, "test"))

	var sb strings.Builder
	diagfmt.Pretty(&sb, bag, fs, diagfmt.PrettyOpts{Color: false})
	if strings.Contains(sb.String(), "\x1b[") {
		t.Errorf("uncolored output contains ANSI escapes:\n%q", sb.String())
	}
}

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("mod.bas", []byte("@@\n")))
	bag := diag.NewBag(8)
	bag.Add(diag.New(diag.SevError, diag.LexUnknownToken,
		source.Span{File: f.ID, Start: 0, End: 1}, "unknown token"))

	var sb strings.Builder
	if err := diagfmt.JSON(&sb, bag, fs, diagfmt.JSONOpts{IncludePositions: true}); err != nil {
		t.Fatalf("JSON: %v", err)
	}
	out := sb.String()
	for _, want := range []string{`"LEX1001"`, `"error"`, `"line": 1`, "mod.bas"} {
		if !strings.Contains(out, want) {
			t.Errorf("JSON output missing %s:\n%s", want, out)
		}
	}
}
