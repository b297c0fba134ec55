package diag

import (
	"strings"
	"testing"

	"vb6cst/internal/source"
)

func spanAt(id source.FileID, start, end uint32) source.Span {
	return source.Span{File: id, Start: start, End: end}
}

func TestBagLimitStopsAccepting(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(NewError(LexUnknownToken, source.Span{}, "one")) {
		t.Fatal("first Add rejected")
	}
	if !bag.Add(NewError(LexUnknownToken, source.Span{}, "two")) {
		t.Fatal("second Add rejected")
	}
	if bag.Add(NewError(LexUnknownToken, source.Span{}, "three")) {
		t.Error("Add beyond the limit accepted")
	}
	if bag.Len() != 2 {
		t.Errorf("Len = %d, want 2", bag.Len())
	}
}

func TestBagZeroMaxIsUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := 0; i < 1000; i++ {
		if !bag.Add(NewError(LexUnknownToken, source.Span{}, "x")) {
			t.Fatalf("Add %d rejected with unlimited bag", i)
		}
	}
	if bag.Len() != 1000 {
		t.Errorf("Len = %d, want 1000", bag.Len())
	}
}

func TestBagHasErrorsIgnoresWarnings(t *testing.T) {
	bag := NewBag(DefaultLimit)
	bag.Add(New(SevWarning, LexInfo, source.Span{}, "w"))
	if bag.HasErrors() {
		t.Error("HasErrors true with only a warning")
	}
	if !bag.HasWarnings() {
		t.Error("HasWarnings false with a warning present")
	}
	bag.Add(NewError(LexUnknownToken, source.Span{}, "e"))
	if !bag.HasErrors() {
		t.Error("HasErrors false after adding an error")
	}
}

func TestGoldenFormattingIsStable(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mod.bas", []byte("Dim a\nDim b\n"))

	diags := []Diagnostic{
		NewError(SynLineTypeUnknown, spanAt(id, 6, 11), "second line"),
		NewError(LexUnknownToken, spanAt(id, 0, 5), "first line"),
	}

	got := FormatGoldenDiagnostics(diags, fs, false)
	want := strings.Join([]string{
		"error LEX1001 mod.bas:1:1 first line",
		"error SYN2001 mod.bas:2:1 second line",
	}, "\n")
	if got != want {
		t.Errorf("golden output:\n%s\nwant:\n%s", got, want)
	}

	// Same input, same output, regardless of insertion order.
	reversed := []Diagnostic{diags[1], diags[0]}
	if again := FormatGoldenDiagnostics(reversed, fs, false); again != got {
		t.Errorf("golden output depends on input order:\n%s\nvs\n%s", got, again)
	}
}

func TestGoldenIncludesNotes(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("mod.bas", []byte("Sub A\n"))

	d := NewError(SynUnterminatedConstruct, spanAt(id, 5, 5), "missing End Sub").
		WithNote(spanAt(id, 0, 3), "block opened here")

	got := FormatGoldenDiagnostics([]Diagnostic{d}, fs, true)
	if !strings.Contains(got, "note SYN2002 mod.bas:1:1 block opened here") {
		t.Errorf("note missing from golden output:\n%s", got)
	}
}
