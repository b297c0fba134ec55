package source

import (
	"bytes"
	"testing"
)

func newTestStream(t *testing.T, content string) *Stream {
	t.Helper()
	fs := NewFileSet()
	return NewStream(fs.Get(fs.AddVirtual("t.bas", []byte(content))))
}

func TestPeekLiteralCaseModes(t *testing.T) {
	s := newTestStream(t, "DIM x")
	if !s.PeekLiteral("dim", CaseInsensitive) {
		t.Error("case-insensitive peek of \"dim\" against \"DIM\" failed")
	}
	if s.PeekLiteral("dim", CaseSensitive) {
		t.Error("case-sensitive peek of \"dim\" against \"DIM\" matched")
	}
	if s.Offset() != 0 {
		t.Errorf("peek moved the cursor to %d", s.Offset())
	}
}

func TestMarkResetRestoresOffset(t *testing.T) {
	s := newTestStream(t, "abcdef")
	m := s.Mark()
	if _, ok := s.Take("abc", CaseSensitive); !ok {
		t.Fatal("Take(\"abc\") failed")
	}
	if sp := s.SpanFrom(m); sp.Start != 0 || sp.End != 3 {
		t.Errorf("SpanFrom = %v, want 0..3", sp)
	}
	s.Reset(m)
	if s.Offset() != 0 {
		t.Errorf("offset after reset = %d, want 0", s.Offset())
	}
}

func TestTakeNewlineForms(t *testing.T) {
	tests := []struct {
		input string
		len   uint32
	}{
		{"\r\nx", 2},
		{"\nx", 1},
		{"\rx", 1},
	}
	for _, tt := range tests {
		s := newTestStream(t, tt.input)
		sp, ok := s.TakeNewline()
		if !ok {
			t.Errorf("%q: TakeNewline failed", tt.input)
			continue
		}
		if sp.Len() != tt.len {
			t.Errorf("%q: newline span length %d, want %d", tt.input, sp.Len(), tt.len)
		}
	}

	s := newTestStream(t, "x\n")
	if _, ok := s.TakeNewline(); ok {
		t.Error("TakeNewline matched a non-newline byte")
	}
}

func TestTakeUntilNewline(t *testing.T) {
	s := newTestStream(t, "Type=Exe\r\nName=x")

	content, nl, hasNL, ok := s.TakeUntilNewline()
	if !ok || !hasNL {
		t.Fatalf("first line: ok=%v hasNL=%v", ok, hasNL)
	}
	if content.Start != 0 || content.End != 8 {
		t.Errorf("first content span %v, want 0..8", content)
	}
	if nl.Len() != 2 {
		t.Errorf("first newline span length %d, want 2", nl.Len())
	}

	content, _, hasNL, ok = s.TakeUntilNewline()
	if !ok || hasNL {
		t.Fatalf("last line: ok=%v hasNL=%v", ok, hasNL)
	}
	if got := string(s.File.Content[content.Start:content.End]); got != "Name=x" {
		t.Errorf("last content %q, want %q", got, "Name=x")
	}
	if !s.IsEmpty() {
		t.Error("stream not empty after last line")
	}

	if _, _, _, ok = s.TakeUntilNewline(); ok {
		t.Error("TakeUntilNewline succeeded on an empty stream")
	}
}

func TestResolveLineCol(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("t.bas", []byte("Dim a\r\nDim b\n"))
	start, end := fs.Resolve(Span{File: id, Start: 7, End: 12})
	if start.Line != 2 || start.Col != 1 {
		t.Errorf("start = %d:%d, want 2:1", start.Line, start.Col)
	}
	if end.Line != 2 || end.Col != 6 {
		t.Errorf("end = %d:%d, want 2:6", end.Line, end.Col)
	}
}

func TestAddKeepsBOMBytes(t *testing.T) {
	content := []byte("\xef\xbb\xbfDim a\n")
	fs := NewFileSet()
	f := fs.Get(fs.Add("t.bas", content, 0))
	if f.Flags&FileHasBOM == 0 {
		t.Error("BOM flag not set")
	}
	if !bytes.Equal(f.Content, content) {
		t.Error("content was rewritten; BOM bytes must survive")
	}
}
