package token

import (
	"strings"
	"testing"

	"vb6cst/internal/source"
)

// The lexer tries keyword spellings in table order and takes the first
// match, so a spelling that is a case-insensitive prefix of a later one
// would shadow it. The table must list the longer spelling first.
func TestKeywordTableOrdersLongerSpellingsFirst(t *testing.T) {
	for i, shorter := range Keywords {
		lo := strings.ToLower(shorter.Spelling)
		for _, longer := range Keywords[i+1:] {
			other := strings.ToLower(longer.Spelling)
			if len(other) > len(lo) && strings.HasPrefix(other, lo) {
				t.Errorf("keyword %q is listed before %q and would shadow it",
					shorter.Spelling, longer.Spelling)
			}
		}
	}
}

func TestSymbolTableOrdersLongerLiteralsFirst(t *testing.T) {
	for i, shorter := range Symbols {
		for _, longer := range Symbols[i+1:] {
			if len(longer.Literal) > len(shorter.Literal) &&
				strings.HasPrefix(longer.Literal, shorter.Literal) {
				t.Errorf("symbol %q is listed before %q and would shadow it",
					shorter.Literal, longer.Literal)
			}
		}
	}
}

func TestKeywordTableHasNoDuplicates(t *testing.T) {
	seen := make(map[string]string, len(Keywords))
	for _, kw := range Keywords {
		lo := strings.ToLower(kw.Spelling)
		if prev, ok := seen[lo]; ok {
			t.Errorf("duplicate keyword spelling %q (first %q)", kw.Spelling, prev)
		}
		seen[lo] = kw.Spelling
	}
}

func testStream(t *testing.T) *Stream {
	t.Helper()
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual("t.bas", []byte("a b' c\n")))
	toks := []Token{
		{Kind: Identifier, Span: source.Span{File: f.ID, Start: 0, End: 1}},
		{Kind: Whitespace, Span: source.Span{File: f.ID, Start: 1, End: 2}},
		{Kind: Identifier, Span: source.Span{File: f.ID, Start: 2, End: 3}},
		{Kind: EndOfLineComment, Span: source.Span{File: f.ID, Start: 3, End: 6}},
		{Kind: Newline, Span: source.Span{File: f.ID, Start: 6, End: 7}},
	}
	return NewStream(f, toks)
}

func TestWithoutWhitespaceKeepsSeparatorsAndComments(t *testing.T) {
	ts := testStream(t).WithoutWhitespace()
	want := []Kind{Identifier, Identifier, EndOfLineComment, Newline}
	if ts.Len() != len(want) {
		t.Fatalf("got %d tokens, want %d", ts.Len(), len(want))
	}
	for i, k := range want {
		if ts.At(i).Kind != k {
			t.Errorf("token %d: got %v, want %v", i, ts.At(i).Kind, k)
		}
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	once := testStream(t).WithoutTrivia()
	twice := once.WithoutTrivia()
	if once.Len() != twice.Len() {
		t.Fatalf("second filter changed length: %d vs %d", once.Len(), twice.Len())
	}
	for i := range once.Tokens() {
		if once.At(i) != twice.At(i) {
			t.Errorf("token %d changed across filters", i)
		}
	}
}
