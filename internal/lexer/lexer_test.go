package lexer_test

import (
	"fmt"
	"strings"
	"testing"

	"vb6cst/internal/diag"
	"vb6cst/internal/lexer"
	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// testReporter collects every diagnostic the lexer reports.
type testReporter struct {
	diagnostics []diag.Diagnostic
}

func (r *testReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	r.diagnostics = append(r.diagnostics, diag.Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Primary:  primary,
	})
}

func (r *testReporter) ErrorCount() int {
	count := 0
	for _, d := range r.diagnostics {
		if d.Severity == diag.SevError {
			count++
		}
	}
	return count
}

func (r *testReporter) ErrorMessages() []string {
	messages := make([]string, 0, len(r.diagnostics))
	for _, d := range r.diagnostics {
		messages = append(messages, fmt.Sprintf("[%s] %s: %s", d.Code.ID(), d.Severity, d.Message))
	}
	return messages
}

func lexString(input string) (*token.Stream, *testReporter) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.bas", []byte(input)))
	reporter := &testReporter{}
	ts := lexer.Lex(file, lexer.Options{Reporter: reporter})
	return ts, reporter
}

func kinds(ts *token.Stream) []token.Kind {
	out := make([]token.Kind, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		out = append(out, tok.Kind)
	}
	return out
}

func tokensToString(ts *token.Stream) string {
	parts := make([]string, 0, ts.Len())
	for _, tok := range ts.Tokens() {
		parts = append(parts, fmt.Sprintf("%s(%q)", tok.Kind, ts.Text(tok)))
	}
	return strings.Join(parts, " ")
}

// expectTokens checks the exact token kind sequence for input.
func expectTokens(t *testing.T, input string, expected []token.Kind) {
	t.Helper()
	ts, reporter := lexString(input)
	got := kinds(ts)
	if len(got) != len(expected) {
		t.Fatalf("expected %d tokens, got %d\ninput: %q\ntokens: %s\nerrors: %v",
			len(expected), len(got), input, tokensToString(ts), reporter.ErrorMessages())
	}
	for i, k := range got {
		if k != expected[i] {
			t.Errorf("token %d: expected %v, got %v (text: %q)",
				i, expected[i], k, ts.Text(ts.At(i)))
		}
	}
}

// expectSingleToken checks that input lexes to exactly one token.
func expectSingleToken(t *testing.T, input string, kind token.Kind) {
	t.Helper()
	ts, _ := lexString(input)
	if ts.Len() != 1 {
		t.Fatalf("expected a single token for %q, got: %s", input, tokensToString(ts))
	}
	tok := ts.At(0)
	if tok.Kind != kind {
		t.Errorf("expected %v, got %v", kind, tok.Kind)
	}
	if ts.Text(tok) != input {
		t.Errorf("expected text %q, got %q", input, ts.Text(tok))
	}
}

func TestDimStatement(t *testing.T) {
	expectTokens(t, "Dim x As Integer", []token.Kind{
		token.KwDim,
		token.Whitespace,
		token.Identifier,
		token.Whitespace,
		token.KwAs,
		token.Whitespace,
		token.KwInteger,
	})
}

func TestKeywordsAreCaseInsensitive(t *testing.T) {
	for _, input := range []string{"dim", "DIM", "dIm"} {
		expectSingleToken(t, input, token.KwDim)
	}
}

func TestKeywordNeedsWordBoundary(t *testing.T) {
	// A keyword spelling followed by more identifier characters is an
	// identifier, not a keyword plus leftovers.
	expectSingleToken(t, "Done", token.Identifier)
	expectSingleToken(t, "Timer", token.Identifier)
	expectSingleToken(t, "Integer2", token.Identifier)
	expectSingleToken(t, "As_", token.Identifier)
}

func TestAssignmentWithoutTrailingNewline(t *testing.T) {
	// No newline in the input means no Newline token at the end.
	expectTokens(t, `x = "Test"`, []token.Kind{
		token.Identifier,
		token.Whitespace,
		token.SymEqual,
		token.Whitespace,
		token.StringLiteral,
	})
}

func TestWhileWendKeywords(t *testing.T) {
	expectTokens(t, "While x > 0\r\nWend\r\n", []token.Kind{
		token.KwWhile,
		token.Whitespace,
		token.Identifier,
		token.Whitespace,
		token.SymGreater,
		token.Whitespace,
		token.Number,
		token.Newline,
		token.KwWend,
		token.Newline,
	})
}

func TestKeywordAtEndOfInput(t *testing.T) {
	expectSingleToken(t, "Do", token.KwDo)
	expectSingleToken(t, "End", token.KwEnd)
}

func TestLongerKeywordBeatsPrefix(t *testing.T) {
	cases := []struct {
		input string
		kind  token.Kind
	}{
		{"Double", token.KwDouble},
		{"Do", token.KwDo},
		{"ElseIf", token.KwElseIf},
		{"Else", token.KwElse},
		{"Implements", token.KwImplements},
		{"Imp", token.KwImp},
		{"Optional", token.KwOptional},
		{"Option", token.KwOption},
		{"SetAttr", token.KwSetAttr},
		{"Set", token.KwSet},
		{"WithEvents", token.KwWithEvents},
		{"With", token.KwWith},
		{"Input", token.KwInput},
		{"Integer", token.KwInteger},
		{"In", token.KwIn},
		{"MidB", token.KwMidB},
		{"Mid", token.KwMid},
		{"Randomize", token.KwRandomize},
		{"Random", token.KwRandom},
	}
	for _, tc := range cases {
		expectSingleToken(t, tc.input, tc.kind)
	}
}

func TestSymbols(t *testing.T) {
	expectTokens(t, "a<>b", []token.Kind{token.Identifier, token.SymInequality, token.Identifier})
	expectTokens(t, "a<=b", []token.Kind{token.Identifier, token.SymLessOrEqual, token.Identifier})
	expectTokens(t, "a<b", []token.Kind{token.Identifier, token.SymLess, token.Identifier})
	expectTokens(t, "(x)", []token.Kind{token.SymLParen, token.Identifier, token.SymRParen})
}

func TestStringLiteral(t *testing.T) {
	expectSingleToken(t, `"hello"`, token.StringLiteral)
}

func TestStringLiteralDoubledQuote(t *testing.T) {
	// "A""B" embeds one quote; the whole thing is a single literal.
	expectSingleToken(t, `"A""B"`, token.StringLiteral)
}

func TestStringLiteralBackslashEscape(t *testing.T) {
	expectSingleToken(t, `"a\"b"`, token.StringLiteral)
}

func TestStringLiteralAtEndOfInput(t *testing.T) {
	// Closed by end of input rather than by a char after the closing
	// quote. Still a complete literal, no diagnostic.
	ts, reporter := lexString(`Dim s: s = "done"`)
	last := ts.At(ts.Len() - 1)
	if last.Kind != token.StringLiteral {
		t.Fatalf("expected trailing StringLiteral, got: %s", tokensToString(ts))
	}
	if ts.Text(last) != `"done"` {
		t.Errorf("expected %q, got %q", `"done"`, ts.Text(last))
	}
	if reporter.ErrorCount() != 0 {
		t.Errorf("unexpected errors: %v", reporter.ErrorMessages())
	}
}

func TestUnterminatedString(t *testing.T) {
	ts, reporter := lexString("\"never closed\r\nDim x")
	if ts.At(0).Kind != token.StringLiteral {
		t.Fatalf("expected StringLiteral first, got: %s", tokensToString(ts))
	}
	if got := ts.Text(ts.At(0)); got != `"never closed` {
		t.Errorf("literal should stop before the newline, got %q", got)
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one unterminated-string error, got: %v", reporter.ErrorMessages())
	}
	if reporter.diagnostics[0].Code != diag.LexUnterminatedString {
		t.Errorf("expected %s, got %s", diag.LexUnterminatedString.ID(), reporter.diagnostics[0].Code.ID())
	}
}

func TestComments(t *testing.T) {
	expectTokens(t, "' note\n", []token.Kind{token.EndOfLineComment, token.Newline})
	expectTokens(t, "REM note\n", []token.Kind{token.RemComment, token.Newline})
	expectTokens(t, "rem note", []token.Kind{token.RemComment})
}

func TestNewlines(t *testing.T) {
	expectTokens(t, "a\r\nb", []token.Kind{token.Identifier, token.Newline, token.Identifier})
	expectTokens(t, "a\nb", []token.Kind{token.Identifier, token.Newline, token.Identifier})
	expectTokens(t, "a\rb", []token.Kind{token.Identifier, token.Newline, token.Identifier})
}

func TestNumbers(t *testing.T) {
	expectSingleToken(t, "42", token.Number)
	expectSingleToken(t, "3.14", token.Number)
	expectSingleToken(t, "1E6", token.Number)
	expectSingleToken(t, "2.5E-3", token.Number)
	expectSingleToken(t, "7&", token.Number)
	expectSingleToken(t, "1.5#", token.Number)
	expectSingleToken(t, "5#", token.Number)
	// A dot not followed by a digit is not a fraction.
	expectTokens(t, "12.x", []token.Kind{token.Number, token.SymDot, token.Identifier})
}

func TestDateTimeLiterals(t *testing.T) {
	expectSingleToken(t, "#1/15/2024#", token.DateTimeLiteral)
	expectSingleToken(t, "#12/31/1999 11:59:59 PM#", token.DateTimeLiteral)
	expectSingleToken(t, "#9:30:00 AM#", token.DateTimeLiteral)
}

func TestHashThatIsNotADate(t *testing.T) {
	// "#5#" has no date or time shape, so both hashes are symbols.
	expectTokens(t, "#5#", []token.Kind{token.SymOctothorpe, token.Number, token.SymOctothorpe})
}

func TestUnknownBytes(t *testing.T) {
	ts, reporter := lexString("a\x01b")
	expectedKinds := []token.Kind{token.Identifier, token.Unknown, token.Identifier}
	got := kinds(ts)
	for i, k := range expectedKinds {
		if got[i] != k {
			t.Errorf("token %d: expected %v, got %v", i, k, got[i])
		}
	}
	if reporter.ErrorCount() != 1 {
		t.Errorf("expected one unknown-token error, got: %v", reporter.ErrorMessages())
	}
}

func TestEmptyInput(t *testing.T) {
	ts, reporter := lexString("")
	if ts.Len() != 0 {
		t.Errorf("expected no tokens, got: %s", tokensToString(ts))
	}
	if len(reporter.diagnostics) != 0 {
		t.Errorf("unexpected diagnostics: %v", reporter.ErrorMessages())
	}
}

// Concatenating every token's text must reproduce the input byte for
// byte, whatever the input is.
func TestLosslessRoundTrip(t *testing.T) {
	inputs := []string{
		"Dim x As Integer\r\nx = 1 ' done\r\n",
		"Private Sub Form_Load()\n  MsgBox \"hi\"\nEnd Sub\n",
		"If a <> b Then\n\tc = #1/1/2000#\nEnd If",
		"\"unterminated\nREM tail",
		"\x00\x01\xfe\xff mixed \x80 bytes",
		"no trailing newline",
		"",
		"\r\n\r\n\r\n",
	}
	for _, input := range inputs {
		ts, _ := lexString(input)
		if got := ts.Concat(); got != input {
			t.Errorf("round trip failed\ninput:  %q\noutput: %q", input, got)
		}
	}
}

func TestWithoutWhitespaceKeepsLineStructure(t *testing.T) {
	ts, _ := lexString("Dim x ' c\r\n")
	filtered := ts.WithoutWhitespace()
	expected := []token.Kind{token.KwDim, token.Identifier, token.EndOfLineComment, token.Newline}
	got := kinds(filtered)
	if len(got) != len(expected) {
		t.Fatalf("expected %d tokens, got %d: %s", len(expected), len(got), tokensToString(filtered))
	}
	for i, k := range got {
		if k != expected[i] {
			t.Errorf("token %d: expected %v, got %v", i, expected[i], k)
		}
	}
	// Filtering again changes nothing.
	if again := filtered.WithoutWhitespace(); again.Len() != filtered.Len() {
		t.Errorf("filter is not idempotent: %d vs %d tokens", filtered.Len(), again.Len())
	}
}
