// Package project parses legacy VB6 project manifests (.vbp files).
//
// A manifest is a line-oriented key=value file with optional [Section]
// headers. It is read as raw bytes: legacy text fields routinely carry
// arbitrary 8-bit characters, so no UTF-8 validation happens anywhere.
// Parsing never stops on a bad line; the line gets a diagnostic and
// the parser moves to the next one.
package project

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"

	"vb6cst/internal/diag"
	"vb6cst/internal/source"
)

// Kind is the compile target declared by the Type= line.
type Kind uint8

const (
	KindUnknown Kind = iota
	KindExe
	KindControl
	KindOleExe
	KindOleDll
)

func (k Kind) String() string {
	switch k {
	case KindExe:
		return "Exe"
	case KindControl:
		return "Control"
	case KindOleExe:
		return "OleExe"
	case KindOleDll:
		return "OleDll"
	}
	return "Unknown"
}

// Reference is one Reference= line: either a compiled type library
// (*\G{uuid}#version#ordinal#path#description) or a sub-project
// (*\A path), in which case only Path is set.
type Reference struct {
	Project     bool
	UUID        uuid.UUID
	Version     string
	Ordinal     string
	Path        string
	Description string
}

// Object is one Object= line: a compiled control
// ({uuid}#version#ordinal; filename) or a sub-project path.
type Object struct {
	Project  bool
	UUID     uuid.UUID
	Version  string
	Ordinal  string
	FileName string
	Path     string
}

// NamedEntry is a "Name; Path" pair used by Module= and Class= lines.
type NamedEntry struct {
	Name string
	Path string
}

// Project is the parsed manifest.
type Project struct {
	Kind Kind

	References    []Reference
	Objects       []Object
	Modules       []NamedEntry
	Classes       []NamedEntry
	Forms         []string
	UserControls  []string
	UserDocuments []string
	Designers     []string
	RelatedDocs   []string
	PropertyPages []string

	IconForm         string
	Startup          string
	HelpFile         string
	Title            string
	ExeName32        string
	Command32        string
	Name             string
	HelpContextID    string
	CompatibleMode   string
	NoControlUpgrade bool

	// Extra holds keys this parser has no field for, grouped by the
	// [Section] they appeared under. Keys before any section header
	// group under the empty string.
	Extra map[string]map[string]string
}

// Parse parses a manifest held in src under the given file identity.
func Parse(path string, src []byte) (*Project, *diag.Bag) {
	fs := source.NewFileSet()
	f := fs.Get(fs.AddVirtual(path, src))
	return ParseFile(f)
}

// ParseFile parses an already-registered manifest file.
func ParseFile(f *source.File) (*Project, *diag.Bag) {
	return ParseFileLimit(f, diag.DefaultLimit)
}

// ParseFileLimit is ParseFile with an explicit diagnostic cap; zero
// means unlimited.
func ParseFileLimit(f *source.File, maxDiags int) (*Project, *diag.Bag) {
	bag := diag.NewBag(maxDiags)
	s := source.NewStream(f)
	return ParseStream(s, diag.BagReporter{Bag: bag}), bag
}

// ParseStream parses from an existing stream, leaving the cursor right
// after the last consumed line terminator.
func ParseStream(s *source.Stream, rep diag.Reporter) *Project {
	p := &parser{s: s, rep: rep, prj: &Project{Extra: map[string]map[string]string{}}}
	p.run()
	return p.prj
}

type parser struct {
	s       *source.Stream
	rep     diag.Reporter
	prj     *Project
	section string
}

func (p *parser) run() {
	for !p.s.IsEmpty() {
		content, _, _, ok := p.s.TakeUntilNewline()
		if !ok {
			return
		}
		p.parseLine(content)
	}
}

func (p *parser) report(code diag.Code, sp source.Span, msg string) {
	if p.rep != nil {
		p.rep.Report(code, diag.SevError, sp, msg)
	}
}

// line is one manifest line with enough position info to point
// diagnostics at exact bytes.
type line struct {
	span source.Span
	text []byte
}

// spanAt returns the span of text[from:to] within the line.
func (l line) spanAt(from, to int) source.Span {
	return source.Span{
		File:  l.span.File,
		Start: l.span.Start + uint32(from),
		End:   l.span.Start + uint32(to),
	}
}

func (p *parser) parseLine(sp source.Span) {
	text := p.s.File.Content[sp.Start:sp.End]
	ln := line{span: sp, text: text}
	trimmed := bytes.TrimSpace(text)
	if len(trimmed) == 0 {
		return
	}
	if trimmed[0] == '[' {
		p.parseSectionHeader(ln, trimmed)
		return
	}
	eq := bytes.IndexByte(text, '=')
	if eq < 0 {
		p.report(diag.PrjLineTypeUnknown, sp,
			fmt.Sprintf("line is neither a section header nor key=value: %q", text))
		return
	}
	key := string(bytes.TrimSpace(text[:eq]))
	value := text[eq+1:]
	valueAt := eq + 1
	if p.section != "" {
		p.putExtra(key, string(value))
		return
	}
	p.parseProperty(ln, key, value, valueAt)
}

func (p *parser) parseSectionHeader(ln line, trimmed []byte) {
	end := bytes.IndexByte(trimmed, ']')
	if end < 0 {
		p.report(diag.PrjLineTypeUnknown, ln.span,
			fmt.Sprintf("unterminated section header: %q", trimmed))
		return
	}
	p.section = string(trimmed[1:end])
	if _, ok := p.prj.Extra[p.section]; !ok {
		p.prj.Extra[p.section] = map[string]string{}
	}
}

func (p *parser) putExtra(key, value string) {
	sec, ok := p.prj.Extra[p.section]
	if !ok {
		sec = map[string]string{}
		p.prj.Extra[p.section] = sec
	}
	sec[key] = value
}

func (p *parser) parseProperty(ln line, key string, value []byte, valueAt int) {
	prj := p.prj
	switch key {
	case "Type":
		p.parseType(ln, value, valueAt)
	case "Reference":
		p.parseReference(ln, value, valueAt)
	case "Object":
		p.parseObject(ln, value, valueAt)
	case "Module":
		prj.Modules = append(prj.Modules, parseNamedEntry(value))
	case "Class":
		prj.Classes = append(prj.Classes, parseNamedEntry(value))
	case "Form":
		prj.Forms = append(prj.Forms, string(value))
	case "UserControl":
		prj.UserControls = append(prj.UserControls, string(value))
	case "UserDocument":
		prj.UserDocuments = append(prj.UserDocuments, string(value))
	case "Designer":
		prj.Designers = append(prj.Designers, string(value))
	case "RelatedDoc":
		prj.RelatedDocs = append(prj.RelatedDocs, string(value))
	case "PropertyPage":
		prj.PropertyPages = append(prj.PropertyPages, string(value))
	case "IconForm":
		prj.IconForm = unquote(value)
	case "Startup":
		prj.Startup = unquote(value)
	case "HelpFile":
		prj.HelpFile = unquote(value)
	case "Title":
		prj.Title = unquote(value)
	case "ExeName32":
		prj.ExeName32 = unquote(value)
	case "Command32":
		prj.Command32 = unquote(value)
	case "Name":
		prj.Name = unquote(value)
	case "HelpContextID":
		prj.HelpContextID = unquote(value)
	case "CompatibleMode":
		prj.CompatibleMode = unquote(value)
	case "NoControlUpgrade":
		prj.NoControlUpgrade = !bytes.Equal(bytes.TrimSpace(value), []byte("0"))
	default:
		p.putExtra(key, string(value))
	}
}

func (p *parser) parseType(ln line, value []byte, valueAt int) {
	switch string(bytes.TrimSpace(value)) {
	case "Exe":
		p.prj.Kind = KindExe
	case "Control":
		p.prj.Kind = KindControl
	case "OleExe":
		p.prj.Kind = KindOleExe
	case "OleDll":
		p.prj.Kind = KindOleDll
	default:
		p.report(diag.PrjUnknownProjectKind, ln.spanAt(valueAt, len(ln.text)),
			fmt.Sprintf("unknown project kind %q", value))
	}
}

// parseReference handles "*\G{uuid}#version#ordinal#path#description"
// and the sub-project form "*\A path".
func (p *parser) parseReference(ln line, value []byte, valueAt int) {
	if rest, ok := bytes.CutPrefix(value, []byte(`*\A`)); ok {
		p.prj.References = append(p.prj.References, Reference{
			Project: true,
			Path:    string(rest),
		})
		return
	}
	rest, ok := bytes.CutPrefix(value, []byte(`*\G{`))
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(valueAt, len(ln.text)),
			fmt.Sprintf("reference must start with *\\G{ or *\\A, got %q", value))
		return
	}
	at := valueAt + len(`*\G{`)
	uuidText, rest, ok := cutField(rest, "}#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"reference GUID has no closing brace")
		return
	}
	id, err := uuid.Parse(string(uuidText))
	if err != nil {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, at+len(uuidText)),
			fmt.Sprintf("invalid reference GUID %q", uuidText))
		return
	}
	version, rest, ok := cutField(rest, "#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"reference is missing its version field")
		return
	}
	ordinal, rest, ok := cutField(rest, "#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"reference is missing its ordinal field")
		return
	}
	path, description, ok := cutField(rest, "#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"reference is missing its path field")
		return
	}
	p.prj.References = append(p.prj.References, Reference{
		UUID:        id,
		Version:     string(version),
		Ordinal:     string(ordinal),
		Path:        string(path),
		Description: string(description),
	})
}

// parseObject handles "{uuid}#version#ordinal; filename" and the
// sub-project form "*\A path".
func (p *parser) parseObject(ln line, value []byte, valueAt int) {
	if rest, ok := bytes.CutPrefix(value, []byte(`*\A`)); ok {
		p.prj.Objects = append(p.prj.Objects, Object{
			Project: true,
			Path:    string(rest),
		})
		return
	}
	rest, ok := bytes.CutPrefix(value, []byte("{"))
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(valueAt, len(ln.text)),
			fmt.Sprintf("object must start with { or *\\A, got %q", value))
		return
	}
	at := valueAt + 1
	uuidText, rest, ok := cutField(rest, "}#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"object GUID has no closing brace")
		return
	}
	id, err := uuid.Parse(string(uuidText))
	if err != nil {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, at+len(uuidText)),
			fmt.Sprintf("invalid object GUID %q", uuidText))
		return
	}
	version, rest, ok := cutField(rest, "#")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"object is missing its version field")
		return
	}
	ordinal, fileName, ok := cutField(rest, "; ")
	if !ok {
		p.report(diag.PrjMalformedReference, ln.spanAt(at, len(ln.text)),
			"object is missing its filename field")
		return
	}
	p.prj.Objects = append(p.prj.Objects, Object{
		UUID:     id,
		Version:  string(version),
		Ordinal:  string(ordinal),
		FileName: string(fileName),
	})
}

// parseNamedEntry splits a "Name; Path" value.
func parseNamedEntry(value []byte) NamedEntry {
	name, path, found := bytes.Cut(value, []byte(";"))
	if !found {
		return NamedEntry{Name: string(bytes.TrimSpace(value))}
	}
	return NamedEntry{
		Name: string(bytes.TrimSpace(name)),
		Path: string(bytes.TrimSpace(path)),
	}
}

// cutField splits value at the first occurrence of sep.
func cutField(value []byte, sep string) (field, rest []byte, ok bool) {
	i := bytes.Index(value, []byte(sep))
	if i < 0 {
		return nil, value, false
	}
	return value[:i], value[i+len(sep):], true
}

// unquote strips one layer of surrounding quotes and collapses doubled
// quotes inside. Unquoted values pass through untouched.
func unquote(value []byte) string {
	v := bytes.TrimSpace(value)
	if len(v) < 2 || v[0] != '"' || v[len(v)-1] != '"' {
		return string(v)
	}
	inner := v[1 : len(v)-1]
	return string(bytes.ReplaceAll(inner, []byte(`""`), []byte(`"`)))
}
