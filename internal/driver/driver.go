// Package driver ties the lexer, tree builder and manifest parser
// together for file- and directory-level operations. Each file gets
// its own FileSet, bag and tree, so results are independent and safe
// to produce concurrently.
package driver

import (
	"fmt"

	"vb6cst/internal/cst"
	"vb6cst/internal/diag"
	"vb6cst/internal/lexer"
	"vb6cst/internal/project"
	"vb6cst/internal/source"
	"vb6cst/internal/token"
)

// TokenizeResult is the outcome of tokenizing one file.
type TokenizeResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tokens  *token.Stream
	Bag     *diag.Bag
}

// Tokenize loads and tokenizes one source file.
func Tokenize(path string, maxDiagnostics int) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	ts := lexer.Lex(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	return &TokenizeResult{
		FileSet: fs,
		File:    file,
		Tokens:  ts,
		Bag:     bag,
	}, nil
}

// ParseResult is the outcome of parsing one file into a tree.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Tree    *cst.Tree
	Bag     *diag.Bag
}

// ParseFile loads and parses one source file into a lossless tree.
// maxDiagnostics caps the bag; zero means unlimited.
func ParseFile(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	tree, bag := cst.ParseFileLimit(file, maxDiagnostics)
	return &ParseResult{
		FileSet: fs,
		File:    file,
		Tree:    tree,
		Bag:     bag,
	}, nil
}

// ProjectResult is the outcome of parsing one project manifest.
type ProjectResult struct {
	FileSet *source.FileSet
	File    *source.File
	Project *project.Project
	Bag     *diag.Bag
}

// ParseProject loads and parses a .vbp manifest. maxDiagnostics caps
// the bag; zero means unlimited.
func ParseProject(path string, maxDiagnostics int) (*ProjectResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	file := fs.Get(fileID)
	prj, bag := project.ParseFileLimit(file, maxDiagnostics)
	return &ProjectResult{
		FileSet: fs,
		File:    file,
		Project: prj,
		Bag:     bag,
	}, nil
}
