// Package semantics turns one source file into an analysis unit: the parsed
// program, its name table, the parse error if any and the issues found by
// parse-local semantic checks.
package semantics

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/lexer"
	"quill/internal/names"
	"quill/internal/parser"
	"quill/internal/source"
)

// RuleName is the issue identity of semantic-check issues.
const RuleName = "semantics"

// Semantics is immutable once Build returns.
type Semantics struct {
	Source  *source.File
	Program *ast.Program // partial when ParseError is set
	Names   *names.Table
	// ParseError is the first structural error; at most one per file.
	ParseError *parser.Error
	// LexErrors are the recoverable lexical errors seen while parsing.
	LexErrors []lexer.Error
	// Issues holds semantic-check issues in source order.
	Issues diag.Collection
}

// Build parses file and runs the semantic checks over the (possibly partial)
// program. strings is the run-wide interner; nil allocates a private one.
func Build(file *source.File, strings *source.Interner) *Semantics {
	prog, perr, lexErrs := parser.ParseFile(file)
	sem := &Semantics{
		Source:     file,
		Program:    prog,
		Names:      names.Resolve(prog, strings),
		ParseError: perr,
		LexErrors:  lexErrs,
	}
	check(prog, &sem.Issues)
	return sem
}

// HasParseError reports whether the file failed to parse completely.
func (s *Semantics) HasParseError() bool {
	return s.ParseError != nil
}

// ParseIssues returns the parse error as a collection (empty or one issue).
func (s *Semantics) ParseIssues() diag.Collection {
	if s.ParseError == nil {
		return diag.Collection{}
	}
	return diag.NewCollection(s.ParseError.Issue())
}

// AllIssues returns the semantic issues followed by the parse error.
func (s *Semantics) AllIssues() diag.Collection {
	out := diag.NewCollection(s.Issues.Items()...)
	out.Extend(s.ParseIssues())
	return out
}
