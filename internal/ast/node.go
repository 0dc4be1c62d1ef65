// Package ast defines the syntax tree produced by internal/parser.
//
// Every construct is its own struct. Nodes own their children and keep the
// tokens they were built from (keywords, separators, delimiters), so spans are
// always derived from component spans and never re-scanned from source.
package ast

import (
	"quill/internal/source"
)

// Node is implemented by every syntax node.
type Node interface {
	Span() source.Span
}

// Statement is a top-level or block-level statement.
type Statement interface {
	Node
	stmtNode()
}

// Expression is any expression node.
type Expression interface {
	Node
	exprNode()
}

// Member is a class-like member declaration.
type Member interface {
	Node
	memberNode()
}

// Program is the root of one source file.
type Program struct {
	File       source.FileID
	Statements []Statement
}

func (p *Program) Span() source.Span {
	if len(p.Statements) == 0 {
		return source.Span{File: p.File}
	}
	return p.Statements[0].Span().Cover(p.Statements[len(p.Statements)-1].Span())
}
