package ast

import (
	"quill/internal/source"
	"quill/internal/token"
)

type TerminatorKind uint8

const (
	// TerminatorSemicolon is an explicit ";".
	TerminatorSemicolon TerminatorKind = iota
	// TerminatorCloseTag is "?>", which also ends the statement.
	TerminatorCloseTag
	// TerminatorEOF is the implicit end of input; its span is zero-width.
	TerminatorEOF
)

func (k TerminatorKind) String() string {
	switch k {
	case TerminatorSemicolon:
		return "semicolon"
	case TerminatorCloseTag:
		return "close-tag"
	case TerminatorEOF:
		return "eof"
	}
	return "unknown"
}

// Terminator ends a statement.
type Terminator struct {
	Kind  TerminatorKind
	Token token.Token // zero for TerminatorEOF
	span  source.Span
}

// NewTerminator wraps tok; tok must be a ";" or "?>" token.
func NewTerminator(tok token.Token) Terminator {
	kind := TerminatorSemicolon
	if tok.Kind == token.CloseTag {
		kind = TerminatorCloseTag
	}
	return Terminator{Kind: kind, Token: tok, span: tok.Span}
}

// EOFTerminator returns an implicit terminator positioned at sp.
func EOFTerminator(at source.Span) Terminator {
	return Terminator{Kind: TerminatorEOF, span: at.ZeroideToEnd()}
}

func (t Terminator) Span() source.Span { return t.span }
