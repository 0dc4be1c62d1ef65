package ast

import (
	"quill/internal/source"
	"quill/internal/token"
)

// OpenTag is "<?php".
type OpenTag struct {
	Tag token.Token
}

func (s *OpenTag) Span() source.Span { return s.Tag.Span }

// CloseTag is a standalone "?>" that does not terminate a statement.
type CloseTag struct {
	Tag token.Token
}

func (s *CloseTag) Span() source.Span { return s.Tag.Span }

type InlineHTML struct {
	Token token.Token
}

func (s *InlineHTML) Span() source.Span { return s.Token.Span }

// EchoTag is "<?= a, b ?>".
type EchoTag struct {
	Tag        token.Token
	Values     Sequence[Expression]
	Terminator Terminator
}

func (s *EchoTag) Span() source.Span { return s.Tag.Span.Cover(s.Terminator.Span()) }

// Global is "global $a, $b;".
type Global struct {
	Keyword    token.Token
	Variables  Sequence[*Variable]
	Terminator Terminator
}

func (s *Global) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

// StaticItem is one "$x = 1" entry of a static statement.
type StaticItem struct {
	Variable *Variable
	Equals   *token.Token
	Value    Expression
}

func (s *StaticItem) Span() source.Span {
	if s.Value != nil {
		return s.Variable.Span().Cover(s.Value.Span())
	}
	return s.Variable.Span()
}

// Static is "static $a, $b = 1;".
type Static struct {
	Keyword    token.Token
	Items      Sequence[*StaticItem]
	Terminator Terminator
}

func (s *Static) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

// Echo is "echo a, b;".
type Echo struct {
	Keyword    token.Token
	Values     Sequence[Expression]
	Terminator Terminator
}

func (s *Echo) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

// Unset is "unset($a, $b);".
type Unset struct {
	Keyword    token.Token
	LParen     token.Token
	Values     Sequence[Expression]
	RParen     token.Token
	Terminator Terminator
}

func (s *Unset) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

// ConstItem is "NAME = value" inside const statements and class constants.
type ConstItem struct {
	Name   *Identifier
	Equals token.Token
	Value  Expression
}

func (s *ConstItem) Span() source.Span { return s.Name.Span().Cover(s.Value.Span()) }

// Const is "const A = 1, B = 2;".
type Const struct {
	Keyword    token.Token
	Items      Sequence[*ConstItem]
	Terminator Terminator
}

func (s *Const) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

type UseKind uint8

const (
	UseClass UseKind = iota
	UseFunction
	UseConst
)

// UseItem is "A\B as C".
type UseItem struct {
	Name  *Name
	As    *token.Token
	Alias *Identifier
}

func (s *UseItem) Span() source.Span {
	if s.Alias != nil {
		return s.Name.Span().Cover(s.Alias.Span())
	}
	return s.Name.Span()
}

// Use is "use A\B, C as D;" or "use function f;".
type Use struct {
	Keyword    token.Token
	Kind       UseKind
	KindToken  *token.Token
	Items      Sequence[*UseItem]
	Terminator Terminator
}

func (s *Use) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

// Namespace is either "namespace A;" followed by the statements up to the next
// namespace declaration, or "namespace A { ... }".
type Namespace struct {
	Keyword    token.Token
	Name       *Name // nil for the global braced form
	Terminator *Terminator
	Statements []Statement // implicit body of the ";" form
	Block      *Block
}

func (s *Namespace) Span() source.Span {
	sp := s.Keyword.Span
	if s.Block != nil {
		return sp.Cover(s.Block.Span())
	}
	if n := len(s.Statements); n > 0 {
		return sp.Cover(s.Statements[n-1].Span())
	}
	if s.Terminator != nil {
		return sp.Cover(s.Terminator.Span())
	}
	return sp
}

// Body returns the namespace statements for both forms.
func (s *Namespace) Body() []Statement {
	if s.Block != nil {
		return s.Block.Statements
	}
	return s.Statements
}

type Block struct {
	LBrace     token.Token
	Statements []Statement
	RBrace     token.Token
}

func (s *Block) Span() source.Span { return s.LBrace.Span.Cover(s.RBrace.Span) }

type Return struct {
	Keyword    token.Token
	Value      Expression // nil for bare "return;"
	Terminator Terminator
}

func (s *Return) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

type ElseIf struct {
	Keyword   token.Token
	LParen    token.Token
	Condition Expression
	RParen    token.Token
	Then      Statement
}

func (s *ElseIf) Span() source.Span { return s.Keyword.Span.Cover(s.Then.Span()) }

type Else struct {
	Keyword token.Token
	Body    Statement
}

func (s *Else) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

type If struct {
	Keyword   token.Token
	LParen    token.Token
	Condition Expression
	RParen    token.Token
	Then      Statement
	ElseIfs   []*ElseIf
	Else      *Else
}

func (s *If) Span() source.Span {
	sp := s.Keyword.Span.Cover(s.Then.Span())
	if n := len(s.ElseIfs); n > 0 {
		sp = sp.Cover(s.ElseIfs[n-1].Span())
	}
	if s.Else != nil {
		sp = sp.Cover(s.Else.Span())
	}
	return sp
}

type While struct {
	Keyword   token.Token
	LParen    token.Token
	Condition Expression
	RParen    token.Token
	Body      Statement
}

func (s *While) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

// Foreach is "foreach ($subject as $k => &$v) body".
type Foreach struct {
	Keyword token.Token
	LParen  token.Token
	Subject Expression
	As      token.Token
	Key     Expression // nil without "=>"
	Arrow   *token.Token
	ByRef   *token.Token
	Value   Expression
	RParen  token.Token
	Body    Statement
}

func (s *Foreach) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

// Break is "break;" or "break 2;".
type Break struct {
	Keyword    token.Token
	Level      Expression
	Terminator Terminator
}

func (s *Break) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

type Continue struct {
	Keyword    token.Token
	Level      Expression
	Terminator Terminator
}

func (s *Continue) Span() source.Span { return s.Keyword.Span.Cover(s.Terminator.Span()) }

type ExpressionStatement struct {
	Expression Expression
	Terminator Terminator
}

func (s *ExpressionStatement) Span() source.Span {
	return s.Expression.Span().Cover(s.Terminator.Span())
}

// Noop is a lone ";".
type Noop struct {
	Semicolon token.Token
}

func (s *Noop) Span() source.Span { return s.Semicolon.Span }

func (*OpenTag) stmtNode()             {}
func (*CloseTag) stmtNode()            {}
func (*InlineHTML) stmtNode()          {}
func (*EchoTag) stmtNode()             {}
func (*Global) stmtNode()              {}
func (*Static) stmtNode()              {}
func (*Echo) stmtNode()                {}
func (*Unset) stmtNode()               {}
func (*Const) stmtNode()               {}
func (*Use) stmtNode()                 {}
func (*Namespace) stmtNode()           {}
func (*Block) stmtNode()               {}
func (*Return) stmtNode()              {}
func (*If) stmtNode()                  {}
func (*While) stmtNode()               {}
func (*Foreach) stmtNode()             {}
func (*Break) stmtNode()               {}
func (*Continue) stmtNode()            {}
func (*ExpressionStatement) stmtNode() {}
func (*Noop) stmtNode()                {}
