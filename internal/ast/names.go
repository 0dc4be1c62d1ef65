package ast

import (
	"strings"

	"quill/internal/source"
	"quill/internal/token"
)

// Variable is "$name".
type Variable struct {
	Token token.Token
}

func (v *Variable) Span() source.Span { return v.Token.Span }

// Name returns the variable name without the leading "$".
func (v *Variable) Name() string { return strings.TrimPrefix(v.Token.Text, "$") }

// Identifier is a declared name (class, function, constant, member).
// Keywords are accepted where the grammar allows them (method print()).
type Identifier struct {
	Token token.Token
}

func (i *Identifier) Span() source.Span { return i.Token.Span }

func (i *Identifier) Value() string { return i.Token.Text }

// Name is a reference to a class, function or constant, possibly qualified.
// "static", "self" and "parent" are Names too.
type Name struct {
	Token token.Token
}

func (n *Name) Span() source.Span { return n.Token.Span }

func (n *Name) Value() string { return n.Token.Text }

// FullyQualified reports whether the name starts with "\".
func (n *Name) FullyQualified() bool { return strings.HasPrefix(n.Token.Text, `\`) }

// Qualified reports whether the name contains a namespace separator.
func (n *Name) Qualified() bool { return strings.Contains(n.Token.Text, `\`) }

// Hint is a type declaration: "?Foo", "int|string|null".
type Hint struct {
	Question *token.Token
	Types    Sequence[*Name]
}

func (h *Hint) Span() source.Span {
	sp, _ := h.Types.Span()
	if h.Question != nil {
		return h.Question.Span.Cover(sp)
	}
	return sp
}

func (*Variable) exprNode() {}
func (*Name) exprNode()     {}
