package token

import (
	"quill/internal/source"
)

// Token represents a single source token with its location.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a numeric or string literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	return t.Kind.IsKeyword()
}

// IsIdent reports whether the token is a plain or qualified identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident || t.Kind == QualifiedIdent }

// IsNameLike reports whether the token can serve as a member or label name.
// Keywords are allowed there ($obj->class, Foo::list, function print()).
func (t Token) IsNameLike() bool {
	return t.Kind == Ident || t.Kind.IsKeyword()
}
