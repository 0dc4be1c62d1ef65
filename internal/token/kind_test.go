package token_test

import (
	"testing"

	"quill/internal/source"
	"quill/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{Start: 0, End: 0}}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.StringLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.Variable, token.KwTrue, token.Plus, token.LParen}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestIsKeyword(t *testing.T) {
	keywords := []token.Kind{
		token.KwAbstract, token.KwGlobal, token.KwEcho, token.KwStatic, token.KwUnset,
		token.KwFunction, token.KwFn, token.KwClass, token.KwInterface, token.KwTrait,
		token.KwEnum, token.KwWhile, token.KwInstanceof, token.KwPrint,
	}
	for _, k := range keywords {
		if !tok(k).IsKeyword() {
			t.Fatalf("%v should be keyword", k)
		}
		if !tok(k).IsNameLike() {
			t.Fatalf("%v should be usable as a member name", k)
		}
	}
	non := []token.Kind{token.Ident, token.Variable, token.Semicolon, token.EOF, token.Invalid}
	for _, k := range non {
		if tok(k).IsKeyword() {
			t.Fatalf("%v must NOT be keyword", k)
		}
	}
}

func TestIsIdent(t *testing.T) {
	if !tok(token.Ident).IsIdent() || !tok(token.QualifiedIdent).IsIdent() {
		t.Fatalf("Ident and QualifiedIdent should be ident")
	}
	if tok(token.KwFunction).IsIdent() {
		t.Fatalf("KwFunction must not be ident")
	}
}

func TestKindString(t *testing.T) {
	cases := map[token.Kind]string{
		token.Semicolon: "`;`",
		token.KwGlobal:  "`global`",
		token.Variable:  "variable",
		token.EOF:       "end of input",
		token.CloseTag:  "`?>`",
		token.Spaceship: "`<=>`",
		token.KwElseIf:  "`elseif`",
		token.Kind(250): "unknown token",
	}
	for k, want := range cases {
		if got := k.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", k, got, want)
		}
	}
}

func TestIsAssignment(t *testing.T) {
	for _, k := range []token.Kind{token.Assign, token.DotAssign, token.QuestionQuestionAssign, token.ShrAssign} {
		if !k.IsAssignment() {
			t.Errorf("%v should be assignment", k)
		}
	}
	for _, k := range []token.Kind{token.EqEq, token.FatArrow, token.LtEq} {
		if k.IsAssignment() {
			t.Errorf("%v must NOT be assignment", k)
		}
	}
}
