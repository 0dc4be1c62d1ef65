package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

func parsePrimary(s *TokenStream) (ast.Expression, error) {
	tok := s.Peek()
	switch tok.Kind {
	case token.Variable:
		return &ast.Variable{Token: s.AdvanceAny()}, nil
	case token.IntLit:
		return &ast.Literal{Kind: ast.LiteralInt, Token: s.AdvanceAny()}, nil
	case token.FloatLit:
		return &ast.Literal{Kind: ast.LiteralFloat, Token: s.AdvanceAny()}, nil
	case token.StringLit:
		return &ast.Literal{Kind: ast.LiteralString, Token: s.AdvanceAny()}, nil
	case token.KwTrue:
		return &ast.Literal{Kind: ast.LiteralTrue, Token: s.AdvanceAny()}, nil
	case token.KwFalse:
		return &ast.Literal{Kind: ast.LiteralFalse, Token: s.AdvanceAny()}, nil
	case token.KwNull:
		return &ast.Literal{Kind: ast.LiteralNull, Token: s.AdvanceAny()}, nil
	case token.Ident, token.QualifiedIdent:
		return &ast.Name{Token: s.AdvanceAny()}, nil
	case token.KwStatic:
		switch s.PeekNth(1).Kind {
		case token.KwFunction, token.KwFn:
			static := s.AdvanceAny()
			return parseClosureOrArrow(s, &static)
		}
		// "static::"
		return &ast.Name{Token: s.AdvanceAny()}, nil
	case token.LBracket:
		return parseArray(s)
	case token.KwNew:
		return parseNew(s)
	case token.KwFunction, token.KwFn:
		return parseClosureOrArrow(s, nil)
	case token.LParen:
		return parseParenthesized(s)
	}
	return nil, s.expected(ErrExpectedExpression)
}

func parseParenthesized(s *TokenStream) (*ast.Parenthesized, error) {
	lparen, err := s.AdvanceIfKind(token.LParen)
	if err != nil {
		return nil, err
	}
	inner, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	rparen, err := s.AdvanceIfKind(token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.Parenthesized{LParen: lparen, Inner: inner, RParen: rparen}, nil
}

func parseArray(s *TokenStream) (*ast.Array, error) {
	lbracket, err := s.AdvanceIfKind(token.LBracket)
	if err != nil {
		return nil, err
	}
	items, _, err := parseSequenceTrailing(s, parseArrayItem, token.Comma, token.RBracket)
	if err != nil {
		return nil, err
	}
	rbracket, err := s.AdvanceIfKind(token.RBracket)
	if err != nil {
		return nil, err
	}
	return &ast.Array{LBracket: lbracket, Items: items, RBracket: rbracket}, nil
}

func parseArrayItem(s *TokenStream) (*ast.ArrayItem, error) {
	item := &ast.ArrayItem{}
	if item.Ellipsis = s.Optional(token.Ellipsis); item.Ellipsis != nil {
		value, err := parseExpression(s)
		if err != nil {
			return nil, err
		}
		item.Value = value
		return item, nil
	}
	if item.ByRef = s.Optional(token.Amp); item.ByRef != nil {
		value, err := parseExpression(s)
		if err != nil {
			return nil, err
		}
		item.Value = value
		return item, nil
	}
	first, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	item.Value = first
	if item.Arrow = s.Optional(token.FatArrow); item.Arrow != nil {
		item.Key = first
		item.ByRef = s.Optional(token.Amp)
		if item.Value, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func parseNew(s *TokenStream) (*ast.New, error) {
	keyword, err := s.AdvanceIfKind(token.KwNew)
	if err != nil {
		return nil, err
	}
	n := &ast.New{Keyword: keyword}
	if n.Class, err = parseClassReference(s); err != nil {
		return nil, err
	}
	if s.At(token.LParen) {
		if n.Arguments, err = parseArgumentList(s); err != nil {
			return nil, err
		}
	}
	return n, nil
}

// parseClosureOrArrow parses "function (...) use (...) {}" or "fn (...) => e",
// optionally preceded by an already consumed "static".
func parseClosureOrArrow(s *TokenStream, static *token.Token) (ast.Expression, error) {
	if s.At(token.KwFn) {
		return parseArrowFunction(s, static)
	}
	return parseClosure(s, static)
}

func parseClosure(s *TokenStream, static *token.Token) (*ast.Closure, error) {
	keyword, err := s.AdvanceIfKind(token.KwFunction)
	if err != nil {
		return nil, err
	}
	c := &ast.Closure{Static: static, Keyword: keyword, ByRef: s.Optional(token.Amp)}
	if c.Parameters, err = parseParameterList(s); err != nil {
		return nil, err
	}
	if s.At(token.KwUse) {
		if c.Use, err = parseClosureUse(s); err != nil {
			return nil, err
		}
	}
	if c.ReturnType, err = parseOptionalReturnType(s); err != nil {
		return nil, err
	}
	if c.Body, err = parseBlock(s); err != nil {
		return nil, err
	}
	return c, nil
}

func parseClosureUse(s *TokenStream) (*ast.ClosureUse, error) {
	keyword, err := s.AdvanceIfKind(token.KwUse)
	if err != nil {
		return nil, err
	}
	lparen, err := s.AdvanceIfKind(token.LParen)
	if err != nil {
		return nil, err
	}
	vars, _, err := parseSequenceTrailing(s, parseClosureUseVariable, token.Comma, token.RParen)
	if err != nil {
		return nil, err
	}
	rparen, err := s.AdvanceIfKind(token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.ClosureUse{Keyword: keyword, LParen: lparen, Variables: vars, RParen: rparen}, nil
}

func parseClosureUseVariable(s *TokenStream) (*ast.ClosureUseVariable, error) {
	byRef := s.Optional(token.Amp)
	v, err := parseVariable(s)
	if err != nil {
		return nil, err
	}
	return &ast.ClosureUseVariable{ByRef: byRef, Variable: v}, nil
}

func parseArrowFunction(s *TokenStream, static *token.Token) (*ast.ArrowFunction, error) {
	keyword, err := s.AdvanceIfKind(token.KwFn)
	if err != nil {
		return nil, err
	}
	fn := &ast.ArrowFunction{Static: static, Keyword: keyword, ByRef: s.Optional(token.Amp)}
	if fn.Parameters, err = parseParameterList(s); err != nil {
		return nil, err
	}
	if fn.ReturnType, err = parseOptionalReturnType(s); err != nil {
		return nil, err
	}
	if fn.Arrow, err = s.AdvanceIfKind(token.FatArrow); err != nil {
		return nil, err
	}
	if fn.Body, err = parseExpression(s); err != nil {
		return nil, err
	}
	return fn, nil
}
