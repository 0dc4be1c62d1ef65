package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

func parseStatement(s *TokenStream) (ast.Statement, error) {
	tok := s.Peek()
	switch tok.Kind {
	case token.InlineHTML:
		return &ast.InlineHTML{Token: s.AdvanceAny()}, nil
	case token.OpenTag:
		return &ast.OpenTag{Tag: s.AdvanceAny()}, nil
	case token.CloseTag:
		return &ast.CloseTag{Tag: s.AdvanceAny()}, nil
	case token.EchoTag:
		return parseEchoTag(s)
	case token.KwGlobal:
		return parseGlobal(s)
	case token.KwStatic:
		if s.PeekNth(1).Kind == token.Variable {
			return parseStatic(s)
		}
	case token.KwEcho:
		return parseEcho(s)
	case token.KwUnset:
		return parseUnset(s)
	case token.KwConst:
		return parseConst(s)
	case token.KwUse:
		return parseUse(s)
	case token.KwNamespace:
		return parseNamespace(s)
	case token.KwFunction:
		next := s.PeekNth(1)
		if next.IsNameLike() || (next.Kind == token.Amp && s.PeekNth(2).IsNameLike()) {
			return parseFunction(s)
		}
	case token.KwAbstract, token.KwFinal, token.KwReadonly, token.KwClass:
		return parseClass(s)
	case token.KwInterface:
		return parseInterface(s)
	case token.KwTrait:
		return parseTrait(s)
	case token.KwEnum:
		if s.PeekNth(1).Kind == token.Ident {
			return parseEnum(s)
		}
	case token.KwReturn:
		return parseReturn(s)
	case token.KwIf:
		return parseIf(s)
	case token.KwWhile:
		return parseWhile(s)
	case token.KwForeach:
		return parseForeach(s)
	case token.KwBreak, token.KwContinue:
		return parseBreakContinue(s)
	case token.LBrace:
		return parseBlock(s)
	case token.Semicolon:
		return &ast.Noop{Semicolon: s.AdvanceAny()}, nil
	}
	if !startsExpression(s.Peek()) {
		return nil, s.expected(ErrExpectedStatement)
	}
	return parseExpressionStatement(s)
}

func parseExpressionStatement(s *TokenStream) (*ast.ExpressionStatement, error) {
	expr, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.ExpressionStatement{Expression: expr, Terminator: term}, nil
}

// parseStatementsUntil parses statements until one of the stop kinds (not
// consumed) or EOF.
func parseStatementsUntil(s *TokenStream, stop ...token.Kind) ([]ast.Statement, error) {
	var stmts []ast.Statement
	for !s.At(stop...) && !s.At(token.EOF) {
		stmt, err := parseStatement(s)
		if err != nil {
			return stmts, err
		}
		stmts = append(stmts, stmt)
	}
	return stmts, nil
}

func parseBlock(s *TokenStream) (*ast.Block, error) {
	lbrace, err := s.AdvanceIfKind(token.LBrace)
	if err != nil {
		return nil, err
	}
	stmts, err := parseStatementsUntil(s, token.RBrace)
	if err != nil {
		return nil, err
	}
	rbrace, err := s.AdvanceIfKind(token.RBrace)
	if err != nil {
		return nil, err
	}
	return &ast.Block{LBrace: lbrace, Statements: stmts, RBrace: rbrace}, nil
}

// ===== keyword + list + terminator =====

func parseEchoTag(s *TokenStream) (*ast.EchoTag, error) {
	tag, err := s.AdvanceIfKind(token.EchoTag)
	if err != nil {
		return nil, err
	}
	values, err := parseSequence(s, parseExpression, token.Comma, token.Semicolon, token.CloseTag)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.EchoTag{Tag: tag, Values: values, Terminator: term}, nil
}

func parseGlobal(s *TokenStream) (*ast.Global, error) {
	keyword, err := s.AdvanceIfKind(token.KwGlobal)
	if err != nil {
		return nil, err
	}
	vars, err := parseSequence(s, parseVariable, token.Comma, token.Semicolon, token.CloseTag)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.Global{Keyword: keyword, Variables: vars, Terminator: term}, nil
}

func parseStatic(s *TokenStream) (*ast.Static, error) {
	keyword, err := s.AdvanceIfKind(token.KwStatic)
	if err != nil {
		return nil, err
	}
	items, err := parseSequence(s, parseStaticItem, token.Comma, token.Semicolon, token.CloseTag)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.Static{Keyword: keyword, Items: items, Terminator: term}, nil
}

func parseStaticItem(s *TokenStream) (*ast.StaticItem, error) {
	v, err := parseVariable(s)
	if err != nil {
		return nil, err
	}
	item := &ast.StaticItem{Variable: v}
	if item.Equals = s.Optional(token.Assign); item.Equals != nil {
		if item.Value, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	return item, nil
}

func parseEcho(s *TokenStream) (*ast.Echo, error) {
	keyword, err := s.AdvanceIfKind(token.KwEcho)
	if err != nil {
		return nil, err
	}
	values, err := parseSequence(s, parseExpression, token.Comma, token.Semicolon, token.CloseTag)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.Echo{Keyword: keyword, Values: values, Terminator: term}, nil
}

func parseUnset(s *TokenStream) (*ast.Unset, error) {
	keyword, err := s.AdvanceIfKind(token.KwUnset)
	if err != nil {
		return nil, err
	}
	lparen, err := s.AdvanceIfKind(token.LParen)
	if err != nil {
		return nil, err
	}
	values, _, err := parseSequenceTrailing(s, parseExpression, token.Comma, token.RParen)
	if err != nil {
		return nil, err
	}
	rparen, err := s.AdvanceIfKind(token.RParen)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.Unset{Keyword: keyword, LParen: lparen, Values: values, RParen: rparen, Terminator: term}, nil
}

func parseConst(s *TokenStream) (*ast.Const, error) {
	keyword, err := s.AdvanceIfKind(token.KwConst)
	if err != nil {
		return nil, err
	}
	items, err := parseSequence(s, parseConstItem, token.Comma, token.Semicolon, token.CloseTag)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.Const{Keyword: keyword, Items: items, Terminator: term}, nil
}

func parseConstItem(s *TokenStream) (*ast.ConstItem, error) {
	name, err := parseIdentifier(s)
	if err != nil {
		return nil, err
	}
	eq, err := s.AdvanceIfKind(token.Assign)
	if err != nil {
		return nil, err
	}
	value, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	return &ast.ConstItem{Name: name, Equals: eq, Value: value}, nil
}

func parseUse(s *TokenStream) (*ast.Use, error) {
	keyword, err := s.AdvanceIfKind(token.KwUse)
	if err != nil {
		return nil, err
	}
	use := &ast.Use{Keyword: keyword, Kind: ast.UseClass}
	switch {
	case s.At(token.KwFunction):
		tok := s.AdvanceAny()
		use.Kind, use.KindToken = ast.UseFunction, &tok
	case s.At(token.KwConst):
		tok := s.AdvanceAny()
		use.Kind, use.KindToken = ast.UseConst, &tok
	}
	if use.Items, err = parseSequence(s, parseUseItem, token.Comma, token.Semicolon, token.CloseTag); err != nil {
		return nil, err
	}
	if use.Terminator, err = parseTerminator(s); err != nil {
		return nil, err
	}
	return use, nil
}

func parseUseItem(s *TokenStream) (*ast.UseItem, error) {
	name, err := parseName(s)
	if err != nil {
		return nil, err
	}
	item := &ast.UseItem{Name: name}
	if item.As = s.Optional(token.KwAs); item.As != nil {
		if item.Alias, err = parseIdentifier(s); err != nil {
			return nil, err
		}
	}
	return item, nil
}

// parseNamespace handles "namespace A;", "namespace A { }" and "namespace { }".
// The ";" form owns every following statement up to the next namespace.
func parseNamespace(s *TokenStream) (*ast.Namespace, error) {
	keyword, err := s.AdvanceIfKind(token.KwNamespace)
	if err != nil {
		return nil, err
	}
	ns := &ast.Namespace{Keyword: keyword}
	if s.At(token.Ident, token.QualifiedIdent) {
		if ns.Name, err = parseName(s); err != nil {
			return nil, err
		}
	}
	if s.At(token.LBrace) {
		ns.Block, err = parseBlock(s)
		if err != nil {
			return nil, err
		}
		return ns, nil
	}
	if ns.Name == nil {
		return nil, s.Unexpected(token.Ident, token.LBrace)
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	ns.Terminator = &term
	ns.Statements, err = parseStatementsUntil(s, token.KwNamespace)
	if err != nil {
		return nil, err
	}
	return ns, nil
}

// ===== control flow =====

func parseReturn(s *TokenStream) (*ast.Return, error) {
	keyword, err := s.AdvanceIfKind(token.KwReturn)
	if err != nil {
		return nil, err
	}
	ret := &ast.Return{Keyword: keyword}
	if !s.At(token.Semicolon, token.CloseTag, token.EOF) {
		if ret.Value, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	if ret.Terminator, err = parseTerminator(s); err != nil {
		return nil, err
	}
	return ret, nil
}

func parseBreakContinue(s *TokenStream) (ast.Statement, error) {
	keyword, err := s.AdvanceIfKind(token.KwBreak, token.KwContinue)
	if err != nil {
		return nil, err
	}
	var level ast.Expression
	if s.At(token.IntLit) {
		tok := s.AdvanceAny()
		level = &ast.Literal{Kind: ast.LiteralInt, Token: tok}
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	if keyword.Kind == token.KwBreak {
		return &ast.Break{Keyword: keyword, Level: level, Terminator: term}, nil
	}
	return &ast.Continue{Keyword: keyword, Level: level, Terminator: term}, nil
}

// parseCondition parses "( expr )".
func parseCondition(s *TokenStream) (lparen token.Token, cond ast.Expression, rparen token.Token, err error) {
	if lparen, err = s.AdvanceIfKind(token.LParen); err != nil {
		return
	}
	if cond, err = parseExpression(s); err != nil {
		return
	}
	rparen, err = s.AdvanceIfKind(token.RParen)
	return
}

func parseIf(s *TokenStream) (*ast.If, error) {
	keyword, err := s.AdvanceIfKind(token.KwIf)
	if err != nil {
		return nil, err
	}
	stmt := &ast.If{Keyword: keyword}
	if stmt.LParen, stmt.Condition, stmt.RParen, err = parseCondition(s); err != nil {
		return nil, err
	}
	if stmt.Then, err = parseStatement(s); err != nil {
		return nil, err
	}
	for s.At(token.KwElseIf) || (s.At(token.KwElse) && s.PeekNth(1).Kind == token.KwIf) {
		elseif := &ast.ElseIf{Keyword: s.AdvanceAny()}
		if elseif.Keyword.Kind == token.KwElse {
			// "else if" хранится как elseif, ключевое слово покрывает оба токена
			ifTok := s.AdvanceAny()
			elseif.Keyword.Span = elseif.Keyword.Span.Cover(ifTok.Span)
		}
		if elseif.LParen, elseif.Condition, elseif.RParen, err = parseCondition(s); err != nil {
			return nil, err
		}
		if elseif.Then, err = parseStatement(s); err != nil {
			return nil, err
		}
		stmt.ElseIfs = append(stmt.ElseIfs, elseif)
	}
	if s.At(token.KwElse) {
		els := &ast.Else{Keyword: s.AdvanceAny()}
		if els.Body, err = parseStatement(s); err != nil {
			return nil, err
		}
		stmt.Else = els
	}
	return stmt, nil
}

func parseWhile(s *TokenStream) (*ast.While, error) {
	keyword, err := s.AdvanceIfKind(token.KwWhile)
	if err != nil {
		return nil, err
	}
	stmt := &ast.While{Keyword: keyword}
	if stmt.LParen, stmt.Condition, stmt.RParen, err = parseCondition(s); err != nil {
		return nil, err
	}
	if stmt.Body, err = parseStatement(s); err != nil {
		return nil, err
	}
	return stmt, nil
}

func parseForeach(s *TokenStream) (*ast.Foreach, error) {
	keyword, err := s.AdvanceIfKind(token.KwForeach)
	if err != nil {
		return nil, err
	}
	stmt := &ast.Foreach{Keyword: keyword}
	if stmt.LParen, err = s.AdvanceIfKind(token.LParen); err != nil {
		return nil, err
	}
	if stmt.Subject, err = parseExpression(s); err != nil {
		return nil, err
	}
	if stmt.As, err = s.AdvanceIfKind(token.KwAs); err != nil {
		return nil, err
	}
	stmt.ByRef = s.Optional(token.Amp)
	first, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	stmt.Value = first
	if stmt.ByRef == nil {
		if stmt.Arrow = s.Optional(token.FatArrow); stmt.Arrow != nil {
			stmt.Key = first
			stmt.ByRef = s.Optional(token.Amp)
			if stmt.Value, err = parseExpression(s); err != nil {
				return nil, err
			}
		}
	}
	if stmt.RParen, err = s.AdvanceIfKind(token.RParen); err != nil {
		return nil, err
	}
	if stmt.Body, err = parseStatement(s); err != nil {
		return nil, err
	}
	return stmt, nil
}
