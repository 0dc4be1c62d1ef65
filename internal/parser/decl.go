package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

var modifierKinds = []token.Kind{
	token.KwPublic, token.KwProtected, token.KwPrivate,
	token.KwStatic, token.KwAbstract, token.KwFinal, token.KwReadonly,
}

// parseModifiers collects any run of modifier keywords. Duplicates and
// conflicts are left to semantic checks.
func parseModifiers(s *TokenStream, allowed ...token.Kind) []token.Token {
	var mods []token.Token
	for s.At(allowed...) {
		mods = append(mods, s.AdvanceAny())
	}
	return mods
}

func parseFunction(s *TokenStream) (*ast.Function, error) {
	keyword, err := s.AdvanceIfKind(token.KwFunction)
	if err != nil {
		return nil, err
	}
	fn := &ast.Function{Keyword: keyword, ByRef: s.Optional(token.Amp)}
	if fn.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if fn.Parameters, err = parseParameterList(s); err != nil {
		return nil, err
	}
	if fn.ReturnType, err = parseOptionalReturnType(s); err != nil {
		return nil, err
	}
	if fn.Body, err = parseBlock(s); err != nil {
		return nil, err
	}
	return fn, nil
}

func parseParameterList(s *TokenStream) (*ast.ParameterList, error) {
	lparen, err := s.AdvanceIfKind(token.LParen)
	if err != nil {
		return nil, err
	}
	params, _, err := parseSequenceTrailing(s, parseParameter, token.Comma, token.RParen)
	if err != nil {
		return nil, err
	}
	rparen, err := s.AdvanceIfKind(token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.ParameterList{LParen: lparen, Parameters: params, RParen: rparen}, nil
}

func parseParameter(s *TokenStream) (*ast.Parameter, error) {
	p := &ast.Parameter{
		Modifiers: parseModifiers(s, token.KwPublic, token.KwProtected, token.KwPrivate, token.KwReadonly),
	}
	var err error
	if startsHint(s.Peek()) {
		if p.Type, err = parseHint(s); err != nil {
			return nil, err
		}
	}
	p.ByRef = s.Optional(token.Amp)
	p.Ellipsis = s.Optional(token.Ellipsis)
	if p.Variable, err = parseVariable(s); err != nil {
		return nil, err
	}
	if p.Equals = s.Optional(token.Assign); p.Equals != nil {
		if p.Default, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	return p, nil
}

func parseOptionalReturnType(s *TokenStream) (*ast.ReturnType, error) {
	if !s.At(token.Colon) {
		return nil, nil
	}
	colon := s.AdvanceAny()
	hint, err := parseHint(s)
	if err != nil {
		return nil, err
	}
	return &ast.ReturnType{Colon: colon, Hint: hint}, nil
}

// ===== class-likes =====

func parseClass(s *TokenStream) (*ast.Class, error) {
	cls := &ast.Class{Modifiers: parseModifiers(s, token.KwAbstract, token.KwFinal, token.KwReadonly)}
	var err error
	if cls.Keyword, err = s.AdvanceIfKind(token.KwClass); err != nil {
		return nil, err
	}
	if cls.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if s.At(token.KwExtends) {
		keyword := s.AdvanceAny()
		name, err := parseName(s)
		if err != nil {
			return nil, err
		}
		cls.Extends = &ast.Extends{Keyword: keyword, Types: ast.NewSequence([]*ast.Name{name}, nil)}
	}
	if cls.Implements, err = parseOptionalImplements(s); err != nil {
		return nil, err
	}
	if cls.Body, err = parseClassBody(s); err != nil {
		return nil, err
	}
	return cls, nil
}

func parseInterface(s *TokenStream) (*ast.Interface, error) {
	keyword, err := s.AdvanceIfKind(token.KwInterface)
	if err != nil {
		return nil, err
	}
	iface := &ast.Interface{Keyword: keyword}
	if iface.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if s.At(token.KwExtends) {
		keyword := s.AdvanceAny()
		types, err := parseSequence(s, parseName, token.Comma, token.LBrace)
		if err != nil {
			return nil, err
		}
		if types.Empty() {
			return nil, s.Unexpected(token.Ident)
		}
		iface.Extends = &ast.Extends{Keyword: keyword, Types: types}
	}
	if iface.Body, err = parseClassBody(s); err != nil {
		return nil, err
	}
	return iface, nil
}

func parseTrait(s *TokenStream) (*ast.Trait, error) {
	keyword, err := s.AdvanceIfKind(token.KwTrait)
	if err != nil {
		return nil, err
	}
	trait := &ast.Trait{Keyword: keyword}
	if trait.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if trait.Body, err = parseClassBody(s); err != nil {
		return nil, err
	}
	return trait, nil
}

func parseEnum(s *TokenStream) (*ast.Enum, error) {
	keyword, err := s.AdvanceIfKind(token.KwEnum)
	if err != nil {
		return nil, err
	}
	enum := &ast.Enum{Keyword: keyword}
	if enum.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if s.At(token.Colon) {
		colon := s.AdvanceAny()
		hint, err := parseHint(s)
		if err != nil {
			return nil, err
		}
		enum.Backing = &ast.EnumBacking{Colon: colon, Type: hint}
	}
	if enum.Implements, err = parseOptionalImplements(s); err != nil {
		return nil, err
	}
	if enum.Body, err = parseClassBody(s); err != nil {
		return nil, err
	}
	return enum, nil
}

func parseOptionalImplements(s *TokenStream) (*ast.Implements, error) {
	if !s.At(token.KwImplements) {
		return nil, nil
	}
	keyword := s.AdvanceAny()
	types, err := parseSequence(s, parseName, token.Comma, token.LBrace)
	if err != nil {
		return nil, err
	}
	if types.Empty() {
		return nil, s.Unexpected(token.Ident)
	}
	return &ast.Implements{Keyword: keyword, Types: types}, nil
}

func parseClassBody(s *TokenStream) (*ast.ClassBody, error) {
	lbrace, err := s.AdvanceIfKind(token.LBrace)
	if err != nil {
		return nil, err
	}
	body := &ast.ClassBody{LBrace: lbrace}
	for !s.At(token.RBrace) {
		member, err := parseMember(s)
		if err != nil {
			return nil, err
		}
		body.Members = append(body.Members, member)
	}
	body.RBrace = s.AdvanceAny()
	return body, nil
}

// parseMember dispatches on the token after the modifier run.
func parseMember(s *TokenStream) (ast.Member, error) {
	if s.At(token.KwUse) {
		return parseTraitUse(s)
	}
	if s.At(token.KwCase) {
		return parseEnumCase(s)
	}
	mods := parseModifiers(s, modifierKinds...)
	switch {
	case s.At(token.KwConst):
		return parseClassConstant(s, mods)
	case s.At(token.KwFunction):
		return parseMethod(s, mods)
	case s.At(token.Variable) || (len(mods) > 0 && startsHint(s.Peek())):
		return parseProperty(s, mods)
	}
	return nil, s.Unexpected(token.KwFunction, token.KwConst, token.Variable)
}

func parseTraitUse(s *TokenStream) (*ast.TraitUse, error) {
	keyword, err := s.AdvanceIfKind(token.KwUse)
	if err != nil {
		return nil, err
	}
	traits, err := parseSequence(s, parseName, token.Comma, token.Semicolon)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.TraitUse{Keyword: keyword, Traits: traits, Terminator: term}, nil
}

func parseEnumCase(s *TokenStream) (*ast.EnumCase, error) {
	keyword, err := s.AdvanceIfKind(token.KwCase)
	if err != nil {
		return nil, err
	}
	c := &ast.EnumCase{Keyword: keyword}
	if c.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if c.Equals = s.Optional(token.Assign); c.Equals != nil {
		if c.Value, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	if c.Terminator, err = parseTerminator(s); err != nil {
		return nil, err
	}
	return c, nil
}

func parseClassConstant(s *TokenStream, mods []token.Token) (*ast.ClassConstant, error) {
	keyword, err := s.AdvanceIfKind(token.KwConst)
	if err != nil {
		return nil, err
	}
	items, err := parseSequence(s, parseConstItem, token.Comma, token.Semicolon)
	if err != nil {
		return nil, err
	}
	term, err := parseTerminator(s)
	if err != nil {
		return nil, err
	}
	return &ast.ClassConstant{Modifiers: mods, Keyword: keyword, Items: items, Terminator: term}, nil
}

func parseMethod(s *TokenStream, mods []token.Token) (*ast.Method, error) {
	keyword, err := s.AdvanceIfKind(token.KwFunction)
	if err != nil {
		return nil, err
	}
	m := &ast.Method{Modifiers: mods, Keyword: keyword, ByRef: s.Optional(token.Amp)}
	if m.Name, err = parseIdentifier(s); err != nil {
		return nil, err
	}
	if m.Parameters, err = parseParameterList(s); err != nil {
		return nil, err
	}
	if m.ReturnType, err = parseOptionalReturnType(s); err != nil {
		return nil, err
	}
	if s.At(token.Semicolon) {
		semi := s.AdvanceAny()
		m.Semicolon = &semi
		return m, nil
	}
	if m.Body, err = parseBlock(s); err != nil {
		return nil, err
	}
	return m, nil
}

func parseProperty(s *TokenStream, mods []token.Token) (*ast.Property, error) {
	prop := &ast.Property{Modifiers: mods}
	var err error
	if !s.At(token.Variable) {
		if prop.Type, err = parseHint(s); err != nil {
			return nil, err
		}
	}
	if prop.Items, err = parseSequence(s, parsePropertyItem, token.Comma, token.Semicolon); err != nil {
		return nil, err
	}
	if prop.Items.Empty() {
		return nil, s.Unexpected(token.Variable)
	}
	if prop.Terminator, err = parseTerminator(s); err != nil {
		return nil, err
	}
	return prop, nil
}

func parsePropertyItem(s *TokenStream) (*ast.PropertyItem, error) {
	v, err := parseVariable(s)
	if err != nil {
		return nil, err
	}
	item := &ast.PropertyItem{Variable: v}
	if item.Equals = s.Optional(token.Assign); item.Equals != nil {
		if item.Default, err = parseExpression(s); err != nil {
			return nil, err
		}
	}
	return item, nil
}
