package parser

import (
	"slices"
	"strings"

	"quill/internal/ast"
	"quill/internal/token"
)

// startsExpression reports whether tok can begin an expression.
func startsExpression(tok token.Token) bool {
	switch tok.Kind {
	case token.Variable, token.Ident, token.QualifiedIdent,
		token.IntLit, token.FloatLit, token.StringLit,
		token.KwTrue, token.KwFalse, token.KwNull,
		token.KwNew, token.KwFunction, token.KwFn, token.KwStatic, token.KwPrint,
		token.LParen, token.LBracket:
		return true
	}
	return slices.Contains(prefixOps, tok.Kind) || slices.Contains(constructKinds, tok.Kind)
}

func parseExpression(s *TokenStream) (ast.Expression, error) {
	return parseExpressionPrec(s, precAssign)
}

// parseExpressionPrec is a precedence-climbing loop: it parses a unary
// operand and folds in operators that bind at least as tightly as min.
// Assignment is the exception and attaches to any assignable left side.
func parseExpressionPrec(s *TokenStream, min precedence) (ast.Expression, error) {
	left, err := parseUnary(s)
	if err != nil {
		return nil, err
	}
	for {
		tok := s.Peek()

		if tok.Kind.IsAssignment() {
			// присваивание связывает правее любого оператора слева: "$a && $b = 1"
			if !isAssignable(left) {
				return left, nil
			}
			op := s.AdvanceAny()
			assign := &ast.Assignment{Left: left, Operator: op}
			if op.Kind == token.Assign {
				assign.ByRef = s.Optional(token.Amp)
			}
			if assign.Right, err = parseExpressionPrec(s, precAssign); err != nil {
				return nil, err
			}
			left = assign
			continue
		}

		if tok.Kind == token.Question {
			if min > precTernary {
				return left, nil
			}
			if left, err = parseTernary(s, left); err != nil {
				return nil, err
			}
			continue
		}

		info, ok := binaryOps[tok.Kind]
		if !ok || info.prec < min {
			return left, nil
		}
		op := s.AdvanceAny()
		next := info.prec + 1
		if info.rightAssoc {
			next = info.prec
		}
		var right ast.Expression
		if op.Kind == token.KwInstanceof {
			right, err = parseClassReference(s)
		} else {
			right, err = parseExpressionPrec(s, next)
		}
		if err != nil {
			return nil, err
		}
		left = &ast.Binary{Left: left, Operator: op, Right: right}
	}
}

// parseTernary parses "? then : else" and the short "?: else". The ternary
// is left-associative; the else branch binds tighter than another ternary.
func parseTernary(s *TokenStream, cond ast.Expression) (ast.Expression, error) {
	t := &ast.Ternary{Condition: cond, Question: s.AdvanceAny()}
	var err error
	if !s.At(token.Colon) {
		if t.Then, err = parseExpressionPrec(s, precAssign); err != nil {
			return nil, err
		}
	}
	if t.Colon, err = s.AdvanceIfKind(token.Colon); err != nil {
		return nil, err
	}
	if t.Else, err = parseExpressionPrec(s, precCoalesce); err != nil {
		return nil, err
	}
	return t, nil
}

func isAssignable(e ast.Expression) bool {
	switch e.(type) {
	case *ast.Variable, *ast.Index, *ast.PropertyFetch, *ast.StaticPropertyFetch, *ast.Array:
		return true
	}
	return false
}

func parseUnary(s *TokenStream) (ast.Expression, error) {
	tok := s.Peek()
	if slices.Contains(prefixOps, tok.Kind) {
		op := s.AdvanceAny()
		operand, err := parseExpressionPrec(s, precInstanceof)
		if err != nil {
			return nil, err
		}
		return &ast.Unary{Operator: op, Operand: operand}, nil
	}
	if slices.Contains(constructKinds, tok.Kind) {
		keyword := s.AdvanceAny()
		min := precAssign
		if keyword.Kind == token.KwClone {
			min = precInstanceof
		}
		value, err := parseExpressionPrec(s, min)
		if err != nil {
			return nil, err
		}
		return &ast.Construct{Keyword: keyword, Value: value}, nil
	}
	if tok.Kind == token.KwPrint {
		keyword := s.AdvanceAny()
		value, err := parseExpressionPrec(s, precAssign)
		if err != nil {
			return nil, err
		}
		return &ast.Print{Keyword: keyword, Value: value}, nil
	}
	if isCast(s) {
		return parseCast(s)
	}
	primary, err := parsePrimary(s)
	if err != nil {
		return nil, err
	}
	return parsePostfix(s, primary)
}

func isCast(s *TokenStream) bool {
	if !s.At(token.LParen) {
		return false
	}
	typ := s.PeekNth(1)
	if typ.Kind != token.Ident || s.PeekNth(2).Kind != token.RParen {
		return false
	}
	_, ok := castTypes[strings.ToLower(typ.Text)]
	return ok
}

func parseCast(s *TokenStream) (ast.Expression, error) {
	cast := &ast.Cast{LParen: s.AdvanceAny(), Type: s.AdvanceAny(), RParen: s.AdvanceAny()}
	operand, err := parseExpressionPrec(s, precInstanceof)
	if err != nil {
		return nil, err
	}
	cast.Operand = operand
	return cast, nil
}

// parsePostfix folds calls, member access, indexing and "++"/"--" onto base.
func parsePostfix(s *TokenStream, base ast.Expression) (ast.Expression, error) {
	for {
		switch s.Peek().Kind {
		case token.LParen:
			args, err := parseArgumentList(s)
			if err != nil {
				return nil, err
			}
			base = &ast.Call{Callee: base, Arguments: args}
		case token.Arrow, token.NullsafeArrow:
			arrow := s.AdvanceAny()
			prop, err := parseMemberName(s)
			if err != nil {
				return nil, err
			}
			if s.At(token.LParen) {
				args, err := parseArgumentList(s)
				if err != nil {
					return nil, err
				}
				base = &ast.MethodCall{Object: base, Arrow: arrow, Method: prop, Arguments: args}
				continue
			}
			base = &ast.PropertyFetch{Object: base, Arrow: arrow, Property: prop}
		case token.ColonColon:
			dc := s.AdvanceAny()
			if s.At(token.Variable) {
				v := &ast.Variable{Token: s.AdvanceAny()}
				base = &ast.StaticPropertyFetch{Class: base, DoubleColon: dc, Property: v}
				continue
			}
			name, err := parseIdentifier(s)
			if err != nil {
				return nil, err
			}
			if s.At(token.LParen) {
				args, err := parseArgumentList(s)
				if err != nil {
					return nil, err
				}
				base = &ast.StaticMethodCall{Class: base, DoubleColon: dc, Method: name, Arguments: args}
				continue
			}
			base = &ast.ClassConstantFetch{Class: base, DoubleColon: dc, Constant: name}
		case token.LBracket:
			idx := &ast.Index{Object: base, LBracket: s.AdvanceAny()}
			if !s.At(token.RBracket) {
				inner, err := parseExpression(s)
				if err != nil {
					return nil, err
				}
				idx.Index = inner
			}
			rb, err := s.AdvanceIfKind(token.RBracket)
			if err != nil {
				return nil, err
			}
			idx.RBracket = rb
			base = idx
		case token.PlusPlus, token.MinusMinus:
			base = &ast.Postfix{Operand: base, Operator: s.AdvanceAny()}
		default:
			return base, nil
		}
	}
}

// parseMemberName parses the name after "->": an identifier, a keyword or a
// variable for dynamic access.
func parseMemberName(s *TokenStream) (ast.Node, error) {
	if s.At(token.Variable) {
		return &ast.Variable{Token: s.AdvanceAny()}, nil
	}
	return parseIdentifier(s)
}

func parseArgumentList(s *TokenStream) (*ast.ArgumentList, error) {
	lparen, err := s.AdvanceIfKind(token.LParen)
	if err != nil {
		return nil, err
	}
	args, _, err := parseSequenceTrailing(s, parseArgument, token.Comma, token.RParen)
	if err != nil {
		return nil, err
	}
	rparen, err := s.AdvanceIfKind(token.RParen)
	if err != nil {
		return nil, err
	}
	return &ast.ArgumentList{LParen: lparen, Arguments: args, RParen: rparen}, nil
}

func parseArgument(s *TokenStream) (*ast.Argument, error) {
	arg := &ast.Argument{}
	if s.Peek().IsNameLike() && s.PeekNth(1).Kind == token.Colon {
		arg.Name = &ast.Identifier{Token: s.AdvanceAny()}
		colon := s.AdvanceAny()
		arg.Colon = &colon
	}
	arg.Ellipsis = s.Optional(token.Ellipsis)
	value, err := parseExpression(s)
	if err != nil {
		return nil, err
	}
	arg.Value = value
	return arg, nil
}

// parseClassReference parses the right side of instanceof and the class of
// new: a name, static, a variable or a parenthesized expression.
func parseClassReference(s *TokenStream) (ast.Expression, error) {
	switch s.Peek().Kind {
	case token.Ident, token.QualifiedIdent, token.KwStatic:
		return &ast.Name{Token: s.AdvanceAny()}, nil
	case token.Variable:
		v := &ast.Variable{Token: s.AdvanceAny()}
		// "new $this->cls" / "new $a['x']" без вызова
		return parseClassReferenceTail(s, v)
	case token.LParen:
		return parseParenthesized(s)
	}
	return nil, s.Unexpected(token.Ident, token.Variable)
}

func parseClassReferenceTail(s *TokenStream, base ast.Expression) (ast.Expression, error) {
	for s.At(token.Arrow, token.NullsafeArrow, token.ColonColon) {
		op := s.AdvanceAny()
		if op.Kind == token.ColonColon {
			v, err := parseVariable(s)
			if err != nil {
				return nil, err
			}
			base = &ast.StaticPropertyFetch{Class: base, DoubleColon: op, Property: v}
			continue
		}
		prop, err := parseMemberName(s)
		if err != nil {
			return nil, err
		}
		base = &ast.PropertyFetch{Object: base, Arrow: op, Property: prop}
	}
	return base, nil
}
