package parser

import (
	"quill/internal/ast"
	"quill/internal/token"
)

func parseVariable(s *TokenStream) (*ast.Variable, error) {
	tok, err := s.AdvanceIfKind(token.Variable)
	if err != nil {
		return nil, err
	}
	return &ast.Variable{Token: tok}, nil
}

// parseIdentifier accepts a plain identifier or a keyword used as a name.
func parseIdentifier(s *TokenStream) (*ast.Identifier, error) {
	if !s.Peek().IsNameLike() {
		return nil, s.Unexpected(token.Ident)
	}
	return &ast.Identifier{Token: s.AdvanceAny()}, nil
}

func parseName(s *TokenStream) (*ast.Name, error) {
	tok, err := s.AdvanceIfKind(token.Ident, token.QualifiedIdent)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Token: tok}, nil
}

// hintNameKinds are the tokens that may appear as a single type in a hint.
var hintNameKinds = []token.Kind{
	token.Ident, token.QualifiedIdent, token.KwNull, token.KwStatic, token.KwFalse, token.KwTrue,
}

func startsHint(tok token.Token) bool {
	if tok.Kind == token.Question {
		return true
	}
	for _, k := range hintNameKinds {
		if tok.Kind == k {
			return true
		}
	}
	return false
}

func parseHintName(s *TokenStream) (*ast.Name, error) {
	tok, err := s.AdvanceIfKind(hintNameKinds...)
	if err != nil {
		return nil, err
	}
	return &ast.Name{Token: tok}, nil
}

// parseHint parses "?T" or "A|B|C". A hint is never empty.
func parseHint(s *TokenStream) (*ast.Hint, error) {
	hint := &ast.Hint{Question: s.Optional(token.Question)}
	first, err := parseHintName(s)
	if err != nil {
		return nil, err
	}
	items := []*ast.Name{first}
	var seps []token.Token
	for s.At(token.Pipe) {
		seps = append(seps, s.AdvanceAny())
		next, err := parseHintName(s)
		if err != nil {
			return nil, err
		}
		items = append(items, next)
	}
	hint.Types = ast.NewSequence(items, seps)
	return hint, nil
}
