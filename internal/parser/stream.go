package parser

import (
	"slices"

	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

// TokenStream is a forward-only cursor over the lexer output.
// Lookahead is buffered on demand; consumed tokens are never revisited.
type TokenStream struct {
	lx   *lexer.Lexer
	buf  []token.Token
	last source.Span
}

func NewTokenStream(lx *lexer.Lexer) *TokenStream {
	return &TokenStream{
		lx:   lx,
		last: source.Span{File: lx.File().ID},
	}
}

func (s *TokenStream) fill(n int) {
	for len(s.buf) <= n {
		s.buf = append(s.buf, s.lx.Next())
	}
}

// Peek returns the next token without consuming it. After the input is
// exhausted it returns the EOF token forever.
func (s *TokenStream) Peek() token.Token {
	s.fill(0)
	return s.buf[0]
}

// PeekNth returns the token n positions ahead (PeekNth(0) == Peek()).
func (s *TokenStream) PeekNth(n int) token.Token {
	s.fill(n)
	return s.buf[n]
}

// At reports whether the next token is one of kinds.
func (s *TokenStream) At(kinds ...token.Kind) bool {
	return slices.Contains(kinds, s.Peek().Kind)
}

// AdvanceAny consumes the next token unconditionally. Callers check the kind
// first; at EOF the EOF token is returned and nothing is consumed.
func (s *TokenStream) AdvanceAny() token.Token {
	tok := s.Peek()
	if tok.Kind == token.EOF {
		return tok
	}
	s.buf = s.buf[1:]
	s.last = tok.Span
	return tok
}

// AdvanceIfKind consumes the next token if it is one of kinds.
func (s *TokenStream) AdvanceIfKind(kinds ...token.Kind) (token.Token, error) {
	if s.At(kinds...) {
		return s.AdvanceAny(), nil
	}
	return token.Token{}, s.Unexpected(kinds...)
}

// Optional consumes the next token if it is of kind k.
func (s *TokenStream) Optional(k token.Kind) *token.Token {
	if !s.At(k) {
		return nil
	}
	tok := s.AdvanceAny()
	return &tok
}

// LastSpan returns the span of the last consumed token.
func (s *TokenStream) LastSpan() source.Span {
	return s.last
}

// Unexpected builds the error for the current token. Invalid tokens become
// ErrInvalidLexeme, EOF becomes ErrUnexpectedEndOfInput positioned right
// after the last consumed token.
func (s *TokenStream) Unexpected(expected ...token.Kind) *Error {
	tok := s.Peek()
	switch tok.Kind {
	case token.Invalid:
		return s.invalidLexeme(tok)
	case token.EOF:
		return &Error{Kind: ErrUnexpectedEndOfInput, Span: s.last.ZeroideToEnd(), Expected: expected, Found: tok}
	}
	return &Error{Kind: ErrUnexpectedToken, Span: tok.Span, Expected: expected, Found: tok}
}

// expected builds an ErrExpectedExpression/ErrExpectedStatement error unless
// the current token is Invalid or EOF, which keep their own kinds.
func (s *TokenStream) expected(kind ErrorKind) *Error {
	tok := s.Peek()
	if tok.Kind == token.Invalid || tok.Kind == token.EOF {
		return s.Unexpected()
	}
	return &Error{Kind: kind, Span: tok.Span, Found: tok}
}

func (s *TokenStream) invalidLexeme(tok token.Token) *Error {
	err := &Error{Kind: ErrInvalidLexeme, Span: tok.Span, Found: tok}
	if lexErr, ok := s.lx.ErrorAt(tok.Span); ok {
		err.Detail = lexErr.Message
	}
	return err
}
