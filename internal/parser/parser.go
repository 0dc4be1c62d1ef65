// Package parser builds an ast.Program from lexer tokens.
//
// Every production is a free function over a *TokenStream that consumes
// exactly the tokens of its construct. There is no error recovery: the first
// structural error stops the parse and the partial program is returned.
package parser

import (
	"quill/internal/ast"
	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

// ParseFile parses one file. The returned program is never nil; it holds the
// statements completed before the first parse error, if any.
func ParseFile(file *source.File) (*ast.Program, *Error, []lexer.Error) {
	lx := lexer.New(file)
	s := NewTokenStream(lx)
	prog := &ast.Program{File: file.ID}

	for !s.At(token.EOF) {
		stmt, err := parseStatement(s)
		if err != nil {
			return prog, asError(err), lx.Errors()
		}
		prog.Statements = append(prog.Statements, stmt)
	}
	return prog, nil, lx.Errors()
}

// ParseExpression parses a standalone expression in code mode. Used by tests
// and the ast dump command.
func ParseExpression(file *source.File) (ast.Expression, *Error) {
	s := NewTokenStream(lexer.NewCode(file))
	expr, err := parseExpression(s)
	if err != nil {
		return nil, asError(err)
	}
	if !s.At(token.EOF, token.Semicolon) {
		return expr, s.Unexpected(token.EOF)
	}
	return expr, nil
}

func asError(err error) *Error {
	if pe, ok := err.(*Error); ok {
		return pe
	}
	// все продукции возвращают *Error; сюда попадать не должны
	return &Error{Kind: ErrUnexpectedToken, Detail: err.Error()}
}

// parseTerminator consumes ";" or "?>", or accepts the end of input as an
// implicit terminator.
func parseTerminator(s *TokenStream) (ast.Terminator, error) {
	switch s.Peek().Kind {
	case token.Semicolon, token.CloseTag:
		return ast.NewTerminator(s.AdvanceAny()), nil
	case token.EOF:
		return ast.EOFTerminator(s.LastSpan()), nil
	}
	return ast.Terminator{}, s.Unexpected(token.Semicolon, token.CloseTag)
}
