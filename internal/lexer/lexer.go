package lexer

import (
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

type mode uint8

const (
	modeHTML mode = iota
	modeCode
)

// Error is a recoverable lexical error. The lexer records it and keeps going;
// the offending bytes are returned as a token.Invalid with the same span.
type Error struct {
	Code    diag.Code
	Span    source.Span
	Message string
}

func (e Error) Error() string { return e.Message }

type Lexer struct {
	file   *source.File
	cursor Cursor
	mode   mode
	errs   []Error
}

// New creates a lexer positioned at the start of file in inline-HTML mode.
func New(file *source.File) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		mode:   modeHTML,
	}
}

// Errors returns the lexical errors recorded so far, in source order.
func (lx *Lexer) Errors() []Error {
	return lx.errs
}

// NewCode creates a lexer that starts directly in code mode, as if the input
// were preceded by "<?php".
func NewCode(file *source.File) *Lexer {
	lx := New(file)
	lx.mode = modeCode
	return lx
}

// ErrorAt returns the error recorded for an Invalid token span.
func (lx *Lexer) ErrorAt(sp source.Span) (Error, bool) {
	for _, e := range lx.errs {
		if e.Span == sp {
			return e, true
		}
	}
	return Error{}, false
}

// Next возвращает следующий значимый токен.
// После EOF всегда возвращает EOF.
func (lx *Lexer) Next() token.Token {
	if lx.mode == modeHTML {
		return lx.scanHTML()
	}

	if tok, ok := lx.skipTrivia(); ok {
		return tok
	}
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case ch == '?' && lx.cursor.PeekAt(1) == '>':
		return lx.scanCloseTag()
	case ch == '$' && isIdentStartAt(lx, 1):
		return lx.scanVariable()
	case isIdentStartByte(ch) || ch >= utf8RuneSelf:
		return lx.scanName()
	case ch == '\\' && isIdentStartAt(lx, 1):
		return lx.scanName()
	case isDec(ch):
		return lx.scanNumber()
	case ch == '.' && isDec(lx.cursor.PeekAt(1)):
		return lx.scanNumber()
	case ch == '\'' || ch == '"':
		return lx.scanString(ch)
	case ch == '<' && lx.cursor.HasPrefixFold("<<<"):
		if tok, ok := lx.scanHeredoc(); ok {
			return tok
		}
		return lx.scanOperatorOrPunct()
	default:
		return lx.scanOperatorOrPunct()
	}
}

// Tokenize lexes the whole file. The returned slice always ends with EOF.
func Tokenize(file *source.File) ([]token.Token, []Error) {
	lx := New(file)
	var out []token.Token
	for {
		tok := lx.Next()
		out = append(out, tok)
		if tok.Kind == token.EOF {
			return out, lx.Errors()
		}
	}
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) emit(kind token.Kind, start Mark) token.Token {
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
}

// invalid records an error and returns an Invalid token covering [start, cursor).
func (lx *Lexer) invalid(code diag.Code, start Mark, msg string) token.Token {
	tok := lx.emit(token.Invalid, start)
	lx.errs = append(lx.errs, Error{Code: code, Span: tok.Span, Message: msg})
	return tok
}

// File returns the file being lexed.
func (lx *Lexer) File() *source.File {
	return lx.file
}
