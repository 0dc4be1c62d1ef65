package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// skipTrivia пропускает пробелы и комментарии внутри кода.
//   - "//" и "#" до конца строки или до "?>"
//   - "/* ... */" без вложенности
//
// Незакрытый блочный комментарий превращается в Invalid токен до EOF.
func (lx *Lexer) skipTrivia() (token.Token, bool) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case isSpace(b):
			lx.cursor.Bump()
		case b == '#' || (b == '/' && lx.cursor.PeekAt(1) == '/'):
			lx.skipLineComment()
		case b == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Mark()
			if !lx.skipBlockComment() {
				return lx.invalid(diag.LexUnterminatedComment, start, "unterminated block comment"), true
			}
		default:
			return token.Token{}, false
		}
	}
	return token.Token{}, false
}

func (lx *Lexer) skipLineComment() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' {
			return
		}
		// "?>" закрывает код даже внутри однострочного комментария
		if b == '?' && lx.cursor.PeekAt(1) == '>' {
			return
		}
		lx.cursor.Bump()
	}
}

func (lx *Lexer) skipBlockComment() bool {
	lx.cursor.Advance(2)
	for !lx.cursor.EOF() {
		if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
			lx.cursor.Advance(2)
			return true
		}
		lx.cursor.Bump()
	}
	return false
}
