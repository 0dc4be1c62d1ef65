package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanName сканирует идентификатор, ключевое слово или квалифицированное имя
// ("Foo\Bar", "\Foo"). Ключевые слова распознаются без учёта регистра и только
// для имён без разделителя. Token.Text равен исходному срезу.
func (lx *Lexer) scanName() token.Token {
	start := lx.cursor.Mark()
	qualified := lx.cursor.Eat('\\')

	if !lx.scanIdentPart() {
		lx.bumpRune()
		return lx.invalid(diag.LexUnknownChar, start, "unexpected character")
	}
	for lx.cursor.Peek() == '\\' && isIdentStartAt(lx, 1) {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if !lx.scanIdentPart() {
			lx.cursor.Reset(mark)
			break
		}
		qualified = true
	}

	tok := lx.emit(token.Ident, start)
	if qualified {
		tok.Kind = token.QualifiedIdent
		return tok
	}
	if k, ok := token.LookupKeyword(tok.Text); ok {
		tok.Kind = k
	}
	return tok
}

// scanIdentPart consumes one name segment; it reports false without moving
// when the cursor is not on an identifier start.
func (lx *Lexer) scanIdentPart() bool {
	r, sz := lx.peekRune()
	if sz == 0 {
		return false
	}
	if r < utf8RuneSelf {
		if !isIdentStartByte(byte(r)) {
			return false
		}
		lx.cursor.Bump()
	} else {
		if !isIdentStartRune(r) {
			return false
		}
		lx.bumpRune()
	}
	for {
		r, sz = lx.peekRune()
		if sz == 0 {
			return true
		}
		if r < utf8RuneSelf {
			if !isIdentContinueByte(byte(r)) {
				return true
			}
			lx.cursor.Bump()
			continue
		}
		if !isIdentContinueRune(r) {
			return true
		}
		lx.bumpRune()
	}
}

// scanVariable сканирует "$name".
func (lx *Lexer) scanVariable() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '$'
	if !lx.scanIdentPart() {
		return lx.invalid(diag.LexBadVariable, start, "expected variable name after `$`")
	}
	return lx.emit(token.Variable, start)
}
