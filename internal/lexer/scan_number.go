package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// Поддержка: 0, 123, 1_000, 0b..., 0o..., 0x..., 017, 1.0, .5, 1e-3, 1.0e+10.
// Неверные формы дают Invalid токен и ошибку.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	if lx.cursor.Peek() == '0' {
		switch lx.cursor.PeekAt(1) {
		case 'b', 'B':
			return lx.scanRadix(start, func(b byte) bool { return b == '0' || b == '1' })
		case 'o', 'O':
			return lx.scanRadix(start, func(b byte) bool { return b >= '0' && b <= '7' })
		case 'x', 'X':
			return lx.scanRadix(start, isHex)
		}
	}

	lx.eatDigits()

	// дробная часть: "1.5", ".5", "1."; но не "1..." и не "1.="
	if lx.cursor.Peek() == '.' && lx.cursor.PeekAt(1) != '.' && lx.cursor.PeekAt(1) != '=' {
		lx.cursor.Bump()
		kind = token.FloatLit
		lx.eatDigits()
	}

	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" без цифр: "e" не часть числа
			lx.cursor.Reset(mark)
		} else {
			kind = token.FloatLit
			lx.eatDigits()
		}
	}

	if isIdentStartAt(lx, 0) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.invalid(diag.LexBadNumber, start, "invalid numeric literal")
	}
	return lx.emit(kind, start)
}

func (lx *Lexer) scanRadix(start Mark, digit func(byte) bool) token.Token {
	lx.cursor.Advance(2)
	n := 0
	for {
		b := lx.cursor.Peek()
		if digit(b) {
			n++
		} else if b != '_' {
			break
		}
		lx.cursor.Bump()
	}
	if n == 0 || isIdentContinueByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.invalid(diag.LexBadNumber, start, "invalid numeric literal")
	}
	return lx.emit(token.IntLit, start)
}

func (lx *Lexer) eatDigits() {
	for isDec(lx.cursor.Peek()) || (lx.cursor.Peek() == '_' && isDec(lx.cursor.PeekAt(1))) {
		lx.cursor.Bump()
	}
}
