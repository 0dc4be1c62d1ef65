package lexer

import (
	"quill/internal/token"
)

// scanHTML returns inline text up to the next opening tag, or the tag itself
// when the cursor already sits on one.
func (lx *Lexer) scanHTML() token.Token {
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.emptySpan()}
	}
	start := lx.cursor.Mark()
	if kind, n := lx.openTagAt(); n > 0 {
		lx.cursor.Advance(n)
		lx.mode = modeCode
		return lx.emit(kind, start)
	}
	for !lx.cursor.EOF() {
		if _, n := lx.openTagAt(); n > 0 {
			break
		}
		lx.cursor.Bump()
	}
	return lx.emit(token.InlineHTML, start)
}

// openTagAt reports the tag kind and its length when the cursor is on "<?php",
// "<?=" or a short "<?".
func (lx *Lexer) openTagAt() (token.Kind, uint32) {
	if lx.cursor.Peek() != '<' || lx.cursor.PeekAt(1) != '?' {
		return token.Invalid, 0
	}
	if lx.cursor.PeekAt(2) == '=' {
		return token.EchoTag, 3
	}
	if lx.cursor.HasPrefixFold("<?php") {
		next := lx.cursor.PeekAt(5)
		if next == 0 || isSpace(next) {
			return token.OpenTag, 5
		}
	}
	return token.OpenTag, 2
}

// scanCloseTag consumes "?>" and a single newline after it.
func (lx *Lexer) scanCloseTag() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Advance(2)
	lx.cursor.Eat('\n')
	lx.mode = modeHTML
	return lx.emit(token.CloseTag, start)
}
