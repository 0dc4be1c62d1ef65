package lexer

import (
	"quill/internal/diag"
	"quill/internal/token"
)

// scanString сканирует строку в одинарных или двойных кавычках.
// Escape-последовательности не интерпретируются: "\x" съедается целиком.
// Переводы строк внутри литерала допустимы. Незакрытая строка даёт Invalid до EOF.
func (lx *Lexer) scanString(quote byte) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // открывающая кавычка
	for !lx.cursor.EOF() {
		b := lx.cursor.Bump()
		if b == '\\' {
			lx.cursor.Bump()
			continue
		}
		if b == quote {
			return lx.emit(token.StringLit, start)
		}
	}
	return lx.invalid(diag.LexUnterminatedString, start, "unterminated string literal")
}

// scanHeredoc сканирует heredoc/nowdoc:
//
//	<<<EOT        <<<'EOT'
//	text          text
//	EOT;          EOT;
//
// Возвращает false без сдвига курсора, если после "<<<" нет метки.
func (lx *Lexer) scanHeredoc() (token.Token, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Advance(3)
	for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
		lx.cursor.Bump()
	}
	quote := lx.cursor.Peek()
	if quote == '\'' || quote == '"' {
		lx.cursor.Bump()
	} else {
		quote = 0
	}
	labelStart := lx.cursor.Off
	for isIdentContinueByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	label := string(lx.file.Content[labelStart:lx.cursor.Off])
	if label == "" || isDec(label[0]) || (quote != 0 && !lx.cursor.Eat(quote)) || !lx.cursor.Eat('\n') {
		lx.cursor.Reset(start)
		return token.Token{}, false
	}

	// ищем строку, которая (после отступа) начинается с метки
	for !lx.cursor.EOF() {
		for lx.cursor.Peek() == ' ' || lx.cursor.Peek() == '\t' {
			lx.cursor.Bump()
		}
		if lx.matchesExact(label) && !isIdentContinueByte(lx.cursor.PeekAt(uint32(len(label)))) {
			lx.cursor.Advance(uint32(len(label)))
			return lx.emit(token.StringLit, start), true
		}
		for !lx.cursor.EOF() && lx.cursor.Bump() != '\n' {
		}
	}
	return lx.invalid(diag.LexUnterminatedString, start, "unterminated heredoc"), true
}

// matchesExact is the case-sensitive variant of HasPrefixFold.
func (lx *Lexer) matchesExact(s string) bool {
	end := lx.cursor.Off + uint32(len(s))
	return end <= lx.cursor.limit() && string(lx.file.Content[lx.cursor.Off:end]) == s
}
