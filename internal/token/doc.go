// Package token defines lexical token kinds for the quill analyzer.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Comments and whitespace inside code are skipped by the lexer; they never
//     appear in the token stream. Inline HTML outside of code tags is a token.
//   - Keywords are case-insensitive: "GLOBAL", "Global" and "global" all lex
//     as KwGlobal. Token.Text keeps the original spelling.
//   - Names with namespace separators ("A\B", "\A\B", "namespace\A") lex as a
//     single QualifiedIdent token.
package token
