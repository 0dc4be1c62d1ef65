package rules

import (
	"quill/internal/ast"
	"quill/internal/lexer"
	"quill/internal/linter"
	"quill/internal/token"
)

// each calls f for every node of type T in the file.
func each[T ast.Node](ctx *linter.Context, f func(T)) {
	ast.Inspect(ctx.Semantics.Program, func(n ast.Node) bool {
		if v, ok := n.(T); ok {
			f(v)
		}
		return true
	})
}

// tokens re-lexes the file; lexical errors are already reported by the parser.
func tokens(ctx *linter.Context) []token.Token {
	toks, _ := lexer.Tokenize(ctx.Semantics.Source)
	return toks
}
