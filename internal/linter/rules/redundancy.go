package rules

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/fix"
	"quill/internal/linter"
	"quill/internal/source"
	"quill/internal/token"
)

// RedundantClosingTag flags a final "?>" followed only by whitespace.
type RedundantClosingTag struct{}

func (RedundantClosingTag) Name() string             { return "redundant-closing-tag" }
func (RedundantClosingTag) DefaultLevel() diag.Level { return diag.LevelHelp }
func (RedundantClosingTag) Fixable() bool            { return true }
func (RedundantClosingTag) Description() string {
	return "A closing tag at the end of a file is redundant and risks emitting whitespace."
}

func (RedundantClosingTag) Check(ctx *linter.Context) {
	toks := tokens(ctx)
	last := len(toks) - 2 // перед EOF
	for last >= 0 && toks[last].Kind == token.InlineHTML && strings.TrimSpace(toks[last].Text) == "" {
		last--
	}
	if last < 1 || toks[last].Kind != token.CloseTag {
		return
	}
	tag := toks[last]
	eof := toks[len(toks)-1].Span
	removal := source.Span{File: tag.Span.File, Start: tag.Span.Start, End: eof.End}
	edits := []diag.TextEdit{fix.Replace(removal, "\n", ctx.Text(removal))}
	title := "remove the closing tag"
	switch prev := toks[last-1]; prev.Kind {
	case token.Semicolon, token.RBrace, token.OpenTag:
	default:
		// "?>" завершал инструкцию, ";" ставим сразу после неё
		edits = append(edits, fix.Insert(prev.Span.ZeroideToEnd(), ";"))
		title = "terminate the statement and remove the closing tag"
	}
	ctx.Report(ctx.Issue(tag.Span, "redundant closing tag at end of file").
		WithNote("whitespace after the closing tag is sent to the output").
		WithSuggestion(fix.Compose(title, edits, fix.Preferred())))
}

// RedundantNoop flags empty statements inside statement lists.
type RedundantNoop struct{}

func (RedundantNoop) Name() string             { return "redundant-noop" }
func (RedundantNoop) DefaultLevel() diag.Level { return diag.LevelHelp }
func (RedundantNoop) Fixable() bool            { return true }
func (RedundantNoop) Description() string {
	return "Empty statements (a lone `;`) have no effect."
}

func (RedundantNoop) Check(ctx *linter.Context) {
	report := func(stmts []ast.Statement) {
		for _, st := range stmts {
			noop, ok := st.(*ast.Noop)
			if !ok {
				continue
			}
			ctx.Report(ctx.Issue(noop.Span(), "redundant empty statement").
				WithSuggestion(fix.DeleteSpan("remove the `;`", noop.Span(), ";", fix.Preferred())))
		}
	}
	// Пустое тело цикла или условия (`while (x);`) не трогаем.
	ast.Inspect(ctx.Semantics.Program, func(n ast.Node) bool {
		switch n := n.(type) {
		case *ast.Program:
			report(n.Statements)
		case *ast.Block:
			report(n.Statements)
		case *ast.Namespace:
			report(n.Statements)
		}
		return true
	})
}
