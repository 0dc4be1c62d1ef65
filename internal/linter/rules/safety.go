package rules

import (
	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/linter"
)

// NoGlobal flags `global` statements.
type NoGlobal struct{}

func (NoGlobal) Name() string             { return "no-global" }
func (NoGlobal) DefaultLevel() diag.Level { return diag.LevelWarning }
func (NoGlobal) Description() string {
	return "Disallows the `global` statement; pass dependencies explicitly."
}

func (NoGlobal) Check(ctx *linter.Context) {
	each(ctx, func(g *ast.Global) {
		issue := ctx.Issue(g.Keyword.Span, "avoid importing variables with `global`").
			WithHelp("pass the value as a parameter or inject it")
		for _, v := range g.Variables.Items {
			issue = issue.WithSecondary(v.Span(), "`$"+v.Name()+"` is global state")
		}
		ctx.Report(issue)
	})
}
