package rules

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/fix"
	"quill/internal/linter"
	"quill/internal/token"
)

// StrContains suggests str_contains() over comparing strpos() with false.
type StrContains struct{}

func (StrContains) Name() string             { return "str-contains" }
func (StrContains) DefaultLevel() diag.Level { return diag.LevelNote }
func (StrContains) Constraint() string       { return ">= 8.0" }
func (StrContains) Fixable() bool            { return true }
func (StrContains) Description() string {
	return "Use `str_contains()` instead of comparing `strpos()` with `false`."
}

func (StrContains) Check(ctx *linter.Context) {
	each(ctx, func(b *ast.Binary) {
		var negated bool
		switch b.Operator.Kind {
		case token.BangEqEq, token.BangEq:
		case token.EqEqEq, token.EqEq:
			negated = true
		default:
			return
		}
		call, ok := strposCall(ctx, b.Left)
		if ok {
			ok = isFalse(b.Right)
		} else if call, ok = strposCall(ctx, b.Right); ok {
			ok = isFalse(b.Left)
		}
		if !ok {
			return
		}
		suggestion := "str_contains(...)"
		if negated {
			suggestion = "!str_contains(...)"
		}
		issue := ctx.Issue(b.Span(), "`strpos()` compared with `false` checks for a substring").
			WithSecondary(call.Span(), "this call").
			WithHelp("use `" + suggestion + "`, available since 8.0")
		if args, ok := haystackNeedle(ctx, call); ok {
			rewrite := "str_contains(" + args + ")"
			if negated {
				rewrite = "!" + rewrite
			}
			// для пустого needle strpos() давал false, str_contains() даёт true
			issue = issue.WithSuggestion(fix.ReplaceSpan("use str_contains()", b.Span(), rewrite, ctx.Text(b.Span()),
				fix.WithKind(diag.FixKindRefactorRewrite),
				fix.WithApplicability(diag.FixApplicabilityManualReview)))
		}
		ctx.Report(issue)
	})
}

func strposCall(ctx *linter.Context, e ast.Expression) (*ast.Call, bool) {
	call, ok := e.(*ast.Call)
	if !ok {
		return nil, false
	}
	name, ok := call.Callee.(*ast.Name)
	if !ok {
		return nil, false
	}
	if fqn, ok := ctx.Semantics.Names.Resolve(name.Span()); ok && strings.EqualFold(fqn, "strpos") {
		return call, true
	}
	if fqn, ok := ctx.Semantics.Names.Fallback(name.Span()); ok && strings.EqualFold(fqn, "strpos") {
		return call, true
	}
	return nil, false
}

// haystackNeedle returns the source text of a plain two-argument call;
// offsets, named and spread arguments are left to the user.
func haystackNeedle(ctx *linter.Context, call *ast.Call) (string, bool) {
	args := call.Arguments.Arguments.Items
	if len(args) != 2 {
		return "", false
	}
	for _, a := range args {
		if a.Name != nil || a.Ellipsis != nil {
			return "", false
		}
	}
	return ctx.Text(args[0].Span().Cover(args[1].Span())), true
}

func isFalse(e ast.Expression) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Kind == ast.LiteralFalse
}
