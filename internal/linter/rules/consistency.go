package rules

import (
	"fmt"
	"strings"

	"quill/internal/diag"
	"quill/internal/fix"
	"quill/internal/linter"
	"quill/internal/token"
)

// LowercaseKeyword wants keywords spelled in lowercase.
// true, false and null are constants and are left alone.
type LowercaseKeyword struct{}

func (LowercaseKeyword) Name() string             { return "lowercase-keyword" }
func (LowercaseKeyword) DefaultLevel() diag.Level { return diag.LevelHelp }
func (LowercaseKeyword) Fixable() bool            { return true }
func (LowercaseKeyword) Description() string {
	return "Keywords must be written in lowercase."
}

func (LowercaseKeyword) Check(ctx *linter.Context) {
	toks := tokens(ctx)
	for i, tok := range toks {
		if !tok.IsKeyword() {
			continue
		}
		switch tok.Kind {
		case token.KwTrue, token.KwFalse, token.KwNull:
			continue
		}
		if i > 0 && usedAsName(toks[i-1].Kind) {
			continue
		}
		lower := strings.ToLower(tok.Text)
		if lower == tok.Text {
			continue
		}
		ctx.Report(ctx.Issue(tok.Span, fmt.Sprintf("keyword `%s` should be written as `%s`", tok.Text, lower)).
			WithSuggestion(fix.ReplaceSpan("lowercase the keyword", tok.Span, lower, tok.Text, fix.Preferred())))
	}
}

// usedAsName reports whether a keyword after prev is a member or
// declaration name ("$a->List", "function Print()").
func usedAsName(prev token.Kind) bool {
	switch prev {
	case token.Arrow, token.NullsafeArrow, token.ColonColon, token.KwFunction, token.KwConst:
		return true
	}
	return false
}
