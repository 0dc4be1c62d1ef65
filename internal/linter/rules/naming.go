package rules

import (
	"fmt"
	"strings"
	"unicode"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/linter"
	"quill/internal/token"
)

// ClassName wants PascalCase class-likes. With option psr interfaces,
// traits and abstract classes also carry their PSR suffix or prefix.
type ClassName struct{}

func (ClassName) Name() string             { return "class-name" }
func (ClassName) DefaultLevel() diag.Level { return diag.LevelHelp }
func (ClassName) Description() string {
	return "Class-like names must be PascalCase (option `psr` adds PSR naming)."
}

func (ClassName) Check(ctx *linter.Context) {
	psr := ctx.OptionBool("psr", false)
	ast.Inspect(ctx.Semantics.Program, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.Class:
			checkClassName(ctx, "class", d.Name)
			if psr && hasModifier(d.Modifiers, token.KwAbstract) && !strings.HasPrefix(d.Name.Value(), "Abstract") {
				ctx.Report(ctx.Issue(d.Name.Span(), fmt.Sprintf("abstract class `%s` should be prefixed with `Abstract`", d.Name.Value())).
					WithHelp(fmt.Sprintf("rename it to `Abstract%s`", d.Name.Value())))
			}
		case *ast.Interface:
			checkClassName(ctx, "interface", d.Name)
			if psr && !strings.HasSuffix(d.Name.Value(), "Interface") {
				ctx.Report(ctx.Issue(d.Name.Span(), fmt.Sprintf("interface `%s` should be suffixed with `Interface`", d.Name.Value())))
			}
		case *ast.Trait:
			checkClassName(ctx, "trait", d.Name)
			if psr && !strings.HasSuffix(d.Name.Value(), "Trait") {
				ctx.Report(ctx.Issue(d.Name.Span(), fmt.Sprintf("trait `%s` should be suffixed with `Trait`", d.Name.Value())))
			}
		case *ast.Enum:
			checkClassName(ctx, "enum", d.Name)
		}
		return true
	})
}

func checkClassName(ctx *linter.Context, what string, id *ast.Identifier) {
	if isPascalCase(id.Value()) {
		return
	}
	ctx.Report(ctx.Issue(id.Span(), fmt.Sprintf("%s name `%s` is not in PascalCase", what, id.Value())).
		WithHelp(fmt.Sprintf("consider renaming it to `%s`", toPascalCase(id.Value()))))
}

// FunctionName wants snake_case functions, or camelCase with option camel.
type FunctionName struct{}

func (FunctionName) Name() string             { return "function-name" }
func (FunctionName) DefaultLevel() diag.Level { return diag.LevelHelp }
func (FunctionName) Description() string {
	return "Function names must be snake_case (option `camel` switches to camelCase)."
}

func (FunctionName) Check(ctx *linter.Context) {
	camel := ctx.OptionBool("camel", false)
	each(ctx, func(fn *ast.Function) {
		name := fn.Name.Value()
		style, ok, suggestion := "snake_case", isSnakeCase(name), toSnakeCase(name)
		if camel {
			style, ok, suggestion = "camelCase", isCamelCase(name), toCamelCase(name)
		}
		if ok {
			return
		}
		ctx.Report(ctx.Issue(fn.Name.Span(), fmt.Sprintf("function name `%s` is not in %s", name, style)).
			WithHelp(fmt.Sprintf("consider renaming it to `%s`", suggestion)))
	})
}

func hasModifier(mods []token.Token, kind token.Kind) bool {
	for _, m := range mods {
		if m.Kind == kind {
			return true
		}
	}
	return false
}

func isPascalCase(s string) bool {
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	r := []rune(s)
	return unicode.IsUpper(r[0])
}

func isCamelCase(s string) bool {
	if s == "" || strings.Contains(s, "_") {
		return false
	}
	r := []rune(s)
	return unicode.IsLower(r[0])
}

func isSnakeCase(s string) bool {
	for _, r := range s {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return s != ""
}

// words splits an identifier on underscores and lower-to-upper boundaries.
func words(s string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, string(cur))
			cur = cur[:0]
		}
	}
	prevLower := false
	for _, r := range s {
		switch {
		case r == '_':
			flush()
			prevLower = false
			continue
		case unicode.IsUpper(r) && prevLower:
			flush()
		}
		cur = append(cur, r)
		prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
	}
	flush()
	return out
}

func capitalize(w string) string {
	r := []rune(strings.ToLower(w))
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

func toPascalCase(s string) string {
	var b strings.Builder
	for _, w := range words(s) {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func toCamelCase(s string) string {
	var b strings.Builder
	for i, w := range words(s) {
		if i == 0 {
			b.WriteString(strings.ToLower(w))
			continue
		}
		b.WriteString(capitalize(w))
	}
	return b.String()
}

func toSnakeCase(s string) string {
	ws := words(s)
	for i, w := range ws {
		ws[i] = strings.ToLower(w)
	}
	return strings.Join(ws, "_")
}
