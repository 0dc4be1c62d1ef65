package rules

import (
	"fmt"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/linter"
	"quill/internal/reflection"
)

// parentOf returns the resolved parent of a class or interface extends
// clause; self, parent and static are never resolved.
func parentOf(ctx *linter.Context, name *ast.Name) (string, bool) {
	return ctx.Semantics.Names.Resolve(name.Span())
}

// UndefinedParent flags classes and interfaces that extend something the
// codebase does not know.
type UndefinedParent struct{}

func (UndefinedParent) Name() string             { return "undefined-parent" }
func (UndefinedParent) DefaultLevel() diag.Level { return diag.LevelError }
func (UndefinedParent) Description() string {
	return "A class or interface extends a class-like that is not declared anywhere."
}

func (UndefinedParent) Check(ctx *linter.Context) {
	check := func(what string, id *ast.Identifier, ext *ast.Extends) {
		if ext == nil {
			return
		}
		for _, parent := range ext.Types.Items {
			fqn, ok := parentOf(ctx, parent)
			if !ok {
				continue
			}
			if _, found := ctx.Codebase.Class(fqn); found {
				continue
			}
			ctx.Report(ctx.Issue(parent.Span(), fmt.Sprintf("%s `%s` extends undefined class-like `%s`", what, id.Value(), fqn)).
				WithSecondary(id.Span(), what+" declared here").
				WithHelp("check the name and the `use` imports, or add the declaring file to the sources"))
		}
	}
	ast.Inspect(ctx.Semantics.Program, func(n ast.Node) bool {
		switch d := n.(type) {
		case *ast.Class:
			check("class", d.Name, d.Extends)
		case *ast.Interface:
			check("interface", d.Name, d.Extends)
		}
		return true
	})
}

// InterfaceAsParent flags classes that extend an interface.
type InterfaceAsParent struct{}

func (InterfaceAsParent) Name() string             { return "interface-as-parent" }
func (InterfaceAsParent) DefaultLevel() diag.Level { return diag.LevelError }
func (InterfaceAsParent) Description() string {
	return "A class cannot extend an interface; it has to implement it."
}

func (InterfaceAsParent) Check(ctx *linter.Context) {
	each(ctx, func(c *ast.Class) {
		if c.Extends == nil {
			return
		}
		parent, ok := c.Extends.Types.First()
		if !ok {
			return
		}
		fqn, ok := parentOf(ctx, parent)
		if !ok {
			return
		}
		target, found := ctx.Codebase.Class(fqn)
		if !found || target.Kind != reflection.KindInterface {
			return
		}
		ctx.Report(ctx.Issue(parent.Span(), fmt.Sprintf("class `%s` cannot extend interface `%s`", c.Name.Value(), target.Name)).
			WithSecondary(target.Span, "interface declared here").
			WithHelp(fmt.Sprintf("use `implements %s` instead", parent.Value())))
	})
}
