// Package reflector extracts declarations from analyzed files into
// reflection fragments, folds fragments into one codebase and resolves the
// cross-file links the linter relies on.
package reflector

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/names"
	"quill/internal/reflection"
	"quill/internal/semantics"
	"quill/internal/token"
)

// RuleName is the issue identity of reflector issues.
const RuleName = "reflector"

// Reflect builds the fragment of one file. It is a pure function of sem and
// works on partial programs; a nil program gives an empty fragment.
func Reflect(sem *semantics.Semantics) *reflection.Codebase {
	cb := reflection.NewCodebase()
	if sem == nil || sem.Program == nil {
		return cb
	}
	r := &reflectorState{names: sem.Names, cb: cb}
	ast.Inspect(sem.Program, r.visit)
	return cb
}

type reflectorState struct {
	names *names.Table
	cb    *reflection.Codebase
}

func (r *reflectorState) visit(n ast.Node) bool {
	switch d := n.(type) {
	case *ast.Function:
		r.cb.AddFunction(&reflection.Function{
			Name:      r.declared(d.Name),
			Span:      d.Name.Span(),
			Signature: r.signature(d.ByRef, d.Parameters, d.ReturnType),
		})
	case *ast.Const:
		for _, item := range d.Items.Items {
			r.cb.AddConstant(&reflection.Constant{Name: r.declared(item.Name), Span: item.Name.Span()})
		}
	case *ast.Class:
		c := r.class(reflection.KindClass, d.Name, d.Body)
		c.Abstract = ast.HasModifier(d.Modifiers, token.KwAbstract)
		c.Final = ast.HasModifier(d.Modifiers, token.KwFinal)
		c.Readonly = ast.HasModifier(d.Modifiers, token.KwReadonly)
		if d.Extends != nil {
			if parent, ok := d.Extends.Types.First(); ok {
				c.Parent = r.resolved(parent)
				c.ParentSpan = parent.Span()
			}
		}
		if d.Implements != nil {
			c.Interfaces = r.references(d.Implements.Types.Items)
		}
		r.cb.AddClass(c)
	case *ast.Interface:
		c := r.class(reflection.KindInterface, d.Name, d.Body)
		if d.Extends != nil {
			c.Interfaces = r.references(d.Extends.Types.Items)
		}
		r.cb.AddClass(c)
	case *ast.Trait:
		r.cb.AddClass(r.class(reflection.KindTrait, d.Name, d.Body))
	case *ast.Enum:
		c := r.class(reflection.KindEnum, d.Name, d.Body)
		c.Final = true
		if d.Backing != nil {
			c.Backing = r.hint(d.Backing.Type)
		}
		if d.Implements != nil {
			c.Interfaces = r.references(d.Implements.Types.Items)
		}
		r.cb.AddClass(c)
	}
	return true
}

// declared returns the fully-qualified name of a declaration identifier.
func (r *reflectorState) declared(id *ast.Identifier) string {
	if r.names != nil {
		if fqn, ok := r.names.Resolve(id.Span()); ok {
			return fqn
		}
	}
	return id.Value()
}

// resolved returns the fully-qualified form of a referenced name, or the
// name as written when the resolver left it alone (self, builtin types).
func (r *reflectorState) resolved(name *ast.Name) string {
	if r.names != nil {
		if fqn, ok := r.names.Resolve(name.Span()); ok {
			return fqn
		}
	}
	return strings.TrimPrefix(name.Value(), `\`)
}

func (r *reflectorState) references(list []*ast.Name) []reflection.Reference {
	refs := make([]reflection.Reference, 0, len(list))
	for _, n := range list {
		refs = append(refs, reflection.Reference{Name: r.resolved(n), Span: n.Span()})
	}
	return refs
}

func (r *reflectorState) hint(h *ast.Hint) string {
	if h == nil {
		return ""
	}
	parts := make([]string, 0, h.Types.Len())
	for _, t := range h.Types.Items {
		parts = append(parts, r.resolved(t))
	}
	s := strings.Join(parts, "|")
	if h.Question != nil {
		return "?" + s
	}
	return s
}

func (r *reflectorState) signature(byRef *token.Token, params *ast.ParameterList, ret *ast.ReturnType) reflection.Signature {
	sig := reflection.Signature{ByRef: byRef != nil}
	if ret != nil {
		sig.ReturnType = r.hint(ret.Hint)
	}
	if params == nil {
		return sig
	}
	for _, p := range params.Parameters.Items {
		sig.Parameters = append(sig.Parameters, reflection.Parameter{
			Name:       p.Variable.Name(),
			Type:       r.hint(p.Type),
			ByRef:      p.ByRef != nil,
			Variadic:   p.Ellipsis != nil,
			HasDefault: p.Default != nil,
			Promoted:   len(p.Modifiers) > 0,
		})
	}
	return sig
}

func visibility(mods []token.Token) reflection.Visibility {
	switch {
	case ast.HasModifier(mods, token.KwPrivate):
		return reflection.Private
	case ast.HasModifier(mods, token.KwProtected):
		return reflection.Protected
	}
	return reflection.Public
}

func (r *reflectorState) class(kind reflection.ClassKind, name *ast.Identifier, body *ast.ClassBody) *reflection.Class {
	c := &reflection.Class{Name: r.declared(name), Kind: kind, Span: name.Span()}
	if body == nil {
		return c
	}
	for _, member := range body.Members {
		switch m := member.(type) {
		case *ast.Method:
			c.Methods = append(c.Methods, reflection.Method{
				Name:       m.Name.Value(),
				Span:       m.Name.Span(),
				Visibility: visibility(m.Modifiers),
				Static:     ast.HasModifier(m.Modifiers, token.KwStatic),
				Abstract:   ast.HasModifier(m.Modifiers, token.KwAbstract) || kind == reflection.KindInterface,
				Final:      ast.HasModifier(m.Modifiers, token.KwFinal),
				Signature:  r.signature(m.ByRef, m.Parameters, m.ReturnType),
			})
			if strings.EqualFold(m.Name.Value(), "__construct") {
				c.Properties = append(c.Properties, promoted(m.Parameters, r)...)
			}
		case *ast.Property:
			for _, item := range m.Items.Items {
				c.Properties = append(c.Properties, reflection.Property{
					Name:       item.Variable.Name(),
					Span:       item.Variable.Span(),
					Visibility: visibility(m.Modifiers),
					Type:       r.hint(m.Type),
					Static:     ast.HasModifier(m.Modifiers, token.KwStatic),
					Readonly:   ast.HasModifier(m.Modifiers, token.KwReadonly),
					HasDefault: item.Default != nil,
				})
			}
		case *ast.ClassConstant:
			for _, item := range m.Items.Items {
				c.Constants = append(c.Constants, reflection.ClassConstant{
					Name:       item.Name.Value(),
					Span:       item.Name.Span(),
					Visibility: visibility(m.Modifiers),
				})
			}
		case *ast.EnumCase:
			c.Cases = append(c.Cases, m.Name.Value())
		case *ast.TraitUse:
			c.Traits = append(c.Traits, r.references(m.Traits.Items)...)
		}
	}
	return c
}

// promoted turns constructor-promoted parameters into properties.
func promoted(params *ast.ParameterList, r *reflectorState) []reflection.Property {
	var props []reflection.Property
	for _, p := range params.Parameters.Items {
		if len(p.Modifiers) == 0 {
			continue
		}
		props = append(props, reflection.Property{
			Name:       p.Variable.Name(),
			Span:       p.Variable.Span(),
			Visibility: visibility(p.Modifiers),
			Type:       r.hint(p.Type),
			Readonly:   ast.HasModifier(p.Modifiers, token.KwReadonly),
		})
	}
	return props
}
