package reflector

import (
	"fmt"
	"slices"

	"quill/internal/diag"
	"quill/internal/reflection"
)

// Populate resolves parent, interface and trait links of every class-like
// and turns merge conflicts into issues. It mutates cb in place, never
// removes symbols and is idempotent: links and issues are recomputed from
// scratch on every call.
//
// Populate must finish before cb is shared with other goroutines.
func Populate(cb *reflection.Codebase) {
	if cb == nil {
		return
	}
	for _, key := range cb.ClassKeys() {
		c := cb.Classes[key]
		c.Resolved = resolveClass(cb, key, c)
	}
	cb.Issues = conflictIssues(cb.Conflicts)
	cb.Populated = true
}

func resolveClass(cb *reflection.Codebase, self string, c *reflection.Class) reflection.Resolved {
	res := reflection.Resolved{Populated: true}
	if c.Parent != "" {
		if parent, ok := cb.Class(c.Parent); ok {
			res.ParentFound = true
			res.ParentKind = parent.Kind
		} else {
			res.Unresolved = append(res.Unresolved, reflection.Reference{Name: c.Parent, Span: c.ParentSpan})
		}
	}
	for _, ref := range append(slices.Clone(c.Interfaces), c.Traits...) {
		if _, ok := cb.Class(ref.Name); !ok {
			res.Unresolved = append(res.Unresolved, ref)
		}
	}
	res.Ancestors = ancestors(cb, self, c)
	return res
}

func directRefs(c *reflection.Class) []reflection.Reference {
	refs := make([]reflection.Reference, 0, 1+len(c.Interfaces)+len(c.Traits))
	if c.Parent != "" {
		refs = append(refs, reflection.Reference{Name: c.Parent, Span: c.ParentSpan})
	}
	refs = append(refs, c.Interfaces...)
	refs = append(refs, c.Traits...)
	return refs
}

// ancestors walks the inheritance graph breadth-first. The visited set makes
// it safe on cyclic hierarchies; the class itself is never its own ancestor.
func ancestors(cb *reflection.Codebase, self string, c *reflection.Class) []string {
	visited := map[string]bool{self: true}
	var out []string
	queue := directRefs(c)
	for len(queue) > 0 {
		ref := queue[0]
		queue = queue[1:]
		key := reflection.Key(ref.Name)
		if visited[key] {
			continue
		}
		visited[key] = true
		next, ok := cb.Classes[key]
		if !ok {
			continue
		}
		out = append(out, key)
		queue = append(queue, directRefs(next)...)
	}
	return out
}

func conflictIssues(conflicts []reflection.Conflict) diag.Collection {
	var out diag.Collection
	for _, c := range conflicts {
		code := diag.RefDuplicateClass
		switch c.Kind {
		case reflection.SymbolFunction:
			code = diag.RefDuplicateFunction
		case reflection.SymbolConstant:
			code = diag.RefDuplicateConstant
		}
		out.Push(diag.New(diag.LevelError, code, RuleName,
			fmt.Sprintf("%s `%s` is declared more than once", c.Kind, c.Name)).
			WithPrimary(c.Duplicate, "duplicate declaration").
			WithSecondary(c.First, "first declared here").
			WithNote("the first declaration is used for analysis"))
	}
	return out
}
