// Package names resolves class, function and constant names of one file to
// their fully-qualified form, honoring namespaces and use imports.
package names

import (
	"strings"

	"quill/internal/source"
)

// Kind is the namespace a name lives in. Classes, functions and constants
// are imported and resolved independently.
type Kind uint8

const (
	KindClass Kind = iota
	KindFunction
	KindConstant
)

func (k Kind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindFunction:
		return "function"
	case KindConstant:
		return "constant"
	}
	return "unknown"
}

// Declaration is a top-level symbol declared in the file.
type Declaration struct {
	Kind Kind
	Name source.StringID // fully-qualified, without leading "\"
	Span source.Span     // span of the declared identifier
}

// reference is one resolved name occurrence.
type reference struct {
	kind     Kind
	name     source.StringID
	fallback source.StringID // global name for unqualified functions/constants
}

// Table holds the resolution results for one file. It is immutable after
// Resolve returns and safe for concurrent reads.
type Table struct {
	strings *source.Interner
	refs    map[source.Span]reference
	decls   []Declaration
}

func newTable(strings *source.Interner) *Table {
	if strings == nil {
		strings = source.NewInterner()
	}
	return &Table{strings: strings, refs: make(map[source.Span]reference)}
}

// Strings returns the interner the table was built with.
func (t *Table) Strings() *source.Interner { return t.strings }

// Resolve returns the fully-qualified name recorded for the name at span.
func (t *Table) Resolve(span source.Span) (string, bool) {
	ref, ok := t.refs[span]
	if !ok {
		return "", false
	}
	return t.strings.MustLookup(ref.name), true
}

// Fallback returns the global name an unqualified function or constant
// reference falls back to when the namespaced one does not exist.
func (t *Table) Fallback(span source.Span) (string, bool) {
	ref, ok := t.refs[span]
	if !ok || ref.fallback == source.NoStringID {
		return "", false
	}
	return t.strings.MustLookup(ref.fallback), true
}

// KindOf reports which namespace the name at span was resolved in.
func (t *Table) KindOf(span source.Span) (Kind, bool) {
	ref, ok := t.refs[span]
	return ref.kind, ok
}

// Declarations lists declared symbols in source order.
func (t *Table) Declarations() []Declaration {
	return t.decls
}

// Name returns the string of an interned declaration name.
func (t *Table) Name(id source.StringID) string {
	return t.strings.MustLookup(id)
}

// Len returns the number of resolved references.
func (t *Table) Len() int { return len(t.refs) }

func (t *Table) record(span source.Span, kind Kind, fqn, fallback string) {
	ref := reference{kind: kind, name: t.strings.Intern(fqn)}
	if fallback != "" && fallback != fqn {
		ref.fallback = t.strings.Intern(fallback)
	}
	t.refs[span] = ref
}

func (t *Table) declare(kind Kind, fqn string, span source.Span) {
	t.decls = append(t.decls, Declaration{Kind: kind, Name: t.strings.Intern(fqn), Span: span})
	t.record(span, kind, fqn, "")
}

// Join builds "ns\name"; an empty namespace yields name unchanged.
func Join(ns, name string) string {
	if ns == "" {
		return name
	}
	return ns + `\` + name
}

// Short returns the last segment of a qualified name.
func Short(fqn string) string {
	if i := strings.LastIndexByte(fqn, '\\'); i >= 0 {
		return fqn[i+1:]
	}
	return fqn
}
