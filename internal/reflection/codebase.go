package reflection

import (
	"slices"

	"quill/internal/diag"
	"quill/internal/source"
)

type SymbolKind uint8

const (
	SymbolClass SymbolKind = iota
	SymbolFunction
	SymbolConstant
)

func (k SymbolKind) String() string {
	switch k {
	case SymbolClass:
		return "class"
	case SymbolFunction:
		return "function"
	case SymbolConstant:
		return "constant"
	}
	return "symbol"
}

// Conflict records a second declaration of an already known name.
// First stays authoritative.
type Conflict struct {
	Kind      SymbolKind
	Name      string
	First     source.Span
	Duplicate source.Span
}

// Codebase is either a per-file fragment or the merged model.
type Codebase struct {
	Classes   map[string]*Class
	Functions map[string]*Function
	Constants map[string]*Constant
	Conflicts []Conflict `msgpack:",omitempty"`

	// Issues are produced by populate, one per conflict.
	Issues    diag.Collection `msgpack:"-"`
	Populated bool            `msgpack:"-"`
}

func NewCodebase() *Codebase {
	return &Codebase{
		Classes:   make(map[string]*Class),
		Functions: make(map[string]*Function),
		Constants: make(map[string]*Constant),
	}
}

// Len returns the number of symbols of all kinds.
func (cb *Codebase) Len() int {
	if cb == nil {
		return 0
	}
	return len(cb.Classes) + len(cb.Functions) + len(cb.Constants)
}

// Class looks up a class-like by fully-qualified name.
func (cb *Codebase) Class(name string) (*Class, bool) {
	if cb == nil {
		return nil, false
	}
	c, ok := cb.Classes[Key(name)]
	return c, ok
}

func (cb *Codebase) Function(name string) (*Function, bool) {
	if cb == nil {
		return nil, false
	}
	f, ok := cb.Functions[Key(name)]
	return f, ok
}

func (cb *Codebase) Constant(name string) (*Constant, bool) {
	if cb == nil {
		return nil, false
	}
	c, ok := cb.Constants[ConstantKey(name)]
	return c, ok
}

// AddClass inserts c unless the key is taken; a clash is recorded as a
// conflict and the existing declaration stays.
func (cb *Codebase) AddClass(c *Class) bool {
	key := Key(c.Name)
	if first, ok := cb.Classes[key]; ok {
		cb.Conflicts = append(cb.Conflicts, Conflict{Kind: SymbolClass, Name: first.Name, First: first.Span, Duplicate: c.Span})
		return false
	}
	cb.Classes[key] = c
	return true
}

func (cb *Codebase) AddFunction(f *Function) bool {
	key := Key(f.Name)
	if first, ok := cb.Functions[key]; ok {
		cb.Conflicts = append(cb.Conflicts, Conflict{Kind: SymbolFunction, Name: first.Name, First: first.Span, Duplicate: f.Span})
		return false
	}
	cb.Functions[key] = f
	return true
}

func (cb *Codebase) AddConstant(c *Constant) bool {
	key := ConstantKey(c.Name)
	if first, ok := cb.Constants[key]; ok {
		cb.Conflicts = append(cb.Conflicts, Conflict{Kind: SymbolConstant, Name: first.Name, First: first.Span, Duplicate: c.Span})
		return false
	}
	cb.Constants[key] = c
	return true
}

// ClassKeys returns the class keys in sorted order.
func (cb *Codebase) ClassKeys() []string {
	return sortedKeys(cb.Classes)
}

func (cb *Codebase) FunctionKeys() []string {
	return sortedKeys(cb.Functions)
}

func (cb *Codebase) ConstantKeys() []string {
	return sortedKeys(cb.Constants)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Rebase moves every span of a cached fragment to file. Fragments loaded from
// the disk cache carry the file id of the run that produced them.
func (cb *Codebase) Rebase(file source.FileID) {
	re := func(sp *source.Span) { sp.File = file }
	for _, c := range cb.Classes {
		re(&c.Span)
		re(&c.ParentSpan)
		for i := range c.Interfaces {
			re(&c.Interfaces[i].Span)
		}
		for i := range c.Traits {
			re(&c.Traits[i].Span)
		}
		for i := range c.Methods {
			re(&c.Methods[i].Span)
		}
		for i := range c.Properties {
			re(&c.Properties[i].Span)
		}
		for i := range c.Constants {
			re(&c.Constants[i].Span)
		}
	}
	for _, f := range cb.Functions {
		re(&f.Span)
	}
	for _, c := range cb.Constants {
		re(&c.Span)
	}
	for i := range cb.Conflicts {
		re(&cb.Conflicts[i].First)
		re(&cb.Conflicts[i].Duplicate)
	}
}
