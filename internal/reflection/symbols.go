package reflection

import (
	"quill/internal/source"
)

type ClassKind uint8

const (
	KindClass ClassKind = iota
	KindInterface
	KindTrait
	KindEnum
)

func (k ClassKind) String() string {
	switch k {
	case KindClass:
		return "class"
	case KindInterface:
		return "interface"
	case KindTrait:
		return "trait"
	case KindEnum:
		return "enum"
	}
	return "unknown"
}

type Visibility uint8

const (
	Public Visibility = iota
	Protected
	Private
)

func (v Visibility) String() string {
	switch v {
	case Protected:
		return "protected"
	case Private:
		return "private"
	}
	return "public"
}

// Parameter is one parameter of a function or method signature.
type Parameter struct {
	Name       string
	Type       string `msgpack:",omitempty"`
	ByRef      bool   `msgpack:",omitempty"`
	Variadic   bool   `msgpack:",omitempty"`
	HasDefault bool   `msgpack:",omitempty"`
	Promoted   bool   `msgpack:",omitempty"`
}

// Signature is shared by functions and methods.
type Signature struct {
	Parameters []Parameter
	ReturnType string `msgpack:",omitempty"`
	ByRef      bool   `msgpack:",omitempty"`
}

// Function is a top-level function.
type Function struct {
	Name string // fully-qualified, as written
	Span source.Span
	Signature
}

// Constant is a top-level constant.
type Constant struct {
	Name string
	Span source.Span
}

type Method struct {
	Name       string
	Span       source.Span
	Visibility Visibility
	Static     bool `msgpack:",omitempty"`
	Abstract   bool `msgpack:",omitempty"`
	Final      bool `msgpack:",omitempty"`
	Signature
}

type Property struct {
	Name       string // without "$"
	Span       source.Span
	Visibility Visibility
	Type       string `msgpack:",omitempty"`
	Static     bool   `msgpack:",omitempty"`
	Readonly   bool   `msgpack:",omitempty"`
	HasDefault bool   `msgpack:",omitempty"`
}

type ClassConstant struct {
	Name       string
	Span       source.Span
	Visibility Visibility
}

// Class describes any class-like declaration.
type Class struct {
	Name     string // fully-qualified, as declared
	Kind     ClassKind
	Span     source.Span // the declared name
	Abstract bool `msgpack:",omitempty"`
	Final    bool `msgpack:",omitempty"`
	Readonly bool `msgpack:",omitempty"`

	// Parent is the extended class name; for interfaces it is empty and the
	// extended interfaces are listed in Interfaces.
	Parent     string      `msgpack:",omitempty"`
	ParentSpan source.Span `msgpack:",omitempty"`
	Interfaces []Reference `msgpack:",omitempty"`
	Traits     []Reference `msgpack:",omitempty"`
	Backing    string      `msgpack:",omitempty"`

	Methods    []Method        `msgpack:",omitempty"`
	Properties []Property      `msgpack:",omitempty"`
	Constants  []ClassConstant `msgpack:",omitempty"`
	Cases      []string        `msgpack:",omitempty"`

	// Resolved is filled by reflector.Populate.
	Resolved Resolved `msgpack:"-"`
}

// Reference is a class-like name used by another declaration.
type Reference struct {
	Name string
	Span source.Span
}

// Resolved holds the links computed by populate.
type Resolved struct {
	Populated bool
	// ParentFound reports whether Parent names a known class-like.
	ParentFound bool
	// ParentKind is the kind of the parent when found.
	ParentKind ClassKind
	// Ancestors are the keys of every transitive parent, interface and trait,
	// nearest first, without duplicates.
	Ancestors []string
	// Unresolved lists referenced names that are not in the codebase.
	Unresolved []Reference
}

// Method looks a method up by case-insensitive name in the declaring class.
func (c *Class) Method(name string) (*Method, bool) {
	key := Key(name)
	for i := range c.Methods {
		if Key(c.Methods[i].Name) == key {
			return &c.Methods[i], true
		}
	}
	return nil, false
}

// HasAncestor reports whether key is among the populated ancestors.
func (c *Class) HasAncestor(name string) bool {
	key := Key(name)
	for _, a := range c.Resolved.Ancestors {
		if a == key {
			return true
		}
	}
	return false
}
