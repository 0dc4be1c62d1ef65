package names

import "strings"

// specialClassNames are resolved relative to the enclosing class at runtime.
var specialClassNames = map[string]struct{}{
	"self": {}, "static": {}, "parent": {},
}

// builtinTypes are reserved type names that never refer to a class.
var builtinTypes = map[string]struct{}{
	"int": {}, "float": {}, "string": {}, "bool": {}, "array": {}, "object": {},
	"callable": {}, "iterable": {}, "void": {}, "never": {}, "mixed": {},
	"null": {}, "false": {}, "true": {},
}

// IsSpecialClass reports whether name is self, static or parent.
func IsSpecialClass(name string) bool {
	_, ok := specialClassNames[strings.ToLower(name)]
	return ok
}

// IsBuiltinType reports whether name is a reserved scalar or pseudo type.
func IsBuiltinType(name string) bool {
	_, ok := builtinTypes[strings.ToLower(name)]
	return ok
}
