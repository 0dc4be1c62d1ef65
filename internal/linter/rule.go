package linter

import "quill/internal/diag"

// Rule checks one file. Check must not retain ctx after returning and must
// not mutate the semantics or codebase it reads.
type Rule interface {
	Name() string
	DefaultLevel() diag.Level
	Check(ctx *Context)
}

// VersionConstrained is implemented by rules that only apply to some
// language versions. Constraint is a semver constraint, e.g. ">= 8.0".
type VersionConstrained interface {
	Constraint() string
}

// Described is implemented by rules that document themselves for `quill rules`.
type Described interface {
	Description() string
}

// Fixable marks rules that attach suggestions to their issues.
type Fixable interface {
	Fixable() bool
}

// Plugin groups rules under a common prefix.
type Plugin struct {
	Name    string
	Default bool
	Rules   []Rule
}

// FullName is the identity used in configuration and issues.
func FullName(plugin, rule string) string {
	return plugin + "/" + rule
}
