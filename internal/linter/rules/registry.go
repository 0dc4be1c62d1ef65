// Package rules holds the built-in lint rules.
package rules

import (
	"quill/internal/linter"
)

// Builtin returns the built-in plugins in registration order. Rules run and
// report in exactly this order.
func Builtin() []linter.Plugin {
	return []linter.Plugin{
		{Name: "safety", Default: true, Rules: []linter.Rule{NoGlobal{}}},
		{Name: "naming", Default: true, Rules: []linter.Rule{ClassName{}, FunctionName{}}},
		{Name: "redundancy", Default: true, Rules: []linter.Rule{RedundantClosingTag{}, RedundantNoop{}}},
		{Name: "consistency", Default: true, Rules: []linter.Rule{LowercaseKeyword{}}},
		{Name: "correctness", Default: true, Rules: []linter.Rule{UndefinedParent{}, InterfaceAsParent{}}},
		{Name: "migration", Rules: []linter.Rule{StrContains{}}},
	}
}
