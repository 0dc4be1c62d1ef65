package linter

import (
	"fmt"
	"strconv"

	"quill/internal/diag"
	"quill/internal/reflection"
	"quill/internal/semantics"
	"quill/internal/source"
)

// Context is what a rule sees while checking one file.
type Context struct {
	Semantics *semantics.Semantics
	Codebase  *reflection.Codebase

	rule    string
	level   diag.Level
	options map[string]any
	issues  *diag.Collection
}

// Rule returns the full name of the running rule.
func (c *Context) Rule() string { return c.rule }

// Level is the resolved level issues of this rule are reported at.
func (c *Context) Level() diag.Level { return c.level }

// Text returns the source text covered by sp.
func (c *Context) Text(sp source.Span) string {
	return c.Semantics.Source.Slice(sp)
}

// Issue starts an issue at the rule's level with the primary span set.
func (c *Context) Issue(primary source.Span, msg string) diag.Issue {
	return diag.New(c.level, diag.LintRule, c.rule, msg).WithPrimary(primary, "")
}

// Report records issue. Level and rule identity are forced to the resolved
// ones so configuration always wins over what the rule built.
func (c *Context) Report(issue diag.Issue) {
	issue.Level = c.level
	issue.Rule = c.rule
	if issue.Code == diag.UnknownCode {
		issue.Code = diag.LintRule
	}
	c.issues.Push(issue)
}

// OptionString returns option key as a string, def when unset.
func (c *Context) OptionString(key, def string) string {
	v, ok := c.options[key]
	if !ok {
		return def
	}
	switch s := v.(type) {
	case string:
		return s
	case fmt.Stringer:
		return s.String()
	}
	return fmt.Sprint(v)
}

// OptionInt returns option key as an int, def when unset or not numeric.
// TOML decodes integers as int64, JSON as float64; both are accepted.
func (c *Context) OptionInt(key string, def int) int {
	switch v := c.options[key].(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

// OptionBool returns option key as a bool, def when unset.
func (c *Context) OptionBool(key string, def bool) bool {
	switch v := c.options[key].(type) {
	case bool:
		return v
	case string:
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}
