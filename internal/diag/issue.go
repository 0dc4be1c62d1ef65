package diag

import (
	"quill/internal/source"
)

// Annotation points at a span of source with an optional message.
type Annotation struct {
	Span    source.Span
	Message string
	Primary bool
}

// Issue is one finding. Issues are values; producers build them with the
// With* helpers and never mutate them after pushing into a Collection.
type Issue struct {
	Level       Level
	Code        Code
	Rule        string
	Message     string
	Annotations []Annotation
	Notes       []string
	Help        string
	Suggestion  *Fix
}

// Fixable reports whether the issue carries a suggested fix.
func (i Issue) Fixable() bool {
	return i.Suggestion != nil
}

// Primary returns the primary annotation span.
func (i Issue) Primary() (source.Span, bool) {
	for _, a := range i.Annotations {
		if a.Primary {
			return a.Span, true
		}
	}
	return source.Span{}, false
}
