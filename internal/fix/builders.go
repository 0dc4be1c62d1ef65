// Package fix builds diag.Fix suggestions attached to lint issues.
//
// Правки (Insert, Delete, Replace) собираются в фикс: одна правка через
// DeleteSpan/ReplaceSpan, несколько через Compose.
package fix

import (
	"sort"

	"quill/internal/diag"
	"quill/internal/source"
)

// Option adjusts a fix after its edits are built.
type Option func(*diag.Fix)

// WithApplicability lowers or raises the confidence of a fix.
func WithApplicability(app diag.FixApplicability) Option {
	return func(f *diag.Fix) { f.Applicability = app }
}

// WithKind reclassifies a fix, e.g. as a rewrite rather than a quick fix.
func WithKind(kind diag.FixKind) Option {
	return func(f *diag.Fix) { f.Kind = kind }
}

// Preferred marks the fix an editor should offer first.
func Preferred() Option {
	return func(f *diag.Fix) { f.IsPreferred = true }
}

// WithID sets a stable identifier.
func WithID(id string) Option {
	return func(f *diag.Fix) { f.ID = id }
}

// Insert is a zero-width edit that puts text before at.Start.
func Insert(at source.Span, text string) diag.TextEdit {
	return diag.TextEdit{Span: at.ZeroideToStart(), NewText: text}
}

// Delete removes span; expect guards against stale content.
func Delete(span source.Span, expect string) diag.TextEdit {
	return diag.TextEdit{Span: span, OldText: expect}
}

// Replace swaps the text under span for newText.
func Replace(span source.Span, newText, expect string) diag.TextEdit {
	return diag.TextEdit{Span: span, NewText: newText, OldText: expect}
}

// DeleteSpan is a quick fix with a single Delete edit.
func DeleteSpan(title string, span source.Span, expect string, opts ...Option) diag.Fix {
	return Compose(title, []diag.TextEdit{Delete(span, expect)}, opts...)
}

// ReplaceSpan is a quick fix with a single Replace edit.
func ReplaceSpan(title string, span source.Span, newText, expect string, opts ...Option) diag.Fix {
	return Compose(title, []diag.TextEdit{Replace(span, newText, expect)}, opts...)
}

// Compose builds a safe quick fix from edits and sorts them by position, so
// consumers can apply them back to front. An insertion sorts before an edit
// starting at the same offset. Edits must not overlap otherwise.
func Compose(title string, edits []diag.TextEdit, opts ...Option) diag.Fix {
	sorted := append([]diag.TextEdit(nil), edits...)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].Span, sorted[j].Span
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.Empty() && !b.Empty()
	})
	f := diag.Fix{
		Title:         title,
		Kind:          diag.FixKindQuickFix,
		Applicability: diag.FixApplicabilityAlwaysSafe,
		Edits:         sorted,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&f)
		}
	}
	return f
}
