package diag

import (
	"testing"

	"quill/internal/source"
)

func issueAt(level Level, start uint32, fixable bool) Issue {
	i := New(level, LintRule, "test/rule", "msg").
		WithPrimary(source.Span{File: 1, Start: start, End: start + 1}, "")
	if fixable {
		i = i.WithSuggestion(Fix{Title: "fix"})
	}
	return i
}

func starts(c Collection) []uint32 {
	out := make([]uint32, 0, c.Len())
	for _, i := range c.Items() {
		sp, _ := i.Primary()
		out = append(out, sp.Start)
	}
	return out
}

func equalStarts(a, b []uint32) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestOnlyFixablePreservesOrder(t *testing.T) {
	c := NewCollection(
		issueAt(LevelHelp, 5, true),
		issueAt(LevelError, 1, false),
		issueAt(LevelWarning, 9, true),
		issueAt(LevelNote, 2, false),
		issueAt(LevelHelp, 3, true),
	)
	got := c.OnlyFixable()
	if want := []uint32{5, 9, 3}; !equalStarts(starts(got), want) {
		t.Fatalf("OnlyFixable order = %v, want %v", starts(got), want)
	}
	for _, i := range got.Items() {
		if !i.Fixable() {
			t.Fatalf("non-fixable issue survived: %+v", i)
		}
	}
	if c.Len() != 5 {
		t.Fatalf("source collection mutated: len=%d", c.Len())
	}
}

func TestFilterMinLevel(t *testing.T) {
	c := NewCollection(
		issueAt(LevelHelp, 1, false),
		issueAt(LevelError, 2, false),
		issueAt(LevelNote, 3, false),
		issueAt(LevelWarning, 4, false),
	)
	tests := []struct {
		min  Level
		want []uint32
	}{
		{LevelHelp, []uint32{1, 2, 3, 4}},
		{LevelNote, []uint32{2, 3, 4}},
		{LevelWarning, []uint32{2, 4}},
		{LevelError, []uint32{2}},
	}
	for _, tt := range tests {
		t.Run(tt.min.String(), func(t *testing.T) {
			if got := starts(c.FilterMinLevel(tt.min)); !equalStarts(got, tt.want) {
				t.Fatalf("FilterMinLevel(%v) = %v, want %v", tt.min, got, tt.want)
			}
		})
	}
}

func TestHighestLevelAndCounts(t *testing.T) {
	var empty Collection
	if _, ok := empty.HighestLevel(); ok {
		t.Fatal("empty collection must have no highest level")
	}
	if empty.HasErrors() {
		t.Fatal("empty collection has no errors")
	}

	var c Collection
	c.Push(issueAt(LevelNote, 1, false))
	c.Push(issueAt(LevelWarning, 2, false))
	other := NewCollection(issueAt(LevelNote, 3, false))
	c.Extend(other)

	level, ok := c.HighestLevel()
	if !ok || level != LevelWarning {
		t.Fatalf("HighestLevel = %v,%v; want warning", level, ok)
	}
	if c.HasErrors() {
		t.Fatal("warning-only collection must not report errors")
	}
	counts := c.CountByLevel()
	if counts[LevelNote] != 2 || counts[LevelWarning] != 1 || counts[LevelError] != 0 {
		t.Fatalf("CountByLevel = %v", counts)
	}
	if !equalStarts(starts(c), []uint32{1, 2, 3}) {
		t.Fatalf("Extend order = %v", starts(c))
	}
}

func TestCollectionDoesNotDeduplicate(t *testing.T) {
	var c Collection
	i := issueAt(LevelError, 7, false)
	c.Report(i)
	c.Report(i)
	if c.Len() != 2 {
		t.Fatalf("Len = %d, want 2", c.Len())
	}
}
