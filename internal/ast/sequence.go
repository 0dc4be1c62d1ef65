package ast

import (
	"fmt"

	"quill/internal/source"
	"quill/internal/token"
)

// Sequence is an ordered list of items with the separator tokens between them.
// len(Separators) == max(len(Items)-1, 0) always holds.
type Sequence[T Node] struct {
	Items      []T
	Separators []token.Token
}

// NewSequence builds a sequence and panics if the separator count does not
// match the item count. A mismatch is a parser bug, never a user error.
func NewSequence[T Node](items []T, separators []token.Token) Sequence[T] {
	want := max(len(items)-1, 0)
	if len(separators) != want {
		panic(fmt.Sprintf("ast: sequence with %d items has %d separators, want %d", len(items), len(separators), want))
	}
	return Sequence[T]{Items: items, Separators: separators}
}

func (s Sequence[T]) Len() int { return len(s.Items) }

func (s Sequence[T]) Empty() bool { return len(s.Items) == 0 }

// First returns the first item; ok is false for an empty sequence.
func (s Sequence[T]) First() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	return s.Items[0], true
}

// Last returns the last item; ok is false for an empty sequence.
func (s Sequence[T]) Last() (item T, ok bool) {
	if len(s.Items) == 0 {
		return item, false
	}
	return s.Items[len(s.Items)-1], true
}

// Span covers the first item through the last item. Empty sequences have no span.
func (s Sequence[T]) Span() (source.Span, bool) {
	first, ok := s.First()
	if !ok {
		return source.Span{}, false
	}
	last, _ := s.Last()
	return first.Span().Cover(last.Span()), true
}
