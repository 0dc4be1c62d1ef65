package ast

import (
	"testing"

	"quill/internal/source"
	"quill/internal/token"
)

func variable(start uint32, text string) *Variable {
	end := start + uint32(len(text))
	return &Variable{Token: token.Token{Kind: token.Variable, Span: source.Span{Start: start, End: end}, Text: text}}
}

func comma(at uint32) token.Token {
	return token.Token{Kind: token.Comma, Span: source.Span{Start: at, End: at + 1}, Text: ","}
}

func TestNewSequenceInvariant(t *testing.T) {
	tests := []struct {
		name      string
		items     int
		seps      int
		wantPanic bool
	}{
		{"empty", 0, 0, false},
		{"one", 1, 0, false},
		{"three", 3, 2, false},
		{"empty with separator", 0, 1, true},
		{"trailing separator", 2, 2, true},
		{"missing separator", 3, 1, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := make([]*Variable, tt.items)
			for i := range items {
				items[i] = variable(uint32(i*4), "$a")
			}
			seps := make([]token.Token, tt.seps)
			for i := range seps {
				seps[i] = comma(uint32(i*4 + 2))
			}
			defer func() {
				r := recover()
				if (r != nil) != tt.wantPanic {
					t.Fatalf("panic = %v, wantPanic %v", r, tt.wantPanic)
				}
			}()
			seq := NewSequence(items, seps)
			if seq.Len() != tt.items {
				t.Fatalf("Len = %d", seq.Len())
			}
		})
	}
}

func TestSequenceSpan(t *testing.T) {
	var empty Sequence[*Variable]
	if _, ok := empty.Span(); ok {
		t.Fatal("empty sequence has no span")
	}
	if _, ok := empty.First(); ok {
		t.Fatal("empty sequence has no first item")
	}

	seq := NewSequence([]*Variable{variable(7, "$a"), variable(11, "$bb")}, []token.Token{comma(9)})
	sp, ok := seq.Span()
	if !ok || sp.Start != 7 || sp.End != 14 {
		t.Fatalf("Span = %v, %v", sp, ok)
	}
	last, _ := seq.Last()
	if last.Name() != "bb" {
		t.Fatalf("Last().Name() = %q", last.Name())
	}
}

func TestTerminators(t *testing.T) {
	semi := NewTerminator(token.Token{Kind: token.Semicolon, Span: source.Span{Start: 3, End: 4}})
	if semi.Kind != TerminatorSemicolon {
		t.Fatalf("kind = %v", semi.Kind)
	}
	closeTag := NewTerminator(token.Token{Kind: token.CloseTag, Span: source.Span{Start: 5, End: 8}})
	if closeTag.Kind != TerminatorCloseTag || closeTag.Span().End != 8 {
		t.Fatalf("close tag terminator = %+v", closeTag)
	}
	eof := EOFTerminator(source.Span{Start: 2, End: 6})
	if eof.Kind != TerminatorEOF || !eof.Span().Empty() || eof.Span().Start != 6 {
		t.Fatalf("eof terminator = %+v span %v", eof, eof.Span())
	}
}
