package parser

import (
	"testing"

	"quill/internal/lexer"
	"quill/internal/source"
	"quill/internal/token"
)

func newStream(t *testing.T, src string) *TokenStream {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("stream.php", []byte(src))
	return NewTokenStream(lexer.NewCode(fs.Get(id)))
}

func TestTokenStreamPeekDoesNotAdvance(t *testing.T) {
	s := newStream(t, "$a + 1")
	if s.Peek().Kind != token.Variable || s.Peek().Kind != token.Variable {
		t.Fatal("Peek must be stable")
	}
	if got := s.PeekNth(2).Kind; got != token.IntLit {
		t.Fatalf("PeekNth(2) = %v", got)
	}
	if got := s.AdvanceAny().Kind; got != token.Variable {
		t.Fatalf("AdvanceAny = %v", got)
	}
	if got := s.Peek().Kind; got != token.Plus {
		t.Fatalf("after advance Peek = %v", got)
	}
}

func TestTokenStreamEOFForever(t *testing.T) {
	s := newStream(t, "x")
	s.AdvanceAny()
	for range 3 {
		if tok := s.AdvanceAny(); tok.Kind != token.EOF {
			t.Fatalf("got %v, want EOF", tok.Kind)
		}
	}
	if s.LastSpan().End != 1 {
		t.Fatalf("LastSpan = %v", s.LastSpan())
	}
}

func TestAdvanceIfKind(t *testing.T) {
	s := newStream(t, "; )")
	if _, err := s.AdvanceIfKind(token.Semicolon); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := s.AdvanceIfKind(token.Comma, token.Semicolon)
	pe, ok := err.(*Error)
	if !ok {
		t.Fatalf("error type %T", err)
	}
	if pe.Kind != ErrUnexpectedToken || pe.Found.Kind != token.RParen || len(pe.Expected) != 2 {
		t.Fatalf("error = %+v", pe)
	}
	if pe.Error() != "unexpected `)`, expected `,` or `;`" {
		t.Fatalf("message = %q", pe.Error())
	}
	// failed match must not consume
	if s.Peek().Kind != token.RParen {
		t.Fatal("AdvanceIfKind consumed on mismatch")
	}
}
