package lexer

import (
	"testing"

	"quill/internal/source"
)

// helper function to create a file
func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))
	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Fatalf("Peek = %q, want %q", got, want)
		}
		if got := cursor.Bump(); got != want {
			t.Fatalf("Bump = %q, want %q", got, want)
		}
	}
	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Peek/Bump past EOF must return 0")
	}
}

func TestPeekAtAndAdvance(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	if cursor.PeekAt(2) != 'c' || cursor.PeekAt(3) != 0 {
		t.Fatalf("PeekAt mismatch")
	}
	cursor.Advance(10)
	if cursor.Off != 3 || !cursor.EOF() {
		t.Fatalf("Advance must clamp to limit, Off=%d", cursor.Off)
	}
}

func TestHasPrefixFold(t *testing.T) {
	cursor := NewCursor(createFile("<?PHP echo"))
	if !cursor.HasPrefixFold("<?php") {
		t.Error("expected case-insensitive match")
	}
	if cursor.HasPrefixFold("<?phpx echo and more") {
		t.Error("prefix longer than input must not match")
	}
}

func TestMarkSpanReset(t *testing.T) {
	file := createFile("hello")
	cursor := NewCursor(file)
	m := cursor.Mark()
	cursor.Advance(3)
	sp := cursor.SpanFrom(m)
	if sp.Start != 0 || sp.End != 3 || sp.File != file.ID {
		t.Fatalf("SpanFrom = %v", sp)
	}
	cursor.Reset(m)
	if cursor.Off != 0 {
		t.Fatalf("Reset: Off = %d", cursor.Off)
	}
}
