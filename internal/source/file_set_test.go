package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("test.php", []byte("hello world"), 0)
	if id1 != 0 {
		t.Errorf("Expected first FileID to be 0, got %d", id1)
	}

	id2 := fs.Add("test.php", []byte("hello universe"), 0)
	if id2 != 1 {
		t.Errorf("Expected second FileID to be 1, got %d", id2)
	}

	latestID, exists := fs.GetLatest("test.php")
	if !exists || latestID != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latestID, exists, id2)
	}

	if got := string(fs.Get(id1).Content); got != "hello world" {
		t.Errorf("first content = %q", got)
	}
	if got := string(fs.Get(id2).Content); got != "hello universe" {
		t.Errorf("second content = %q", got)
	}
}

func TestFileSetRegisterFill(t *testing.T) {
	fs := NewFileSet()
	id := fs.Register("a/b.php", 0)
	if again := fs.Register("a/./b.php", 0); again != id {
		t.Fatalf("Register same path: got %d, want %d", again, id)
	}
	if fs.Get(id).Loaded() {
		t.Fatal("registered file must not be loaded")
	}

	f := fs.Fill(id, []byte("<?php\n$a;\n"), FileNormalizedCRLF)
	if !f.Loaded() {
		t.Fatal("filled file must be loaded")
	}
	if f.Flags&FileNormalizedCRLF == 0 {
		t.Error("fill flags were dropped")
	}
	if len(f.LineIdx) != 2 {
		t.Errorf("LineIdx = %v, want 2 entries", f.LineIdx)
	}

	// второй Fill не перезаписывает содержимое
	fs.Fill(id, []byte("other"), 0)
	if got := string(fs.Get(id).Content); got != "<?php\n$a;\n" {
		t.Errorf("content overwritten: %q", got)
	}
}

func TestFileSetResolveAndGetLine(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("v.php", []byte("<?php\nglobal $a;\necho 1;"))
	f := fs.Get(id)

	start, end := fs.Resolve(Span{File: id, Start: 6, End: 12})
	if start != (LineCol{Line: 2, Col: 1}) || end != (LineCol{Line: 2, Col: 7}) {
		t.Fatalf("Resolve = %v..%v", start, end)
	}
	if got := f.GetLine(3); got != "echo 1;" {
		t.Errorf("GetLine(3) = %q", got)
	}
	if got := f.GetLine(9); got != "" {
		t.Errorf("GetLine(9) = %q, want empty", got)
	}
	if got := f.Slice(Span{File: id, Start: 6, End: 12}); got != "global" {
		t.Errorf("Slice = %q", got)
	}
	if f.Flags&FileVirtual == 0 {
		t.Error("virtual flag missing")
	}
}

func TestFileSetLoadNormalizes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "crlf.php")
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("<?php\r\n$a;\r\n")...)
	if err := os.WriteFile(path, content, 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if string(f.Content) != "<?php\n$a;\n" {
		t.Errorf("content = %q", f.Content)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Errorf("flags = %b, want BOM and CRLF", f.Flags)
	}
}
