package diagfmt

import (
	"bytes"
	"slices"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/fix"
	"quill/internal/source"
)

func collection(issues ...diag.Issue) diag.Collection {
	return diag.NewCollection(issues...)
}

// TestPathModes проверяет различные режимы форматирования путей
func TestPathModes(t *testing.T) {
	fs := source.NewFileSetWithBase("/home/user/project")
	content := []byte("<?php echo \"unterminated;\n")
	fileID := fs.AddVirtual("/home/user/project/src/test.php", content)

	issues := collection(diag.NewError(diag.LexUnterminatedString, "lexer",
		source.Span{File: fileID, Start: 11, End: 26}, "unterminated string literal"))

	tests := []struct {
		name     string
		mode     PathMode
		contains string
	}{
		{"absolute", PathModeAbsolute, "/home/user/project/src/test.php:1:12"},
		{"relative", PathModeRelative, "src/test.php:1:12"},
		{"basename", PathModeBasename, "test.php:1:12"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Pretty(&buf, issues, fs, PrettyOpts{PathMode: tt.mode}); err != nil {
				t.Fatalf("Pretty: %v", err)
			}
			output := buf.String()
			for _, want := range []string{tt.contains, "ERROR", "LEX1002", "[lexer]", "unterminated string literal"} {
				if !strings.Contains(output, want) {
					t.Errorf("expected output to contain %q, got:\n%s", want, output)
				}
			}
		})
	}
}

func TestPrettySnippet(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<?php\n\tglobal $a;\n")
	id := fs.AddVirtual("a.php", content)
	issue := diag.New(diag.LevelWarning, diag.LintRule, "safety/no-global", "avoid global").
		WithPrimary(source.Span{File: id, Start: 7, End: 13}, "here").
		WithHelp("pass it as a parameter")

	var buf bytes.Buffer
	if err := Pretty(&buf, collection(issue), fs, PrettyOpts{Context: 1}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	want := "a.php:2:2: WARNING LNT5001 [safety/no-global]: avoid global\n" +
		" 1 | <?php\n" +
		" 2 |     global $a;\n" +
		"   |     ^~~~~~ here\n" +
		"  = help: pass it as a parameter\n\n"
	if got := buf.String(); got != want {
		t.Fatalf("got:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyWideCharacters(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<?php $s = '日本'; $x;")
	id := fs.AddVirtual("w.php", content)
	start := uint32(strings.Index(string(content), "$x"))
	issue := diag.New(diag.LevelHelp, diag.LintRule, "r", "m").
		WithPrimary(source.Span{File: id, Start: start, End: start + 2}, "")

	var buf bytes.Buffer
	if err := Pretty(&buf, collection(issue), fs, PrettyOpts{}); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	lines := strings.Split(buf.String(), "\n")
	// "<?php $s = '" занимает 12 колонок, два иероглифа по две, "'; " ещё три
	caret := strings.Index(lines[2], "^")
	text := strings.Index(lines[1], "<?php")
	if got := caret - text; got != 19 {
		t.Fatalf("caret column = %d, want 19:\n%s", got, buf.String())
	}
}

func TestPrettyNotesAndFixes(t *testing.T) {
	fs := source.NewFileSet()
	content := []byte("<?php echo 1 ?>\n")
	fileID := fs.AddVirtual("test.php", content)

	primary := source.Span{File: fileID, Start: 13, End: 15}
	issue := diag.New(diag.LevelHelp, diag.LintRule, "redundancy/redundant-closing-tag", "redundant closing tag").
		WithPrimary(primary, "").
		WithSecondary(source.Span{File: fileID, Start: 6, End: 10}, "statement").
		WithNote("files without inline HTML do not need it").
		WithSuggestion(fix.ReplaceSpan("remove closing tag", source.Span{File: fileID, Start: 13, End: 16}, ";\n", "", fix.WithID("close-001")))

	var buf bytes.Buffer
	opts := PrettyOpts{PathMode: PathModeBasename, ShowNotes: true, ShowFixes: true, ShowPreview: true}
	if err := Pretty(&buf, collection(issue), fs, opts); err != nil {
		t.Fatalf("Pretty: %v", err)
	}
	output := buf.String()
	for _, want := range []string{
		"  = note: files without inline HTML do not need it",
		"  note: test.php:1:7: statement",
		"fix #1: remove closing tag",
		"id=close-001",
		`apply=";\n"`,
		"preview:",
		"- <?php echo 1 ?>",
		"+ <?php echo 1 ;",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected %q in output, got:\n%s", want, output)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php"))
	issue := diag.NewError(diag.SynUnexpectedEOF, "parser", source.Span{File: id, Start: 5, End: 5}, "unexpected end of input")

	var plain, colored bytes.Buffer
	if err := Pretty(&plain, collection(issue), fs, PrettyOpts{}); err != nil {
		t.Fatal(err)
	}
	if err := Pretty(&colored, collection(issue), fs, PrettyOpts{Color: true}); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(plain.String(), "\x1b[") {
		t.Fatalf("plain output has escapes: %q", plain.String())
	}
	if !strings.Contains(colored.String(), "\x1b[") {
		t.Fatalf("colored output has no escapes: %q", colored.String())
	}
}

func TestShortAndSummary(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\nbreak;\n"))
	issues := collection(
		diag.NewError(diag.SemBreakOutsideLoop, "semantics", source.Span{File: id, Start: 6, End: 11}, "`break` outside of a loop"),
		diag.New(diag.LevelWarning, diag.LintRule, "", "no location"),
		diag.New(diag.LevelHelp, diag.LintRule, "r", "h"),
	)

	var buf bytes.Buffer
	if err := Short(&buf, issues, fs, PathModeAuto); err != nil {
		t.Fatal(err)
	}
	want := "a.php:2:1: error SEM3006: `break` outside of a loop [semantics]\n" +
		"-: warning LNT5001: no location\n" +
		"-: help LNT5001: h [r]\n"
	if buf.String() != want {
		t.Fatalf("short:\n%s\nwant:\n%s", buf.String(), want)
	}

	tests := []struct {
		name   string
		issues diag.Collection
		files  int
		want   string
	}{
		{"mixed", issues, 3, "found 1 error, 1 warning, 1 help in 3 files\n"},
		{"clean", diag.Collection{}, 1, "no issues found in 1 file\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := Summary(&buf, tt.issues, tt.files, false); err != nil {
				t.Fatal(err)
			}
			if buf.String() != tt.want {
				t.Fatalf("got %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	for _, tt := range []struct {
		in   string
		want Format
		ok   bool
	}{
		{"", FormatPretty, true},
		{"JSON", FormatJSON, true},
		{"short", FormatShort, true},
		{"sarif", FormatPretty, false},
	} {
		got, err := ParseFormat(tt.in)
		if (err == nil) != tt.ok || got != tt.want {
			t.Fatalf("ParseFormat(%q) = %v, %v", tt.in, got, err)
		}
	}
}

func TestPreviewFixAppliesAllEdits(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php\necho 1 ?>\n"))
	tag := source.Span{File: id, Start: 13, End: 16}
	stmtEnd := source.Span{File: id, Start: 12, End: 12}

	tests := []struct {
		name       string
		edits      []diag.TextEdit
		wantBefore []string
		wantAfter  []string
		wantErr    bool
	}{
		{
			name:       "insert and replace",
			edits:      []diag.TextEdit{fix.Replace(tag, "\n", "?>\n"), fix.Insert(stmtEnd, ";")},
			wantBefore: []string{"echo 1 ?>"},
			wantAfter:  []string{"echo 1; "},
		},
		{
			name:       "whole line",
			edits:      []diag.TextEdit{fix.Delete(source.Span{File: id, Start: 6, End: 16}, "")},
			wantBefore: []string{"echo 1 ?>"},
			wantAfter:  nil,
		},
		{
			name: "overlap",
			edits: []diag.TextEdit{
				fix.Replace(source.Span{File: id, Start: 6, End: 10}, "print", "echo"),
				fix.Delete(source.Span{File: id, Start: 8, End: 12}, ""),
			},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := fix.Compose("t", tt.edits)
			got, err := previewFix(fs, &f)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("previewFix: want error, got %+v", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("previewFix: %v", err)
			}
			if !slices.Equal(got.Before, tt.wantBefore) || !slices.Equal(got.After, tt.wantAfter) {
				t.Fatalf("preview = %q -> %q, want %q -> %q", got.Before, got.After, tt.wantBefore, tt.wantAfter)
			}
		})
	}
}
