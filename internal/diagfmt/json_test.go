package diagfmt

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"quill/internal/diag"
	"quill/internal/fix"
	"quill/internal/lexer"
	"quill/internal/parser"
	"quill/internal/source"
)

func TestJSONOutput(t *testing.T) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("a.php", []byte("<?php ;\nglobal $a;\n"))
	issues := collection(
		diag.New(diag.LevelHelp, diag.LintRule, "redundancy/redundant-noop", "redundant empty statement").
			WithPrimary(source.Span{File: id, Start: 6, End: 7}, "").
			WithSuggestion(fix.DeleteSpan("remove", source.Span{File: id, Start: 6, End: 7}, ";")),
		diag.New(diag.LevelWarning, diag.LintRule, "safety/no-global", "avoid global").
			WithPrimary(source.Span{File: id, Start: 8, End: 18}, "").
			WithSecondary(source.Span{File: id, Start: 15, End: 17}, "imported"),
	)

	var buf bytes.Buffer
	err := JSON(&buf, issues, fs, JSONOpts{IncludePositions: true, IncludeFixes: true, IncludePreviews: true})
	if err != nil {
		t.Fatalf("JSON: %v", err)
	}
	var out IssuesOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v\n%s", err, buf.String())
	}
	if out.Count != 2 || out.Levels["warning"] != 1 || out.Levels["help"] != 1 {
		t.Fatalf("count/levels = %d %v", out.Count, out.Levels)
	}
	first := out.Issues[0]
	if !first.Fixable || first.Fix == nil || len(first.Fix.Edits) != 1 {
		t.Fatalf("first issue fix = %+v", first.Fix)
	}
	if edit := first.Fix.Edits[0]; edit.OldText != ";" {
		t.Fatalf("edit = %+v", edit)
	}
	if f := first.Fix; len(f.AfterLines) != 1 || f.AfterLines[0] != "<?php " || f.BeforeLines[0] != "<?php ;" {
		t.Fatalf("preview = %q -> %q", f.BeforeLines, f.AfterLines)
	}
	second := out.Issues[1]
	if second.Location == nil || second.Location.StartLine != 2 || second.Location.StartCol != 1 {
		t.Fatalf("location = %+v", second.Location)
	}
	if len(second.Annotations) != 1 || second.Annotations[0].Message != "imported" {
		t.Fatalf("annotations = %+v", second.Annotations)
	}
	if second.Fixable || second.Fix != nil {
		t.Fatalf("second issue should not be fixable")
	}
}

func TestJSONMaxKeepsLevelCounts(t *testing.T) {
	fs := source.NewFileSet()
	issues := collection(
		diag.New(diag.LevelError, diag.LintRule, "r", "a"),
		diag.New(diag.LevelError, diag.LintRule, "r", "b"),
		diag.New(diag.LevelNote, diag.LintRule, "r", "c"),
	)
	out := BuildIssuesOutput(issues, fs, JSONOpts{Max: 1})
	if out.Count != 1 || out.Issues[0].Message != "a" {
		t.Fatalf("issues = %+v", out.Issues)
	}
	if out.Levels["error"] != 2 || out.Levels["note"] != 1 {
		t.Fatalf("levels = %v", out.Levels)
	}
	if out.Issues[0].Location != nil {
		t.Fatalf("issue without primary got a location")
	}
}

func TestFormatAST(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.php", []byte("<?php global $a, $b;")))
	prog, perr, _ := parser.ParseFile(file)
	if perr != nil {
		t.Fatalf("parse: %v", perr)
	}

	var buf bytes.Buffer
	if err := FormatASTPretty(&buf, prog, fs); err != nil {
		t.Fatal(err)
	}
	// Программа начинается с открывающего тега: он тоже инструкция
	want := "a.php (span: 1:1-1:21)\n" +
		"├─ OpenTag (span: 1:1-1:6)\n" +
		"└─ Global (span: 1:7-1:21) \"semicolon\"\n" +
		"   ├─ Variable (span: 1:14-1:16) \"$a\"\n" +
		"   └─ Variable (span: 1:18-1:20) \"$b\"\n"
	if buf.String() != want {
		t.Fatalf("got:\n%s\nwant:\n%s", buf.String(), want)
	}

	out := BuildASTOutput(prog)
	if out.Type != "Program" || len(out.Children) != 2 || out.Children[0].Type != "OpenTag" || len(out.Children[1].Children) != 2 {
		t.Fatalf("json tree = %+v", out)
	}
}

func TestFormatTokens(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("a.php", []byte("<?php echo 1;")))
	toks, _ := lexer.Tokenize(file)

	var buf bytes.Buffer
	if err := FormatTokensPretty(&buf, toks, fs); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != len(toks) {
		t.Fatalf("lines = %d, tokens = %d", len(lines), len(toks))
	}
	if !strings.Contains(lines[len(lines)-1], "end of input") {
		t.Fatalf("last line = %q", lines[len(lines)-1])
	}

	buf.Reset()
	if err := FormatTokensJSON(&buf, toks); err != nil {
		t.Fatal(err)
	}
	var out []TokenOutput
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatal(err)
	}
	if len(out) != len(toks) || out[0].Kind != toks[0].Kind.String() {
		t.Fatalf("json tokens = %+v", out)
	}
}
