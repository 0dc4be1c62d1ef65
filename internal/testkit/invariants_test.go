package testkit

import (
	"strings"
	"testing"

	"quill/internal/ast"
	"quill/internal/parser"
	"quill/internal/source"
	"quill/internal/token"
)

func TestSpanInvariantsHoldForParsedPrograms(t *testing.T) {
	inputs := []string{
		"<?php global $a, $b;",
		"<?php echo 1 + 2 * 3, 'x';",
		"<?php function f(int $a, ...$rest): ?string { return $a; }",
		"<?php abstract class A extends B implements C, D { public const X = 1; private ?int $y = null; public function m(): void {} }",
		"<?php foreach ($xs as $k => $v) { if ($v) { continue; } else { break; } }",
		"<?php $f = fn($x) => $x * 2; $g = function () use ($f) { return $f(1); };",
		"<?php global $a,",
		"<?php echo 1 ?>\n",
	}
	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			fs := source.NewFileSet()
			file := fs.Get(fs.AddVirtual("t.php", []byte(in)))
			prog, _, _ := parser.ParseFile(file)
			if err := CheckSpanInvariants(prog, file); err != nil {
				t.Fatalf("invariant violated: %v", err)
			}
		})
	}
}

func TestSpanInvariantsCatchBadSpans(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("t.php", []byte(strings.Repeat(" ", 10))))
	other := fs.AddVirtual("u.php", []byte("x"))

	tests := []struct {
		name string
		prog *ast.Program
	}{
		{"foreign file", &ast.Program{File: other}},
		{"beyond content", &ast.Program{File: file.ID, Statements: []ast.Statement{
			&ast.Echo{Keyword: token.Token{Kind: token.KwEcho, Span: source.Span{File: file.ID, Start: 8, End: 20}},
				Terminator: ast.EOFTerminator(source.Span{File: file.ID, Start: 20, End: 20})},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := CheckSpanInvariants(tt.prog, file); err == nil {
				t.Fatalf("expected a violation")
			}
		})
	}
}
