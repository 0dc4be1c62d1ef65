package parser

import (
	"testing"

	"quill/internal/ast"
	"quill/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Program, *Error, *source.File) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.php", []byte(src))
	file := fs.Get(id)
	prog, err, _ := ParseFile(file)
	if prog == nil {
		t.Fatalf("ParseFile returned nil program for %q", src)
	}
	return prog, err, file
}

func mustParse(t *testing.T, src string) *ast.Program {
	t.Helper()
	prog, err, file := parseSource(t, src)
	if err != nil {
		t.Fatalf("parse %q: %v at %q", src, err, file.Slice(err.Span))
	}
	return prog
}

// codeStatements drops the leading open tag.
func codeStatements(t *testing.T, prog *ast.Program) []ast.Statement {
	t.Helper()
	if len(prog.Statements) == 0 {
		t.Fatalf("empty program")
	}
	if _, ok := prog.Statements[0].(*ast.OpenTag); !ok {
		t.Fatalf("first statement is %T, want *ast.OpenTag", prog.Statements[0])
	}
	return prog.Statements[1:]
}

func singleStatement[T ast.Statement](t *testing.T, src string) T {
	t.Helper()
	stmts := codeStatements(t, mustParse(t, src))
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	stmt, ok := stmts[0].(T)
	if !ok {
		t.Fatalf("statement is %T", stmts[0])
	}
	return stmt
}

func parseExpr(t *testing.T, src string) ast.Expression {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("expr.php", []byte(src))
	expr, err := ParseExpression(fs.Get(id))
	if err != nil {
		t.Fatalf("parse expression %q: %v", src, err)
	}
	return expr
}

// checkSequences walks the tree and verifies the separator invariant on every
// sequence the parser built.
func checkSequences(t *testing.T, root ast.Node) {
	t.Helper()
	ast.Inspect(root, func(n ast.Node) bool {
		for _, seq := range sequencesOf(n) {
			if want := max(seq.items-1, 0); seq.seps != want {
				t.Errorf("%T: %d items, %d separators", n, seq.items, seq.seps)
			}
		}
		return true
	})
}

type seqShape struct{ items, seps int }

func shape[T ast.Node](s ast.Sequence[T]) seqShape {
	return seqShape{len(s.Items), len(s.Separators)}
}

func sequencesOf(n ast.Node) []seqShape {
	switch n := n.(type) {
	case *ast.Global:
		return []seqShape{shape(n.Variables)}
	case *ast.Static:
		return []seqShape{shape(n.Items)}
	case *ast.Echo:
		return []seqShape{shape(n.Values)}
	case *ast.Unset:
		return []seqShape{shape(n.Values)}
	case *ast.Const:
		return []seqShape{shape(n.Items)}
	case *ast.Use:
		return []seqShape{shape(n.Items)}
	case *ast.ParameterList:
		return []seqShape{shape(n.Parameters)}
	case *ast.ArgumentList:
		return []seqShape{shape(n.Arguments)}
	case *ast.Array:
		return []seqShape{shape(n.Items)}
	case *ast.Implements:
		return []seqShape{shape(n.Types)}
	case *ast.Extends:
		return []seqShape{shape(n.Types)}
	case *ast.Hint:
		return []seqShape{shape(n.Types)}
	}
	return nil
}
