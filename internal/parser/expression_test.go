package parser

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	"quill/internal/ast"
	"quill/internal/token"
)

// shapeOf renders the expression tree as nested parentheses.
func shapeOf(e ast.Node) string {
	var b bytes.Buffer
	writeShape(&b, e)
	return b.String()
}

func writeShape(b *bytes.Buffer, n ast.Node) {
	switch n := n.(type) {
	case *ast.Binary:
		b.WriteString("(")
		writeShape(b, n.Left)
		b.WriteString(" " + n.Operator.Text + " ")
		writeShape(b, n.Right)
		b.WriteString(")")
	case *ast.Assignment:
		b.WriteString("(")
		writeShape(b, n.Left)
		b.WriteString(" " + n.Operator.Text + " ")
		writeShape(b, n.Right)
		b.WriteString(")")
	case *ast.Unary:
		b.WriteString("(" + n.Operator.Text)
		writeShape(b, n.Operand)
		b.WriteString(")")
	case *ast.Ternary:
		b.WriteString("(")
		writeShape(b, n.Condition)
		b.WriteString(" ? ")
		if n.Then != nil {
			writeShape(b, n.Then)
		}
		b.WriteString(" : ")
		writeShape(b, n.Else)
		b.WriteString(")")
	case *ast.Variable:
		b.WriteString(n.Token.Text)
	case *ast.Literal:
		b.WriteString(n.Token.Text)
	case *ast.Name:
		b.WriteString(n.Value())
	case *ast.Call:
		writeShape(b, n.Callee)
		b.WriteString("(...)")
	default:
		b.WriteString(strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."))
	}
}


func TestPrecedence(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"1 + 2 * 3", "(1 + (2 * 3))"},
		{"1 - 2 - 3", "((1 - 2) - 3)"},
		{"2 ** 3 ** 2", "(2 ** (3 ** 2))"},
		{"$a ?? $b ?? $c", "($a ?? ($b ?? $c))"},
		{"$a = $b = 1", "($a = ($b = 1))"},
		{"$a || $b && $c", "($a || ($b && $c))"},
		{"'a' . 1 + 2", "('a' . (1 + 2))"},
		{"$a == 1 | 2", "(($a == 1) | 2)"},
		{"!$a instanceof B", "(!($a instanceof B))"},
		{"-$a ** 2", "(-($a ** 2))"},
		{"$a ? 1 : 2", "($a ? 1 : 2)"},
		{"$a ?: 2", "($a ?  : 2)"},
		{"$a && $b = 1", "($a && ($b = 1))"},
		{"$x .= f(1)", "($x .= f(...))"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			if got := shapeOf(parseExpr(t, tt.src)); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestPostfixChains(t *testing.T) {
	e := parseExpr(t, "$this->repo?->find($id)->name")
	fetch, ok := e.(*ast.PropertyFetch)
	if !ok {
		t.Fatalf("got %T", e)
	}
	call, ok := fetch.Object.(*ast.MethodCall)
	if !ok || call.Arrow.Kind != token.NullsafeArrow {
		t.Fatalf("object is %T", fetch.Object)
	}
	if call.Arguments.Arguments.Len() != 1 {
		t.Fatalf("args = %d", call.Arguments.Arguments.Len())
	}

	e = parseExpr(t, "Foo::$bar[0]++")
	post, ok := e.(*ast.Postfix)
	if !ok {
		t.Fatalf("got %T", e)
	}
	idx := post.Operand.(*ast.Index)
	if _, ok := idx.Object.(*ast.StaticPropertyFetch); !ok {
		t.Fatalf("index object is %T", idx.Object)
	}

	e = parseExpr(t, "Foo::class")
	if c, ok := e.(*ast.ClassConstantFetch); !ok || c.Constant.Value() != "class" {
		t.Fatalf("got %T", e)
	}

	e = parseExpr(t, "$a[]")
	if idx, ok := e.(*ast.Index); !ok || idx.Index != nil {
		t.Fatalf("append index: %T", e)
	}
}

func TestPrimaryForms(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{"new Foo(1, 2)", "*ast.New"},
		{"new Foo", "*ast.New"},
		{"new $cls", "*ast.New"},
		{"function ($a) use (&$b, $c) { return $a; }", "*ast.Closure"},
		{"fn(int $x): int => $x * 2", "*ast.ArrowFunction"},
		{"(int) $x", "*ast.Cast"},
		{"($x)", "*ast.Parenthesized"},
		{"print $x", "*ast.Print"},
		{"require_once 'a.php'", "*ast.Construct"},
		{"throw new E()", "*ast.Construct"},
		{"[1, 'k' => 2, ...$rest, &$ref]", "*ast.Array"},
		{"strlen(string: $s)", "*ast.Call"},
		{`\App\f()`, "*ast.Call"},
	}
	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			e := parseExpr(t, tt.src)
			if got := fmt.Sprintf("%T", e); got != tt.want {
				t.Fatalf("got %s, want %s", got, tt.want)
			}
			checkSequences(t, e)
		})
	}
}


func TestNamedArgument(t *testing.T) {
	call := parseExpr(t, "f(name: 1, 2)").(*ast.Call)
	first := call.Arguments.Arguments.Items[0]
	if first.Name == nil || first.Name.Value() != "name" {
		t.Fatalf("first argument name = %v", first.Name)
	}
	if call.Arguments.Arguments.Items[1].Name != nil {
		t.Fatal("second argument should be positional")
	}
}

func TestTrailingCommaInArguments(t *testing.T) {
	call := parseExpr(t, "f(1, 2,)").(*ast.Call)
	args := call.Arguments.Arguments
	if args.Len() != 2 || len(args.Separators) != 1 {
		t.Fatalf("args = %d items / %d separators", args.Len(), len(args.Separators))
	}
}
