package names_test

import (
	"testing"

	"quill/internal/ast"
	"quill/internal/names"
	"quill/internal/parser"
	"quill/internal/source"
)

type fixture struct {
	file  *source.File
	prog  *ast.Program
	table *names.Table
}

func resolveSource(t *testing.T, src string) fixture {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("names.php", []byte(src)))
	prog, perr, _ := parser.ParseFile(file)
	if perr != nil {
		t.Fatalf("parse: %v", perr)
	}
	return fixture{file: file, prog: prog, table: names.Resolve(prog, source.NewInterner())}
}

// resolved collects every resolved name occurrence as "source text -> fqn".
func (f fixture) resolved() map[string]string {
	out := make(map[string]string)
	ast.Inspect(f.prog, func(n ast.Node) bool {
		var span source.Span
		switch n := n.(type) {
		case *ast.Name:
			span = n.Span()
		case *ast.Identifier:
			span = n.Span()
		default:
			return true
		}
		if fqn, ok := f.table.Resolve(span); ok {
			out[f.file.Slice(span)] = fqn
		}
		return true
	})
	return out
}

func TestResolveClassNames(t *testing.T) {
	f := resolveSource(t, `<?php
namespace App\Http;

use Lib\Base;
use Lib\Contracts as C;

class Controller extends Base implements C\Handler, \Countable {
    public function make(): Response { return new Request(); }
    public function own(): self { return parent::x(); }
}
`)
	got := f.resolved()
	want := map[string]string{
		"Controller":    `App\Http\Controller`,
		"Base":          `Lib\Base`,
		`C\Handler`:     `Lib\Contracts\Handler`,
		`\Countable`:    `Countable`,
		"Response":      `App\Http\Response`,
		"Request":       `App\Http\Request`,
		`Lib\Base`:      `Lib\Base`,
		`Lib\Contracts`: `Lib\Contracts`,
	}
	for text, fqn := range want {
		if got[text] != fqn {
			t.Errorf("%s resolved to %q, want %q", text, got[text], fqn)
		}
	}
	for _, special := range []string{"self", "parent"} {
		if fqn, ok := got[special]; ok {
			t.Errorf("%s should stay unresolved, got %q", special, fqn)
		}
	}
}

func TestResolveFunctionsAndConstants(t *testing.T) {
	f := resolveSource(t, `<?php
namespace App;
use function Lib\helper;
use const Lib\LIMIT;

function run() {
    helper();
    strlen('x');
    \Lib\other();
    echo LIMIT, PHP_EOL;
}
const VERSION = 1;
`)
	got := f.resolved()
	want := map[string]string{
		"run":        `App\run`,
		"helper":     `Lib\helper`,
		"strlen":     `App\strlen`,
		`\Lib\other`: `Lib\other`,
		"LIMIT":      `Lib\LIMIT`,
		"PHP_EOL":    `App\PHP_EOL`,
		"VERSION":    `App\VERSION`,
	}
	for text, fqn := range want {
		if got[text] != fqn {
			t.Errorf("%s resolved to %q, want %q", text, got[text], fqn)
		}
	}
}

func TestFallbackForUnqualifiedCalls(t *testing.T) {
	f := resolveSource(t, "<?php namespace App; strpos($a, 'b'); \\strlen($a);")
	var calls []*ast.Call
	ast.Inspect(f.prog, func(n ast.Node) bool {
		if c, ok := n.(*ast.Call); ok {
			calls = append(calls, c)
		}
		return true
	})
	if len(calls) != 2 {
		t.Fatalf("found %d calls", len(calls))
	}
	if fb, ok := f.table.Fallback(calls[0].Callee.Span()); !ok || fb != "strpos" {
		t.Fatalf("fallback = %q, %v", fb, ok)
	}
	if _, ok := f.table.Fallback(calls[1].Callee.Span()); ok {
		t.Fatal("fully qualified call must not have a fallback")
	}
}

func TestDeclarationsInSourceOrder(t *testing.T) {
	f := resolveSource(t, `<?php
namespace A { class X {} function f() {} }
namespace { interface Y {} const Z = 1; }
`)
	decls := f.table.Declarations()
	want := []struct {
		kind names.Kind
		name string
	}{
		{names.KindClass, `A\X`},
		{names.KindFunction, `A\f`},
		{names.KindClass, "Y"},
		{names.KindConstant, "Z"},
	}
	if len(decls) != len(want) {
		t.Fatalf("got %d declarations, want %d", len(decls), len(want))
	}
	for i, w := range want {
		if decls[i].Kind != w.kind || f.table.Name(decls[i].Name) != w.name {
			t.Errorf("decl %d = %v %q, want %v %q", i, decls[i].Kind, f.table.Name(decls[i].Name), w.kind, w.name)
		}
	}
}

func TestNilProgram(t *testing.T) {
	table := names.Resolve(nil, nil)
	if table.Len() != 0 || len(table.Declarations()) != 0 {
		t.Fatal("nil program must give an empty table")
	}
}
