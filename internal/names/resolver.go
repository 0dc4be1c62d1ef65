package names

import (
	"strings"

	"quill/internal/ast"
	"quill/internal/source"
	"quill/internal/token"
)

// Resolve walks prog and builds its name table. A nil program yields an empty
// table. strings may be shared between files; it is safe for concurrent use.
func Resolve(prog *ast.Program, strings *source.Interner) *Table {
	fr := &fileResolver{
		table:   newTable(strings),
		handled: make(map[source.Span]struct{}),
	}
	fr.resetImports()
	if prog != nil {
		fr.walkStatements(prog.Statements)
	}
	return fr.table
}

// fileResolver хранит состояние обхода одного файла: текущее пространство имён
// и таблицы импортов для классов, функций и констант.
type fileResolver struct {
	table   *Table
	ns      string
	imports [3]map[string]string
	handled map[source.Span]struct{}
}

func (fr *fileResolver) resetImports() {
	for i := range fr.imports {
		fr.imports[i] = make(map[string]string)
	}
}

func (fr *fileResolver) walkStatements(stmts []ast.Statement) {
	for _, stmt := range stmts {
		switch s := stmt.(type) {
		case *ast.Namespace:
			fr.enterNamespace(s)
		case *ast.Use:
			fr.declareUse(s)
		default:
			ast.Inspect(stmt, fr.visit)
		}
	}
}

// enterNamespace processes both namespace forms. Imports never leak from one
// namespace into the next.
func (fr *fileResolver) enterNamespace(ns *ast.Namespace) {
	fr.ns = ""
	if ns.Name != nil {
		fr.ns = strings.TrimPrefix(ns.Name.Value(), `\`)
		fr.handled[ns.Name.Span()] = struct{}{}
	}
	fr.resetImports()
	fr.walkStatements(ns.Body())
	if ns.Block != nil {
		fr.ns = ""
		fr.resetImports()
	}
}

func importKey(kind Kind, alias string) string {
	if kind == KindConstant {
		return alias
	}
	return strings.ToLower(alias)
}

func (fr *fileResolver) declareUse(use *ast.Use) {
	kind := KindClass
	switch use.Kind {
	case ast.UseFunction:
		kind = KindFunction
	case ast.UseConst:
		kind = KindConstant
	}
	for _, item := range use.Items.Items {
		fqn := strings.TrimPrefix(item.Name.Value(), `\`)
		alias := Short(fqn)
		if item.Alias != nil {
			alias = item.Alias.Value()
		}
		fr.imports[kind][importKey(kind, alias)] = fqn
		fr.table.record(item.Name.Span(), kind, fqn, "")
		fr.handled[item.Name.Span()] = struct{}{}
	}
}

// visit is the ast.Inspect callback. Parents claim their class-position and
// call-position names before the generic *ast.Name case sees them.
func (fr *fileResolver) visit(n ast.Node) bool {
	switch n := n.(type) {
	case *ast.Function:
		fr.declare(KindFunction, n.Name)
	case *ast.Class:
		fr.declare(KindClass, n.Name)
	case *ast.Interface:
		fr.declare(KindClass, n.Name)
	case *ast.Trait:
		fr.declare(KindClass, n.Name)
	case *ast.Enum:
		fr.declare(KindClass, n.Name)
	case *ast.Const:
		for _, item := range n.Items.Items {
			fr.declare(KindConstant, item.Name)
		}
	case *ast.Extends:
		fr.classNames(n.Types.Items)
	case *ast.Implements:
		fr.classNames(n.Types.Items)
	case *ast.TraitUse:
		fr.classNames(n.Traits.Items)
	case *ast.Hint:
		fr.classNames(n.Types.Items)
	case *ast.New:
		fr.classExpr(n.Class)
	case *ast.StaticPropertyFetch:
		fr.classExpr(n.Class)
	case *ast.ClassConstantFetch:
		fr.classExpr(n.Class)
	case *ast.StaticMethodCall:
		fr.classExpr(n.Class)
	case *ast.Binary:
		if n.Operator.Kind == token.KwInstanceof {
			fr.classExpr(n.Right)
		}
	case *ast.Call:
		if name, ok := n.Callee.(*ast.Name); ok {
			fr.functionLike(KindFunction, name)
		}
	case *ast.Name:
		if _, done := fr.handled[n.Span()]; !done && !IsSpecialClass(n.Value()) {
			fr.functionLike(KindConstant, n)
		}
	}
	return true
}

func (fr *fileResolver) declare(kind Kind, id *ast.Identifier) {
	fr.table.declare(kind, Join(fr.ns, id.Value()), id.Span())
}

func (fr *fileResolver) classNames(list []*ast.Name) {
	for _, name := range list {
		fr.className(name)
	}
}

func (fr *fileResolver) classExpr(e ast.Expression) {
	if name, ok := e.(*ast.Name); ok {
		fr.className(name)
	}
}

func (fr *fileResolver) className(name *ast.Name) {
	fr.handled[name.Span()] = struct{}{}
	raw := name.Value()
	if name.Token.Kind != token.Ident && name.Token.Kind != token.QualifiedIdent {
		// null, false, true и static в подсказках типов
		return
	}
	if IsSpecialClass(raw) || IsBuiltinType(raw) {
		return
	}
	fr.table.record(name.Span(), KindClass, fr.qualify(raw), "")
}

// functionLike resolves a function or constant reference. Unqualified names
// inside a namespace keep the global name as fallback.
func (fr *fileResolver) functionLike(kind Kind, name *ast.Name) {
	fr.handled[name.Span()] = struct{}{}
	raw := name.Value()
	if name.Qualified() {
		fr.table.record(name.Span(), kind, fr.qualify(raw), "")
		return
	}
	if fqn, ok := fr.imports[kind][importKey(kind, raw)]; ok {
		fr.table.record(name.Span(), kind, fqn, "")
		return
	}
	fr.table.record(name.Span(), kind, Join(fr.ns, raw), raw)
}

// qualify applies the class import table to the first segment of raw.
func (fr *fileResolver) qualify(raw string) string {
	if strings.HasPrefix(raw, `\`) {
		return raw[1:]
	}
	first, rest, _ := strings.Cut(raw, `\`)
	if strings.EqualFold(first, "namespace") && rest != "" {
		return Join(fr.ns, rest)
	}
	if fqn, ok := fr.imports[KindClass][strings.ToLower(first)]; ok {
		if rest == "" {
			return fqn
		}
		return fqn + `\` + rest
	}
	return Join(fr.ns, raw)
}
