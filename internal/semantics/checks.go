package semantics

import (
	"fmt"
	"strconv"
	"strings"

	"quill/internal/ast"
	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

// checker walks statements keeping the loop depth of the current function
// body. Functions, methods and closures start from depth zero.
type checker struct {
	rep   diag.Reporter
	loops int
}

func check(prog *ast.Program, rep diag.Reporter) {
	if prog == nil {
		return
	}
	c := &checker{rep: rep}
	c.statements(prog.Statements)
}

func (c *checker) errorf(code diag.Code, span source.Span, format string, args ...any) diag.Issue {
	return diag.NewError(code, RuleName, span, fmt.Sprintf(format, args...))
}

func (c *checker) statements(list []ast.Statement) {
	for _, stmt := range list {
		c.statement(stmt)
	}
}

func (c *checker) statement(stmt ast.Statement) {
	switch s := stmt.(type) {
	case *ast.Namespace:
		c.statements(s.Body())
	case *ast.Block:
		c.statements(s.Statements)
	case *ast.If:
		c.expressions(s.Condition)
		c.statement(s.Then)
		for _, ei := range s.ElseIfs {
			c.expressions(ei.Condition)
			c.statement(ei.Then)
		}
		if s.Else != nil {
			c.statement(s.Else.Body)
		}
	case *ast.While:
		c.expressions(s.Condition)
		c.loop(s.Body)
	case *ast.Foreach:
		c.expressions(s.Subject)
		c.loop(s.Body)
	case *ast.Break:
		c.loopControl(s.Keyword, s.Level)
	case *ast.Continue:
		c.loopControl(s.Keyword, s.Level)
	case *ast.Function:
		c.parameters(s.Parameters)
		c.functionBody(s.Body)
	case *ast.Class:
		c.modifiers(s.Modifiers)
		c.classLike(s.Keyword, s.Body)
	case *ast.Interface:
		c.classLike(s.Keyword, s.Body)
	case *ast.Trait:
		c.classLike(s.Keyword, s.Body)
	case *ast.Enum:
		c.classLike(s.Keyword, s.Body)
	default:
		c.expressions(stmt)
	}
}

func (c *checker) loop(body ast.Statement) {
	c.loops++
	c.statement(body)
	c.loops--
}

func (c *checker) functionBody(body *ast.Block) {
	if body == nil {
		return
	}
	saved := c.loops
	c.loops = 0
	c.statements(body.Statements)
	c.loops = saved
}

// expressions looks for closures and arrow functions below node; everything
// else in an expression is checked by the parser already.
func (c *checker) expressions(node ast.Node) {
	if node == nil {
		return
	}
	ast.Inspect(node, func(n ast.Node) bool {
		switch fn := n.(type) {
		case *ast.Closure:
			c.parameters(fn.Parameters)
			c.functionBody(fn.Body)
			return false
		case *ast.ArrowFunction:
			c.parameters(fn.Parameters)
			c.expressions(fn.Body)
			return false
		}
		return true
	})
}

func (c *checker) loopControl(keyword token.Token, level ast.Expression) {
	depth := 1
	if lit, ok := level.(*ast.Literal); ok {
		n, err := strconv.Atoi(lit.Token.Text)
		if err != nil || n < 1 {
			c.rep.Report(c.errorf(diag.SemBreakOutsideLoop, lit.Span(),
				"`%s` level must be a positive integer", strings.ToLower(keyword.Text)))
			return
		}
		depth = n
	}
	if depth <= c.loops {
		return
	}
	kw := strings.ToLower(keyword.Text)
	if c.loops == 0 {
		c.rep.Report(c.errorf(diag.SemBreakOutsideLoop, keyword.Span, "`%s` outside of a loop", kw))
		return
	}
	c.rep.Report(c.errorf(diag.SemBreakOutsideLoop, keyword.Span,
		"cannot `%s` %d levels, only %d enclosing loops", kw, depth, c.loops).
		WithHelp(fmt.Sprintf("use `%s %d` or less", kw, c.loops)))
}

func (c *checker) parameters(list *ast.ParameterList) {
	if list == nil {
		return
	}
	seen := make(map[string]source.Span)
	params := list.Parameters.Items
	for i, p := range params {
		c.modifiers(p.Modifiers)
		name := p.Variable.Name()
		if first, dup := seen[name]; dup {
			c.rep.Report(c.errorf(diag.SemDuplicateParameter, p.Variable.Span(), "duplicate parameter `$%s`", name).
				WithSecondary(first, "first declared here"))
		} else {
			seen[name] = p.Variable.Span()
		}
		if p.Ellipsis != nil && i != len(params)-1 {
			c.rep.Report(c.errorf(diag.SemVariadicNotLast, p.Span(), "variadic parameter `$%s` must be the last parameter", name))
		}
		c.expressions(p.Default)
	}
}

var visibilityKinds = map[token.Kind]bool{
	token.KwPublic: true, token.KwProtected: true, token.KwPrivate: true,
}

// modifiers reports repeated modifiers, several visibilities and
// abstract combined with final.
func (c *checker) modifiers(mods []token.Token) {
	seen := make(map[token.Kind]token.Token, len(mods))
	var visibility *token.Token
	for i, m := range mods {
		if first, dup := seen[m.Kind]; dup {
			c.rep.Report(c.errorf(diag.SemDuplicateModifier, m.Span, "duplicate modifier `%s`", strings.ToLower(m.Text)).
				WithSecondary(first.Span, "first used here"))
			continue
		}
		seen[m.Kind] = m
		if visibilityKinds[m.Kind] {
			if visibility != nil {
				c.rep.Report(c.errorf(diag.SemConflictingModifiers, m.Span,
					"multiple visibility modifiers: `%s` and `%s`", strings.ToLower(visibility.Text), strings.ToLower(m.Text)).
					WithSecondary(visibility.Span, "visibility already set here"))
				continue
			}
			visibility = &mods[i]
		}
	}
	abstract, hasAbstract := seen[token.KwAbstract]
	final, hasFinal := seen[token.KwFinal]
	if hasAbstract && hasFinal {
		c.rep.Report(c.errorf(diag.SemConflictingModifiers, final.Span, "cannot use `abstract` and `final` together").
			WithSecondary(abstract.Span, "declared abstract here"))
	}
}

// classLike checks the members of a class, interface, trait or enum body.
func (c *checker) classLike(keyword token.Token, body *ast.ClassBody) {
	if body == nil {
		return
	}
	kind := keyword.Kind
	methods := make(map[string]source.Span)
	constants := make(map[string]source.Span)
	properties := make(map[string]source.Span)

	for _, member := range body.Members {
		switch m := member.(type) {
		case *ast.Method:
			c.modifiers(m.Modifiers)
			c.duplicateMember(methods, strings.ToLower(m.Name.Value()), m.Name.Span(), "method", m.Name.Value())
			c.method(kind, m)
		case *ast.ClassConstant:
			c.modifiers(m.Modifiers)
			c.interfaceVisibility(kind, m.Modifiers, "constant")
			for _, item := range m.Items.Items {
				c.duplicateMember(constants, item.Name.Value(), item.Name.Span(), "constant", item.Name.Value())
				c.expressions(item.Value)
			}
		case *ast.Property:
			c.modifiers(m.Modifiers)
			for _, item := range m.Items.Items {
				c.duplicateMember(properties, item.Variable.Name(), item.Variable.Span(), "property", "$"+item.Variable.Name())
				c.expressions(item.Default)
			}
		case *ast.EnumCase:
			if kind != token.KwEnum {
				c.rep.Report(c.errorf(diag.SemEnumCaseOutsideEnum, m.Keyword.Span, "`case` can only be declared in an enum"))
				continue
			}
			// кейсы и константы enum делят одно пространство имён
			c.duplicateMember(constants, m.Name.Value(), m.Name.Span(), "case", m.Name.Value())
			c.expressions(m.Value)
		}
	}
}

func (c *checker) duplicateMember(seen map[string]source.Span, key string, span source.Span, what, display string) {
	if first, dup := seen[key]; dup {
		c.rep.Report(c.errorf(diag.SemDuplicateMember, span, "duplicate %s `%s`", what, display).
			WithSecondary(first, "first declared here"))
		return
	}
	seen[key] = span
}

func (c *checker) interfaceVisibility(kind token.Kind, mods []token.Token, what string) {
	if kind != token.KwInterface {
		return
	}
	for _, m := range mods {
		if m.Kind == token.KwPrivate || m.Kind == token.KwProtected {
			c.rep.Report(c.errorf(diag.SemInterfaceMemberNotPublic, m.Span, "interface %s must be public", what))
		}
	}
}

func (c *checker) method(kind token.Kind, m *ast.Method) {
	c.interfaceVisibility(kind, m.Modifiers, "method")
	c.parameters(m.Parameters)
	abstract := ast.HasModifier(m.Modifiers, token.KwAbstract)
	switch {
	case kind == token.KwInterface && m.Body != nil:
		c.rep.Report(c.errorf(diag.SemAbstractMethodWithBody, m.Name.Span(),
			"interface method `%s` cannot have a body", m.Name.Value()))
	case abstract && m.Body != nil:
		c.rep.Report(c.errorf(diag.SemAbstractMethodWithBody, m.Name.Span(),
			"abstract method `%s` cannot have a body", m.Name.Value()))
	case !abstract && kind != token.KwInterface && m.Body == nil:
		c.rep.Report(c.errorf(diag.SemMethodWithoutBody, m.Name.Span(),
			"non-abstract method `%s` must have a body", m.Name.Value()).
			WithHelp("declare the method `abstract` or add a body"))
	}
	c.functionBody(m.Body)
}
