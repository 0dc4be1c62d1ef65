package ast

// Inspect traverses the tree rooted at node in depth-first source order,
// calling f for every node. If f returns false the children of that node are
// skipped.
func Inspect(node Node, f func(Node) bool) {
	if node == nil || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the direct child nodes of node in source order.
// Absent optional children are omitted.
func Children(node Node) []Node {
	var c children
	switch n := node.(type) {
	case *Program:
		c.stmts(n.Statements)
	case *EchoTag:
		c.exprSeq(n.Values)
	case *Global:
		for _, v := range n.Variables.Items {
			c.add(v)
		}
	case *Static:
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *StaticItem:
		c.add(n.Variable)
		c.expr(n.Value)
	case *Echo:
		c.exprSeq(n.Values)
	case *Unset:
		c.exprSeq(n.Values)
	case *Const:
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *ConstItem:
		c.add(n.Name)
		c.expr(n.Value)
	case *Use:
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *UseItem:
		c.add(n.Name)
		if n.Alias != nil {
			c.add(n.Alias)
		}
	case *Namespace:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.stmts(n.Statements)
		if n.Block != nil {
			c.add(n.Block)
		}
	case *Block:
		c.stmts(n.Statements)
	case *Return:
		c.expr(n.Value)
	case *If:
		c.expr(n.Condition)
		c.add(n.Then)
		for _, e := range n.ElseIfs {
			c.add(e)
		}
		if n.Else != nil {
			c.add(n.Else)
		}
	case *ElseIf:
		c.expr(n.Condition)
		c.add(n.Then)
	case *Else:
		c.add(n.Body)
	case *While:
		c.expr(n.Condition)
		c.add(n.Body)
	case *Foreach:
		c.expr(n.Subject)
		c.expr(n.Key)
		c.expr(n.Value)
		c.add(n.Body)
	case *Break:
		c.expr(n.Level)
	case *Continue:
		c.expr(n.Level)
	case *ExpressionStatement:
		c.expr(n.Expression)
	case *Function:
		c.add(n.Name)
		c.add(n.Parameters)
		c.returnType(n.ReturnType)
		c.add(n.Body)
	case *ParameterList:
		for _, p := range n.Parameters.Items {
			c.add(p)
		}
	case *Parameter:
		c.hint(n.Type)
		c.add(n.Variable)
		c.expr(n.Default)
	case *ReturnType:
		c.hint(n.Hint)
	case *Hint:
		for _, t := range n.Types.Items {
			c.add(t)
		}
	case *Class:
		c.add(n.Name)
		c.extends(n.Extends)
		c.implements(n.Implements)
		c.add(n.Body)
	case *Interface:
		c.add(n.Name)
		c.extends(n.Extends)
		c.add(n.Body)
	case *Trait:
		c.add(n.Name)
		c.add(n.Body)
	case *Enum:
		c.add(n.Name)
		if n.Backing != nil {
			c.hint(n.Backing.Type)
		}
		c.implements(n.Implements)
		c.add(n.Body)
	case *Extends:
		for _, t := range n.Types.Items {
			c.add(t)
		}
	case *Implements:
		for _, t := range n.Types.Items {
			c.add(t)
		}
	case *ClassBody:
		for _, m := range n.Members {
			c.add(m)
		}
	case *ClassConstant:
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *Property:
		c.hint(n.Type)
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *PropertyItem:
		c.add(n.Variable)
		c.expr(n.Default)
	case *Method:
		c.add(n.Name)
		c.add(n.Parameters)
		c.returnType(n.ReturnType)
		if n.Body != nil {
			c.add(n.Body)
		}
	case *EnumCase:
		c.add(n.Name)
		c.expr(n.Value)
	case *TraitUse:
		for _, t := range n.Traits.Items {
			c.add(t)
		}
	case *Binary:
		c.expr(n.Left)
		c.expr(n.Right)
	case *Assignment:
		c.expr(n.Left)
		c.expr(n.Right)
	case *Unary:
		c.expr(n.Operand)
	case *Postfix:
		c.expr(n.Operand)
	case *Cast:
		c.expr(n.Operand)
	case *Ternary:
		c.expr(n.Condition)
		c.expr(n.Then)
		c.expr(n.Else)
	case *Call:
		c.expr(n.Callee)
		c.add(n.Arguments)
	case *ArgumentList:
		for _, a := range n.Arguments.Items {
			c.add(a)
		}
	case *Argument:
		if n.Name != nil {
			c.add(n.Name)
		}
		c.expr(n.Value)
	case *PropertyFetch:
		c.expr(n.Object)
		c.add(n.Property)
	case *MethodCall:
		c.expr(n.Object)
		c.add(n.Method)
		c.add(n.Arguments)
	case *StaticPropertyFetch:
		c.expr(n.Class)
		c.add(n.Property)
	case *ClassConstantFetch:
		c.expr(n.Class)
		c.add(n.Constant)
	case *StaticMethodCall:
		c.expr(n.Class)
		c.add(n.Method)
		c.add(n.Arguments)
	case *Index:
		c.expr(n.Object)
		c.expr(n.Index)
	case *Array:
		for _, it := range n.Items.Items {
			c.add(it)
		}
	case *ArrayItem:
		c.expr(n.Key)
		c.expr(n.Value)
	case *New:
		c.expr(n.Class)
		if n.Arguments != nil {
			c.add(n.Arguments)
		}
	case *Closure:
		c.add(n.Parameters)
		if n.Use != nil {
			c.add(n.Use)
		}
		c.returnType(n.ReturnType)
		c.add(n.Body)
	case *ClosureUse:
		for _, v := range n.Variables.Items {
			c.add(v)
		}
	case *ClosureUseVariable:
		c.add(n.Variable)
	case *ArrowFunction:
		c.add(n.Parameters)
		c.returnType(n.ReturnType)
		c.expr(n.Body)
	case *Parenthesized:
		c.expr(n.Inner)
	case *Print:
		c.expr(n.Value)
	case *Construct:
		c.expr(n.Value)
	}
	return c.nodes
}

type children struct {
	nodes []Node
}

func (c *children) add(n Node) {
	c.nodes = append(c.nodes, n)
}

func (c *children) expr(e Expression) {
	if e != nil {
		c.nodes = append(c.nodes, e)
	}
}

func (c *children) stmts(list []Statement) {
	for _, s := range list {
		c.nodes = append(c.nodes, s)
	}
}

func (c *children) exprSeq(seq Sequence[Expression]) {
	for _, e := range seq.Items {
		c.nodes = append(c.nodes, e)
	}
}

func (c *children) hint(h *Hint) {
	if h != nil {
		c.nodes = append(c.nodes, h)
	}
}

func (c *children) returnType(r *ReturnType) {
	if r != nil {
		c.nodes = append(c.nodes, r)
	}
}

func (c *children) extends(e *Extends) {
	if e != nil {
		c.nodes = append(c.nodes, e)
	}
}

func (c *children) implements(i *Implements) {
	if i != nil {
		c.nodes = append(c.nodes, i)
	}
}
