package ast

import (
	"quill/internal/source"
	"quill/internal/token"
)

type LiteralKind uint8

const (
	LiteralInt LiteralKind = iota
	LiteralFloat
	LiteralString
	LiteralTrue
	LiteralFalse
	LiteralNull
)

type Literal struct {
	Kind  LiteralKind
	Token token.Token
}

func (e *Literal) Span() source.Span { return e.Token.Span }

// Binary covers arithmetic, comparison, logical, concatenation and instanceof.
type Binary struct {
	Left     Expression
	Operator token.Token
	Right    Expression
}

func (e *Binary) Span() source.Span { return e.Left.Span().Cover(e.Right.Span()) }

// Assignment is "=" and every compound assignment.
type Assignment struct {
	Left     Expression
	Operator token.Token
	ByRef    *token.Token // "$a = &$b"
	Right    Expression
}

func (e *Assignment) Span() source.Span { return e.Left.Span().Cover(e.Right.Span()) }

// Unary is a prefix operator: ! - + ~ @ ++ --.
type Unary struct {
	Operator token.Token
	Operand  Expression
}

func (e *Unary) Span() source.Span { return e.Operator.Span.Cover(e.Operand.Span()) }

// Postfix is "$i++" / "$i--".
type Postfix struct {
	Operand  Expression
	Operator token.Token
}

func (e *Postfix) Span() source.Span { return e.Operand.Span().Cover(e.Operator.Span) }

// Cast is "(int) $x".
type Cast struct {
	LParen  token.Token
	Type    token.Token
	RParen  token.Token
	Operand Expression
}

func (e *Cast) Span() source.Span { return e.LParen.Span.Cover(e.Operand.Span()) }

// Ternary is "c ? a : b" or the short "c ?: b" (Then is nil).
type Ternary struct {
	Condition Expression
	Question  token.Token
	Then      Expression
	Colon     token.Token
	Else      Expression
}

func (e *Ternary) Span() source.Span { return e.Condition.Span().Cover(e.Else.Span()) }

// Argument is "value", "...value" or "name: value".
type Argument struct {
	Name     *Identifier
	Colon    *token.Token
	Ellipsis *token.Token
	Value    Expression
}

func (a *Argument) Span() source.Span {
	sp := a.Value.Span()
	if a.Name != nil {
		sp = a.Name.Span().Cover(sp)
	}
	if a.Ellipsis != nil {
		sp = a.Ellipsis.Span.Cover(sp)
	}
	return sp
}

type ArgumentList struct {
	LParen    token.Token
	Arguments Sequence[*Argument]
	RParen    token.Token
}

func (l *ArgumentList) Span() source.Span { return l.LParen.Span.Cover(l.RParen.Span) }

// Call is "callee(args)".
type Call struct {
	Callee    Expression
	Arguments *ArgumentList
}

func (e *Call) Span() source.Span { return e.Callee.Span().Cover(e.Arguments.Span()) }

// PropertyFetch is "$obj->prop" or "$obj?->prop". Property is an *Identifier
// or an expression for dynamic access ("$obj->$name").
type PropertyFetch struct {
	Object   Expression
	Arrow    token.Token
	Property Node
}

func (e *PropertyFetch) Span() source.Span { return e.Object.Span().Cover(e.Property.Span()) }

// MethodCall is "$obj->name(args)".
type MethodCall struct {
	Object    Expression
	Arrow     token.Token
	Method    Node
	Arguments *ArgumentList
}

func (e *MethodCall) Span() source.Span { return e.Object.Span().Cover(e.Arguments.Span()) }

// StaticPropertyFetch is "A::$x".
type StaticPropertyFetch struct {
	Class       Expression
	DoubleColon token.Token
	Property    *Variable
}

func (e *StaticPropertyFetch) Span() source.Span { return e.Class.Span().Cover(e.Property.Span()) }

// ClassConstantFetch is "A::B" and "A::class".
type ClassConstantFetch struct {
	Class       Expression
	DoubleColon token.Token
	Constant    *Identifier
}

func (e *ClassConstantFetch) Span() source.Span { return e.Class.Span().Cover(e.Constant.Span()) }

// StaticMethodCall is "A::name(args)".
type StaticMethodCall struct {
	Class       Expression
	DoubleColon token.Token
	Method      *Identifier
	Arguments   *ArgumentList
}

func (e *StaticMethodCall) Span() source.Span { return e.Class.Span().Cover(e.Arguments.Span()) }

// Index is "$a[i]" or the append form "$a[]".
type Index struct {
	Object   Expression
	LBracket token.Token
	Index    Expression
	RBracket token.Token
}

func (e *Index) Span() source.Span { return e.Object.Span().Cover(e.RBracket.Span) }

// ArrayItem is "value", "key => value", "&value" or "...value".
type ArrayItem struct {
	Key      Expression
	Arrow    *token.Token
	ByRef    *token.Token
	Ellipsis *token.Token
	Value    Expression
}

func (a *ArrayItem) Span() source.Span {
	sp := a.Value.Span()
	switch {
	case a.Key != nil:
		sp = a.Key.Span().Cover(sp)
	case a.ByRef != nil:
		sp = a.ByRef.Span.Cover(sp)
	case a.Ellipsis != nil:
		sp = a.Ellipsis.Span.Cover(sp)
	}
	return sp
}

// Array is "[a, k => v]".
type Array struct {
	LBracket token.Token
	Items    Sequence[*ArrayItem]
	RBracket token.Token
}

func (e *Array) Span() source.Span { return e.LBracket.Span.Cover(e.RBracket.Span) }

// New is "new Class(args)"; Arguments may be nil.
type New struct {
	Keyword   token.Token
	Class     Expression
	Arguments *ArgumentList
}

func (e *New) Span() source.Span {
	if e.Arguments != nil {
		return e.Keyword.Span.Cover(e.Arguments.Span())
	}
	return e.Keyword.Span.Cover(e.Class.Span())
}

// ClosureUseVariable is "$x" or "&$x" in a closure use clause.
type ClosureUseVariable struct {
	ByRef    *token.Token
	Variable *Variable
}

func (v *ClosureUseVariable) Span() source.Span {
	if v.ByRef != nil {
		return v.ByRef.Span.Cover(v.Variable.Span())
	}
	return v.Variable.Span()
}

type ClosureUse struct {
	Keyword   token.Token
	LParen    token.Token
	Variables Sequence[*ClosureUseVariable]
	RParen    token.Token
}

// Closure is "static function &(params) use (vars): T { body }".
type Closure struct {
	Static     *token.Token
	Keyword    token.Token
	ByRef      *token.Token
	Parameters *ParameterList
	Use        *ClosureUse
	ReturnType *ReturnType
	Body       *Block
}

func (e *Closure) Span() source.Span {
	sp := e.Keyword.Span
	if e.Static != nil {
		sp = e.Static.Span
	}
	return sp.Cover(e.Body.Span())
}

// ArrowFunction is "fn (params) => expr".
type ArrowFunction struct {
	Static     *token.Token
	Keyword    token.Token
	ByRef      *token.Token
	Parameters *ParameterList
	ReturnType *ReturnType
	Arrow      token.Token
	Body       Expression
}

func (e *ArrowFunction) Span() source.Span {
	sp := e.Keyword.Span
	if e.Static != nil {
		sp = e.Static.Span
	}
	return sp.Cover(e.Body.Span())
}

type Parenthesized struct {
	LParen token.Token
	Inner  Expression
	RParen token.Token
}

func (e *Parenthesized) Span() source.Span { return e.LParen.Span.Cover(e.RParen.Span) }

// Print is "print expr".
type Print struct {
	Keyword token.Token
	Value   Expression
}

func (e *Print) Span() source.Span { return e.Keyword.Span.Cover(e.Value.Span()) }

// Construct is a keyword-led unary construct: include, require (and their
// _once forms), throw and clone.
type Construct struct {
	Keyword token.Token
	Value   Expression
}

func (e *Construct) Span() source.Span { return e.Keyword.Span.Cover(e.Value.Span()) }

func (*Literal) exprNode()             {}
func (*Binary) exprNode()              {}
func (*Assignment) exprNode()          {}
func (*Unary) exprNode()               {}
func (*Postfix) exprNode()             {}
func (*Cast) exprNode()                {}
func (*Ternary) exprNode()             {}
func (*Call) exprNode()                {}
func (*PropertyFetch) exprNode()       {}
func (*MethodCall) exprNode()          {}
func (*StaticPropertyFetch) exprNode() {}
func (*ClassConstantFetch) exprNode()  {}
func (*StaticMethodCall) exprNode()    {}
func (*Index) exprNode()               {}
func (*Array) exprNode()               {}
func (*New) exprNode()                 {}
func (*Closure) exprNode()             {}
func (*ArrowFunction) exprNode()       {}
func (*Parenthesized) exprNode()       {}
func (*Print) exprNode()               {}
func (*Construct) exprNode()           {}

func (u *ClosureUse) Span() source.Span { return u.Keyword.Span.Cover(u.RParen.Span) }
