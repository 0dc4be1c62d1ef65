package ast

import (
	"quill/internal/source"
	"quill/internal/token"
)

// Parameter is one function parameter: "public readonly ?int &...$x = 1".
type Parameter struct {
	Modifiers []token.Token // constructor promotion
	Type      *Hint
	ByRef     *token.Token
	Ellipsis  *token.Token
	Variable  *Variable
	Equals    *token.Token
	Default   Expression
}

func (p *Parameter) Span() source.Span {
	sp := p.Variable.Span()
	switch {
	case len(p.Modifiers) > 0:
		sp = p.Modifiers[0].Span.Cover(sp)
	case p.Type != nil:
		sp = p.Type.Span().Cover(sp)
	case p.ByRef != nil:
		sp = p.ByRef.Span.Cover(sp)
	case p.Ellipsis != nil:
		sp = p.Ellipsis.Span.Cover(sp)
	}
	if p.Default != nil {
		sp = sp.Cover(p.Default.Span())
	}
	return sp
}

type ParameterList struct {
	LParen     token.Token
	Parameters Sequence[*Parameter]
	RParen     token.Token
}

func (l *ParameterList) Span() source.Span { return l.LParen.Span.Cover(l.RParen.Span) }

// ReturnType is ": Hint".
type ReturnType struct {
	Colon token.Token
	Hint  *Hint
}

func (r *ReturnType) Span() source.Span { return r.Colon.Span.Cover(r.Hint.Span()) }

// Function is a named function declaration.
type Function struct {
	Keyword    token.Token
	ByRef      *token.Token
	Name       *Identifier
	Parameters *ParameterList
	ReturnType *ReturnType
	Body       *Block
}

func (s *Function) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

// Extends is "extends A, B" (one name for classes, many for interfaces).
type Extends struct {
	Keyword token.Token
	Types   Sequence[*Name]
}

func (e *Extends) Span() source.Span {
	sp, _ := e.Types.Span()
	return e.Keyword.Span.Cover(sp)
}

type Implements struct {
	Keyword token.Token
	Types   Sequence[*Name]
}

func (e *Implements) Span() source.Span {
	sp, _ := e.Types.Span()
	return e.Keyword.Span.Cover(sp)
}

// ClassBody is "{ members }".
type ClassBody struct {
	LBrace  token.Token
	Members []Member
	RBrace  token.Token
}

func (b *ClassBody) Span() source.Span { return b.LBrace.Span.Cover(b.RBrace.Span) }

type Class struct {
	Modifiers  []token.Token
	Keyword    token.Token
	Name       *Identifier
	Extends    *Extends
	Implements *Implements
	Body       *ClassBody
}

func (s *Class) Span() source.Span {
	sp := s.Keyword.Span
	if len(s.Modifiers) > 0 {
		sp = s.Modifiers[0].Span.Cover(sp)
	}
	return sp.Cover(s.Body.Span())
}

type Interface struct {
	Keyword token.Token
	Name    *Identifier
	Extends *Extends
	Body    *ClassBody
}

func (s *Interface) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

type Trait struct {
	Keyword token.Token
	Name    *Identifier
	Body    *ClassBody
}

func (s *Trait) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

// EnumBacking is ": string" of a backed enum.
type EnumBacking struct {
	Colon token.Token
	Type  *Hint
}

type Enum struct {
	Keyword    token.Token
	Name       *Identifier
	Backing    *EnumBacking
	Implements *Implements
	Body       *ClassBody
}

func (s *Enum) Span() source.Span { return s.Keyword.Span.Cover(s.Body.Span()) }

// ===== members =====

// ClassConstant is "[modifiers] const A = 1, B = 2;".
type ClassConstant struct {
	Modifiers  []token.Token
	Keyword    token.Token
	Items      Sequence[*ConstItem]
	Terminator Terminator
}

func (m *ClassConstant) Span() source.Span {
	sp := m.Keyword.Span
	if len(m.Modifiers) > 0 {
		sp = m.Modifiers[0].Span
	}
	return sp.Cover(m.Terminator.Span())
}

// PropertyItem is "$x = 1" inside a property declaration.
type PropertyItem struct {
	Variable *Variable
	Equals   *token.Token
	Default  Expression
}

func (p *PropertyItem) Span() source.Span {
	if p.Default != nil {
		return p.Variable.Span().Cover(p.Default.Span())
	}
	return p.Variable.Span()
}

// Property is "modifiers [Type] $a = 1, $b;".
type Property struct {
	Modifiers  []token.Token
	Type       *Hint
	Items      Sequence[*PropertyItem]
	Terminator Terminator
}

func (m *Property) Span() source.Span {
	sp, _ := m.Items.Span()
	if len(m.Modifiers) > 0 {
		sp = m.Modifiers[0].Span.Cover(sp)
	}
	return sp.Cover(m.Terminator.Span())
}

// Method has either a Body or a Semicolon (abstract and interface methods).
type Method struct {
	Modifiers  []token.Token
	Keyword    token.Token
	ByRef      *token.Token
	Name       *Identifier
	Parameters *ParameterList
	ReturnType *ReturnType
	Body       *Block
	Semicolon  *token.Token
}

func (m *Method) Span() source.Span {
	sp := m.Keyword.Span
	if len(m.Modifiers) > 0 {
		sp = m.Modifiers[0].Span.Cover(sp)
	}
	if m.Body != nil {
		return sp.Cover(m.Body.Span())
	}
	if m.Semicolon != nil {
		return sp.Cover(m.Semicolon.Span)
	}
	return sp.Cover(m.Parameters.Span())
}

// EnumCase is "case A;" or "case A = 'a';".
type EnumCase struct {
	Keyword    token.Token
	Name       *Identifier
	Equals     *token.Token
	Value      Expression
	Terminator Terminator
}

func (m *EnumCase) Span() source.Span { return m.Keyword.Span.Cover(m.Terminator.Span()) }

// TraitUse is "use A, B;" inside a class body.
type TraitUse struct {
	Keyword    token.Token
	Traits     Sequence[*Name]
	Terminator Terminator
}

func (m *TraitUse) Span() source.Span { return m.Keyword.Span.Cover(m.Terminator.Span()) }

func (*Function) stmtNode()  {}
func (*Class) stmtNode()     {}
func (*Interface) stmtNode() {}
func (*Trait) stmtNode()     {}
func (*Enum) stmtNode()      {}

func (*ClassConstant) memberNode() {}
func (*Property) memberNode()      {}
func (*Method) memberNode()        {}
func (*EnumCase) memberNode()      {}
func (*TraitUse) memberNode()      {}

// HasModifier reports whether mods contains a modifier of kind k.
func HasModifier(mods []token.Token, k token.Kind) bool {
	for _, m := range mods {
		if m.Kind == k {
			return true
		}
	}
	return false
}
