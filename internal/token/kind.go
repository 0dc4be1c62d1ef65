package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// InlineHTML is raw text outside of code tags.
	InlineHTML
	// OpenTag represents "<?php" (or the short "<?").
	OpenTag
	// EchoTag represents "<?=".
	EchoTag
	// CloseTag represents "?>" including one trailing newline.
	CloseTag

	// Variable represents "$name".
	Variable
	// Ident represents an identifier token.
	Ident
	// QualifiedIdent represents a namespaced name ("A\B", "\A\B").
	QualifiedIdent

	// IntLit represents the integer literal token.
	IntLit
	// FloatLit represents the float literal token.
	FloatLit
	// StringLit represents a single- or double-quoted string literal.
	StringLit

	kwBegin
	KwAbstract    // abstract
	KwAs          // as
	KwBreak       // break
	KwCase        // case
	KwClass       // class
	KwClone       // clone
	KwConst       // const
	KwContinue    // continue
	KwEcho        // echo
	KwElse        // else
	KwElseIf      // elseif
	KwEnum        // enum
	KwExtends     // extends
	KwFalse       // false
	KwFinal       // final
	KwFn          // fn
	KwForeach     // foreach
	KwFunction    // function
	KwGlobal      // global
	KwIf          // if
	KwImplements  // implements
	KwInclude     // include
	KwIncludeOnce // include_once
	KwInstanceof  // instanceof
	KwInterface   // interface
	KwNamespace   // namespace
	KwNew         // new
	KwNull        // null
	KwPrint       // print
	KwPrivate     // private
	KwProtected   // protected
	KwPublic      // public
	KwReadonly    // readonly
	KwRequire     // require
	KwRequireOnce // require_once
	KwReturn      // return
	KwStatic      // static
	KwThrow       // throw
	KwTrait       // trait
	KwTrue        // true
	KwUnset       // unset
	KwUse         // use
	KwWhile       // while
	kwEnd

	Plus                   // +
	Minus                  // -
	Star                   // *
	StarStar               // **
	Slash                  // /
	Percent                // %
	PlusPlus               // ++
	MinusMinus             // --
	Assign                 // =
	PlusAssign             // +=
	MinusAssign            // -=
	StarAssign             // *=
	StarStarAssign         // **=
	SlashAssign            // /=
	PercentAssign          // %=
	DotAssign              // .=
	QuestionQuestionAssign // ??=
	AmpAssign              // &=
	PipeAssign             // |=
	CaretAssign            // ^=
	ShlAssign              // <<=
	ShrAssign              // >>=
	EqEq                   // ==
	EqEqEq                 // ===
	BangEq                 // != and <>
	BangEqEq               // !==
	Lt                     // <
	LtEq                   // <=
	Gt                     // >
	GtEq                   // >=
	Spaceship              // <=>
	Shl                    // <<
	Shr                    // >>
	Amp                    // &
	Pipe                   // |
	Caret                  // ^
	Tilde                  // ~
	Bang                   // !
	AndAnd                 // &&
	OrOr                   // ||
	Question               // ?
	QuestionQuestion       // ??
	Colon                  // :
	ColonColon             // ::
	Semicolon              // ;
	Comma                  // ,
	Dot                    // .
	Ellipsis               // ...
	Arrow                  // ->
	NullsafeArrow          // ?->
	FatArrow               // =>
	LParen                 // (
	RParen                 // )
	LBrace                 // {
	RBrace                 // }
	LBracket               // [
	RBracket               // ]
	At                     // @
)

// IsKeyword reports whether k is a keyword kind.
func (k Kind) IsKeyword() bool {
	return k > kwBegin && k < kwEnd
}

// IsAssignment reports whether k is "=" or a compound assignment operator.
func (k Kind) IsAssignment() bool {
	switch k {
	case Assign, PlusAssign, MinusAssign, StarAssign, StarStarAssign, SlashAssign, PercentAssign,
		DotAssign, QuestionQuestionAssign, AmpAssign, PipeAssign, CaretAssign,
		ShlAssign, ShrAssign:
		return true
	default:
		return false
	}
}

var kindNames = [...]string{
	Invalid:                "invalid token",
	EOF:                    "end of input",
	InlineHTML:             "inline HTML",
	OpenTag:                "`<?php`",
	EchoTag:                "`<?=`",
	CloseTag:               "`?>`",
	Variable:               "variable",
	Ident:                  "identifier",
	QualifiedIdent:         "qualified identifier",
	IntLit:                 "integer literal",
	FloatLit:               "float literal",
	StringLit:              "string literal",
	Plus:                   "`+`",
	Minus:                  "`-`",
	Star:                   "`*`",
	StarStar:               "`**`",
	Slash:                  "`/`",
	Percent:                "`%`",
	PlusPlus:               "`++`",
	MinusMinus:             "`--`",
	Assign:                 "`=`",
	PlusAssign:             "`+=`",
	MinusAssign:            "`-=`",
	StarAssign:             "`*=`",
	StarStarAssign:         "`**=`",
	SlashAssign:            "`/=`",
	PercentAssign:          "`%=`",
	DotAssign:              "`.=`",
	QuestionQuestionAssign: "`??=`",
	AmpAssign:              "`&=`",
	PipeAssign:             "`|=`",
	CaretAssign:            "`^=`",
	ShlAssign:              "`<<=`",
	ShrAssign:              "`>>=`",
	EqEq:                   "`==`",
	EqEqEq:                 "`===`",
	BangEq:                 "`!=`",
	BangEqEq:               "`!==`",
	Lt:                     "`<`",
	LtEq:                   "`<=`",
	Gt:                     "`>`",
	GtEq:                   "`>=`",
	Spaceship:              "`<=>`",
	Shl:                    "`<<`",
	Shr:                    "`>>`",
	Amp:                    "`&`",
	Pipe:                   "`|`",
	Caret:                  "`^`",
	Tilde:                  "`~`",
	Bang:                   "`!`",
	AndAnd:                 "`&&`",
	OrOr:                   "`||`",
	Question:               "`?`",
	QuestionQuestion:       "`??`",
	Colon:                  "`:`",
	ColonColon:             "`::`",
	Semicolon:              "`;`",
	Comma:                  "`,`",
	Dot:                    "`.`",
	Ellipsis:               "`...`",
	Arrow:                  "`->`",
	NullsafeArrow:          "`?->`",
	FatArrow:               "`=>`",
	LParen:                 "`(`",
	RParen:                 "`)`",
	LBrace:                 "`{`",
	RBrace:                 "`}`",
	LBracket:               "`[`",
	RBracket:               "`]`",
	At:                     "`@`",
}

var keywordNames = Keywords()

// String returns a human-readable name used in diagnostics.
func (k Kind) String() string {
	if k.IsKeyword() {
		return "`" + keywordNames[k] + "`"
	}
	if int(k) < len(kindNames) && kindNames[k] != "" {
		return kindNames[k]
	}
	return "unknown token"
}
