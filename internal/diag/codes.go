package diag

import (
	"fmt"
)

type Code uint16

const (
	// Неизвестная ошибка
	UnknownCode Code = 0

	// Лексические
	LexInfo                Code = 1000
	LexUnknownChar         Code = 1001
	LexUnterminatedString  Code = 1002
	LexUnterminatedComment Code = 1003
	LexBadNumber           Code = 1004
	LexBadVariable         Code = 1005

	// Парсерные
	SynInfo             Code = 2000
	SynUnexpectedToken  Code = 2001
	SynUnexpectedEOF    Code = 2002
	SynInvalidLexeme    Code = 2003
	SynExpectExpression Code = 2004
	SynExpectStatement  Code = 2005

	// Семантические проверки одного файла
	SemInfo                     Code = 3000
	SemDuplicateParameter       Code = 3001
	SemDuplicateModifier        Code = 3002
	SemConflictingModifiers     Code = 3003
	SemAbstractMethodWithBody   Code = 3004
	SemMethodWithoutBody        Code = 3005
	SemBreakOutsideLoop         Code = 3006
	SemInterfaceMemberNotPublic Code = 3007
	SemDuplicateMember          Code = 3008
	SemEnumCaseOutsideEnum      Code = 3009
	SemVariadicNotLast          Code = 3010

	// Рефлексия кодовой базы
	RefInfo              Code = 4000
	RefDuplicateClass    Code = 4001
	RefDuplicateFunction Code = 4002
	RefDuplicateConstant Code = 4003

	// Правила линтера
	LintInfo Code = 5000
	LintRule Code = 5001
)

var (
	codeDescription = map[Code]string{
		UnknownCode:                 "Unknown error",
		LexInfo:                     "Lexical information",
		LexUnknownChar:              "Unknown character",
		LexUnterminatedString:       "Unterminated string literal",
		LexUnterminatedComment:      "Unterminated block comment",
		LexBadNumber:                "Invalid numeric literal",
		LexBadVariable:              "Invalid variable name",
		SynInfo:                     "Syntax information",
		SynUnexpectedToken:          "Unexpected token",
		SynUnexpectedEOF:            "Unexpected end of input",
		SynInvalidLexeme:            "Invalid lexeme",
		SynExpectExpression:         "Expected expression",
		SynExpectStatement:          "Expected statement",
		SemInfo:                     "Semantic information",
		SemDuplicateParameter:       "Duplicate parameter",
		SemDuplicateModifier:        "Duplicate modifier",
		SemConflictingModifiers:     "Conflicting modifiers",
		SemAbstractMethodWithBody:   "Abstract method with body",
		SemMethodWithoutBody:        "Method without body",
		SemBreakOutsideLoop:         "Loop control outside of loop",
		SemInterfaceMemberNotPublic: "Interface member must be public",
		SemDuplicateMember:          "Duplicate class member",
		SemEnumCaseOutsideEnum:      "Enum case outside of enum",
		SemVariadicNotLast:          "Variadic parameter must be last",
		RefInfo:                     "Reflection information",
		RefDuplicateClass:           "Duplicate class-like declaration",
		RefDuplicateFunction:        "Duplicate function declaration",
		RefDuplicateConstant:        "Duplicate constant declaration",
		LintInfo:                    "Lint information",
		LintRule:                    "Lint rule violation",
	}
)

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("REF%04d", ic)
	case ic >= 5000 && ic < 6000:
		return fmt.Sprintf("LNT%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[Code(0)]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
