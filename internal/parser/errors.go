package parser

import (
	"fmt"
	"strings"

	"quill/internal/diag"
	"quill/internal/source"
	"quill/internal/token"
)

// RuleName is the issue identity of parse errors.
const RuleName = "parser"

type ErrorKind uint8

const (
	ErrUnexpectedToken ErrorKind = iota
	ErrUnexpectedEndOfInput
	ErrInvalidLexeme
	ErrExpectedExpression
	ErrExpectedStatement
)

func (k ErrorKind) String() string {
	switch k {
	case ErrUnexpectedToken:
		return "unexpected token"
	case ErrUnexpectedEndOfInput:
		return "unexpected end of input"
	case ErrInvalidLexeme:
		return "invalid lexeme"
	case ErrExpectedExpression:
		return "expected expression"
	case ErrExpectedStatement:
		return "expected statement"
	}
	return "unknown parse error"
}

// Error is a structured parse error. It always carries a span and the token
// that was found; Expected lists the kinds that would have been accepted.
type Error struct {
	Kind     ErrorKind
	Span     source.Span
	Expected []token.Kind
	Found    token.Token
	// Detail is the lexer message for ErrInvalidLexeme.
	Detail string
}

func (e *Error) Error() string {
	var b strings.Builder
	switch e.Kind {
	case ErrUnexpectedToken:
		fmt.Fprintf(&b, "unexpected %s", describe(e.Found))
	case ErrUnexpectedEndOfInput:
		b.WriteString("unexpected end of input")
	case ErrInvalidLexeme:
		fmt.Fprintf(&b, "invalid input %q", e.Found.Text)
		if e.Detail != "" {
			fmt.Fprintf(&b, ": %s", e.Detail)
		}
		return b.String()
	case ErrExpectedExpression:
		fmt.Fprintf(&b, "expected an expression, found %s", describe(e.Found))
		return b.String()
	case ErrExpectedStatement:
		fmt.Fprintf(&b, "expected a statement, found %s", describe(e.Found))
		return b.String()
	}
	if len(e.Expected) > 0 {
		fmt.Fprintf(&b, ", expected %s", expectedList(e.Expected))
	}
	return b.String()
}

func (e *Error) code() diag.Code {
	switch e.Kind {
	case ErrUnexpectedToken:
		return diag.SynUnexpectedToken
	case ErrUnexpectedEndOfInput:
		return diag.SynUnexpectedEOF
	case ErrInvalidLexeme:
		return diag.SynInvalidLexeme
	case ErrExpectedExpression:
		return diag.SynExpectExpression
	case ErrExpectedStatement:
		return diag.SynExpectStatement
	}
	return diag.UnknownCode
}

// Issue converts the error into an error-level issue.
func (e *Error) Issue() diag.Issue {
	issue := diag.NewError(e.code(), RuleName, e.Span, e.Error())
	if e.Kind == ErrUnexpectedEndOfInput {
		issue = issue.WithHelp("the file ends before the construct is complete")
	}
	return issue
}

func describe(tok token.Token) string {
	switch tok.Kind {
	case token.Variable, token.Ident, token.QualifiedIdent, token.IntLit, token.FloatLit:
		return fmt.Sprintf("%s `%s`", tok.Kind, tok.Text)
	}
	return tok.Kind.String()
}

func expectedList(kinds []token.Kind) string {
	names := make([]string, 0, len(kinds))
	for _, k := range kinds {
		names = append(names, k.String())
	}
	switch len(names) {
	case 1:
		return names[0]
	case 2:
		return names[0] + " or " + names[1]
	}
	return strings.Join(names[:len(names)-1], ", ") + " or " + names[len(names)-1]
}
