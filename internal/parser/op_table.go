package parser

import "quill/internal/token"

type precedence uint8

const (
	precNone precedence = iota
	precAssign
	precTernary
	precCoalesce
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precComparison
	precConcat
	precShift
	precAdditive
	precMultiplicative
	precInstanceof
	precPow
)

type opInfo struct {
	prec       precedence
	rightAssoc bool
}

// binaryOps maps infix operator tokens to their binding power.
// Assignment and ternary are handled separately.
var binaryOps = map[token.Kind]opInfo{
	token.QuestionQuestion: {precCoalesce, true},
	token.OrOr:             {precOr, false},
	token.AndAnd:           {precAnd, false},
	token.Pipe:             {precBitOr, false},
	token.Caret:            {precBitXor, false},
	token.Amp:              {precBitAnd, false},
	token.EqEq:             {precEquality, false},
	token.BangEq:           {precEquality, false},
	token.EqEqEq:           {precEquality, false},
	token.BangEqEq:         {precEquality, false},
	token.Spaceship:        {precEquality, false},
	token.Lt:               {precComparison, false},
	token.LtEq:             {precComparison, false},
	token.Gt:               {precComparison, false},
	token.GtEq:             {precComparison, false},
	token.Dot:              {precConcat, false},
	token.Shl:              {precShift, false},
	token.Shr:              {precShift, false},
	token.Plus:             {precAdditive, false},
	token.Minus:            {precAdditive, false},
	token.Star:             {precMultiplicative, false},
	token.Slash:            {precMultiplicative, false},
	token.Percent:          {precMultiplicative, false},
	token.KwInstanceof:     {precInstanceof, false},
	token.StarStar:         {precPow, true},
}

// castTypes are the identifiers accepted inside a "(type)" cast.
var castTypes = map[string]struct{}{
	"int": {}, "integer": {}, "bool": {}, "boolean": {}, "float": {}, "double": {},
	"real": {}, "string": {}, "binary": {}, "array": {}, "object": {},
}

// prefixOps are the unary prefix operators.
var prefixOps = []token.Kind{
	token.Bang, token.Minus, token.Plus, token.Tilde, token.At, token.PlusPlus, token.MinusMinus,
}

// constructKinds are keyword-led unary constructs parsed into ast.Construct.
var constructKinds = []token.Kind{
	token.KwInclude, token.KwIncludeOnce, token.KwRequire, token.KwRequireOnce,
	token.KwThrow, token.KwClone,
}
