package token

import "strings"

var keywords = map[string]Kind{
	"abstract":     KwAbstract,
	"as":           KwAs,
	"break":        KwBreak,
	"class":        KwClass,
	"clone":        KwClone,
	"const":        KwConst,
	"continue":     KwContinue,
	"case":         KwCase,
	"echo":         KwEcho,
	"else":         KwElse,
	"elseif":       KwElseIf,
	"enum":         KwEnum,
	"extends":      KwExtends,
	"false":        KwFalse,
	"final":        KwFinal,
	"fn":           KwFn,
	"foreach":      KwForeach,
	"function":     KwFunction,
	"global":       KwGlobal,
	"if":           KwIf,
	"implements":   KwImplements,
	"include":      KwInclude,
	"include_once": KwIncludeOnce,
	"instanceof":   KwInstanceof,
	"interface":    KwInterface,
	"namespace":    KwNamespace,
	"new":          KwNew,
	"null":         KwNull,
	"print":        KwPrint,
	"private":      KwPrivate,
	"protected":    KwProtected,
	"public":       KwPublic,
	"readonly":     KwReadonly,
	"require":      KwRequire,
	"require_once": KwRequireOnce,
	"return":       KwReturn,
	"static":       KwStatic,
	"throw":        KwThrow,
	"trait":        KwTrait,
	"true":         KwTrue,
	"unset":        KwUnset,
	"use":          KwUse,
	"while":        KwWhile,
}

// LookupKeyword возвращает тип и bool если это ключевое слово.
// Ключевые слова регистронезависимые: "ECHO" и "echo" дают KwEcho.
func LookupKeyword(ident string) (Kind, bool) {
	if k, ok := keywords[ident]; ok {
		return k, true
	}
	k, ok := keywords[strings.ToLower(ident)]
	return k, ok
}

// Keywords returns the canonical lowercase spelling of every keyword kind.
func Keywords() map[Kind]string {
	out := make(map[Kind]string, len(keywords))
	for text, k := range keywords {
		out[k] = text
	}
	return out
}
