package reflection

import (
	"strings"

	"golang.org/x/text/cases"
)

// Key folds a fully-qualified name into its lookup key. Class, function and
// namespace names are case-insensitive; a leading "\" is ignored.
func Key(name string) string {
	// Caser хранит состояние, поэтому новый на каждый вызов
	return cases.Fold().String(strings.TrimPrefix(name, `\`))
}

// ConstantKey folds only the namespace part: constant names themselves are
// case-sensitive.
func ConstantKey(name string) string {
	name = strings.TrimPrefix(name, `\`)
	i := strings.LastIndexByte(name, '\\')
	if i < 0 {
		return name
	}
	return cases.Fold().String(name[:i]) + name[i:]
}
