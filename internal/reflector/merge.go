package reflector

import (
	"quill/internal/reflection"
)

// Merge folds fragment into base and returns the accumulator. Both arguments
// are owned by Merge afterwards; callers must not touch fragment again.
//
// The first declaration of a name wins. A later one is kept only as a
// Conflict entry, so the resulting symbol set does not depend on the fold
// order while the conflict list does.
func Merge(base, fragment *reflection.Codebase) *reflection.Codebase {
	if base == nil {
		if fragment == nil {
			return reflection.NewCodebase()
		}
		return fragment
	}
	if fragment == nil {
		return base
	}
	base.Conflicts = append(base.Conflicts, fragment.Conflicts...)
	for _, key := range fragment.ClassKeys() {
		base.AddClass(fragment.Classes[key])
	}
	for _, key := range fragment.FunctionKeys() {
		base.AddFunction(fragment.Functions[key])
	}
	for _, key := range fragment.ConstantKeys() {
		base.AddConstant(fragment.Constants[key])
	}
	base.Populated = false
	return base
}

// MergeAll folds fragments left to right.
func MergeAll(fragments ...*reflection.Codebase) *reflection.Codebase {
	var cb *reflection.Codebase
	for _, f := range fragments {
		cb = Merge(cb, f)
	}
	if cb == nil {
		cb = reflection.NewCodebase()
	}
	return cb
}
