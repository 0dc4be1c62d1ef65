// Package reflection is the symbol model shared by the linter: classes,
// interfaces, traits, enums, functions and constants declared across all
// analyzed files, keyed by case-folded fully-qualified name.
//
// A Codebase built from one file is a fragment. Fragments are folded into one
// Codebase by reflector.Merge and finalized by reflector.Populate; after that
// the Codebase is read-only and may be shared between goroutines.
//
// Every type here is plain data so that fragments can be cached on disk.
package reflection
