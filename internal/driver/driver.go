// Package driver runs the analysis pipeline over the sources of a run.
//
// Stages fan out over a bounded worker pool and meet at a barrier:
//
//	parse ∥ → reflect ∥ → merge → populate → lint ∥ → flatten
//
// Every task writes into its own slot, so the final issue order depends only
// on the enumeration order of the sources, never on scheduling.
package driver

import (
	"runtime"

	"quill/internal/diag"
	"quill/internal/linter"
	"quill/internal/observ"
	"quill/internal/reflection"
	"quill/internal/source"
)

// Options configure one run.
type Options struct {
	// Jobs bounds every stage's worker pool; <= 0 means GOMAXPROCS.
	Jobs int
	// SemanticsOnly skips reflection and linting (Check).
	SemanticsOnly bool
	Settings      linter.Settings
	// Plugins defaults to the built-in rule set.
	Plugins  []linter.Plugin
	Progress Progress
	// Cache stores reflection fragments between runs; nil disables it.
	Cache *FragmentCache
	// FixableOnly keeps only issues carrying a suggestion. The highest level
	// is computed before this filter.
	FixableOnly  bool
	MinimumLevel *diag.Level
}

func (o Options) jobs() int {
	if o.Jobs > 0 {
		return o.Jobs
	}
	return runtime.GOMAXPROCS(0)
}

// Result of a successful run.
type Result struct {
	Issues   diag.Collection
	FileSet  *source.FileSet
	Codebase *reflection.Codebase // nil in check mode
	Timings  observ.Report
	// Files is the number of user-defined sources analysed.
	Files     int
	CacheHits int

	highest    diag.Level
	hasHighest bool
}

// HighestLevel is the highest level among all issues found, before the
// fixable-only and minimum-level filters.
func (r *Result) HighestLevel() (diag.Level, bool) {
	if r == nil {
		return diag.LevelHelp, false
	}
	return r.highest, r.hasHighest
}

// Exit codes of the lint and check commands.
const (
	ExitOK     = 0
	ExitIssues = 1
	ExitError  = 2
)

// ExitCode maps a run outcome to the process exit code.
func ExitCode(res *Result, err error) int {
	if err != nil {
		return ExitError
	}
	if lvl, ok := res.HighestLevel(); ok && lvl >= diag.LevelError {
		return ExitIssues
	}
	return ExitOK
}
