package diagfmt

import (
	"fmt"
	"io"

	"quill/internal/diag"
	"quill/internal/source"
)

// Short writes one line per issue:
// <path>:<line>:<col>: <level> <CODE>: <message> [rule]
func Short(w io.Writer, issues diag.Collection, fs *source.FileSet, mode PathMode) error {
	for _, issue := range issues.Items() {
		loc := "-"
		if sp, ok := issue.Primary(); ok && fs.Get(sp.File) != nil {
			start, _ := fs.Resolve(sp)
			loc = fmt.Sprintf("%s:%d:%d", formatPath(fs, sp.File, mode), start.Line, start.Col)
		}
		line := fmt.Sprintf("%s: %s %s: %s", loc, issue.Level, issue.Code.ID(), issue.Message)
		if issue.Rule != "" {
			line += " [" + issue.Rule + "]"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}
