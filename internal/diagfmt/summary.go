package diagfmt

import (
	"fmt"
	"io"
	"slices"
	"strings"

	"quill/internal/diag"
)

// Summary writes the closing line of a run, e.g.
// "found 2 errors, 1 warning in 14 files".
func Summary(w io.Writer, issues diag.Collection, files int, useColor bool) error {
	pal := newPalette(useColor)
	counts := issues.CountByLevel()
	var parts []string
	levels := slices.Clone(diag.Levels)
	slices.Reverse(levels)
	for _, lvl := range levels {
		n := counts[lvl]
		if n == 0 {
			continue
		}
		parts = append(parts, pal.level(lvl).Sprint(plural(n, lvl.String())))
	}
	where := plural(files, "file")
	if len(parts) == 0 {
		_, err := fmt.Fprintf(w, "%s in %s\n", pal.help.Sprint("no issues found"), where)
		return err
	}
	_, err := fmt.Fprintf(w, "found %s in %s\n", strings.Join(parts, ", "), where)
	return err
}

func plural(n int, word string) string {
	if n == 1 || word == "help" {
		return fmt.Sprintf("%d %s", n, word)
	}
	return fmt.Sprintf("%d %ss", n, word)
}
