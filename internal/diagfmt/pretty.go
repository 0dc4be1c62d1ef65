package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"quill/internal/diag"
	"quill/internal/source"
)

const tabWidth = 4

type palette struct {
	levels   map[diag.Level]*color.Color
	location *color.Color
	gutter   *color.Color
	code     *color.Color
	help     *color.Color
	added    *color.Color
	removed  *color.Color
}

func newPalette(enabled bool) palette {
	mk := func(attrs ...color.Attribute) *color.Color {
		c := color.New(attrs...)
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
		return c
	}
	return palette{
		levels: map[diag.Level]*color.Color{
			diag.LevelError:   mk(color.FgRed, color.Bold),
			diag.LevelWarning: mk(color.FgYellow, color.Bold),
			diag.LevelNote:    mk(color.FgCyan, color.Bold),
			diag.LevelHelp:    mk(color.FgGreen, color.Bold),
		},
		location: mk(color.Bold),
		gutter:   mk(color.FgBlue),
		code:     mk(color.Faint),
		help:     mk(color.FgGreen),
		added:    mk(color.FgGreen),
		removed:  mk(color.FgRed),
	}
}

func (p palette) level(l diag.Level) *color.Color {
	if c, ok := p.levels[l]; ok {
		return c
	}
	return p.location
}

// Pretty форматирует коллекцию в человекочитаемый вид, в порядке коллекции.
// Для каждой проблемы печатает:
// <path>:<line>:<col>: <LEVEL> <CODE> [rule]: <Message>
// затем строку исходника с подчёркиванием ^~~~ по основному span,
// затем help, заметки, вторичные аннотации и исправления по опциям.
func Pretty(w io.Writer, issues diag.Collection, fs *source.FileSet, opts PrettyOpts) error {
	pal := newPalette(opts.Color)
	for _, issue := range issues.Items() {
		if err := prettyIssue(w, issue, fs, opts, pal); err != nil {
			return err
		}
	}
	return nil
}

func prettyIssue(w io.Writer, issue diag.Issue, fs *source.FileSet, opts PrettyOpts, pal palette) error {
	var b strings.Builder
	primary, hasPrimary := issue.Primary()
	var primaryMsg string

	header := pal.level(issue.Level).Sprint(strings.ToUpper(issue.Level.String())) + " " + pal.code.Sprint(issue.Code.ID())
	if issue.Rule != "" {
		header += " " + pal.code.Sprintf("[%s]", issue.Rule)
	}
	if hasPrimary && fs.Get(primary.File) != nil {
		start, _ := fs.Resolve(primary)
		loc := fmt.Sprintf("%s:%d:%d", formatPath(fs, primary.File, opts.PathMode), start.Line, start.Col)
		fmt.Fprintf(&b, "%s: %s: %s\n", pal.location.Sprint(loc), header, issue.Message)
		for _, a := range issue.Annotations {
			if a.Primary {
				primaryMsg = a.Message
				break
			}
		}
		writeSnippet(&b, fs, primary, primaryMsg, opts.Context, pal, pal.level(issue.Level))
	} else {
		fmt.Fprintf(&b, "%s: %s\n", header, issue.Message)
	}

	if issue.Help != "" {
		fmt.Fprintf(&b, "  = %s: %s\n", pal.help.Sprint("help"), issue.Help)
	}
	if opts.ShowNotes {
		for _, note := range issue.Notes {
			fmt.Fprintf(&b, "  = note: %s\n", note)
		}
		for _, a := range issue.Annotations {
			if a.Primary || fs.Get(a.Span.File) == nil {
				continue
			}
			start, _ := fs.Resolve(a.Span)
			fmt.Fprintf(&b, "  note: %s:%d:%d", formatPath(fs, a.Span.File, opts.PathMode), start.Line, start.Col)
			if a.Message != "" {
				fmt.Fprintf(&b, ": %s", a.Message)
			}
			b.WriteByte('\n')
		}
	}
	if opts.ShowFixes && issue.Suggestion != nil {
		writeFix(&b, fs, issue.Suggestion, opts, pal)
	}
	b.WriteByte('\n')
	_, err := io.WriteString(w, b.String())
	return err
}

func writeSnippet(b *strings.Builder, fs *source.FileSet, span source.Span, msg string, context int8, pal palette, mark *color.Color) {
	f := fs.Get(span.File)
	start, end := fs.Resolve(span)
	first := start.Line
	if context > 0 {
		first = uint32(max(1, int(start.Line)-int(context)))
	}
	width := len(fmt.Sprint(start.Line))
	for ln := first; ln <= start.Line; ln++ {
		fmt.Fprintf(b, " %s %s\n", pal.gutter.Sprintf("%*d |", width, ln), expandTabs(f.GetLine(ln)))
	}

	line := f.GetLine(start.Line)
	col := min(int(start.Col)-1, len(line))
	pad := runewidth.StringWidth(expandTabs(line[:col]))
	// подчёркиваем только первую строку многострочного span
	stop := len(line)
	if end.Line == start.Line {
		stop = min(int(end.Col)-1, len(line))
	}
	caret := 1
	if stop > col {
		caret = max(1, runewidth.StringWidth(expandTabs(line[col:stop])))
	}
	underline := "^" + strings.Repeat("~", caret-1)
	if msg != "" {
		underline += " " + msg
	}
	fmt.Fprintf(b, " %s %s%s\n", pal.gutter.Sprintf("%*s |", width, ""), strings.Repeat(" ", pad), mark.Sprint(underline))
}

func writeFix(b *strings.Builder, fs *source.FileSet, fix *diag.Fix, opts PrettyOpts, pal palette) {
	fmt.Fprintf(b, "  fix #1: %s (%s, %s)", fix.Title, fix.Kind, fix.Applicability)
	if fix.ID != "" {
		fmt.Fprintf(b, " id=%s", fix.ID)
	}
	if fix.IsPreferred {
		b.WriteString(" preferred")
	}
	b.WriteByte('\n')
	for _, edit := range fix.Edits {
		fmt.Fprintf(b, "    edit %s:%s apply=%q\n", formatPath(fs, edit.Span.File, opts.PathMode), formatSpan(edit.Span, fs), edit.NewText)
	}
	if !opts.ShowPreview {
		return
	}
	preview, err := previewFix(fs, fix)
	if err != nil {
		return
	}
	b.WriteString("    preview:\n")
	for _, l := range preview.Before {
		fmt.Fprintf(b, "      %s\n", pal.removed.Sprint("- "+l))
	}
	for _, l := range preview.After {
		fmt.Fprintf(b, "      %s\n", pal.added.Sprint("+ "+l))
	}
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", strings.Repeat(" ", tabWidth))
}
