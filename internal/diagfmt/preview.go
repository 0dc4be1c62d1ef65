package diagfmt

import (
	"bytes"
	"fmt"
	"slices"
	"strings"

	"fortio.org/safecast"

	"quill/internal/diag"
	"quill/internal/source"
)

// fixPreview holds the whole lines a fix touches, before and after all of
// its edits are applied together.
type fixPreview struct {
	Before []string
	After  []string
}

// previewFix applies the edits of f to a copy of the affected lines.
// All edits must target one file and must not overlap.
func previewFix(fs *source.FileSet, f *diag.Fix) (fixPreview, error) {
	if fs == nil || f == nil || len(f.Edits) == 0 {
		return fixPreview{}, fmt.Errorf("nothing to preview")
	}
	edits := slices.Clone(f.Edits)
	slices.SortStableFunc(edits, func(a, b diag.TextEdit) int {
		if a.Span.Start != b.Span.Start {
			return int(a.Span.Start) - int(b.Span.Start)
		}
		// вставка раньше замены с того же смещения
		if a.Span.Empty() && !b.Span.Empty() {
			return -1
		}
		if b.Span.Empty() && !a.Span.Empty() {
			return 1
		}
		return 0
	})

	file := fs.Get(edits[0].Span.File)
	if file == nil {
		return fixPreview{}, fmt.Errorf("file %d not found", edits[0].Span.File)
	}
	size, err := safecast.Conv[uint32](len(file.Content))
	if err != nil {
		return fixPreview{}, fmt.Errorf("file too large to preview: %w", err)
	}
	var prevEnd uint32
	for i, e := range edits {
		switch {
		case e.Span.File != file.ID:
			return fixPreview{}, fmt.Errorf("fix spans several files")
		case e.Span.End < e.Span.Start || e.Span.End > size:
			return fixPreview{}, fmt.Errorf("edit %d out of range", i)
		case i > 0 && e.Span.Start < prevEnd:
			return fixPreview{}, fmt.Errorf("edit %d overlaps the previous one", i)
		}
		prevEnd = e.Span.End
	}

	from := lineBegin(file.Content, int(edits[0].Span.Start))
	to := lineFinish(file.Content, int(edits[len(edits)-1].Span.End))

	var after bytes.Buffer
	cursor := from
	for _, e := range edits {
		after.Write(file.Content[cursor:e.Span.Start])
		after.WriteString(e.NewText)
		cursor = int(e.Span.End)
	}
	after.Write(file.Content[cursor:to])

	return fixPreview{
		Before: previewLines(file.Content[from:to]),
		After:  previewLines(after.Bytes()),
	}, nil
}

// lineBegin returns the offset of the line holding off.
func lineBegin(content []byte, off int) int {
	return bytes.LastIndexByte(content[:off], '\n') + 1
}

// lineFinish returns the offset just past the newline ending the line
// holding off, or the end of content.
func lineFinish(content []byte, off int) int {
	if off > 0 && content[off-1] == '\n' {
		return off
	}
	i := bytes.IndexByte(content[off:], '\n')
	if i < 0 {
		return len(content)
	}
	return off + i + 1
}

func previewLines(content []byte) []string {
	if len(content) == 0 {
		return nil
	}
	// хвостовой перевод строки не даёт лишней пустой строки
	return strings.Split(strings.TrimSuffix(string(content), "\n"), "\n")
}
