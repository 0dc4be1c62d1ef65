package diagfmt

import (
	"encoding/json"
	"io"

	"quill/internal/diag"
	"quill/internal/source"
)

// LocationJSON представляет местоположение в файле для JSON
type LocationJSON struct {
	File      string `json:"file"`
	StartByte uint32 `json:"start_byte"`
	EndByte   uint32 `json:"end_byte"`
	StartLine uint32 `json:"start_line,omitempty"`
	StartCol  uint32 `json:"start_col,omitempty"`
	EndLine   uint32 `json:"end_line,omitempty"`
	EndCol    uint32 `json:"end_col,omitempty"`
}

// AnnotationJSON is a secondary span with its label.
type AnnotationJSON struct {
	Message  string       `json:"message,omitempty"`
	Location LocationJSON `json:"location"`
}

// FixEditJSON представляет одно редактирование для JSON
type FixEditJSON struct {
	Location LocationJSON `json:"location"`
	NewText  string       `json:"new_text"`
	OldText  string       `json:"old_text,omitempty"`
}

// FixJSON представляет предложение по исправлению для JSON
type FixJSON struct {
	ID            string        `json:"id,omitempty"`
	Title         string        `json:"title"`
	Kind          string        `json:"kind"`
	Applicability string        `json:"applicability"`
	IsPreferred   bool          `json:"is_preferred,omitempty"`
	Edits         []FixEditJSON `json:"edits,omitempty"`
	// Строки до и после применения всех правок фикса
	BeforeLines []string `json:"before_lines,omitempty"`
	AfterLines  []string `json:"after_lines,omitempty"`
}

// IssueJSON is one issue in the JSON report.
type IssueJSON struct {
	Level       string           `json:"level"`
	Code        string           `json:"code"`
	Rule        string           `json:"rule,omitempty"`
	Message     string           `json:"message"`
	Location    *LocationJSON    `json:"location,omitempty"`
	Annotations []AnnotationJSON `json:"annotations,omitempty"`
	Notes       []string         `json:"notes,omitempty"`
	Help        string           `json:"help,omitempty"`
	Fixable     bool             `json:"fixable"`
	Fix         *FixJSON         `json:"fix,omitempty"`
}

// IssuesOutput представляет корневую структуру JSON вывода
type IssuesOutput struct {
	Issues []IssueJSON    `json:"issues"`
	Count  int            `json:"count"`
	Levels map[string]int `json:"levels"`
}

func makeLocation(span source.Span, fs *source.FileSet, pathMode PathMode, includePositions bool) LocationJSON {
	loc := LocationJSON{
		File:      formatPath(fs, span.File, pathMode),
		StartByte: span.Start,
		EndByte:   span.End,
	}
	if includePositions && fs.Get(span.File) != nil {
		startPos, endPos := fs.Resolve(span)
		loc.StartLine = startPos.Line
		loc.StartCol = startPos.Col
		loc.EndLine = endPos.Line
		loc.EndCol = endPos.Col
	}
	return loc
}

// BuildIssuesOutput формирует структуру JSON-вывода без сериализации.
// Levels counts the whole collection, Issues is cut at opts.Max.
func BuildIssuesOutput(issues diag.Collection, fs *source.FileSet, opts JSONOpts) IssuesOutput {
	items := issues.Items()
	maxItems := len(items)
	if opts.Max > 0 && opts.Max < maxItems {
		maxItems = opts.Max
	}

	out := IssuesOutput{Issues: make([]IssueJSON, 0, maxItems), Levels: make(map[string]int)}
	for lvl, n := range issues.CountByLevel() {
		out.Levels[lvl.String()] = n
	}
	for _, is := range items[:maxItems] {
		j := IssueJSON{
			Level:   is.Level.String(),
			Code:    is.Code.ID(),
			Rule:    is.Rule,
			Message: is.Message,
			Notes:   is.Notes,
			Help:    is.Help,
			Fixable: is.Fixable(),
		}
		for _, a := range is.Annotations {
			loc := makeLocation(a.Span, fs, opts.PathMode, opts.IncludePositions)
			if a.Primary && j.Location == nil {
				j.Location = &loc
				continue
			}
			j.Annotations = append(j.Annotations, AnnotationJSON{Message: a.Message, Location: loc})
		}
		if opts.IncludeFixes && is.Suggestion != nil {
			j.Fix = buildFixJSON(is.Suggestion, fs, opts)
		}
		out.Issues = append(out.Issues, j)
	}
	out.Count = len(out.Issues)
	return out
}

func buildFixJSON(fix *diag.Fix, fs *source.FileSet, opts JSONOpts) *FixJSON {
	fj := &FixJSON{
		ID:            fix.ID,
		Title:         fix.Title,
		Kind:          fix.Kind.String(),
		Applicability: fix.Applicability.String(),
		IsPreferred:   fix.IsPreferred,
	}
	for _, edit := range fix.Edits {
		fj.Edits = append(fj.Edits, FixEditJSON{
			Location: makeLocation(edit.Span, fs, opts.PathMode, opts.IncludePositions),
			NewText:  edit.NewText,
			OldText:  edit.OldText,
		})
	}
	if opts.IncludePreviews {
		if preview, err := previewFix(fs, fix); err == nil {
			fj.BeforeLines = preview.Before
			fj.AfterLines = preview.After
		}
	}
	return fj
}

// JSON форматирует коллекцию в JSON с отступами.
func JSON(w io.Writer, issues diag.Collection, fs *source.FileSet, opts JSONOpts) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(BuildIssuesOutput(issues, fs, opts))
}
