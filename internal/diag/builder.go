package diag

import "quill/internal/source"

func New(level Level, code Code, rule string, msg string) Issue {
	return Issue{
		Level:   level,
		Code:    code,
		Rule:    rule,
		Message: msg,
	}
}

func NewError(code Code, rule string, primary source.Span, msg string) Issue {
	return New(LevelError, code, rule, msg).WithPrimary(primary, "")
}

func (i Issue) WithPrimary(sp source.Span, msg string) Issue {
	i.Annotations = append(i.Annotations, Annotation{Span: sp, Message: msg, Primary: true})
	return i
}

func (i Issue) WithSecondary(sp source.Span, msg string) Issue {
	i.Annotations = append(i.Annotations, Annotation{Span: sp, Message: msg})
	return i
}

func (i Issue) WithNote(msg string) Issue {
	i.Notes = append(i.Notes, msg)
	return i
}

func (i Issue) WithHelp(msg string) Issue {
	i.Help = msg
	return i
}

func (i Issue) WithSuggestion(fix Fix) Issue {
	i.Suggestion = &fix
	return i
}

// WithLevel returns a copy with the level replaced.
func (i Issue) WithLevel(level Level) Issue {
	i.Level = level
	return i
}
