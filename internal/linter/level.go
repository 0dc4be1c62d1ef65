package linter

import (
	"fmt"
	"strings"

	"quill/internal/diag"
)

// Level is a configured rule or global level. Unlike diag.Level it has an
// Off state, which disables the rule (or all rules when used globally).
type Level uint8

const (
	LevelOff Level = iota
	LevelHelp
	LevelNote
	LevelWarning
	LevelError
)

// FromIssueLevel converts a diagnostic level into a configured level.
func FromIssueLevel(l diag.Level) Level {
	switch l {
	case diag.LevelHelp:
		return LevelHelp
	case diag.LevelNote:
		return LevelNote
	case diag.LevelWarning:
		return LevelWarning
	default:
		return LevelError
	}
}

// IssueLevel returns the diagnostic level, false for LevelOff.
func (l Level) IssueLevel() (diag.Level, bool) {
	switch l {
	case LevelHelp:
		return diag.LevelHelp, true
	case LevelNote:
		return diag.LevelNote, true
	case LevelWarning:
		return diag.LevelWarning, true
	case LevelError:
		return diag.LevelError, true
	}
	return diag.LevelHelp, false
}

func (l Level) String() string {
	if l == LevelOff {
		return "off"
	}
	il, _ := l.IssueLevel()
	return il.String()
}

// ParseLevel accepts "off" in addition to the diagnostic level names.
func ParseLevel(s string) (Level, error) {
	if strings.EqualFold(strings.TrimSpace(s), "off") {
		return LevelOff, nil
	}
	il, err := diag.ParseLevel(s)
	if err != nil {
		return LevelOff, fmt.Errorf("unknown level %q (want off, help, note, warning or error)", s)
	}
	return FromIssueLevel(il), nil
}

// MarshalText implements encoding.TextMarshaler.
func (l Level) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *Level) UnmarshalText(text []byte) error {
	parsed, err := ParseLevel(string(text))
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}
