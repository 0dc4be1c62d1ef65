package diag

import (
	"fmt"
	"strings"
)

// Level defines the importance of an issue. Levels are ordered.
type Level uint8

const (
	// LevelHelp is a style or readability suggestion.
	LevelHelp Level = iota
	// LevelNote is informational.
	LevelNote
	LevelWarning
	LevelError
)

// Levels lists all levels in ascending order.
var Levels = []Level{LevelHelp, LevelNote, LevelWarning, LevelError}

func (l Level) String() string {
	switch l {
	case LevelHelp:
		return "help"
	case LevelNote:
		return "note"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	}
	return "unknown"
}

// ParseLevel parses a level name case-insensitively.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "help":
		return LevelHelp, nil
	case "note", "info":
		return LevelNote, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error":
		return LevelError, nil
	}
	return LevelHelp, fmt.Errorf("unknown level %q (want help, note, warning or error)", s)
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
