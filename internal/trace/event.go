package trace

import "time"

type Kind uint8

const (
	KindSpanBegin Kind = iota + 1
	KindSpanEnd
	KindPoint
	KindHeartbeat
	// KindError is emitted for task failures and recovered panics; it is
	// recorded at every level except off.
	KindError
)

func (k Kind) String() string {
	switch k {
	case KindSpanBegin:
		return "begin"
	case KindSpanEnd:
		return "end"
	case KindPoint:
		return "point"
	case KindHeartbeat:
		return "heartbeat"
	case KindError:
		return "error"
	}
	return "unknown"
}

// Scope is the granularity of an event; lower values are coarser.
type Scope uint8

const (
	ScopeRun Scope = iota + 1
	ScopeStage
	ScopeFile
	ScopeRule
)

func (s Scope) String() string {
	switch s {
	case ScopeRun:
		return "run"
	case ScopeStage:
		return "stage"
	case ScopeFile:
		return "file"
	case ScopeRule:
		return "rule"
	}
	return "unknown"
}

// Event is one trace record.
type Event struct {
	Time     time.Time
	Seq      uint64
	Kind     Kind
	Scope    Scope
	SpanID   uint64
	ParentID uint64
	GID      uint64
	Name     string // "parse", "lint", "file:src/a.php"
	Detail   string
	Extra    map[string]string
}

// passes reports whether ev is recorded by a tracer at level.
func passes(level Level, ev *Event) bool {
	switch ev.Kind {
	case KindHeartbeat:
		return level > LevelOff
	case KindError:
		return level > LevelOff
	}
	return level.ShouldEmit(ev.Scope)
}
