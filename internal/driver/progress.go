package driver

import (
	"sync"
	"sync/atomic"
)

// Stage is a fan-out step of the pipeline.
type Stage uint8

const (
	StageParse Stage = iota
	StageReflect
	StageLint
)

func (s Stage) String() string {
	switch s {
	case StageParse:
		return "parse"
	case StageReflect:
		return "reflect"
	case StageLint:
		return "lint"
	}
	return "unknown"
}

// Label is the user-facing progress caption of the stage.
func (s Stage) Label() string {
	if s == StageLint {
		return "linting"
	}
	return "scanning"
}

type ProgressKind uint8

const (
	ProgressStarted ProgressKind = iota
	ProgressAdvanced
	ProgressFinished
)

// ProgressEvent reports stage boundaries and finished tasks.
type ProgressEvent struct {
	Stage Stage
	Kind  ProgressKind
	Total int
	Done  int
	Path  string
}

// Progress receives events from concurrent tasks; Report must be safe for
// concurrent use and should not block for long.
type Progress interface {
	Report(ev ProgressEvent)
}

// ChannelSink forwards progress events to a channel, typically drained by
// the terminal UI. Advance events are dropped when the buffer is full;
// stage boundaries are always delivered, so the consumer must keep reading
// until Close.
type ChannelSink struct {
	ch   chan ProgressEvent
	once sync.Once
}

func NewChannelSink(buffer int) *ChannelSink {
	return &ChannelSink{ch: make(chan ProgressEvent, buffer)}
}

func (s *ChannelSink) Events() <-chan ProgressEvent { return s.ch }

func (s *ChannelSink) Report(ev ProgressEvent) {
	if ev.Kind == ProgressAdvanced {
		select {
		case s.ch <- ev:
		default:
		}
		return
	}
	s.ch <- ev
}

// Close ends the event stream. Safe to call twice.
func (s *ChannelSink) Close() {
	s.once.Do(func() { close(s.ch) })
}

// tracker counts finished tasks of one stage.
type tracker struct {
	sink  Progress
	stage Stage
	total int
	done  atomic.Int64
}

func startTracker(sink Progress, stage Stage, total int) *tracker {
	t := &tracker{sink: sink, stage: stage, total: total}
	if sink != nil {
		sink.Report(ProgressEvent{Stage: stage, Kind: ProgressStarted, Total: total})
	}
	return t
}

func (t *tracker) advance(path string) {
	done := int(t.done.Add(1))
	if t.sink != nil {
		t.sink.Report(ProgressEvent{Stage: t.stage, Kind: ProgressAdvanced, Total: t.total, Done: done, Path: path})
	}
}

func (t *tracker) finish() {
	if t.sink != nil {
		t.sink.Report(ProgressEvent{Stage: t.stage, Kind: ProgressFinished, Total: t.total, Done: int(t.done.Load())})
	}
}
