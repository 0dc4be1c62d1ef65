package trace

import (
	"bytes"
	"context"
	"encoding/json"
	"strconv"
	"strings"
	"testing"
	"time"
)

func TestLevelShouldEmit(t *testing.T) {
	tests := []struct {
		level Level
		scope Scope
		want  bool
	}{
		{LevelOff, ScopeRun, false},
		{LevelError, ScopeRun, false},
		{LevelPhase, ScopeStage, true},
		{LevelPhase, ScopeFile, false},
		{LevelDetail, ScopeFile, true},
		{LevelDetail, ScopeRule, false},
		{LevelDebug, ScopeRule, true},
	}
	for _, tt := range tests {
		if got := tt.level.ShouldEmit(tt.scope); got != tt.want {
			t.Fatalf("%s.ShouldEmit(%s) = %v, want %v", tt.level, tt.scope, got, tt.want)
		}
	}
}

func TestRingWrapsOldestFirst(t *testing.T) {
	r := NewRingTracer(3, LevelDebug)
	for _, name := range []string{"a", "b", "c", "d", "e"} {
		Point(r, ScopeStage, name, "")
	}
	var got []string
	for _, ev := range r.Snapshot() {
		got = append(got, ev.Name)
	}
	if strings.Join(got, ",") != "c,d,e" {
		t.Fatalf("snapshot = %v, want c,d,e", got)
	}
}

func TestStreamNDJSON(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(Config{Level: LevelPhase, Mode: ModeStream, Format: FormatNDJSON, Output: &buf})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	sp := Begin(tr, ScopeStage, "parse", 0)
	Begin(tr, ScopeFile, "file:a.php", sp.ID()).End("") // filtered out at phase level
	sp.WithExtra("files", "2").End("ok")
	Error(tr, ScopeFile, "file:b.php", "boom")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 3 {
		t.Fatalf("lines = %d, want 3:\n%s", len(lines), buf.String())
	}
	var last jsonEvent
	if err := json.Unmarshal([]byte(lines[2]), &last); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if last.Kind != "error" || last.Detail != "boom" {
		t.Fatalf("last = %+v", last)
	}
	var end jsonEvent
	if err := json.Unmarshal([]byte(lines[1]), &end); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if end.Extra["files"] != "2" || end.Detail != "ok" {
		t.Fatalf("end = %+v", end)
	}
}

func TestOffIsNop(t *testing.T) {
	tr, err := New(Config{Level: LevelOff})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if tr.Enabled() {
		t.Fatalf("tracer enabled at off")
	}
	if d := Begin(tr, ScopeRun, "run", 0).End(""); d != 0 {
		t.Fatalf("duration = %v", d)
	}
}

func TestContextPropagation(t *testing.T) {
	if FromContext(context.Background()) != Nop {
		t.Fatalf("empty context must yield Nop")
	}
	r := NewRingTracer(8, LevelDebug)
	ctx := WithTracer(context.Background(), r)
	sp := Begin(FromContext(ctx), ScopeStage, "lint", 0)
	ctx = WithParent(ctx, sp)
	if ParentSpan(ctx) != sp.ID() {
		t.Fatalf("parent = %d, want %d", ParentSpan(ctx), sp.ID())
	}
}

func TestParsers(t *testing.T) {
	if l, err := ParseLevel("Detail"); err != nil || l != LevelDetail {
		t.Fatalf("ParseLevel = %v, %v", l, err)
	}
	if m, err := ParseMode("both"); err != nil || m != ModeBoth {
		t.Fatalf("ParseMode = %v, %v", m, err)
	}
	if _, err := ParseFormat("xml"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestHeartbeatReportsOpenSpan(t *testing.T) {
	r := NewRingTracer(16, LevelPhase)
	before, _ := OpenSpans()

	sp := Begin(r, ScopeStage, "lint", 0)
	ev := beatEvent(7)
	if ev.Extra["at"] != "lint" {
		t.Fatalf("at = %q, want lint", ev.Extra["at"])
	}
	if want := strconv.FormatInt(before+1, 10); ev.Extra["open"] != want {
		t.Fatalf("open = %q, want %s", ev.Extra["open"], want)
	}
	if !strings.HasPrefix(ev.Detail, "#7 ") {
		t.Fatalf("detail = %q", ev.Detail)
	}

	sp.End("")
	sp.End("") // повторный End не уменьшает счётчик дважды
	if open, _ := OpenSpans(); open != before {
		t.Fatalf("open after End = %d, want %d", open, before)
	}
}

func TestHeartbeatStartStop(t *testing.T) {
	if h := StartHeartbeat(Nop, time.Millisecond); h != nil {
		t.Fatalf("heartbeat started for a disabled tracer")
	}
	if h := StartHeartbeat(NewRingTracer(4, LevelPhase), 0); h != nil {
		t.Fatalf("heartbeat started with zero interval")
	}
	r := NewRingTracer(64, LevelPhase)
	h := StartHeartbeat(r, time.Millisecond)
	deadline := time.Now().Add(2 * time.Second)
	for len(r.Snapshot()) == 0 && time.Now().Before(deadline) {
		time.Sleep(time.Millisecond)
	}
	h.Stop()
	h.Stop()
	var nilBeat *Heartbeat
	nilBeat.Stop()
	events := r.Snapshot()
	if len(events) == 0 || events[0].Kind != KindHeartbeat {
		t.Fatalf("events = %+v, want heartbeats", events)
	}
}
