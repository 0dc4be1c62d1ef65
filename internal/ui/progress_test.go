package ui

import (
	"strings"
	"testing"

	"quill/internal/driver"
)

func TestApplyEventTracksStages(t *testing.T) {
	m := NewProgressModel("quill lint", []driver.Stage{driver.StageParse, driver.StageLint}, nil).(*progressModel)

	events := []driver.ProgressEvent{
		{Stage: driver.StageParse, Kind: driver.ProgressStarted, Total: 4},
		{Stage: driver.StageParse, Kind: driver.ProgressAdvanced, Total: 4, Done: 2, Path: "a.php"},
		{Stage: driver.StageParse, Kind: driver.ProgressAdvanced, Total: 4, Done: 1, Path: "b.php"},
	}
	for _, ev := range events {
		m.applyEvent(ev)
	}
	if got := m.rows[0].done; got != 2 {
		t.Fatalf("done = %d, want 2", got)
	}
	if got := m.percent(); got != 0.25 {
		t.Fatalf("percent = %v, want 0.25", got)
	}

	m.applyEvent(driver.ProgressEvent{Stage: driver.StageParse, Kind: driver.ProgressFinished, Total: 4, Done: 4})
	m.applyEvent(driver.ProgressEvent{Stage: driver.StageLint, Kind: driver.ProgressStarted, Total: 0})
	m.applyEvent(driver.ProgressEvent{Stage: driver.StageLint, Kind: driver.ProgressFinished})
	if got := m.percent(); got != 1 {
		t.Fatalf("percent = %v, want 1", got)
	}
	// неизвестная стадия игнорируется
	m.applyEvent(driver.ProgressEvent{Stage: driver.StageReflect, Kind: driver.ProgressStarted, Total: 3})
	if len(m.rows) != 2 {
		t.Fatalf("rows = %d", len(m.rows))
	}
}

func TestViewShowsRows(t *testing.T) {
	m := NewProgressModel("quill lint", []driver.Stage{driver.StageParse, driver.StageReflect}, nil).(*progressModel)
	m.applyEvent(driver.ProgressEvent{Stage: driver.StageParse, Kind: driver.ProgressStarted, Total: 3})
	m.applyEvent(driver.ProgressEvent{Stage: driver.StageParse, Kind: driver.ProgressAdvanced, Total: 3, Done: 1, Path: "src/a.php"})

	view := m.View()
	for _, want := range []string{"quill lint (scanning)", "parse", "1/3", "queued", "src/a.php"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view lacks %q:\n%s", want, view)
		}
	}
}

func TestTruncateKeepsTail(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{"short.php", 20, "short.php"},
		{"very/long/path/to/file.php", 12, ".../file.php"},
		{"abcdef", 3, "abc"},
	}
	for _, tt := range tests {
		if got := truncate(tt.in, tt.width); got != tt.want {
			t.Fatalf("truncate(%q, %d) = %q, want %q", tt.in, tt.width, got, tt.want)
		}
	}
}
