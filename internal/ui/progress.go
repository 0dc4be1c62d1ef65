// Package ui renders live pipeline progress in the terminal.
package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"quill/internal/driver"
)

type progressModel struct {
	title   string
	events  <-chan driver.ProgressEvent
	spinner spinner.Model
	prog    progress.Model
	rows    []stageRow
	current int
	last    string
	width   int
	done    bool
}

type stageRow struct {
	stage    driver.Stage
	total    int
	done     int
	started  bool
	finished bool
}

type eventMsg driver.ProgressEvent
type doneMsg struct{}

// NewProgressModel returns a Bubble Tea model that renders one row per
// pipeline stage, fed by events until the channel is closed.
func NewProgressModel(title string, stages []driver.Stage, events <-chan driver.ProgressEvent) tea.Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))

	prog := progress.New(progress.WithDefaultGradient())
	prog.Width = 76

	rows := make([]stageRow, 0, len(stages))
	for _, st := range stages {
		rows = append(rows, stageRow{stage: st})
	}
	return &progressModel{
		title:   title,
		events:  events,
		spinner: sp,
		prog:    prog,
		rows:    rows,
		width:   80,
	}
}

func (m *progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.listenForEvent())
}

func (m *progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case eventMsg:
		cmd := m.applyEvent(driver.ProgressEvent(msg))
		return m, tea.Batch(cmd, m.listenForEvent())
	case doneMsg:
		m.done = true
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		return m, nil
	case tea.WindowSizeMsg:
		if msg.Width > 0 {
			m.width = msg.Width
			m.prog.Width = msg.Width - 4
		}
		return m, nil
	case progress.FrameMsg:
		progressModel, cmd := m.prog.Update(msg)
		m.prog = progressModel.(progress.Model)
		return m, cmd
	}
	return m, nil
}

func (m *progressModel) View() string {
	if len(m.rows) == 0 {
		return ""
	}
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("7"))
	header := m.title
	if !m.done && m.current < len(m.rows) && m.rows[m.current].started {
		header = fmt.Sprintf("%s (%s)", header, m.rows[m.current].stage.Label())
	}
	if m.done {
		header = fmt.Sprintf("done: %s", header)
	} else {
		header = fmt.Sprintf("%s %s", m.spinner.View(), header)
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n\n")
	for _, row := range m.rows {
		status := row.status()
		counts := ""
		if row.started {
			counts = fmt.Sprintf("%d/%d", row.done, row.total)
		}
		fmt.Fprintf(&b, "  %s %-8s %s\n", styleStatus(status).Render(fmt.Sprintf("%10s", status)), row.stage, counts)
	}
	if m.last != "" && !m.done {
		b.WriteString("  ")
		b.WriteString(truncate(m.last, max(20, m.width-4)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if m.done {
		b.WriteString(m.prog.ViewAs(1.0))
	} else {
		b.WriteString(m.prog.View())
	}
	b.WriteString("\n")
	return b.String()
}

func (m *progressModel) listenForEvent() tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-m.events
		if !ok {
			return doneMsg{}
		}
		return eventMsg(ev)
	}
}

func (m *progressModel) applyEvent(ev driver.ProgressEvent) tea.Cmd {
	idx := -1
	for i := range m.rows {
		if m.rows[i].stage == ev.Stage {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	row := &m.rows[idx]
	row.total = ev.Total
	switch ev.Kind {
	case driver.ProgressStarted:
		row.started = true
		m.current = idx
	case driver.ProgressAdvanced:
		// события могут приходить не по порядку
		row.done = max(row.done, ev.Done)
		m.last = ev.Path
	case driver.ProgressFinished:
		row.done = ev.Done
		row.finished = true
	}
	return m.prog.SetPercent(m.percent())
}

// percent weighs every stage equally; an empty stage counts once finished.
func (m *progressModel) percent() float64 {
	if len(m.rows) == 0 {
		return 0
	}
	total := 0.0
	for _, row := range m.rows {
		switch {
		case row.finished:
			total++
		case row.total > 0:
			total += float64(row.done) / float64(row.total)
		}
	}
	return total / float64(len(m.rows))
}

func (r stageRow) status() string {
	switch {
	case r.finished:
		return "done"
	case r.started:
		return r.stage.Label()
	}
	return "queued"
}

func styleStatus(status string) lipgloss.Style {
	switch status {
	case "done":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	case "scanning", "linting":
		return lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("7"))
	}
}

func truncate(value string, width int) string {
	if width <= 0 {
		return value
	}
	if runewidth.StringWidth(value) <= width {
		return value
	}
	if width <= 3 {
		return runewidth.Truncate(value, width, "")
	}
	// путь интереснее с конца
	runes := []rune(value)
	for len(runes) > 0 && runewidth.StringWidth(string(runes))+3 > width {
		runes = runes[1:]
	}
	return "..." + string(runes)
}
