package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"quill/internal/driver"
	"quill/internal/ui"
)

type runOutcome struct {
	result *driver.Result
	err    error
}

// runWithUI runs the pipeline in the background while the progress UI
// drains its events. Quitting the UI early cancels the run.
func runWithUI(ctx context.Context, title string, stages []driver.Stage, run func(context.Context, driver.Progress) (*driver.Result, error)) (*driver.Result, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sink := driver.NewChannelSink(256)
	outcomeCh := make(chan runOutcome, 1)
	go func() {
		res, err := run(ctx, sink)
		outcomeCh <- runOutcome{result: res, err: err}
		sink.Close()
	}()

	model := ui.NewProgressModel(title, stages, sink.Events())
	program := tea.NewProgram(model, tea.WithOutput(os.Stderr))
	_, uiErr := program.Run()
	// UI мог выйти раньше: отменяем прогон и дочитываем события, чтобы
	// границы стадий не заблокировали задачи.
	cancel()
	go func() {
		for range sink.Events() {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
