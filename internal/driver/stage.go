package driver

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	"golang.org/x/sync/errgroup"

	"quill/internal/trace"
)

// fanOut runs task for every unit on at most r.jobs goroutines and waits for
// all spawned tasks. The first failure cancels tasks that have not started
// yet and is returned as a *TaskError.
func (r *run) fanOut(stage Stage, units []*unit, task func(ctx context.Context, u *unit) error) error {
	phase := r.timer.Begin(stage.String())
	sp := trace.Begin(r.tracer, trace.ScopeStage, stage.String(), r.root.ID())
	progress := startTracker(r.opts.Progress, stage, len(units))

	g, gctx := errgroup.WithContext(r.ctx)
	g.SetLimit(r.jobs)
	for _, u := range units {
		g.Go(func() (err error) {
			// Контекст проверяется до старта задачи; начатые задачи доходят до конца.
			if err := gctx.Err(); err != nil {
				return err
			}
			fsp := trace.Begin(r.tracer, trace.ScopeFile, "file:"+u.path, sp.ID())
			defer func() {
				if rec := recover(); rec != nil {
					err = &TaskError{Stage: stage, Path: u.path, Err: fmt.Errorf("panic: %v", rec), Stack: debug.Stack()}
				}
				if err != nil {
					trace.Error(r.tracer, trace.ScopeFile, "file:"+u.path, err.Error())
					fsp.End("failed")
					return
				}
				fsp.End("")
				progress.advance(u.path)
			}()
			if err := task(gctx, u); err != nil {
				var te *TaskError
				if errors.As(err, &te) {
					return err
				}
				return &TaskError{Stage: stage, Path: u.path, Err: err}
			}
			return nil
		})
	}
	err := g.Wait()
	progress.finish()
	detail := ""
	if err != nil {
		detail = "failed"
	}
	sp.WithExtra("files", fmt.Sprint(len(units))).End(detail)
	r.timer.EndItems(phase, len(units), "")
	return err
}
