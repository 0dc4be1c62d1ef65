// Package trace records what the analysis pipeline is doing while it runs.
//
// A run opens one span per pipeline stage and, at detail level, one span per
// file task. Events go to a stream (text or NDJSON), to an in-memory ring
// that can be dumped after a crash, or to both:
//
//	quill lint --trace=- --trace-level=detail src/
//
// Tracers travel through the pipeline in the context:
//
//	ctx = trace.WithTracer(ctx, tracer)
//	sp := trace.Begin(trace.FromContext(ctx), trace.ScopeStage, "parse", 0)
//	defer sp.End("")
//
// A heartbeat goroutine can be started to tell a slow run from a hung one.
package trace
