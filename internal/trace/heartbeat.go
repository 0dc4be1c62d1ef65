package trace

import (
	"fmt"
	"strconv"
	"sync"
	"time"
)

// Heartbeat emits a periodic event carrying the number of open spans and the
// span opened last. A run that keeps beating with the same "at" is stuck in
// that span, not slow.
type Heartbeat struct {
	tracer   Tracer
	interval time.Duration
	done     chan struct{}
	stopOnce sync.Once
	exited   chan struct{}
}

// StartHeartbeat starts beating; it returns nil when the tracer is disabled
// or interval is not positive.
func StartHeartbeat(tracer Tracer, interval time.Duration) *Heartbeat {
	if tracer == nil || !tracer.Enabled() || interval <= 0 {
		return nil
	}
	h := &Heartbeat{
		tracer:   tracer,
		interval: interval,
		done:     make(chan struct{}),
		exited:   make(chan struct{}),
	}
	go h.loop()
	return h
}

func (h *Heartbeat) loop() {
	defer close(h.exited)
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()

	for beat := 1; ; beat++ {
		select {
		case <-h.done:
			return
		case <-ticker.C:
			h.tracer.Emit(beatEvent(beat))
		}
	}
}

func beatEvent(beat int) *Event {
	open, at := OpenSpans()
	return &Event{
		Time:   time.Now(),
		Seq:    NextSeq(),
		Kind:   KindHeartbeat,
		Scope:  ScopeRun,
		GID:    goroutineID(),
		Name:   "heartbeat",
		Detail: fmt.Sprintf("#%d open=%d at=%s", beat, open, at),
		Extra: map[string]string{
			"open": strconv.FormatInt(open, 10),
			"at":   at,
		},
	}
}

// Stop ends the loop and waits for it. Safe on nil and safe to repeat.
func (h *Heartbeat) Stop() {
	if h == nil {
		return
	}
	h.stopOnce.Do(func() { close(h.done) })
	<-h.exited
}
