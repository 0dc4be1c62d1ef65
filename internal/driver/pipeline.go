package driver

import (
	"context"
	"fmt"
	"sync/atomic"

	"quill/internal/diag"
	"quill/internal/linter"
	"quill/internal/linter/rules"
	"quill/internal/observ"
	"quill/internal/reflection"
	"quill/internal/reflector"
	"quill/internal/semantics"
	"quill/internal/source"
	"quill/internal/trace"
)

// unit is the per-file slot every stage writes into.
type unit struct {
	id       source.FileID
	path     string
	external bool

	file     *source.File
	sem      *semantics.Semantics
	fragment *reflection.Codebase
	issues   diag.Collection
}

type run struct {
	ctx     context.Context
	manager *source.Manager
	opts    Options
	jobs    int
	strings *source.Interner
	timer   *observ.Timer
	tracer  trace.Tracer
	root    *trace.Span
	hits    atomic.Int64
}

func newRun(ctx context.Context, manager *source.Manager, opts Options, name string) *run {
	if ctx == nil {
		ctx = context.Background()
	}
	tracer := trace.FromContext(ctx)
	return &run{
		ctx:     ctx,
		manager: manager,
		opts:    opts,
		jobs:    opts.jobs(),
		strings: source.NewInterner(),
		timer:   observ.NewTimer(),
		tracer:  tracer,
		root:    trace.Begin(tracer, trace.ScopeRun, name, trace.ParentSpan(ctx)),
	}
}

// enumerate returns external then user-defined units, each in manager order.
func (r *run) enumerate() (external, user []*unit) {
	fs := r.manager.FileSet()
	for _, id := range r.manager.External() {
		external = append(external, &unit{id: id, path: fs.Get(id).Path, external: true})
	}
	for _, id := range r.manager.UserDefined() {
		user = append(user, &unit{id: id, path: fs.Get(id).Path})
	}
	return external, user
}

func (r *run) plugins() []linter.Plugin {
	if r.opts.Plugins != nil {
		return r.opts.Plugins
	}
	return rules.Builtin()
}

// Lint parses and reflects every source, merges the codebase and lints the
// user-defined sources. Per file the issues are: linter issues, semantic
// issues, then the parse error. Reflection conflicts follow all files.
func Lint(ctx context.Context, manager *source.Manager, opts Options) (*Result, error) {
	if opts.SemanticsOnly {
		return Check(ctx, manager, opts)
	}
	r := newRun(ctx, manager, opts, "lint")
	defer r.root.End("")

	// настройки проверяются до дорогих стадий
	if _, err := linter.New(opts.Settings, nil, r.plugins()); err != nil {
		return nil, fmt.Errorf("linter settings: %w", err)
	}

	external, user := r.enumerate()
	all := append(external, user...)

	if err := r.fanOut(StageParse, all, r.parseUnit); err != nil {
		return r.partial(user), err
	}
	if err := r.fanOut(StageReflect, all, r.reflectUnit); err != nil {
		return r.partial(user), err
	}
	cb := r.merge(all)
	r.populate(cb)

	l, err := linter.New(opts.Settings, cb, r.plugins())
	if err != nil {
		return nil, fmt.Errorf("linter settings: %w", err)
	}
	err = r.fanOut(StageLint, user, func(_ context.Context, u *unit) error {
		u.issues = l.Lint(u.sem)
		u.issues.Extend(u.sem.Issues)
		u.issues.Extend(u.sem.ParseIssues())
		return nil
	})
	if err != nil {
		return r.partial(user), err
	}

	issues := flatten(user)
	issues.Extend(cb.Issues)
	return r.result(issues, user, cb), nil
}

// Check parses the user-defined sources and reports parse errors followed by
// semantic issues, without reflection or rules.
func Check(ctx context.Context, manager *source.Manager, opts Options) (*Result, error) {
	r := newRun(ctx, manager, opts, "check")
	defer r.root.End("")

	_, user := r.enumerate()
	err := r.fanOut(StageParse, user, func(ctx context.Context, u *unit) error {
		if err := r.parseUnit(ctx, u); err != nil {
			return err
		}
		u.issues = u.sem.ParseIssues()
		u.issues.Extend(u.sem.Issues)
		return nil
	})
	if err != nil {
		return r.partial(user), err
	}
	return r.result(flatten(user), user, nil), nil
}

func (r *run) parseUnit(_ context.Context, u *unit) error {
	file, err := r.manager.Load(u.id)
	if err != nil {
		return err
	}
	u.file = file
	// Внешние файлы нужны только ради фрагмента: при попадании в кэш не парсим.
	if u.external && r.cached(u) {
		return nil
	}
	u.sem = semantics.Build(file, r.strings)
	return nil
}

func (r *run) reflectUnit(_ context.Context, u *unit) error {
	if u.fragment != nil || (!u.external && r.cached(u)) {
		return nil
	}
	u.fragment = reflector.Reflect(u.sem)
	if err := r.opts.Cache.Put(u.file.Hash, u.fragment); err != nil {
		trace.Point(r.tracer, trace.ScopeFile, "cache:put", err.Error())
	}
	return nil
}

// cached fills u.fragment from the disk cache. Cache failures are misses.
func (r *run) cached(u *unit) bool {
	if r.opts.Cache == nil {
		return false
	}
	frag, ok, err := r.opts.Cache.Get(u.file.Hash, u.id)
	if err != nil {
		trace.Point(r.tracer, trace.ScopeFile, "cache:get", err.Error())
		return false
	}
	if ok {
		u.fragment = frag
		r.hits.Add(1)
	}
	return ok
}

// merge folds fragments in enumeration order: externals first.
func (r *run) merge(units []*unit) *reflection.Codebase {
	phase := r.timer.Begin("merge")
	sp := trace.Begin(r.tracer, trace.ScopeStage, "merge", r.root.ID())
	var cb *reflection.Codebase
	for _, u := range units {
		cb = reflector.Merge(cb, u.fragment)
		u.fragment = nil
	}
	if cb == nil {
		cb = reflection.NewCodebase()
	}
	sp.End("")
	r.timer.EndItems(phase, len(units), "")
	return cb
}

func (r *run) populate(cb *reflection.Codebase) {
	phase := r.timer.Begin("populate")
	sp := trace.Begin(r.tracer, trace.ScopeStage, "populate", r.root.ID())
	reflector.Populate(cb)
	sp.End("")
	r.timer.EndItems(phase, len(cb.Classes), "")
}

// partial collects what finished before a task failure: lint output where the
// lint stage got that far, parse and semantic issues otherwise.
func (r *run) partial(user []*unit) *Result {
	var issues diag.Collection
	for _, u := range user {
		switch {
		case u.issues.Len() > 0:
			issues.Extend(u.issues)
		case u.sem != nil:
			issues.Extend(u.sem.ParseIssues())
			issues.Extend(u.sem.Issues)
		}
	}
	return r.result(issues, user, nil)
}

func flatten(units []*unit) diag.Collection {
	var out diag.Collection
	for _, u := range units {
		out.Extend(u.issues)
	}
	return out
}

func (r *run) result(issues diag.Collection, user []*unit, cb *reflection.Codebase) *Result {
	res := &Result{
		FileSet:   r.manager.FileSet(),
		Codebase:  cb,
		Files:     len(user),
		CacheHits: int(r.hits.Load()),
	}
	res.highest, res.hasHighest = issues.HighestLevel()
	if r.opts.FixableOnly {
		issues = issues.OnlyFixable()
	}
	if r.opts.MinimumLevel != nil {
		issues = issues.FilterMinLevel(*r.opts.MinimumLevel)
	}
	res.Issues = issues
	res.Timings = r.timer.Report()
	return res
}
