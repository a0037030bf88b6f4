package errpipeline

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// JournalSink is the narrow surface the pipeline needs from the durable
// journal. Journaling is best-effort: implementations must not panic, and
// returned errors are swallowed by the pipeline.
type JournalSink interface {
	Append(ctx context.Context, e *Error, note string) error
}

// PipelineConfig wires the pipeline's collaborators. Zero values are usable:
// no journal, no toasts, no reporter, no debug echo.
type PipelineConfig struct {
	Journal     JournalSink
	Toasts      ToastSink
	DedupWindow time.Duration
	Logger      *slog.Logger
	Debug       bool
}

// Pipeline is the orchestrator every UI-facing operation funnels failures
// through: normalize, journal and report, notify, return the canonical
// error for local branching. Construct one per application; tests can build
// isolated instances.
type Pipeline struct {
	journal  JournalSink
	notifier *Notifier

	mu       sync.RWMutex
	reporter Reporter

	log   *slog.Logger
	debug bool
	wg    sync.WaitGroup
}

// NewPipeline builds a pipeline from cfg.
func NewPipeline(cfg PipelineConfig) *Pipeline {
	return &Pipeline{
		journal:  cfg.Journal,
		notifier: NewNotifier(cfg.Toasts, cfg.DedupWindow),
		log:      cfg.Logger,
		debug:    cfg.Debug,
	}
}

// Notifier exposes the pipeline's notifier for success/info passthroughs and
// the recent-errors log.
func (p *Pipeline) Notifier() *Notifier { return p.notifier }

// SetReporter installs the process-wide reporting sink. Pass nil to clear.
func (p *Pipeline) SetReporter(r Reporter) {
	p.mu.Lock()
	p.reporter = r
	p.mu.Unlock()
}

// Handle is the single entry point for UI-facing failures: normalize the
// thrown value, journal and report it, raise a (deduplicated) toast, and
// return the canonical error so the caller can branch on its kind. note is
// free-form context stored alongside the journal entry; it may be empty.
//
// Journaling is fire-and-forget; callers needing completion guarantees must
// use the journal API directly, or Close the pipeline to drain.
func (p *Pipeline) Handle(ctx context.Context, thrown any, fallback string, note string) *Error {
	if ctx == nil {
		ctx = context.Background()
	}
	e := Normalize(thrown, fallback)

	if p.debug {
		debugEcho(p.log, e)
	}

	p.wg.Add(1)
	go p.record(context.WithoutCancel(ctx), e, note)

	p.notifier.Error(e)
	return e
}

// record journals then reports. Both are best-effort; a panicking reporter
// must never take the pipeline down or recurse back into it.
func (p *Pipeline) record(ctx context.Context, e *Error, note string) {
	defer p.wg.Done()
	defer func() {
		if r := recover(); r != nil && p.log != nil {
			p.log.Warn("error sink panicked", slog.Any("panic", r))
		}
	}()

	if p.journal != nil {
		if err := p.journal.Append(ctx, e, note); err != nil && p.log != nil {
			p.log.Warn("journal append failed", slog.String("error", err.Error()))
		}
	}

	p.mu.RLock()
	r := p.reporter
	p.mu.RUnlock()
	if r != nil {
		r.Report(ctx, e, note)
	}
}

// Close drains in-flight journal and reporter work.
func (p *Pipeline) Close() {
	p.wg.Wait()
}

// Default singleton, kept only as a composition-root convenience. Libraries
// and tests should construct their own Pipeline.
var (
	defaultMu       sync.RWMutex
	defaultPipeline = NewPipeline(PipelineConfig{})
)

// Init replaces the default pipeline. Call once at application start.
func Init(p *Pipeline) {
	defaultMu.Lock()
	defaultPipeline = p
	defaultMu.Unlock()
}

// Default returns the current default pipeline.
func Default() *Pipeline {
	defaultMu.RLock()
	defer defaultMu.RUnlock()
	return defaultPipeline
}

// Handle funnels through the default pipeline.
func Handle(ctx context.Context, thrown any, fallback string, note string) *Error {
	return Default().Handle(ctx, thrown, fallback, note)
}
