// Package engine wires the configuration loader, rule index, pipeline,
// notifier, LLM router, metrics, and tracing into the single object a
// host embeds: load a policy document once, then execute hook points
// against it for the rest of the process lifetime, swapping in a fresh
// rule index whenever the document changes on disk.
package engine

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/hookgate/hookgate/internal/action"
	"github.com/hookgate/hookgate/internal/config"
	"github.com/hookgate/hookgate/internal/gateevent"
	"github.com/hookgate/hookgate/internal/metrics"
	"github.com/hookgate/hookgate/internal/pipeline"
	"github.com/hookgate/hookgate/internal/ruleindex"
	"github.com/hookgate/hookgate/internal/tracing"
)

// Engine is the process-lifetime object a host constructs once. It is
// safe for concurrent use: Execute only ever reads an atomically
// swapped-in *pipeline.Engine.
type Engine struct {
	configPath string
	watcher    *config.Watcher
	logger     *slog.Logger
	metrics    *metrics.Registry
	tracer     *tracing.Tracer
	deps       action.Deps

	current atomic.Pointer[pipeline.Engine]
}

// Options configures a new Engine. Deps, Metrics, Tracer, and Logger
// are all optional; sensible zero-value fallbacks apply.
type Options struct {
	Deps          action.Deps
	Metrics       *metrics.Registry
	Tracer        *tracing.Tracer
	Logger        *slog.Logger
	WatchDebounce time.Duration
}

// New loads configPath, builds the initial rule index, and returns a
// ready-to-use Engine. It does not start watching the file for changes;
// call Watch for that.
func New(configPath string, opts Options) (*Engine, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("engine: loading config: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	reg := opts.Metrics
	if reg == nil {
		reg = metrics.NewRegistry()
	}

	e := &Engine{
		configPath: configPath,
		logger:     logger,
		metrics:    reg,
		tracer:     opts.Tracer,
		deps:       opts.Deps,
	}
	e.swap(cfg)

	e.watcher = config.NewWatcher(configPath, opts.WatchDebounce, logger, e.swap)
	return e, nil
}

// swap builds a fresh rule index and pipeline from cfg and atomically
// installs it, so in-flight Execute calls always see a consistent
// index.
func (e *Engine) swap(cfg *config.Config) {
	idx := ruleindex.Build(cfg)
	e.current.Store(pipeline.New(idx, e.deps))
	e.logger.Info("engine: rule index reloaded", "rules", len(cfg.Hooks))
}

// Watch starts watching the config file for changes, reloading and
// atomically swapping in a new rule index on every valid write. The
// returned error only reflects watcher setup; later reload failures are
// logged and the previous index stays live.
func (e *Engine) Watch(ctx context.Context) error {
	return e.watcher.Start(ctx)
}

// Reload re-reads the config file once, outside of the file watcher.
// Hosts that want a manual "reload now" operation (a SIGHUP handler, an
// admin endpoint) call this directly.
func (e *Engine) Reload() error {
	cfg, err := config.Load(e.configPath)
	if err != nil {
		return fmt.Errorf("engine: reloading config: %w", err)
	}
	e.swap(cfg)
	return nil
}

// Close stops the file watcher and releases the tracer.
func (e *Engine) Close(ctx context.Context) error {
	var err error
	if e.watcher != nil {
		err = e.watcher.Close()
	}
	if e.tracer != nil {
		if shutdownErr := e.tracer.Shutdown(ctx); shutdownErr != nil && err == nil {
			err = shutdownErr
		}
	}
	return err
}

// Execute runs every enabled, matching rule bound to event.Point
// through the current rule index, in declaration order, and returns the
// per-rule results. It is safe to call concurrently with Watch-driven
// reloads.
func (e *Engine) Execute(ctx context.Context, event gateevent.Event) []action.Result {
	correlationID := uuid.NewString()
	ctx, span := e.tracer.Start(ctx, "hookgate.execute")
	defer span.End()

	p := e.current.Load()
	results := p.Execute(ctx, event)

	for _, res := range results {
		e.metrics.ActionsDispatched.WithLabelValues(res.Action, boolLabel(res.Passed)).Inc()
		if res.Action == string(config.ActionBlock) && !res.Passed {
			e.metrics.PolicyBlocks.Inc()
		}
	}
	e.metrics.RulesMatched.WithLabelValues(string(event.Point)).Add(float64(len(results)))
	e.logger.Debug("engine: executed hook point",
		"point", event.Point,
		"sessionKey", event.SessionKey,
		"correlationId", correlationID,
		"ruleCount", len(results),
	)
	return results
}

func boolLabel(b bool) string {
	if b {
		return "true"
	}
	return "false"
}
