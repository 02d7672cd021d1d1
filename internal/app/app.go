// Package app implements the application layer for warm.
package app

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/generator" //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/adapters/watcher"   //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/warm/internal/engine/factory"
	"go.trai.ch/warm/internal/engine/warmup"
	"go.trai.ch/zerr"
)

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enabled bool)
}

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	logger       ports.Logger
	fs           afero.Fs
	metas        ports.MetaStore
	checker      ports.FreshnessChecker
	writer       ports.CacheWriter
	tracker      ports.ResourceTracker
	compiler     *generator.Compiler
	tracer       ports.Tracer
	metrics      ports.Metrics
	watcher      ports.Watcher

	workDir        string
	debounceWindow time.Duration
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	log ports.Logger,
	fsys afero.Fs,
	metas ports.MetaStore,
	checker ports.FreshnessChecker,
	writer ports.CacheWriter,
	tracker ports.ResourceTracker,
	compiler *generator.Compiler,
	tracer ports.Tracer,
	metrics ports.Metrics,
	w ports.Watcher,
) *App {
	return &App{
		configLoader:   loader,
		logger:         log,
		fs:             fsys,
		metas:          metas,
		checker:        checker,
		writer:         writer,
		tracker:        tracker,
		compiler:       compiler,
		tracer:         tracer,
		metrics:        metrics,
		watcher:        w,
		workDir:        ".",
		debounceWindow: watcher.DefaultDebounceWindow,
	}
}

// WithWorkDir sets the directory warm.yaml is discovered from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// WithDebounceWindow sets how long Watch waits for file events to settle.
func (a *App) WithDebounceWindow(window time.Duration) *App {
	a.debounceWindow = window
	return a
}

// SetJSON switches log output to JSON when the logger supports it.
func (a *App) SetJSON(enabled bool) {
	if l, ok := a.logger.(jsonLogger); ok {
		l.SetJSON(enabled)
	}
}

// ClearOptions configuration for the Clear method.
type ClearOptions struct {
	// NoWarmup only removes the cache without regenerating any artifact.
	NoWarmup bool
}

// Clear removes every artifact and, unless disabled, regenerates every configured key.
func (a *App) Clear(ctx context.Context, opts ClearOptions) error {
	s, err := a.session(accessValidate)
	if err != nil {
		return err
	}

	if opts.NoWarmup {
		a.logger.Info(fmt.Sprintf("clearing %s...", s.cache.Root()))
		return s.cache.Clear(ctx)
	}
	return s.warmer.ClearAndWarmup(ctx)
}

// Warmup regenerates every configured key that is not fresh.
func (a *App) Warmup(ctx context.Context) error {
	s, err := a.session(accessValidate)
	if err != nil {
		return err
	}
	return s.warmer.Warmup(ctx)
}

// GetOptions configuration for the Get method.
type GetOptions struct {
	// NoDebug serves an existing artifact without checking its resources.
	NoDebug bool
}

// Get returns the path of a fresh artifact for key, regenerating it when needed.
func (a *App) Get(ctx context.Context, key string, opts GetOptions) (string, error) {
	cacheKey, err := domain.NewCacheKey(key)
	if err != nil {
		return "", err
	}

	mode := accessConfigured
	if opts.NoDebug {
		mode = accessUnchecked
	}
	s, err := a.session(mode)
	if err != nil {
		return "", err
	}

	gen, err := s.registry.Generator(cacheKey)
	if err != nil {
		return "", err
	}
	return s.cache.Cache(ctx, cacheKey, gen)
}

// Status reports the state of every configured key, followed by orphaned
// meta files whose key is no longer configured.
func (a *App) Status(_ context.Context) ([]domain.EntryStatus, error) {
	s, err := a.session(accessValidate)
	if err != nil {
		return nil, err
	}

	keys := s.registry.Keys()
	statuses := make([]domain.EntryStatus, 0, len(keys))
	for _, key := range keys {
		statuses = append(statuses, domain.EntryStatus{Key: key, State: s.cache.State(key)})
	}

	stored, err := a.metas.List(s.cache.Root())
	if err != nil {
		return nil, err
	}
	for _, key := range stored {
		if !slices.Contains(keys, key) {
			statuses = append(statuses, domain.EntryStatus{Key: key, State: domain.EntryOrphan})
		}
	}
	return statuses, nil
}

// WriteMetrics writes the cache metrics collected so far to path.
func (a *App) WriteMetrics(path string) error {
	return a.metrics.WriteTextfile(path)
}

// session holds the components built from one load of warm.yaml.
type session struct {
	cfg      *domain.Config
	cache    *factory.Factory
	registry *generator.Registry
	warmer   *warmup.Warmer
}

// accessMode selects whether the cache verifies artifacts on access.
type accessMode int

const (
	// accessValidate always verifies. Warmup and status use it so that their
	// result reflects the current inputs.
	accessValidate accessMode = iota
	// accessConfigured follows validate_on_every_access from warm.yaml.
	accessConfigured
	// accessUnchecked serves any existing artifact.
	accessUnchecked
)

// session loads the configuration and builds a cache over it.
func (a *App) session(mode accessMode) (*session, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}

	validate := true
	switch mode {
	case accessConfigured:
		validate = cfg.ValidateOnEveryAccess
	case accessUnchecked:
		validate = false
	case accessValidate:
	}

	cache := factory.New(
		factory.Config{
			Root:                  cfg.CacheDir,
			ValidateOnEveryAccess: validate,
		},
		a.fs,
		a.checker,
		a.writer,
		a.tracker,
		a.tracer,
		a.metrics,
	)
	registry := generator.NewRegistry(cfg, a.compiler)

	return &session{
		cfg:      cfg,
		cache:    cache,
		registry: registry,
		warmer:   warmup.NewWarmer(cache, registry, a.tracer, a.logger, cfg.Parallelism),
	}, nil
}
