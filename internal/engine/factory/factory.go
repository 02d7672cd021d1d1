// Package factory serves compiled artifacts, regenerating them when their inputs change.
package factory

import (
	"context"
	"sync"
	"time"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

var _ ports.ArtifactCache = (*Factory)(nil)

// Config configures a Factory.
type Config struct {
	// Root is the cache root directory.
	Root string
	// ValidateOnEveryAccess evaluates recorded resources on every access.
	// When false an existing artifact is returned as is, even if its inputs changed.
	ValidateOnEveryAccess bool
}

// Factory implements ports.ArtifactCache.
//
// Concurrent Cache calls for the same key share a single check, generate and
// write sequence. Cache calls hold the root lock for reading and Clear holds it
// for writing, so a clear never interleaves with a regeneration.
type Factory struct {
	cfg     Config
	fs      afero.Fs
	checker ports.FreshnessChecker
	writer  ports.CacheWriter
	tracker ports.ResourceTracker
	tracer  ports.Tracer
	metrics ports.Metrics

	rootMu sync.RWMutex
	tagMu  sync.Mutex
	flight singleflight.Group
}

// New creates a new Factory.
func New(
	cfg Config,
	fsys afero.Fs,
	checker ports.FreshnessChecker,
	writer ports.CacheWriter,
	tracker ports.ResourceTracker,
	tracer ports.Tracer,
	metrics ports.Metrics,
) *Factory {
	return &Factory{
		cfg:     cfg,
		fs:      fsys,
		checker: checker,
		writer:  writer,
		tracker: tracker,
		tracer:  tracer,
		metrics: metrics,
	}
}

// Root returns the cache root directory.
func (f *Factory) Root() string {
	return f.cfg.Root
}

// Cache returns the path of a fresh artifact for key, invoking gen only when
// the artifact is missing or stale. Generators must not call back into the
// factory.
func (f *Factory) Cache(ctx context.Context, key domain.CacheKey, gen ports.Generator) (string, error) {
	ctx, span := f.tracer.Start(ctx, "cache", ports.WithAttribute("warm.key", key.String()))
	defer span.End()

	f.rootMu.RLock()
	defer f.rootMu.RUnlock()

	path := key.ArtifactPath(f.cfg.Root)

	if !f.cfg.ValidateOnEveryAccess && f.exists(path) && f.exists(key.MetaPath(f.cfg.Root)) {
		f.metrics.Hit(key)
		span.SetAttribute("warm.cached", true)
		return path, nil
	}

	// The shared sequence must not fail for every waiter because the first caller went away.
	shared := context.WithoutCancel(ctx)
	v, err, _ := f.flight.Do(key.String(), func() (any, error) {
		return f.refresh(shared, key, path, gen)
	})
	if err != nil {
		span.RecordError(err)
		return "", err
	}

	regenerated, _ := v.(bool)
	span.SetAttribute("warm.cached", !regenerated)
	return path, nil
}

// refresh regenerates the artifact at path unless it verifies as fresh.
// It reports whether the generator ran.
func (f *Factory) refresh(ctx context.Context, key domain.CacheKey, path string, gen ports.Generator) (bool, error) {
	if f.checker.IsFresh(f.cfg.Root, key) {
		f.metrics.Hit(key)
		return false, nil
	}
	f.metrics.Miss(key)

	ctx, span := f.tracer.Start(ctx, "regenerate", ports.WithAttribute("warm.key", key.String()))
	defer span.End()

	if err := f.tagRoot(); err != nil {
		span.RecordError(err)
		return false, err
	}

	req := ports.GenerateRequest{Key: key, Tracker: f.tracker}
	if f.exists(path) {
		req.CurrentPath = path
	}

	start := time.Now()
	artifact, err := gen(ctx, req)
	if err != nil {
		f.metrics.GenerationFailed(key)
		err = zerr.With(zerr.Wrap(err, domain.ErrGenerationFailed.Error()), "key", key.String())
		span.RecordError(err)
		return false, err
	}

	if err := f.writer.Write(f.cfg.Root, key, artifact.Content, artifact.Resources); err != nil {
		f.metrics.GenerationFailed(key)
		span.RecordError(err)
		return false, err
	}

	f.metrics.Regenerated(key, time.Since(start))
	span.SetAttribute("warm.resources", len(artifact.Resources))
	return true, nil
}

// State reports the verified state of key, evaluating resources even when
// ValidateOnEveryAccess is off.
func (f *Factory) State(key domain.CacheKey) domain.EntryState {
	f.rootMu.RLock()
	defer f.rootMu.RUnlock()

	if f.checker.IsFresh(f.cfg.Root, key) {
		return domain.EntryFresh
	}
	if f.exists(key.ArtifactPath(f.cfg.Root)) || f.exists(key.MetaPath(f.cfg.Root)) {
		return domain.EntryStale
	}
	return domain.EntryAbsent
}

// Clear removes the cache root and recreates it empty apart from its cache directory tag.
// It waits for in-flight Cache calls and blocks new ones until it returns.
func (f *Factory) Clear(ctx context.Context) error {
	_, span := f.tracer.Start(ctx, "clear", ports.WithAttribute("warm.root", f.cfg.Root))
	defer span.End()

	f.rootMu.Lock()
	defer f.rootMu.Unlock()

	if err := f.fs.RemoveAll(f.cfg.Root); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", f.cfg.Root)
		span.RecordError(err)
		return err
	}
	if err := fs.TagCacheDir(f.fs, f.cfg.Root); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCacheClearFailed.Error()), "path", f.cfg.Root)
		span.RecordError(err)
		return err
	}
	return nil
}

// tagRoot marks the root as a cache directory before anything is generated
// into it, so directory and glob resources never see their own artifacts.
func (f *Factory) tagRoot() error {
	f.tagMu.Lock()
	defer f.tagMu.Unlock()
	return fs.TagCacheDir(f.fs, f.cfg.Root)
}

func (f *Factory) exists(path string) bool {
	info, err := f.fs.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
