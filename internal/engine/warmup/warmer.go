// Package warmup clears the artifact cache and regenerates every known key.
package warmup

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Warmer runs clear and warmup passes over a cache.
type Warmer struct {
	cache       ports.ArtifactCache
	registry    ports.Registry
	tracer      ports.Tracer
	logger      ports.Logger
	parallelism int
}

// NewWarmer creates a new Warmer. A parallelism below one warms keys sequentially.
func NewWarmer(
	cache ports.ArtifactCache,
	registry ports.Registry,
	tracer ports.Tracer,
	logger ports.Logger,
	parallelism int,
) *Warmer {
	return &Warmer{
		cache:       cache,
		registry:    registry,
		tracer:      tracer,
		logger:      logger,
		parallelism: max(parallelism, 1),
	}
}

// ClearAndWarmup removes every artifact and then regenerates every registry key.
// The clear phase completes before any key is regenerated.
func (w *Warmer) ClearAndWarmup(ctx context.Context) error {
	w.logger.Info(fmt.Sprintf("clearing %s...", w.cache.Root()))
	if err := w.cache.Clear(ctx); err != nil {
		return err
	}
	return w.Warmup(ctx)
}

// Warmup brings every registry key up to date. Keys that are already fresh are
// left untouched. The first failure cancels the keys not yet started and is
// returned; keys cleared beforehand stay absent.
//
// Every key must verify as fresh once warmed; a key that does not is reported
// as a failure, since its generator declared resources that do not describe
// its inputs.
func (w *Warmer) Warmup(ctx context.Context) error {
	runID := uuid.NewString()
	keys := w.registry.Keys()

	ctx, span := w.tracer.Start(ctx, "warmup",
		ports.WithAttribute("warm.run_id", runID),
		ports.WithAttribute("warm.keys", len(keys)),
	)
	defer span.End()

	plan := make([]string, 0, len(keys))
	for _, key := range keys {
		plan = append(plan, key.String())
	}
	w.tracer.EmitPlan(ctx, plan)

	start := time.Now()
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.parallelism)

	for _, key := range keys {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return w.warmKey(gctx, key)
		})
	}

	if err := g.Wait(); err != nil {
		span.RecordError(err)
		return err
	}

	w.logger.Info(fmt.Sprintf("warmed %d artifacts in %s", len(keys), time.Since(start).Round(time.Millisecond)))
	return nil
}

func (w *Warmer) warmKey(ctx context.Context, key domain.CacheKey) error {
	gen, err := w.registry.Generator(key)
	if err != nil {
		return warmErr(err, key)
	}

	if _, err := w.cache.Cache(ctx, key, gen); err != nil {
		return warmErr(err, key)
	}

	if state := w.cache.State(key); state != domain.EntryFresh {
		return warmErr(zerr.With(zerr.New("artifact is not fresh after generation"), "state", string(state)), key)
	}

	return nil
}

func warmErr(err error, key domain.CacheKey) error {
	return zerr.With(zerr.Wrap(err, domain.ErrWarmupFailed.Error()), "key", key.String())
}
