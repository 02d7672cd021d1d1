package app

import (
	"context"
	"fmt"
	"slices"

	"go.trai.ch/warm/internal/adapters/watcher" //nolint:depguard // Wired in app layer
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/zerr"
)

// Watch warms every configured key, then re-warms after each settled batch of
// file changes below the project root until ctx is done. Warmup failures are
// logged and watching continues.
func (a *App) Watch(ctx context.Context) error {
	s, err := a.session(accessValidate)
	if err != nil {
		return err
	}

	if err := s.warmer.Warmup(ctx); err != nil {
		if ctx.Err() != nil {
			return nil
		}
		a.logger.Error(err)
	}

	if err := a.watcher.Start(ctx, s.cfg.Root, s.cfg.CacheDir); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrWatcherFailed.Error()), "root", s.cfg.Root)
	}
	defer func() { _ = a.watcher.Stop() }()

	// A single pending batch is enough: every warmup covers all keys.
	batches := make(chan []string, 1)
	debouncer := watcher.NewDebouncer(a.debounceWindow, func(paths []string) {
		select {
		case batches <- paths:
		default:
		}
	})
	go func() {
		for event := range a.watcher.Events() {
			debouncer.Add(event.Path)
		}
	}()

	a.logger.Info(fmt.Sprintf("watching %s for changes", s.cfg.Root))

	for {
		select {
		case <-ctx.Done():
			return nil
		case paths := <-batches:
			s = a.rewarm(ctx, s, paths)
		}
	}
}

// rewarm reloads warm.yaml when it changed and warms every key.
// It returns the session to use for the next batch.
func (a *App) rewarm(ctx context.Context, s *session, paths []string) *session {
	a.logger.Info(fmt.Sprintf("%d file(s) changed, warming up", len(paths)))

	if slices.Contains(paths, s.cfg.ConfigPath) {
		reloaded, err := a.session(accessValidate)
		if err != nil {
			a.logger.Error(err)
			return s
		}
		s = reloaded
	}

	if err := s.warmer.Warmup(ctx); err != nil && ctx.Err() == nil {
		a.logger.Error(err)
	}
	return s
}
