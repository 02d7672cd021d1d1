package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/internal/adapters/watcher"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/warm/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func collect(w ports.Watcher) <-chan ports.WatchEvent {
	out := make(chan ports.WatchEvent, 64)
	go func() {
		defer close(out)
		for ev := range w.Events() {
			out <- ev
		}
	}()
	return out
}

// waitFor drains events until one matches path or the timeout elapses.
func waitFor(t *testing.T, events <-chan ports.WatchEvent, path string) bool {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return false
			}
			if ev.Path == path {
				return true
			}
		case <-deadline:
			return false
		}
	}
}

func TestWatcher_ReportsChangesOutsideIgnoredDirs(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	cacheDir := filepath.Join(root, ".warm", "cache")
	require.NoError(t, os.MkdirAll(cacheDir, 0o750))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "config"), 0o750))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, root, filepath.Join(root, ".warm")))
	t.Cleanup(func() { _ = w.Stop() })

	events := collect(w)

	// Written first so that its event, if any, would precede the tracked one.
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "app.json"), []byte("{}"), 0o600))
	source := filepath.Join(root, "config", "app.yaml")
	require.NoError(t, os.WriteFile(source, []byte("a: 1\n"), 0o600))

	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed early")
			assert.NotContains(t, ev.Path, filepath.Join(root, ".warm"))
			if ev.Path == source {
				return
			}
		case <-deadline:
			t.Fatal("no event for source file")
		}
	}
}

func TestWatcher_WatchesCreatedDirectories(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() { _ = w.Stop() })

	events := collect(w)

	dir := filepath.Join(root, "packages")
	require.NoError(t, os.Mkdir(dir, 0o750))
	require.True(t, waitFor(t, events, dir))

	// The new directory is watched once its create event has been handled,
	// so keep rewriting the nested file until it shows up.
	nested := filepath.Join(dir, "extra.yaml")
	ticker := time.NewTicker(50 * time.Millisecond)
	defer ticker.Stop()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case <-ticker.C:
			require.NoError(t, os.WriteFile(nested, []byte("x: 1\n"), 0o600))
		case ev, ok := <-events:
			require.True(t, ok, "event stream closed early")
			if ev.Path == nested {
				return
			}
		case <-deadline:
			t.Fatal("no event for file in created directory")
		}
	}
}

func TestWatcher_StartTwice(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, root))
	t.Cleanup(func() { _ = w.Stop() })

	require.Error(t, w.Start(ctx, root))
}

func TestWatcher_StopBeforeStart(t *testing.T) {
	t.Parallel()

	w := watcher.NewWatcher(mocks.NewMockLogger(gomock.NewController(t)))
	assert.NoError(t, w.Stop())
}

func TestWatcher_EventsEndOnCancel(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	w := watcher.NewWatcher(log)
	require.NoError(t, w.Start(ctx, t.TempDir()))
	t.Cleanup(func() { _ = w.Stop() })

	events := collect(w)
	cancel()

	select {
	case _, ok := <-events:
		for ok {
			_, ok = <-events
		}
	case <-time.After(5 * time.Second):
		t.Fatal("event stream did not end after cancel")
	}
}
