package commands_test

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/cmd/warm/commands"
	"go.trai.ch/warm/internal/app"
	"go.trai.ch/warm/internal/build"
	"go.trai.ch/warm/internal/core/domain"
)

type mockApp struct {
	clearFunc   func(ctx context.Context, opts app.ClearOptions) error
	warmupFunc  func(ctx context.Context) error
	getFunc     func(ctx context.Context, key string, opts app.GetOptions) (string, error)
	statusFunc  func(ctx context.Context) ([]domain.EntryStatus, error)
	watchFunc   func(ctx context.Context) error
	jsonEnabled bool
	metricsPath string
}

func (m *mockApp) Clear(ctx context.Context, opts app.ClearOptions) error {
	if m.clearFunc != nil {
		return m.clearFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Warmup(ctx context.Context) error {
	if m.warmupFunc != nil {
		return m.warmupFunc(ctx)
	}
	return nil
}

func (m *mockApp) Get(ctx context.Context, key string, opts app.GetOptions) (string, error) {
	if m.getFunc != nil {
		return m.getFunc(ctx, key, opts)
	}
	return "", nil
}

func (m *mockApp) Status(ctx context.Context) ([]domain.EntryStatus, error) {
	if m.statusFunc != nil {
		return m.statusFunc(ctx)
	}
	return nil, nil
}

func (m *mockApp) Watch(ctx context.Context) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx)
	}
	return nil
}

func (m *mockApp) SetJSON(enabled bool) {
	m.jsonEnabled = enabled
}

func (m *mockApp) WriteMetrics(path string) error {
	m.metricsPath = path
	return nil
}

func execute(t *testing.T, a commands.Application, args ...string) (string, error) {
	t.Helper()
	cli := commands.New(a)
	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs(args)
	err := cli.Execute(context.Background())
	return buf.String(), err
}

func TestCommands_Clear(t *testing.T) {
	t.Parallel()

	t.Run("warms up by default", func(t *testing.T) {
		t.Parallel()
		var captured app.ClearOptions
		called := false
		mock := &mockApp{clearFunc: func(_ context.Context, opts app.ClearOptions) error {
			captured = opts
			called = true
			return nil
		}}

		_, err := execute(t, mock, "cache:clear")
		require.NoError(t, err)
		assert.True(t, called)
		assert.False(t, captured.NoWarmup)
	})

	t.Run("wires no-warmup", func(t *testing.T) {
		t.Parallel()
		var captured app.ClearOptions
		mock := &mockApp{clearFunc: func(_ context.Context, opts app.ClearOptions) error {
			captured = opts
			return nil
		}}

		_, err := execute(t, mock, "cache:clear", "--no-warmup")
		require.NoError(t, err)
		assert.True(t, captured.NoWarmup)
	})

	t.Run("returns error on failure", func(t *testing.T) {
		t.Parallel()
		mock := &mockApp{clearFunc: func(context.Context, app.ClearOptions) error {
			return errors.New("simulated error")
		}}

		_, err := execute(t, mock, "cache:clear")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Warmup(t *testing.T) {
	t.Parallel()

	called := false
	mock := &mockApp{warmupFunc: func(context.Context) error {
		called = true
		return nil
	}}

	_, err := execute(t, mock, "cache:warmup")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_Get(t *testing.T) {
	t.Parallel()

	var capturedKey string
	var capturedOpts app.GetOptions
	mock := &mockApp{getFunc: func(_ context.Context, key string, opts app.GetOptions) (string, error) {
		capturedKey = key
		capturedOpts = opts
		return filepath.Join("proj", ".warm", "cache", "app.json"), nil
	}}

	out, err := execute(t, mock, "cache:get", "app.json", "--no-debug")
	require.NoError(t, err)
	assert.Equal(t, "app.json", capturedKey)
	assert.True(t, capturedOpts.NoDebug)
	assert.Equal(t, filepath.Join("proj", ".warm", "cache", "app.json")+"\n", out)

	_, err = execute(t, mock, "cache:get")
	require.Error(t, err)
}

func TestCommands_Status(t *testing.T) {
	t.Parallel()

	statuses := []domain.EntryStatus{
		{Key: "config/app.json", State: domain.EntryFresh},
		{Key: "routes.json", State: domain.EntryStale},
		{Key: "old.json", State: domain.EntryOrphan},
	}
	mock := &mockApp{statusFunc: func(context.Context) ([]domain.EntryStatus, error) {
		return statuses, nil
	}}

	out, err := execute(t, mock, "cache:status")
	require.NoError(t, err)
	assert.Equal(t, "✓ fresh  config/app.json\n~ stale  routes.json\n○ orphan old.json\n", out)

	_, err = execute(t, mock, "cache:status", "--check")
	require.ErrorIs(t, err, domain.ErrCacheNotFresh)
}

func TestCommands_Watch(t *testing.T) {
	t.Parallel()

	called := false
	mock := &mockApp{watchFunc: func(context.Context) error {
		called = true
		return nil
	}}

	_, err := execute(t, mock, "watch")
	require.NoError(t, err)
	assert.True(t, called)
}

func TestCommands_PersistentFlags(t *testing.T) {
	t.Parallel()

	mock := &mockApp{}
	_, err := execute(t, mock, "cache:warmup", "--json", "--metrics-file", "warm.prom")
	require.NoError(t, err)
	assert.True(t, mock.jsonEnabled)
	assert.Equal(t, "warm.prom", mock.metricsPath)
}

func TestCommands_MetricsWrittenOnFailure(t *testing.T) {
	t.Parallel()

	mock := &mockApp{warmupFunc: func(context.Context) error {
		return errors.New("simulated error")
	}}
	_, err := execute(t, mock, "cache:warmup", "--metrics-file", "warm.prom")
	require.Error(t, err)
	assert.Equal(t, "warm.prom", mock.metricsPath)
}

func TestCommands_Version(t *testing.T) {
	t.Parallel()

	out, err := execute(t, &mockApp{}, "version")
	require.NoError(t, err)
	assert.Contains(t, out, build.Version)
}
