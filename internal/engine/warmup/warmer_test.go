package warmup_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/warm/internal/core/ports/mocks"
	"go.trai.ch/warm/internal/engine/warmup"
	"go.uber.org/mock/gomock"
)

type warmerMocks struct {
	cache    *mocks.MockArtifactCache
	registry *mocks.MockRegistry
	tracer   *mocks.MockTracer
	logger   *mocks.MockLogger
}

func setupWarmer(t *testing.T, parallelism int) (*warmup.Warmer, warmerMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	m := warmerMocks{
		cache:    mocks.NewMockArtifactCache(ctrl),
		registry: mocks.NewMockRegistry(ctrl),
		tracer:   mocks.NewMockTracer(ctrl),
		logger:   mocks.NewMockLogger(ctrl),
	}

	span := mocks.NewMockSpan(ctrl)
	span.EXPECT().End().AnyTimes()
	span.EXPECT().RecordError(gomock.Any()).AnyTimes()
	span.EXPECT().SetAttribute(gomock.Any(), gomock.Any()).AnyTimes()
	m.tracer.EXPECT().Start(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ string, _ ...ports.SpanOption) (context.Context, ports.Span) {
			return ctx, span
		},
	).AnyTimes()
	m.tracer.EXPECT().EmitPlan(gomock.Any(), gomock.Any()).AnyTimes()
	m.logger.EXPECT().Info(gomock.Any()).AnyTimes()
	m.cache.EXPECT().Root().Return("/cache").AnyTimes()

	return warmup.NewWarmer(m.cache, m.registry, m.tracer, m.logger, parallelism), m
}

func noopGenerator(context.Context, ports.GenerateRequest) (domain.Artifact, error) {
	return domain.Artifact{}, nil
}

func TestWarmer_ClearAndWarmup(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	keys := []domain.CacheKey{"k1.json", "k2.json"}
	m.registry.EXPECT().Keys().Return(keys)
	m.registry.EXPECT().Generator(gomock.Any()).Return(noopGenerator, nil).Times(2)

	gomock.InOrder(
		m.cache.EXPECT().Clear(gomock.Any()).Return(nil),
		m.cache.EXPECT().Cache(gomock.Any(), domain.CacheKey("k1.json"), gomock.Any()).Return("/cache/k1.json", nil),
		m.cache.EXPECT().State(domain.CacheKey("k1.json")).Return(domain.EntryFresh),
		m.cache.EXPECT().Cache(gomock.Any(), domain.CacheKey("k2.json"), gomock.Any()).Return("/cache/k2.json", nil),
		m.cache.EXPECT().State(domain.CacheKey("k2.json")).Return(domain.EntryFresh),
	)

	require.NoError(t, w.ClearAndWarmup(t.Context()))
}

func TestWarmer_ClearFailureSkipsWarmup(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	clearErr := errors.New("permission denied")
	m.cache.EXPECT().Clear(gomock.Any()).Return(clearErr)

	err := w.ClearAndWarmup(t.Context())
	require.ErrorIs(t, err, clearErr)
}

func TestWarmer_FailFast(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	genErr := errors.New("boom")
	m.registry.EXPECT().Keys().Return([]domain.CacheKey{"k1.json", "k2.json", "k3.json"})
	m.registry.EXPECT().Generator(gomock.Any()).Return(noopGenerator, nil).Times(2)

	m.cache.EXPECT().Cache(gomock.Any(), domain.CacheKey("k1.json"), gomock.Any()).Return("/cache/k1.json", nil)
	m.cache.EXPECT().State(domain.CacheKey("k1.json")).Return(domain.EntryFresh)
	m.cache.EXPECT().Cache(gomock.Any(), domain.CacheKey("k2.json"), gomock.Any()).Return("", genErr)

	err := w.Warmup(t.Context())
	require.Error(t, err)
	assert.ErrorIs(t, err, genErr)
	assert.ErrorContains(t, err, domain.ErrWarmupFailed.Error())
}

func TestWarmer_UnknownKey(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	m.registry.EXPECT().Keys().Return([]domain.CacheKey{"k1.json"})
	m.registry.EXPECT().Generator(domain.CacheKey("k1.json")).Return(nil, domain.ErrUnknownCacheKey)

	err := w.Warmup(t.Context())
	require.ErrorIs(t, err, domain.ErrUnknownCacheKey)
}

func TestWarmer_NotFreshAfterGeneration(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	m.registry.EXPECT().Keys().Return([]domain.CacheKey{"k1.json"})
	m.registry.EXPECT().Generator(gomock.Any()).Return(noopGenerator, nil)
	m.cache.EXPECT().Cache(gomock.Any(), domain.CacheKey("k1.json"), gomock.Any()).Return("/cache/k1.json", nil)
	m.cache.EXPECT().State(domain.CacheKey("k1.json")).Return(domain.EntryStale)

	err := w.Warmup(t.Context())
	require.Error(t, err)
	assert.ErrorContains(t, err, "artifact is not fresh after generation")
}

func TestWarmer_Parallel(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 4)
	keys := []domain.CacheKey{"a.json", "b.json", "c.json", "d.json", "e.json", "f.json"}
	m.registry.EXPECT().Keys().Return(keys)
	m.registry.EXPECT().Generator(gomock.Any()).Return(noopGenerator, nil).Times(len(keys))
	for _, key := range keys {
		m.cache.EXPECT().Cache(gomock.Any(), key, gomock.Any()).Return("/cache/"+key.String(), nil)
		m.cache.EXPECT().State(key).Return(domain.EntryFresh)
	}

	require.NoError(t, w.Warmup(t.Context()))
}

func TestWarmer_CanceledContext(t *testing.T) {
	t.Parallel()

	w, m := setupWarmer(t, 1)
	m.registry.EXPECT().Keys().Return([]domain.CacheKey{"k1.json"})

	ctx, cancel := context.WithCancel(t.Context())
	cancel()

	err := w.Warmup(ctx)
	require.ErrorIs(t, err, context.Canceled)
}
