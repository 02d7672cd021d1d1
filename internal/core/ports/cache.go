package ports

import (
	"context"

	"go.trai.ch/warm/internal/core/domain"
)

//go:generate mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks

// GenerateRequest is passed to a Generator when an artifact must be rebuilt.
type GenerateRequest struct {
	Key domain.CacheKey
	// CurrentPath is the path of the existing artifact, or empty if there is none.
	CurrentPath string
	// Tracker records the resources consumed by the generator.
	Tracker ResourceTracker
}

// Generator produces the content of one artifact and declares the resources it consumed.
type Generator func(ctx context.Context, req GenerateRequest) (domain.Artifact, error)

// Registry enumerates the cache keys known to the application.
type Registry interface {
	// Keys returns every key that a warmup must produce.
	Keys() []domain.CacheKey
	// Generator returns the generator for key.
	Generator(key domain.CacheKey) (Generator, error)
}

// ArtifactCache returns fresh artifact paths, regenerating stale artifacts on demand.
type ArtifactCache interface {
	// Cache returns the path of a fresh artifact for key, invoking gen only when stale.
	Cache(ctx context.Context, key domain.CacheKey, gen Generator) (string, error)
	// State reports whether key is fresh, stale or absent, regardless of the access mode.
	State(key domain.CacheKey) domain.EntryState
	// Clear removes every artifact and meta file below the cache root.
	Clear(ctx context.Context) error
	// Root returns the cache root directory.
	Root() string
}
