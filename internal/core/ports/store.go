package ports

import "go.trai.ch/warm/internal/core/domain"

//go:generate mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks

// MetaStore persists the meta record of each artifact below a cache root.
type MetaStore interface {
	// Load returns the record stored for key.
	// A missing, unreadable or corrupt meta file reports false, never an error.
	Load(root string, key domain.CacheKey) (*domain.MetaRecord, bool)
	// Save atomically replaces the meta file of key.
	Save(root string, key domain.CacheKey, record *domain.MetaRecord) error
	// List returns the keys of every meta file below root, sorted.
	List(root string) ([]domain.CacheKey, error)
}

// CacheWriter atomically replaces an artifact together with its meta file.
type CacheWriter interface {
	// Write persists content and its resources for key, replacing any prior pair.
	Write(root string, key domain.CacheKey, content []byte, resources []domain.Resource) error
}

// FreshnessChecker decides whether a persisted artifact can be served.
type FreshnessChecker interface {
	// IsFresh reports whether key has an artifact whose meta record fully verifies.
	IsFresh(root string, key domain.CacheKey) bool
}
