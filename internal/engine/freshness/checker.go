// Package freshness decides whether a persisted artifact can be served without regeneration.
package freshness

import (
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
)

var _ ports.FreshnessChecker = (*Checker)(nil)

// Checker implements ports.FreshnessChecker.
type Checker struct {
	metas     ports.MetaStore
	resources ports.ResourceChecker
	hasher    *fs.Hasher
}

// NewChecker creates a new Checker.
func NewChecker(metas ports.MetaStore, resources ports.ResourceChecker, hasher *fs.Hasher) *Checker {
	return &Checker{
		metas:     metas,
		resources: resources,
		hasher:    hasher,
	}
}

// IsFresh reports whether key has an artifact paired with a meta record whose
// resources all still verify. Evaluation stops at the first stale resource.
func (c *Checker) IsFresh(root string, key domain.CacheKey) bool {
	record, ok := c.metas.Load(root, key)
	if !ok {
		return false
	}

	sum, err := c.hasher.ComputeFileHash(key.ArtifactPath(root))
	if err != nil || fs.FormatHash(sum) != record.Artifact {
		return false
	}

	for _, r := range record.Resources {
		if !c.resources.IsFresh(r) {
			return false
		}
	}
	return true
}
