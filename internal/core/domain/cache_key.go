package domain

import (
	"path"
	"path/filepath"
	"strings"

	"go.trai.ch/zerr"
)

// CacheKey identifies one generated artifact.
// It is a slash-separated path relative to the cache root, e.g. "config/app.json".
type CacheKey string

// NewCacheKey validates s and returns it as a CacheKey.
func NewCacheKey(s string) (CacheKey, error) {
	if err := validateKey(s); err != nil {
		return "", zerr.With(err, "key", s)
	}
	return CacheKey(s), nil
}

// KeyFromArtifactPath derives the cache key of an artifact located under root.
func KeyFromArtifactPath(root, artifactPath string) (CacheKey, error) {
	rel, err := filepath.Rel(root, artifactPath)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, ErrInvalidCacheKey.Error()), "path", artifactPath)
	}
	return NewCacheKey(filepath.ToSlash(rel))
}

// String returns the key as a plain string.
func (k CacheKey) String() string {
	return string(k)
}

// ArtifactPath returns the artifact location for the key below root.
func (k CacheKey) ArtifactPath(root string) string {
	return filepath.Join(root, filepath.FromSlash(string(k)))
}

// MetaPath returns the meta file location for the key below root.
func (k CacheKey) MetaPath(root string) string {
	return MetaPath(k.ArtifactPath(root))
}

func validateKey(s string) error {
	switch {
	case s == "":
		return zerr.Wrap(ErrInvalidCacheKey, "key is empty")
	case strings.HasPrefix(s, "/") || filepath.IsAbs(s):
		return zerr.Wrap(ErrInvalidCacheKey, "key must be relative")
	case strings.Contains(s, `\`):
		return zerr.Wrap(ErrInvalidCacheKey, "key must use forward slashes")
	case strings.HasSuffix(s, "/"):
		return zerr.Wrap(ErrInvalidCacheKey, "key must not end with a slash")
	case strings.HasSuffix(s, MetaSuffix):
		return zerr.Wrap(ErrInvalidCacheKey, "key must not end with "+MetaSuffix)
	case s == CacheDirTagName:
		return zerr.Wrap(ErrInvalidCacheKey, "key is reserved")
	}

	for segment := range strings.SplitSeq(s, "/") {
		if segment == "" || segment == "." || segment == ".." {
			return zerr.Wrap(ErrInvalidCacheKey, "key contains an empty or relative segment")
		}
	}

	if path.Clean(s) != s {
		return zerr.Wrap(ErrInvalidCacheKey, "key is not in canonical form")
	}
	return nil
}
