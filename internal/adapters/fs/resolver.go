package fs

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Resolver expands glob patterns into concrete file paths.
// Patterns follow filepath.Match syntax with the addition of "**",
// which matches any number of directories.
type Resolver struct {
	fs     afero.Fs
	walker *Walker
}

// NewResolver creates a new Resolver.
func NewResolver(fsys afero.Fs, walker *Walker) *Resolver {
	return &Resolver{fs: fsys, walker: walker}
}

// Glob returns the sorted list of regular files matched by pattern.
// A pattern whose base directory does not exist matches nothing.
// Files inside tagged cache directories never match.
func (r *Resolver) Glob(pattern string) ([]string, error) {
	if _, err := filepath.Match(strings.ReplaceAll(pattern, "**", "*"), ""); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
	}

	var matches []string
	if strings.Contains(pattern, "**") {
		base := staticBase(pattern)
		if ok, _ := afero.DirExists(r.fs, base); !ok {
			return nil, nil
		}
		for path, err := range r.walker.WalkFiles(base, nil) {
			if err != nil {
				return nil, zerr.With(err, "pattern", pattern)
			}
			if matchesGlobPattern(path, pattern) {
				matches = append(matches, path)
			}
		}
	} else {
		found, err := afero.Glob(r.fs, pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to glob path"), "pattern", pattern)
		}
		seen := map[string]bool{}
		for _, path := range found {
			info, err := r.fs.Stat(path)
			if err != nil || info.IsDir() {
				continue
			}
			if insideCacheDir(r.fs, filepath.Dir(path), seen) {
				continue
			}
			matches = append(matches, path)
		}
	}

	sort.Strings(matches)
	return matches, nil
}

// staticBase returns the leading directory of pattern that contains no glob metacharacters.
func staticBase(pattern string) string {
	parts := strings.Split(filepath.ToSlash(pattern), "/")
	static := make([]string, 0, len(parts))
	for _, part := range parts {
		if strings.ContainsAny(part, `*?[\`) {
			break
		}
		static = append(static, part)
	}

	base := strings.Join(static, "/")
	if base == "" {
		if strings.HasPrefix(pattern, "/") {
			return string(os.PathSeparator)
		}
		return "."
	}
	return filepath.FromSlash(base)
}

// matchesGlobPattern checks if a path matches a pattern with ** support.
func matchesGlobPattern(path, pattern string) bool {
	pattern = filepath.ToSlash(pattern)
	path = filepath.ToSlash(path)

	patternParts := strings.Split(pattern, "/")
	pathParts := strings.Split(path, "/")

	return matchGlobParts(pathParts, patternParts, 0, 0)
}

// matchGlobParts recursively matches path parts against pattern parts.
func matchGlobParts(pathParts, patternParts []string, pathIdx, patternIdx int) bool {
	if patternIdx >= len(patternParts) {
		return pathIdx >= len(pathParts)
	}

	if pathIdx >= len(pathParts) {
		for i := patternIdx; i < len(patternParts); i++ {
			if patternParts[i] != "**" {
				return false
			}
		}
		return true
	}

	if patternParts[patternIdx] == "**" {
		if matchGlobParts(pathParts, patternParts, pathIdx, patternIdx+1) {
			return true
		}
		return matchGlobParts(pathParts, patternParts, pathIdx+1, patternIdx)
	}

	matched, err := filepath.Match(patternParts[patternIdx], pathParts[pathIdx])
	if err != nil || !matched {
		return false
	}
	return matchGlobParts(pathParts, patternParts, pathIdx+1, patternIdx+1)
}
