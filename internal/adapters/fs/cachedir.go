package fs

import (
	"io"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/zerr"
)

const cacheDirTagBody = domain.CacheDirTagSignature + "\n" +
	"# This directory holds artifacts compiled by warm.\n" +
	"# See https://bford.info/cachedir/ for the tag format.\n"

// IsCacheDir reports whether dir holds a cache directory tag.
func IsCacheDir(fsys afero.Fs, dir string) bool {
	f, err := fsys.Open(filepath.Join(dir, domain.CacheDirTagName))
	if err != nil {
		return false
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, len(domain.CacheDirTagSignature))
	if _, err := io.ReadFull(f, buf); err != nil {
		return false
	}
	return string(buf) == domain.CacheDirTagSignature
}

// TagCacheDir creates dir if needed and tags it as a cache directory.
// An existing tag is left alone.
func TagCacheDir(fsys afero.Fs, dir string) error {
	if IsCacheDir(fsys, dir) {
		return nil
	}
	if err := fsys.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}
	tag := filepath.Join(dir, domain.CacheDirTagName)
	if err := afero.WriteFile(fsys, tag, []byte(cacheDirTagBody), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write cache directory tag"), "path", tag)
	}
	return nil
}

// insideCacheDir reports whether path or one of its ancestors is a tagged
// cache directory. Results are memoized in seen.
func insideCacheDir(fsys afero.Fs, path string, seen map[string]bool) bool {
	for dir := filepath.Clean(path); ; {
		tagged, ok := seen[dir]
		if !ok {
			tagged = IsCacheDir(fsys, dir)
			seen[dir] = tagged
		}
		if tagged {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
