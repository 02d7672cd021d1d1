// Package fs provides file system adapters for walking, globbing and hashing files.
package fs

import (
	"errors"
	"iter"
	"os"
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Walker provides file walking functionality.
type Walker struct {
	fs afero.Fs
}

// NewWalker creates a new Walker over the given file system.
func NewWalker(fsys afero.Fs) *Walker {
	return &Walker{fs: fsys}
}

// WalkFiles yields all files below root in lexical order. It skips .git, .jj,
// node_modules, tagged cache directories and ignored names.
// Yielded paths include root as a prefix.
//
// A missing root, or a root inside a cache directory, yields nothing. Any other
// walk failure is yielded once with an empty path and ends the sequence.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if insideCacheDir(w.fs, root, map[string]bool{}) {
			return
		}

		err := afero.Walk(w.fs, root, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				if info == nil && path == root && errors.Is(err, os.ErrNotExist) {
					return nil
				}
				return err
			}

			if w.shouldSkip(path, info, ignores) {
				if info.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}

			if info.IsDir() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}

			return nil
		})
		if err != nil && !errors.Is(err, filepath.SkipAll) {
			yield("", zerr.With(zerr.Wrap(err, "failed to walk directory"), "root", root))
		}
	}
}

// shouldSkip reports whether a file or directory is excluded from the walk.
func (w *Walker) shouldSkip(path string, info os.FileInfo, ignores []string) bool {
	name := info.Name()

	if info.IsDir() {
		if name == ".git" || name == ".jj" || name == "node_modules" {
			return true
		}
		if IsCacheDir(w.fs, path) {
			return true
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			return true
		}
	}

	return false
}
