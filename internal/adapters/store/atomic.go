// Package store persists artifacts and their meta records below a cache root.
package store

import (
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/zerr"
)

// stagedFile is a fully written temporary file waiting to be renamed into place.
type stagedFile struct {
	fs   afero.Fs
	path string
}

// stage writes data to a temporary file in dir.
// On failure the temporary file is removed before returning.
func stage(fsys afero.Fs, dir string, data []byte) (*stagedFile, error) {
	tmp, err := afero.TempFile(fsys, dir, domain.TempPattern)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to create temp file")
	}

	staged := &stagedFile{fs: fsys, path: tmp.Name()}

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		staged.discard()
		return nil, zerr.With(zerr.Wrap(err, "failed to write temp file"), "path", staged.path)
	}

	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		staged.discard()
		return nil, zerr.With(zerr.Wrap(err, "failed to sync temp file"), "path", staged.path)
	}

	if err := tmp.Close(); err != nil {
		staged.discard()
		return nil, zerr.With(zerr.Wrap(err, "failed to close temp file"), "path", staged.path)
	}

	if err := fsys.Chmod(staged.path, domain.FilePerm); err != nil {
		staged.discard()
		return nil, zerr.With(zerr.Wrap(err, "failed to chmod temp file"), "path", staged.path)
	}

	return staged, nil
}

// commit renames the staged file to dest. The staged file is removed if the rename fails.
func (s *stagedFile) commit(dest string) error {
	if err := s.fs.Rename(s.path, dest); err != nil {
		s.discard()
		return zerr.With(zerr.Wrap(err, "failed to rename temp file"), "path", dest)
	}
	return nil
}

func (s *stagedFile) discard() {
	_ = s.fs.Remove(s.path)
}
