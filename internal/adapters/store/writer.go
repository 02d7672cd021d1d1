package store

import (
	"path/filepath"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.CacheWriter = (*Writer)(nil)

// Writer implements ports.CacheWriter.
//
// Both files are staged next to their destination before anything is renamed.
// The meta file is staged through the MetaStore. The artifact is renamed first
// and the meta second: a pair interrupted between the two renames holds a meta
// whose artifact digest no longer matches, which reads as stale.
type Writer struct {
	fs    afero.Fs
	metas *MetaStore
}

// NewWriter creates a new Writer.
func NewWriter(fsys afero.Fs) *Writer {
	return &Writer{fs: fsys, metas: NewMetaStore(fsys)}
}

// Write persists content and its resources for key, replacing any prior pair.
func (w *Writer) Write(root string, key domain.CacheKey, content []byte, resources []domain.Resource) error {
	artifactPath := key.ArtifactPath(root)
	dir := filepath.Dir(artifactPath)

	if err := w.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}

	artifact, err := stage(w.fs, dir, content)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "key", key.String())
	}

	record := domain.NewMetaRecord(key, fs.HashBytes(content), resources)
	meta, err := w.metas.stage(root, key, record)
	if err != nil {
		artifact.discard()
		return err
	}

	if err := artifact.commit(artifactPath); err != nil {
		meta.discard()
		return zerr.With(zerr.Wrap(err, domain.ErrArtifactWriteFailed.Error()), "key", key.String())
	}

	if err := meta.commit(key.MetaPath(root)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetaWriteFailed.Error()), "key", key.String())
	}

	return nil
}
