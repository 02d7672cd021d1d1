package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.MetaStore = (*MetaStore)(nil)

// MetaStore implements ports.MetaStore with one JSON file per artifact.
type MetaStore struct {
	fs afero.Fs
}

// NewMetaStore creates a new MetaStore.
func NewMetaStore(fsys afero.Fs) *MetaStore {
	return &MetaStore{fs: fsys}
}

// Load reads the meta record of key. Any failure reports the record as absent.
func (s *MetaStore) Load(root string, key domain.CacheKey) (*domain.MetaRecord, bool) {
	data, err := afero.ReadFile(s.fs, key.MetaPath(root))
	if err != nil {
		return nil, false
	}

	record, err := decodeMeta(data)
	if err != nil || record.Key != key {
		return nil, false
	}
	return record, true
}

// Save atomically replaces the meta file of key.
func (s *MetaStore) Save(root string, key domain.CacheKey, record *domain.MetaRecord) error {
	staged, err := s.stage(root, key, record)
	if err != nil {
		return err
	}
	if err := staged.commit(key.MetaPath(root)); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrMetaWriteFailed.Error()), "key", key.String())
	}
	return nil
}

// stage encodes record into a temporary file next to the meta path of key.
func (s *MetaStore) stage(root string, key domain.CacheKey, record *domain.MetaRecord) (*stagedFile, error) {
	data, err := encodeMeta(record)
	if err != nil {
		return nil, zerr.With(err, "key", key.String())
	}

	dir := filepath.Dir(key.MetaPath(root))
	if err := s.fs.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrCacheDirCreateFailed.Error()), "path", dir)
	}

	staged, err := stage(s.fs, dir, data)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrMetaWriteFailed.Error()), "key", key.String())
	}
	return staged, nil
}

// List returns the keys of every meta file below root, sorted.
// A missing root yields no keys.
func (s *MetaStore) List(root string) ([]domain.CacheKey, error) {
	if ok, _ := afero.DirExists(s.fs, root); !ok {
		return nil, nil
	}

	var keys []domain.CacheKey
	err := afero.Walk(s.fs, root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() || !strings.HasSuffix(path, domain.MetaSuffix) {
			return nil
		}

		key, keyErr := domain.KeyFromArtifactPath(root, strings.TrimSuffix(path, domain.MetaSuffix))
		if keyErr != nil {
			return nil
		}
		keys = append(keys, key)
		return nil
	})
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list meta files"), "root", root)
	}

	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })
	return keys, nil
}

// encodeMeta renders a record as indented JSON with a trailing newline.
func encodeMeta(record *domain.MetaRecord) ([]byte, error) {
	if record.Resources == nil {
		record.Resources = []domain.Resource{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return nil, zerr.Wrap(err, domain.ErrMetaMarshalFailed.Error())
	}
	return buf.Bytes(), nil
}

// decodeMeta parses a meta file, rejecting unknown fields, unknown schema
// versions and descriptors of unknown kinds.
func decodeMeta(data []byte) (*domain.MetaRecord, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()

	var record domain.MetaRecord
	if err := dec.Decode(&record); err != nil {
		return nil, zerr.Wrap(err, "failed to decode meta record")
	}
	if dec.More() {
		return nil, zerr.New("trailing data after meta record")
	}
	if record.Version != domain.MetaSchemaVersion {
		return nil, zerr.With(zerr.New("unsupported meta schema version"), "version", record.Version)
	}
	if record.Artifact == "" || record.Resources == nil {
		return nil, zerr.New("incomplete meta record")
	}
	for _, r := range record.Resources {
		if !r.Kind.Valid() {
			return nil, zerr.With(domain.ErrUnknownResourceKind, "kind", string(r.Kind))
		}
	}
	return &record, nil
}
