package store_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/adapters/store"
	"go.trai.ch/warm/internal/core/domain"
)

var errInjected = errors.New("injected failure")

// renameFailFs fails renames whose destination ends with suffix.
type renameFailFs struct {
	afero.Fs
	suffix string
}

func (f *renameFailFs) Rename(oldname, newname string) error {
	if strings.HasSuffix(newname, f.suffix) {
		return errInjected
	}
	return f.Fs.Rename(oldname, newname)
}

func tempFiles(t *testing.T, fsys afero.Fs, dir string) []string {
	t.Helper()

	var found []string
	_ = afero.Walk(fsys, dir, func(path string, info os.FileInfo, err error) error {
		if err == nil && !info.IsDir() && strings.HasSuffix(path, ".tmp") {
			found = append(found, path)
		}
		return nil
	})
	return found
}

func TestWriter_Write(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	w := store.NewWriter(fsys)
	key := domain.CacheKey("config/app.json")
	resources := []domain.Resource{
		{Kind: domain.KindFile, Locator: "/project/app.yaml", Signature: "1:0000000000000001"},
		{Kind: domain.KindFile, Locator: "/project/app.yaml", Signature: "dup"},
	}

	require.NoError(t, w.Write(root, key, []byte(`{"a":1}`), resources))

	content, err := afero.ReadFile(fsys, key.ArtifactPath(root))
	require.NoError(t, err)
	assert.JSONEq(t, `{"a":1}`, string(content))

	record, ok := store.NewMetaStore(fsys).Load(root, key)
	require.True(t, ok)
	assert.Equal(t, fs.HashBytes(content), record.Artifact)
	require.Len(t, record.Resources, 1, "duplicate descriptors collapse")
	assert.Equal(t, resources[0], record.Resources[0])

	assert.Empty(t, tempFiles(t, fsys, root))
}

func TestWriter_Overwrite(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	w := store.NewWriter(fsys)
	key := domain.CacheKey("app.json")

	require.NoError(t, w.Write(root, key, []byte("old"), nil))
	require.NoError(t, w.Write(root, key, []byte("new"), []domain.Resource{{Kind: domain.KindEnv, Locator: "A", Signature: "unset"}}))

	content, err := afero.ReadFile(fsys, key.ArtifactPath(root))
	require.NoError(t, err)
	assert.Equal(t, "new", string(content))

	record, ok := store.NewMetaStore(fsys).Load(root, key)
	require.True(t, ok)
	assert.Equal(t, fs.HashBytes([]byte("new")), record.Artifact)
	assert.Len(t, record.Resources, 1)
}

func TestWriter_ArtifactRenameFails(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	w := store.NewWriter(&renameFailFs{Fs: base, suffix: ".json"})
	key := domain.CacheKey("app.json")

	err := w.Write(root, key, []byte("content"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrArtifactWriteFailed.Error())
	assert.ErrorIs(t, err, errInjected)

	exists, _ := afero.Exists(base, key.ArtifactPath(root))
	assert.False(t, exists)
	exists, _ = afero.Exists(base, key.MetaPath(root))
	assert.False(t, exists)
	assert.Empty(t, tempFiles(t, base, root))
}

func TestWriter_MetaRenameFails(t *testing.T) {
	t.Parallel()

	base := afero.NewMemMapFs()
	key := domain.CacheKey("app.json")
	require.NoError(t, store.NewWriter(base).Write(root, key, []byte("old"), nil))

	w := store.NewWriter(&renameFailFs{Fs: base, suffix: domain.MetaSuffix})
	err := w.Write(root, key, []byte("new"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrMetaWriteFailed.Error())
	assert.Empty(t, tempFiles(t, base, root))

	// The surviving meta describes the old artifact, so the pair no longer matches.
	record, ok := store.NewMetaStore(base).Load(root, key)
	require.True(t, ok)
	content, err := afero.ReadFile(base, key.ArtifactPath(root))
	require.NoError(t, err)
	assert.NotEqual(t, fs.HashBytes(content), record.Artifact)
}

func TestWriter_ReadOnly(t *testing.T) {
	t.Parallel()

	w := store.NewWriter(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	err := w.Write(root, "app.json", []byte("content"), nil)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheDirCreateFailed.Error())
}

func TestWriter_ConcurrentWritesNeverTear(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	fsys := afero.NewOsFs()
	w := store.NewWriter(fsys)
	metas := store.NewMetaStore(fsys)
	key := domain.CacheKey("app.json")

	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			content := []byte(strings.Repeat(string(rune('a'+i)), 4096))
			assert.NoError(t, w.Write(dir, key, content, nil))
		}()
	}
	wg.Wait()

	content, err := os.ReadFile(filepath.Join(dir, "app.json"))
	require.NoError(t, err)
	assert.Len(t, content, 4096)
	assert.Equal(t, strings.Repeat(string(content[0]), 4096), string(content), "artifact must never be a mix of writers")

	_, ok := metas.Load(dir, key)
	assert.True(t, ok)
	assert.Empty(t, tempFiles(t, fsys, dir))
}

func TestWriter_MetaMatchesSave(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	key := domain.CacheKey("config/app.json")
	resources := []domain.Resource{
		{Kind: domain.KindFile, Locator: "/app.yaml", Signature: "4:00000000000000aa"},
		{Kind: domain.KindEnv, Locator: "APP_ENV", Signature: "unset"},
	}

	require.NoError(t, store.NewWriter(fsys).Write(root, key, []byte("body"), resources))
	written, err := afero.ReadFile(fsys, key.MetaPath(root))
	require.NoError(t, err)

	other := "/saved"
	record := domain.NewMetaRecord(key, fs.HashBytes([]byte("body")), resources)
	require.NoError(t, store.NewMetaStore(fsys).Save(other, key, record))
	saved, err := afero.ReadFile(fsys, key.MetaPath(other))
	require.NoError(t, err)

	assert.Equal(t, string(saved), string(written))
}
