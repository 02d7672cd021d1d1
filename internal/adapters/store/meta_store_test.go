package store_test

import (
	"path/filepath"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/internal/adapters/store"
	"go.trai.ch/warm/internal/core/domain"
)

const root = "/cache"

func sampleRecord() *domain.MetaRecord {
	return domain.NewMetaRecord("config/app.json", "0123456789abcdef", []domain.Resource{
		{Kind: domain.KindFile, Locator: "/project/config/app.yaml", Signature: "4:89abcdef01234567"},
		{Kind: domain.KindEnv, Locator: "APP_ENV", Signature: "unset"},
	})
}

func TestMetaStore_SaveLoad(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	s := store.NewMetaStore(fsys)
	record := sampleRecord()

	require.NoError(t, s.Save(root, record.Key, record))

	got, ok := s.Load(root, record.Key)
	require.True(t, ok)
	assert.Equal(t, record, got)
}

func TestMetaStore_Format(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	s := store.NewMetaStore(fsys)
	record := sampleRecord()
	require.NoError(t, s.Save(root, record.Key, record))

	data, err := afero.ReadFile(fsys, record.Key.MetaPath(root))
	require.NoError(t, err)

	g := goldie.New(t)
	g.Assert(t, "meta_format", data)
}

func TestMetaStore_LoadAbsent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{name: "not json", data: "{ invalid json"},
		{name: "empty", data: ""},
		{name: "wrong version", data: `{"version":2,"key":"config/app.json","artifact":"0123456789abcdef","resources":[]}`},
		{name: "key mismatch", data: `{"version":1,"key":"other.json","artifact":"0123456789abcdef","resources":[]}`},
		{name: "unknown kind", data: `{"version":1,"key":"config/app.json","artifact":"0123456789abcdef","resources":[{"kind":"class","locator":"Kernel","signature":"x"}]}`},
		{name: "unknown field", data: `{"version":1,"key":"config/app.json","artifact":"0123456789abcdef","resources":[],"extra":true}`},
		{name: "missing digest", data: `{"version":1,"key":"config/app.json","resources":[]}`},
		{name: "missing resources", data: `{"version":1,"key":"config/app.json","artifact":"0123456789abcdef"}`},
		{name: "trailing data", data: `{"version":1,"key":"config/app.json","artifact":"0123456789abcdef","resources":[]} {}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fsys := afero.NewMemMapFs()
			key := domain.CacheKey("config/app.json")
			require.NoError(t, fsys.MkdirAll(filepath.Dir(key.MetaPath(root)), 0o750))
			require.NoError(t, afero.WriteFile(fsys, key.MetaPath(root), []byte(tt.data), 0o600))

			got, ok := store.NewMetaStore(fsys).Load(root, key)
			assert.False(t, ok)
			assert.Nil(t, got)
		})
	}
}

func TestMetaStore_LoadMissing(t *testing.T) {
	t.Parallel()

	got, ok := store.NewMetaStore(afero.NewMemMapFs()).Load(root, "missing.json")
	assert.False(t, ok)
	assert.Nil(t, got)
}

func TestMetaStore_List(t *testing.T) {
	t.Parallel()

	fsys := afero.NewMemMapFs()
	s := store.NewMetaStore(fsys)

	for _, key := range []domain.CacheKey{"b.json", "config/app.json", "a.json"} {
		require.NoError(t, s.Save(root, key, domain.NewMetaRecord(key, "0000000000000000", nil)))
	}
	require.NoError(t, afero.WriteFile(fsys, filepath.Join(root, "artifact-only.json"), []byte("{}"), 0o600))

	keys, err := s.List(root)
	require.NoError(t, err)
	assert.Equal(t, []domain.CacheKey{"a.json", "b.json", "config/app.json"}, keys)
}

func TestMetaStore_ListMissingRoot(t *testing.T) {
	t.Parallel()

	keys, err := store.NewMetaStore(afero.NewMemMapFs()).List("/nowhere")
	require.NoError(t, err)
	assert.Empty(t, keys)
}

func TestMetaStore_SaveReadOnly(t *testing.T) {
	t.Parallel()

	s := store.NewMetaStore(afero.NewReadOnlyFs(afero.NewMemMapFs()))
	record := sampleRecord()

	err := s.Save(root, record.Key, record)
	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrCacheDirCreateFailed.Error())
}
