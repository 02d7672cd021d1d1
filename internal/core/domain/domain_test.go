package domain_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/warm/internal/core/domain"
)

func TestNewCacheKey(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		wantErr bool
	}{
		{name: "simple", key: "app.json"},
		{name: "nested", key: "config/app.json"},
		{name: "deep", key: "a/b/c/container.php"},
		{name: "empty", key: "", wantErr: true},
		{name: "absolute", key: "/etc/app.json", wantErr: true},
		{name: "parent segment", key: "../app.json", wantErr: true},
		{name: "inner parent segment", key: "config/../app.json", wantErr: true},
		{name: "dot segment", key: "./app.json", wantErr: true},
		{name: "double slash", key: "config//app.json", wantErr: true},
		{name: "trailing slash", key: "config/", wantErr: true},
		{name: "meta suffix", key: "app.json.meta", wantErr: true},
		{name: "backslash", key: `config\app.json`, wantErr: true},
		{name: "cache dir tag", key: "CACHEDIR.TAG", wantErr: true},
		{name: "nested tag name", key: "docs/CACHEDIR.TAG"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := domain.NewCacheKey(tt.key)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidCacheKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.key, key.String())
		})
	}
}

func TestCacheKey_Paths(t *testing.T) {
	root := filepath.Join("var", "cache")
	key := domain.CacheKey("config/app.json")

	assert.Equal(t, filepath.Join(root, "config", "app.json"), key.ArtifactPath(root))
	assert.Equal(t, filepath.Join(root, "config", "app.json.meta"), key.MetaPath(root))

	back, err := domain.KeyFromArtifactPath(root, key.ArtifactPath(root))
	require.NoError(t, err)
	assert.Equal(t, key, back)
}

func TestKeyFromArtifactPath_OutsideRoot(t *testing.T) {
	_, err := domain.KeyFromArtifactPath(filepath.Join("var", "cache"), filepath.Join("var", "other.json"))
	require.Error(t, err)
}

func TestNewMetaRecord_Dedup(t *testing.T) {
	resources := []domain.Resource{
		{Kind: domain.KindFile, Locator: "/a.yaml", Signature: "first"},
		{Kind: domain.KindEnv, Locator: "APP_ENV", Signature: "unset"},
		{Kind: domain.KindFile, Locator: "/a.yaml", Signature: "second"},
		{Kind: domain.KindFileExists, Locator: "/a.yaml", Signature: "1"},
	}

	rec := domain.NewMetaRecord("app.json", "00000000000000ff", resources)

	assert.Equal(t, domain.MetaSchemaVersion, rec.Version)
	assert.Equal(t, domain.CacheKey("app.json"), rec.Key)
	assert.Equal(t, "00000000000000ff", rec.Artifact)
	require.Len(t, rec.Resources, 3)
	assert.Equal(t, "first", rec.Resources[0].Signature)
	assert.Equal(t, domain.KindEnv, rec.Resources[1].Kind)
	assert.Equal(t, domain.KindFileExists, rec.Resources[2].Kind)
}

func TestResourceKind_Valid(t *testing.T) {
	for _, k := range []domain.ResourceKind{
		domain.KindFile, domain.KindFileExists, domain.KindDirectory,
		domain.KindGlob, domain.KindEnv, domain.KindType,
	} {
		assert.True(t, k.Valid(), k)
	}
	assert.False(t, domain.ResourceKind("class").Valid())
}

func TestConfig_Lookup(t *testing.T) {
	cfg := &domain.Config{
		Artifacts: []domain.ArtifactSpec{
			{Key: "a.json", Sources: []string{"/a.yaml"}},
			{Key: "b.json"},
		},
	}

	spec, ok := cfg.Lookup("a.json")
	require.True(t, ok)
	assert.Equal(t, []string{"/a.yaml"}, spec.Sources)

	_, ok = cfg.Lookup("missing.json")
	assert.False(t, ok)

	assert.Equal(t, []domain.CacheKey{"a.json", "b.json"}, cfg.Keys())
}
