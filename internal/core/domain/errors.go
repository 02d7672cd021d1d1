package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidCacheKey is returned when a cache key cannot be mapped to a path under the cache root.
	ErrInvalidCacheKey = zerr.New("invalid cache key")

	// ErrUnknownCacheKey is returned when the registry has no generator for a key.
	ErrUnknownCacheKey = zerr.New("unknown cache key")

	// ErrGenerationFailed is returned when a generator callback fails.
	ErrGenerationFailed = zerr.New("artifact generation failed")

	// ErrArtifactWriteFailed is returned when the artifact file cannot be written into place.
	ErrArtifactWriteFailed = zerr.New("failed to write artifact")

	// ErrMetaWriteFailed is returned when the meta file cannot be written into place.
	ErrMetaWriteFailed = zerr.New("failed to write meta file")

	// ErrMetaMarshalFailed is returned when a meta record cannot be marshaled.
	ErrMetaMarshalFailed = zerr.New("failed to marshal meta record")

	// ErrCacheDirCreateFailed is returned when a directory below the cache root cannot be created.
	ErrCacheDirCreateFailed = zerr.New("failed to create cache directory")

	// ErrCacheClearFailed is returned when the cache root cannot be removed.
	ErrCacheClearFailed = zerr.New("failed to clear cache directory")

	// ErrWarmupFailed is returned when at least one key fails to warm up.
	ErrWarmupFailed = zerr.New("cache warmup failed")

	// ErrResourceTrackFailed is returned when a resource signature cannot be recorded.
	ErrResourceTrackFailed = zerr.New("failed to record resource")

	// ErrUnknownResourceKind is returned when a descriptor carries a kind with no checker.
	ErrUnknownResourceKind = zerr.New("unknown resource kind")

	// ErrUnknownType is returned when a type resource names an unregistered type identifier.
	ErrUnknownType = zerr.New("unknown type identifier")

	// ErrSourceReadFailed is returned when a generator cannot read one of its sources.
	ErrSourceReadFailed = zerr.New("failed to read source file")

	// ErrSourceParseFailed is returned when a generator cannot parse one of its sources.
	ErrSourceParseFailed = zerr.New("failed to parse source file")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigInvalid is returned when the config file fails validation.
	ErrConfigInvalid = zerr.New("invalid config file")

	// ErrConfigNotFound is returned when the config file cannot be found.
	ErrConfigNotFound = zerr.New("could not find warm.yaml")

	// ErrFailedToGetRoot is returned when the project root path cannot be determined.
	ErrFailedToGetRoot = zerr.New("failed to get absolute path of project root")

	// ErrWatcherFailed is returned when the file watcher cannot be started.
	ErrWatcherFailed = zerr.New("failed to start file watcher")

	// ErrCacheNotFresh is returned by a status check when any configured key is not fresh.
	ErrCacheNotFresh = zerr.New("cache has entries that are not fresh")

	// ErrMetricsWriteFailed is returned when the metrics textfile cannot be written.
	ErrMetricsWriteFailed = zerr.New("failed to write metrics file")
)
