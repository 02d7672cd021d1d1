package domain

// Config is the resolved project configuration.
// All paths are absolute.
type Config struct {
	// Root is the directory containing warm.yaml.
	Root string
	// ConfigPath is the absolute path of warm.yaml.
	ConfigPath string
	// CacheDir is the cache root holding artifact/meta pairs.
	CacheDir string
	// ValidateOnEveryAccess enables descriptor evaluation on every cache access.
	// When false, an existing artifact is served without checking its resources.
	ValidateOnEveryAccess bool
	// Parallelism bounds the number of keys warmed concurrently.
	Parallelism int
	// Artifacts are ordered by key.
	Artifacts []ArtifactSpec
}

// ArtifactSpec declares how one artifact is compiled.
type ArtifactSpec struct {
	Key CacheKey
	// Sources are merged in order.
	Sources []string
	// Globs are expanded and merged in sorted match order after Sources.
	Globs []string
	// Directories contribute every *.yaml/*.yml file below them, sorted.
	Directories []string
	// Optional files are merged last when present; their absence is tracked too.
	Optional []string
	// Env lists environment variables injected under the "env" parameter.
	Env []string
}

// Lookup returns the spec for key.
func (c *Config) Lookup(key CacheKey) (ArtifactSpec, bool) {
	for _, a := range c.Artifacts {
		if a.Key == key {
			return a, true
		}
	}
	return ArtifactSpec{}, false
}

// Keys returns the configured cache keys in order.
func (c *Config) Keys() []CacheKey {
	keys := make([]CacheKey, 0, len(c.Artifacts))
	for _, a := range c.Artifacts {
		keys = append(keys, a.Key)
	}
	return keys
}
