package domain

import "path/filepath"

const (
	// WarmDirName is the name of the internal project directory.
	WarmDirName = ".warm"

	// CacheDirName is the name of the compiled artifact directory.
	CacheDirName = "cache"

	// ConfigFileName is the name of the project configuration file.
	ConfigFileName = "warm.yaml"

	// MetaSuffix is appended to an artifact path to form its meta file path.
	MetaSuffix = ".meta"

	// CacheDirTagName is the file marking the cache root as a cache directory.
	// Tagged directories are left out of directory and glob resources.
	CacheDirTagName = "CACHEDIR.TAG"

	// CacheDirTagSignature is the first line every cache directory tag starts with.
	CacheDirTagSignature = "Signature: 8a477f597d28d172789f06886806bc55"

	// TempPattern is the pattern used for temporary files next to their final destination.
	TempPattern = ".warm-*.tmp"

	// DirPerm is the default permission for directories (rwxr-x---).
	DirPerm = 0o750

	// FilePerm is the default permission for files (rw-r--r--).
	FilePerm = 0o644

	// PrivateFilePerm is the default permission for private files (rw-------).
	PrivateFilePerm = 0o600
)

// DefaultWarmPath returns the default root directory for warm metadata.
func DefaultWarmPath() string {
	return WarmDirName
}

// DefaultCachePath returns the default path for compiled artifacts.
// It joins .warm and cache.
func DefaultCachePath() string {
	return filepath.Join(WarmDirName, CacheDirName)
}

// MetaPath returns the meta file path paired with an artifact path.
func MetaPath(artifactPath string) string {
	return artifactPath + MetaSuffix
}
