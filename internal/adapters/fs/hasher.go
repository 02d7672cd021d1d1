package fs

import (
	"fmt"
	"io"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes of files.
type Hasher struct {
	fs afero.Fs
}

// NewHasher creates a new Hasher over the given file system.
func NewHasher(fsys afero.Fs) *Hasher {
	return &Hasher{fs: fsys}
}

// ComputeFileHash computes the XXHash of a file's content.
func (h *Hasher) ComputeFileHash(path string) (uint64, error) {
	f, err := h.fs.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}

	return hasher.Sum64(), nil
}

// HashBytes returns the XXHash of b formatted as 16 hex digits.
func HashBytes(b []byte) string {
	return FormatHash(xxhash.Sum64(b))
}

// FormatHash formats a 64-bit hash as 16 hex digits.
func FormatHash(sum uint64) string {
	return fmt.Sprintf("%016x", sum)
}
