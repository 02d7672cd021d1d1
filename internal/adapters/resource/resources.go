// Package resource records and verifies the inputs of generated artifacts.
package resource

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/spf13/afero"
	"go.trai.ch/warm/internal/adapters/fs"
	"go.trai.ch/warm/internal/core/domain"
	"go.trai.ch/warm/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.ResourceTracker = (*Resources)(nil)
	_ ports.ResourceChecker = (*Resources)(nil)
)

const (
	existsSignature  = "1"
	missingSignature = "0"
	unsetSignature   = "unset"
	setPrefix        = "set:"
)

// Resources computes signatures for every resource kind.
// The same signature functions back both tracking and checking, so a
// resource recorded during generation verifies as fresh until its input changes.
type Resources struct {
	fs        afero.Fs
	hasher    *fs.Hasher
	walker    *fs.Walker
	resolver  *fs.Resolver
	types     ports.TypeRegistry
	lookupEnv func(string) (string, bool)
}

// Option configures Resources.
type Option func(*Resources)

// WithLookupEnv replaces os.LookupEnv for env resources.
func WithLookupEnv(fn func(string) (string, bool)) Option {
	return func(r *Resources) {
		r.lookupEnv = fn
	}
}

// New creates a new Resources.
func New(
	fsys afero.Fs,
	hasher *fs.Hasher,
	walker *fs.Walker,
	resolver *fs.Resolver,
	types ports.TypeRegistry,
	opts ...Option,
) *Resources {
	r := &Resources{
		fs:        fsys,
		hasher:    hasher,
		walker:    walker,
		resolver:  resolver,
		types:     types,
		lookupEnv: os.LookupEnv,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// File tracks the content of the file at path.
func (r *Resources) File(path string) (domain.Resource, error) {
	sig, err := r.fileSignature(path)
	if err != nil {
		return domain.Resource{}, trackErr(err, domain.KindFile, path)
	}
	return domain.Resource{Kind: domain.KindFile, Locator: path, Signature: sig}, nil
}

// FileExists tracks whether path exists.
func (r *Resources) FileExists(path string) domain.Resource {
	return domain.Resource{Kind: domain.KindFileExists, Locator: path, Signature: r.existsSignature(path)}
}

// Directory tracks every file below dir.
func (r *Resources) Directory(dir string) (domain.Resource, error) {
	sig, err := r.directorySignature(dir)
	if err != nil {
		return domain.Resource{}, trackErr(err, domain.KindDirectory, dir)
	}
	return domain.Resource{Kind: domain.KindDirectory, Locator: dir, Signature: sig}, nil
}

// Glob tracks the set of files matched by pattern and their content.
func (r *Resources) Glob(pattern string) (domain.Resource, error) {
	sig, err := r.globSignature(pattern)
	if err != nil {
		return domain.Resource{}, trackErr(err, domain.KindGlob, pattern)
	}
	return domain.Resource{Kind: domain.KindGlob, Locator: pattern, Signature: sig}, nil
}

// Env tracks the value of an environment variable.
func (r *Resources) Env(name string) domain.Resource {
	return domain.Resource{Kind: domain.KindEnv, Locator: name, Signature: r.envSignature(name)}
}

// Type tracks the signature of a registered type identifier.
func (r *Resources) Type(id string) (domain.Resource, error) {
	sig, ok := r.types.Signature(id)
	if !ok {
		return domain.Resource{}, trackErr(domain.ErrUnknownType, domain.KindType, id)
	}
	return domain.Resource{Kind: domain.KindType, Locator: id, Signature: sig}, nil
}

// IsFresh reports whether res still carries the signature it was recorded with.
func (r *Resources) IsFresh(res domain.Resource) bool {
	switch res.Kind {
	case domain.KindFile:
		return r.fileIsFresh(res)
	case domain.KindFileExists:
		return r.existsSignature(res.Locator) == res.Signature
	case domain.KindDirectory:
		sig, err := r.directorySignature(res.Locator)
		return err == nil && sig == res.Signature
	case domain.KindGlob:
		sig, err := r.globSignature(res.Locator)
		return err == nil && sig == res.Signature
	case domain.KindEnv:
		return r.envSignature(res.Locator) == res.Signature
	case domain.KindType:
		sig, ok := r.types.Signature(res.Locator)
		return ok && sig == res.Signature
	default:
		return false
	}
}

// fileIsFresh compares sizes before hashing the content.
func (r *Resources) fileIsFresh(res domain.Resource) bool {
	recordedSize, _, ok := strings.Cut(res.Signature, ":")
	if !ok {
		return false
	}

	info, err := r.fs.Stat(res.Locator)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	if strconv.FormatInt(info.Size(), 10) != recordedSize {
		return false
	}

	sig, err := r.fileSignature(res.Locator)
	return err == nil && sig == res.Signature
}

// fileSignature is "<size>:<xxhash>".
func (r *Resources) fileSignature(path string) (string, error) {
	info, err := r.fs.Stat(path)
	if err != nil {
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", zerr.With(zerr.New("not a regular file"), "path", path)
	}

	sum, err := r.hasher.ComputeFileHash(path)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(info.Size(), 10) + ":" + fs.FormatHash(sum), nil
}

func (r *Resources) existsSignature(path string) string {
	if _, err := r.fs.Stat(path); err != nil {
		return missingSignature
	}
	return existsSignature
}

// directorySignature hashes the relative path and content hash of every file below dir.
func (r *Resources) directorySignature(dir string) (string, error) {
	info, err := r.fs.Stat(dir)
	if err != nil {
		return "", err
	}
	if !info.IsDir() {
		return "", zerr.With(zerr.New("not a directory"), "path", dir)
	}

	digest := xxhash.New()
	for path, err := range r.walker.WalkFiles(dir, nil) {
		if err != nil {
			return "", err
		}
		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return "", err
		}
		if err := r.hashEntry(digest, filepath.ToSlash(rel), path); err != nil {
			return "", err
		}
	}
	return fs.FormatHash(digest.Sum64()), nil
}

// globSignature hashes the sorted matches of pattern and their content hashes.
func (r *Resources) globSignature(pattern string) (string, error) {
	matches, err := r.resolver.Glob(pattern)
	if err != nil {
		return "", err
	}

	digest := xxhash.New()
	_, _ = digest.WriteString(strconv.Itoa(len(matches)))
	_, _ = digest.Write([]byte{0})
	for _, path := range matches {
		if err := r.hashEntry(digest, path, path); err != nil {
			return "", err
		}
	}
	return fs.FormatHash(digest.Sum64()), nil
}

func (r *Resources) hashEntry(digest *xxhash.Digest, name, path string) error {
	_, _ = digest.WriteString(name)
	_, _ = digest.Write([]byte{0})

	sum, err := r.hasher.ComputeFileHash(path)
	if err != nil {
		return err
	}
	var buf [8]byte
	binary.LittleEndian.PutUint64(buf[:], sum)
	_, _ = digest.Write(buf[:])
	return nil
}

func (r *Resources) envSignature(name string) string {
	value, ok := r.lookupEnv(name)
	if !ok {
		return unsetSignature
	}
	return setPrefix + fs.HashBytes([]byte(value))
}

func trackErr(err error, kind domain.ResourceKind, locator string) error {
	return zerr.With(zerr.With(zerr.Wrap(err, domain.ErrResourceTrackFailed.Error()), "kind", string(kind)), "locator", locator)
}
