package ports

import "go.trai.ch/warm/internal/core/domain"

//go:generate mockgen -source=resource.go -destination=mocks/mock_resource.go -package=mocks

// ResourceTracker records resources while an artifact is generated.
// Each method snapshots the current signature of the resource.
type ResourceTracker interface {
	// File tracks the content of the file at path. The file must exist.
	File(path string) (domain.Resource, error)
	// FileExists tracks whether path exists.
	FileExists(path string) domain.Resource
	// Directory tracks every file below dir.
	Directory(dir string) (domain.Resource, error)
	// Glob tracks the set of files matched by pattern.
	Glob(pattern string) (domain.Resource, error)
	// Env tracks the value of an environment variable.
	Env(name string) domain.Resource
	// Type tracks the signature of a registered type identifier.
	Type(id string) (domain.Resource, error)
}

// ResourceChecker evaluates recorded resources against the current environment.
type ResourceChecker interface {
	// IsFresh reports whether r still carries the signature it was recorded with.
	// A resource that has disappeared or cannot be read is not fresh.
	IsFresh(r domain.Resource) bool
}

// TypeRegistry resolves type identifiers to their current signatures.
type TypeRegistry interface {
	// Signature returns the current signature for id.
	Signature(id string) (string, bool)
}
