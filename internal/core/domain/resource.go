package domain

// ResourceKind tags the variant of a Resource.
type ResourceKind string

const (
	// KindFile tracks the content of a single file.
	KindFile ResourceKind = "file"
	// KindFileExists tracks only whether a path exists.
	KindFileExists ResourceKind = "file_exists"
	// KindDirectory tracks every file below a directory.
	KindDirectory ResourceKind = "directory"
	// KindGlob tracks the set of files matched by a pattern.
	KindGlob ResourceKind = "glob"
	// KindEnv tracks the value of an environment variable.
	KindEnv ResourceKind = "env"
	// KindType tracks the signature of a statically registered type identifier.
	KindType ResourceKind = "type"
)

// Valid reports whether k is one of the known resource kinds.
func (k ResourceKind) Valid() bool {
	switch k {
	case KindFile, KindFileExists, KindDirectory, KindGlob, KindEnv, KindType:
		return true
	default:
		return false
	}
}

// Resource describes one tracked input of a generated artifact together
// with the signature observed when the artifact was generated.
type Resource struct {
	Kind      ResourceKind `json:"kind"`
	Locator   string       `json:"locator"`
	Signature string       `json:"signature"`
}

// ResourceID is the identity of a Resource, used for deduplication.
type ResourceID struct {
	Kind    ResourceKind
	Locator string
}

// ID returns the (kind, locator) identity of the resource.
func (r Resource) ID() ResourceID {
	return ResourceID{Kind: r.Kind, Locator: r.Locator}
}

// String returns a short human-readable form such as "file:/etc/app.yaml".
func (r Resource) String() string {
	return string(r.Kind) + ":" + r.Locator
}
