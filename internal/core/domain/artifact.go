package domain

// Artifact is the output of a generator: the bytes to persist and every
// resource the generator consumed while producing them.
type Artifact struct {
	Content   []byte
	Resources []Resource
}

// EntryState is the observed state of one cache entry.
type EntryState string

const (
	// EntryFresh means the artifact exists and every recorded resource is unchanged.
	EntryFresh EntryState = "fresh"
	// EntryStale means the artifact or its meta exists but fails verification.
	EntryStale EntryState = "stale"
	// EntryAbsent means neither the artifact nor its meta exists.
	EntryAbsent EntryState = "absent"
	// EntryOrphan means a meta file exists for a key the registry does not know.
	EntryOrphan EntryState = "orphan"
)

// EntryStatus reports the state of a single cache key.
type EntryStatus struct {
	Key   CacheKey
	State EntryState
}
