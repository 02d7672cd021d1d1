package domain

// MetaSchemaVersion is the version written into every meta file.
// Meta files carrying any other version are treated as absent.
const MetaSchemaVersion = 1

// MetaRecord is the sidecar record persisted next to an artifact.
type MetaRecord struct {
	Version int      `json:"version"`
	Key     CacheKey `json:"key"`
	// Artifact is the xxhash digest of the artifact bytes the record was written with.
	Artifact  string     `json:"artifact"`
	Resources []Resource `json:"resources"`
}

// NewMetaRecord builds a record for key, dropping resources whose (kind, locator)
// already appeared earlier in the sequence.
func NewMetaRecord(key CacheKey, artifactDigest string, resources []Resource) *MetaRecord {
	return &MetaRecord{
		Version:   MetaSchemaVersion,
		Key:       key,
		Artifact:  artifactDigest,
		Resources: DedupResources(resources),
	}
}

// DedupResources returns resources in their original order with later
// duplicates of the same (kind, locator) removed.
func DedupResources(resources []Resource) []Resource {
	seen := make(map[ResourceID]struct{}, len(resources))
	out := make([]Resource, 0, len(resources))
	for _, r := range resources {
		if _, ok := seen[r.ID()]; ok {
			continue
		}
		seen[r.ID()] = struct{}{}
		out = append(out, r)
	}
	return out
}
