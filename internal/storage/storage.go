// Package storage defines the seen-article persistence interface and its
// implementations.
package storage

// Store persists the mapping of journal name to the ordered list of article
// titles already reported.
type Store interface {
	// Load reads the persisted mapping. A missing store is not an error
	// and yields an empty mapping. A corrupt store yields an empty
	// mapping together with the parse error so the caller can log it
	// and continue.
	Load() (map[string][]string, error)

	// Save writes the full mapping, replacing any prior content.
	Save(seen map[string][]string) error
}
