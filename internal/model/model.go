// Package model defines the domain types used across the application.
package model

// Entry is a single item from a fetched feed. Fields are whitespace-trimmed
// but otherwise unvalidated; an empty Title or Link marks a malformed entry.
type Entry struct {
	Title string
	Link  string
}

// Article is a newly discovered entry attributed to its journal. It exists
// only for the duration of one run and is used to build the digest.
//
// Title alone is the article identity for diffing against the seen store;
// two entries with the same title but different links are treated as the
// same article. Known limitation, kept on purpose.
type Article struct {
	Journal string
	Title   string
	Link    string
}

// FilterKind defines the type of title filter rule.
type FilterKind string

// Supported filter kinds.
const (
	FilterInclude   FilterKind = "include"
	FilterExclude   FilterKind = "exclude"
	FilterIncludeRe FilterKind = "include_re"
	FilterExcludeRe FilterKind = "exclude_re"
)

// Filter is a single title filtering rule applied to fetched entries.
type Filter struct {
	Kind  FilterKind
	Value string
}
