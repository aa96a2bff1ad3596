package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// FileStore implements Store backed by a single JSON document on disk,
// shaped as { "journal": ["title", ...], ... }.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore persisting to the given path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the JSON document. A missing file yields an empty mapping and
// nil error; an unreadable or unparsable file yields an empty mapping and
// the underlying error.
func (s *FileStore) Load() (map[string][]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return map[string][]string{}, nil
	}
	if err != nil {
		return map[string][]string{}, fmt.Errorf("read state file: %w", err)
	}

	var seen map[string][]string
	if err := json.Unmarshal(data, &seen); err != nil {
		return map[string][]string{}, fmt.Errorf("parse state file: %w", err)
	}
	if seen == nil {
		seen = map[string][]string{}
	}
	return seen, nil
}

// Save writes the full mapping as indented JSON. The write goes through a
// temporary file in the same directory followed by a rename, so a crash
// mid-write leaves either the old or the new document, never a torn one.
func (s *FileStore) Save(seen map[string][]string) error {
	data, err := json.MarshalIndent(seen, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
