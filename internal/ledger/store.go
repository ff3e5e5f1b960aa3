package ledger

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Store persists the ledger as an ordered list.
type Store interface {
	Read() ([]Entry, error)
	Write(entries []Entry) error
}

// FileStore keeps the ledger as a JSON array in a single file.
type FileStore struct {
	path string
}

// NewFileStore creates a store at path. The file is created on first write.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read decodes the file. A missing file yields an error wrapping
// fs.ErrNotExist.
func (f *FileStore) Read() ([]Entry, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("ledger: read %s: %w", f.path, err)
	}
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("ledger: decode %s: %w", f.path, err)
	}
	return entries, nil
}

// Write replaces the file with entries, indented by four spaces.
func (f *FileStore) Write(entries []Entry) error {
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.MarshalIndent(entries, "", "    ")
	if err != nil {
		return fmt.Errorf("ledger: encode: %w", err)
	}
	if dir := filepath.Dir(f.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ledger: cannot create directory %s: %w", dir, err)
		}
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("ledger: write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, f.path); err != nil {
		os.Remove(tmp) //nolint:errcheck // Best-effort cleanup
		return fmt.Errorf("ledger: replace %s: %w", f.path, err)
	}
	return nil
}
