package injuries

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrNoSnapshot marks a missing snapshot file, distinct from read errors.
var ErrNoSnapshot = errors.New("no injuries snapshot")

// FileStore persists the injury report as a JSON snapshot on disk.
type FileStore struct {
	path string
}

// NewFileStore constructs a store writing to path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load reads the current snapshot. A missing file reports ErrNoSnapshot.
func (s *FileStore) Load() (*Report, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNoSnapshot
		}
		return nil, fmt.Errorf("injuries: read snapshot: %w", err)
	}

	var report Report
	if err := json.Unmarshal(raw, &report); err != nil {
		return nil, fmt.Errorf("injuries: decode snapshot: %w", err)
	}
	return &report, nil
}

// Save writes the snapshot atomically: a temp file in the same directory is
// renamed over the target so readers never observe a partial write.
func (s *FileStore) Save(report *Report) error {
	raw, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("injuries: encode snapshot: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("injuries: create snapshot dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".injuries-*.json")
	if err != nil {
		return fmt.Errorf("injuries: temp snapshot: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("injuries: write snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("injuries: close snapshot: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("injuries: replace snapshot: %w", err)
	}
	return nil
}
