package fsys

import (
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// Entry is a single directory listing result.
type Entry struct {
	Name  string `json:"name"`
	IsDir bool   `json:"is_dir"`
}

// FS is the narrow file-system capability the generator depends on.
// Implementations must return directory entries sorted by name so that
// traversal order is deterministic across runs.
type FS interface {
	ListEntries(dir string) ([]Entry, error)
	ModTime(path string) (time.Time, error)
	Exists(path string) bool
	WriteText(path string, content string) error
}

// OS implements FS on the real file-system.
type OS struct{}

func NewOS() OS {
	return OS{}
}

func (OS) ListEntries(dir string) ([]Entry, error) {
	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	// os.ReadDir already sorts by file name
	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		entries = append(entries, Entry{Name: de.Name(), IsDir: de.IsDir()})
	}

	return entries, nil
}

func (OS) ModTime(path string) (time.Time, error) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, err
	}
	return info.ModTime(), nil
}

func (OS) Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func (OS) WriteText(path string, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create parent directories for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	return nil
}
