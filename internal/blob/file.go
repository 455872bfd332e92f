package blob

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// FileStore keeps one file per blob under a data directory.
type FileStore struct {
	dir string
}

// NewFileStore creates a FileStore rooted at dir, creating the
// directory if it does not exist.
func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

// Read returns the lines of the named blob. A missing blob is created
// empty and read as empty; absence is never an error.
func (s *FileStore) Read(name string) ([]string, error) {
	path := filepath.Join(s.dir, name)
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		// Create the empty blob so subsequent opens see it.
		if werr := os.WriteFile(path, nil, 0o644); werr != nil {
			return nil, fmt.Errorf("create blob %s: %w", name, werr)
		}
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read blob %s: %w", name, err)
	}
	return splitLines(string(data)), nil
}

// Write replaces the blob's contents with the given lines.
func (s *FileStore) Write(name string, lines []string) error {
	path := filepath.Join(s.dir, name)
	if err := os.WriteFile(path, []byte(joinLines(lines)), 0o644); err != nil {
		return fmt.Errorf("write blob %s: %w", name, err)
	}
	return nil
}

// List returns the names of all blobs starting with prefix.
func (s *FileStore) List(prefix string) ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("list blobs: %w", err)
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasPrefix(e.Name(), prefix) {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

// splitLines breaks blob content into trimmed lines, dropping blanks.
// Malformed whitespace in hand-edited data files is tolerated here so
// record parsing only ever sees the payload.
func splitLines(content string) []string {
	var lines []string
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func joinLines(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.Join(lines, "\n") + "\n"
}
