package mapdoc

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Entry is a map document found on disk.
type Entry struct {
	ID         string // File name without extension
	Descriptor Descriptor
	FilePath   string
}

// Loader scans a directory for map documents.
type Loader struct {
	Root string
}

// NewLoader creates a loader rooted at root.
func NewLoader(root string) *Loader {
	return &Loader{Root: root}
}

// LoadAll recursively loads every supported map file under Root.
// Invalid files are reported in skipped instead of failing the scan.
// Entries are sorted by ID.
func (l *Loader) LoadAll() (entries []Entry, skipped map[string]error, err error) {
	skipped = make(map[string]error)

	err = filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsSupportedExtension(filepath.Ext(path)) {
			return nil
		}

		desc, loadErr := LoadFile(path)
		if loadErr != nil {
			skipped[path] = loadErr
			return nil
		}

		entries = append(entries, Entry{ID: idFromPath(path), Descriptor: desc, FilePath: path})
		return nil
	})
	if err != nil {
		return nil, nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.Slice(entries, func(i, j int) bool {
		return entries[i].ID < entries[j].ID
	})
	return entries, skipped, nil
}

// LoadByID loads the map whose file name (without extension) is id.
func (l *Loader) LoadByID(id string) (Entry, error) {
	entries, _, err := l.LoadAll()
	if err != nil {
		return Entry{}, err
	}
	for _, e := range entries {
		if e.ID == id {
			return e, nil
		}
	}
	return Entry{}, fmt.Errorf("map not found: %s", id)
}

// IsSupportedExtension reports whether ext names a map document format.
func IsSupportedExtension(ext string) bool {
	switch strings.ToLower(ext) {
	case ".json", ".yaml", ".yml":
		return true
	}
	return false
}

func idFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
