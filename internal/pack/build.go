package pack

import (
	"fmt"
	"os"

	"github.com/vovakirdan/veiled-path/internal/mapdoc"
)

// BuildResult summarizes an import.
type BuildResult struct {
	Added   []string
	Skipped map[string]error // Path -> reason
}

// ImportDir adds every valid map under dir to the pack. Maps are named after
// their file stem; invalid files are reported in Skipped.
func (s *Store) ImportDir(dir string) (BuildResult, error) {
	entries, skipped, err := mapdoc.NewLoader(dir).LoadAll()
	if err != nil {
		return BuildResult{}, err
	}

	res := BuildResult{Skipped: skipped}
	for _, e := range entries {
		source, err := os.ReadFile(e.FilePath)
		if err != nil {
			res.Skipped[e.FilePath] = err
			continue
		}
		if _, err := s.Add(e.ID, source); err != nil {
			return res, fmt.Errorf("importing %s: %w", e.FilePath, err)
		}
		res.Added = append(res.Added, e.ID)
	}
	return res, nil
}
