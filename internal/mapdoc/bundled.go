package mapdoc

import (
	"embed"
	"fmt"
)

//go:embed maps/*.json
var bundledFS embed.FS

// Bundled map ids, in play order.
const (
	TutorialID = "tutorial"
	Level1ID   = "level1"
)

var bundledIDs = []string{TutorialID, Level1ID}

// BundledIDs returns the ids of the maps shipped with the binary.
func BundledIDs() []string {
	out := make([]string, len(bundledIDs))
	copy(out, bundledIDs)
	return out
}

// BundledSource returns the raw document of a bundled map.
func BundledSource(id string) ([]byte, error) {
	data, err := bundledFS.ReadFile("maps/" + id + ".json")
	if err != nil {
		return nil, fmt.Errorf("unknown bundled map %q: %w", id, err)
	}
	return data, nil
}

// Bundled parses a bundled map.
func Bundled(id string) (Descriptor, error) {
	data, err := BundledSource(id)
	if err != nil {
		return Descriptor{}, err
	}
	return parse(data, "bundled:"+id)
}

// MustBundled is like Bundled but panics on error.
// The bundled maps are part of the binary and are covered by tests.
func MustBundled(id string) Descriptor {
	d, err := Bundled(id)
	if err != nil {
		panic(err)
	}
	return d
}
